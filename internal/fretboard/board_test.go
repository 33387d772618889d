package fretboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/minikomi/fretboye/internal/note"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	cfg := DefaultConfig()
	b, err := New(&cfg)
	require.NoError(t, err)
	return b
}

func TestNoteFormula(t *testing.T) {
	b := newTestBoard(t)
	for f := 0; f <= NumFrets; f++ {
		for s := 0; s < NumStrings; s++ {
			want := note.Scale[(int(note.StandardTuning[s])+f)%12]
			require.Equal(t, want, b.Note(f, s), "fret %d string %d", f, s)
			require.Equal(t, want, b.Marker(f, s).Note)
		}
	}
}

func TestOpenStrings(t *testing.T) {
	b := newTestBoard(t)
	var open, twelfth []string
	for s := 0; s < NumStrings; s++ {
		require.Equal(t, note.Scale[note.StandardTuning[s]], b.Note(0, s))
		open = append(open, b.Note(0, s))
		twelfth = append(twelfth, b.Note(12, s))
	}
	require.Equal(t, []string{"E", "B", "G", "D", "A", "E"}, open)
	require.Equal(t, open, twelfth)
}

func TestPeriodicity(t *testing.T) {
	b := newTestBoard(t)
	for f := 0; f < 24; f++ {
		for s := 0; s < NumStrings; s++ {
			require.Equal(t, b.Note(f, s), b.Note(f+12, s))
		}
	}
}

func TestFirstFret(t *testing.T) {
	b := newTestBoard(t)
	require.Equal(t, "F", b.Note(1, 0))
	require.False(t, b.Marker(1, 0).Sharp)
	require.Equal(t, "F#", b.Note(2, 0))
	require.True(t, b.Marker(2, 0).Sharp)
}

func TestMarkers(t *testing.T) {
	b := newTestBoard(t)
	markers := b.Markers()
	require.Len(t, markers, 78)
	sharps := 0
	for _, m := range markers {
		require.Equal(t, note.IsSharp(m.Note), m.Sharp)
		if m.Sharp {
			sharps++
		}
	}
	// 13 frets: each string covers one full octave plus the open note again.
	require.Equal(t, 6*5, sharps)

	markers[0].Note = "X"
	require.Equal(t, "E", b.Marker(0, 0).Note)
}

func TestPitch(t *testing.T) {
	b := newTestBoard(t)
	require.Equal(t, note.AbsoluteNote(64), b.Marker(0, 0).Pitch)
	require.Equal(t, note.AbsoluteNote(40), b.Marker(0, 5).Pitch)
	require.Equal(t, note.AbsoluteNote(52), b.Marker(12, 5).Pitch)
	require.Equal(t, "F#4", b.Marker(2, 0).Pitch.String())
}

func TestGeometry(t *testing.T) {
	b := newTestBoard(t)
	require.InDelta(t, 123.75, b.FretGap(), 1e-9)
	require.InDelta(t, 27, b.StringGap(), 1e-9)
	require.InDelta(t, 0, b.FretOffset(0), 1e-9)
	require.InDelta(t, 1485, b.FretOffset(12), 1e-9)
	require.InDelta(t, 7.5, b.StringOffset(0), 1e-9)
	require.InDelta(t, 142.5, b.StringOffset(5), 1e-9)

	o := b.Origin()
	require.InDelta(t, 210, o.X, 1e-9)
	require.InDelta(t, 186, o.Y, 1e-9)

	m := b.Marker(1, 2)
	require.InDelta(t, 210+123.75-15, m.Center.X, 1e-9)
	require.InDelta(t, 186+7.5+54, m.Center.Y, 1e-9)
}

func TestMarkerAt(t *testing.T) {
	b := newTestBoard(t)
	m := b.Marker(3, 4)

	got, ok := b.MarkerAt(m.Center)
	require.True(t, ok)
	require.Equal(t, m, got)

	got, ok = b.MarkerAt(Point{m.Center.X + 11, m.Center.Y})
	require.True(t, ok)
	require.Equal(t, m, got)

	_, ok = b.MarkerAt(Point{m.Center.X + 13, m.Center.Y})
	require.False(t, ok)

	_, ok = b.MarkerAt(Point{0, 0})
	require.False(t, ok)
}

func TestTap(t *testing.T) {
	b := newTestBoard(t)
	var got []TapEvent
	var order []int
	b.OnTap(func(ev TapEvent) {
		got = append(got, ev)
		order = append(order, 1)
	})
	b.OnTap(func(TapEvent) { order = append(order, 2) })

	require.False(t, b.Tap(Point{1, 1}))
	require.Empty(t, got)

	m := b.Marker(1, 0)
	require.True(t, b.Tap(m.Center))
	require.Equal(t, []TapEvent{{Note: "F", Fret: 1, String: 0, Pitch: 65}}, got)
	require.Equal(t, []int{1, 2}, order)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"short scale":   func(c *Config) { c.Scale = c.Scale[:11] },
		"five strings":  func(c *Config) { c.Tuning = c.Tuning[:5] },
		"tuning range":  func(c *Config) { c.Tuning = []note.NoteModifier{4, 11, 7, 2, 9, 12} },
		"octave count":  func(c *Config) { c.Octaves = []int{4} },
		"octave range":  func(c *Config) { c.Octaves = []int{9, 3, 3, 3, 2, 2} },
		"edge gap":      func(c *Config) { c.EdgeGap = 0.5 },
		"bar too wide":  func(c *Config) { c.BarWidth = 2000 },
		"zero height":   func(c *Config) { c.BarHeight = 0 },
		"marker radius": func(c *Config) { c.MarkerRadius = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Tuning = append([]note.NoteModifier(nil), cfg.Tuning...)
			cfg.Octaves = append([]int(nil), cfg.Octaves...)
			mutate(&cfg)
			_, err := New(&cfg)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestScene(t *testing.T) {
	b := newTestBoard(t)
	sc := b.Scene()
	require.Equal(t, BackgroundColor, sc.Background)
	require.Equal(t, Rect{X: 210, Y: 186, W: 1500, H: 150, Fill: BarColor}, sc.Bar)

	require.Len(t, sc.Strings, NumStrings)
	require.InDelta(t, 1, sc.Strings[0].Width, 1e-9)
	require.InDelta(t, 2.5, sc.Strings[5].Width, 1e-9)
	require.InDelta(t, 186+142.5, sc.Strings[5].From.Y, 1e-9)

	require.Len(t, sc.Frets, NumFrets+1)
	require.Len(t, sc.FretNumbers, NumFrets+1)
	require.Equal(t, "12", sc.FretNumbers[12].Text)
	require.InDelta(t, 186+150+10, sc.FretNumbers[12].At.Y, 1e-9)
	require.Equal(t, sc.Frets[12].From.X, sc.FretNumbers[12].At.X)

	require.Len(t, sc.Markers, 78)
	for i, m := range b.Markers() {
		d := sc.Markers[i]
		require.Equal(t, m.Note, d.Label.Text)
		require.Equal(t, m.Center, d.Center)
		if m.Sharp {
			require.Equal(t, SharpColor, d.Fill)
		} else {
			require.Equal(t, NaturalColor, d.Fill)
		}
	}
}

func TestWriteTable(t *testing.T) {
	b := newTestBoard(t)
	var buf strings.Builder
	require.NoError(t, b.WriteTable(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, NumFrets+2)
	require.Equal(t, "fret 0   1   2   3   4   5", strings.TrimSpace(lines[0]))
	require.Equal(t, strings.Fields("0 E B G D A E"), strings.Fields(lines[1]))
	require.Equal(t, strings.Fields("1 F C G# D# A# F"), strings.Fields(lines[2]))
	require.Equal(t, strings.Fields(lines[1])[1:], strings.Fields(lines[13])[1:])
}

// Package fretboard computes the note layout of a guitar fretboard diagram
// and turns it into drawable primitives. It knows nothing about the window
// system; taps arrive as coordinates and leave as TapEvent values.
package fretboard

import (
	"github.com/minikomi/fretboye/internal/note"
)

type Point struct {
	X, Y float64
}

// Marker is the note shown at one fret/string intersection.
type Marker struct {
	Fret   int
	String int
	Note   string
	Pitch  note.AbsoluteNote
	Sharp  bool
	Center Point
}

// Board holds the computed layout. It is immutable apart from the
// registered tap handlers.
type Board struct {
	cfg      *Config
	origin   Point
	markers  []Marker
	handlers []TapHandler
}

// NoteAt returns scale[(tuning[str] + fret) mod len(scale)].
func NoteAt(scale []string, tuning []note.NoteModifier, fret, str int) string {
	n := len(scale)
	return scale[((int(tuning[str])+fret)%n+n)%n]
}

func New(cfg *Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg: cfg,
		origin: Point{
			X: (cfg.ScreenWidth - cfg.BarWidth) / 2,
			Y: (cfg.ScreenHeight - cfg.BarHeight) / 5,
		},
	}
	b.markers = make([]Marker, 0, (NumFrets+1)*NumStrings)
	for f := 0; f <= NumFrets; f++ {
		for s := 0; s < NumStrings; s++ {
			name := b.Note(f, s)
			b.markers = append(b.markers, Marker{
				Fret:   f,
				String: s,
				Note:   name,
				Pitch:  note.Absolute(cfg.Tuning[s], cfg.Octaves[s]) + note.AbsoluteNote(f),
				Sharp:  note.IsSharp(name),
				Center: Point{
					X: b.origin.X + b.FretOffset(f) - cfg.MarkerOffset,
					Y: b.origin.Y + b.StringOffset(s),
				},
			})
		}
	}
	return b, nil
}

// Origin is the top left corner of the bar in screen coordinates.
func (b *Board) Origin() Point { return b.origin }

func (b *Board) Note(fret, str int) string {
	return NoteAt(b.cfg.Scale, b.cfg.Tuning, fret, str)
}

func (b *Board) FretGap() float64 {
	return b.cfg.BarWidth * FretSpan / NumFrets
}

func (b *Board) StringGap() float64 {
	return b.cfg.BarHeight * (1 - 2*b.cfg.EdgeGap) / (NumStrings - 1)
}

// FretOffset is the x distance of fret line i from the left edge of the bar.
func (b *Board) FretOffset(i int) float64 {
	return float64(i) * b.FretGap()
}

// StringOffset is the y distance of string i from the top edge of the bar.
func (b *Board) StringOffset(i int) float64 {
	return b.cfg.BarHeight*b.cfg.EdgeGap + float64(i)*b.StringGap()
}

// Markers are ordered fret by fret, strings top to bottom.
func (b *Board) Markers() []Marker {
	out := make([]Marker, len(b.markers))
	copy(out, b.markers)
	return out
}

func (b *Board) Marker(fret, str int) Marker {
	return b.markers[fret*NumStrings+str]
}

// MarkerAt returns the marker whose circle contains p.
func (b *Board) MarkerAt(p Point) (Marker, bool) {
	r2 := b.cfg.MarkerRadius * b.cfg.MarkerRadius
	for _, m := range b.markers {
		dx, dy := p.X-m.Center.X, p.Y-m.Center.Y
		if dx*dx+dy*dy <= r2 {
			return m, true
		}
	}
	return Marker{}, false
}

package note

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleSharpCount(t *testing.T) {
	require.Len(t, Scale, 12)
	sharps := 0
	for _, name := range Scale {
		if IsSharp(name) {
			sharps++
		}
	}
	require.Equal(t, 5, sharps)
	require.Equal(t, 7, len(Scale)-sharps)
}

func TestParse(t *testing.T) {
	n, err := Parse("f#")
	require.NoError(t, err)
	require.Equal(t, FSharp, n)

	n, err = Parse(" E ")
	require.NoError(t, err)
	require.Equal(t, E, n)

	_, err = Parse("H")
	require.Error(t, err)
}

func TestStandardTuning(t *testing.T) {
	var names []string
	for _, n := range StandardTuning {
		names = append(names, n.String())
	}
	require.Equal(t, []string{"E", "B", "G", "D", "A", "E"}, names)
	require.Equal(t, []NoteModifier{4, 11, 7, 2, 9, 4}, StandardTuning)
}

func TestAbsolute(t *testing.T) {
	var got []AbsoluteNote
	for i, n := range StandardTuning {
		got = append(got, Absolute(n, StandardOctaves[i]))
	}
	require.Equal(t, []AbsoluteNote{64, 59, 55, 50, 45, 40}, got)
	require.Equal(t, "E4", AbsoluteNote(64).String())
	require.Equal(t, "C4", Absolute(C, 4).String())
	require.Equal(t, "A#2", AbsoluteNote(46).String())
}

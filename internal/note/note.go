package note

import (
	"fmt"
	"strings"
)

// NoteModifier is a pitch class, an index into the chromatic scale.
type NoteModifier uint8

const (
	C = NoteModifier(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// AbsoluteNote is a MIDI note number.
type AbsoluteNote uint8

const SharpMarker = "#"

// Scale is the chromatic scale starting at C.
var Scale = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// StandardTuning lists the open strings top to bottom as they appear on the diagram.
var StandardTuning = []NoteModifier{E, B, G, D, A, E}

// StandardOctaves are the octaves of StandardTuning (E4 B3 G3 D3 A2 E2).
var StandardOctaves = []int{4, 3, 3, 3, 2, 2}

func (n NoteModifier) String() string {
	return Scale[int(n)%len(Scale)]
}

// IsSharp reports whether the name carries the sharp marker.
func IsSharp(name string) bool {
	return strings.Contains(name, SharpMarker)
}

// Parse looks a note name up in the chromatic scale.
func Parse(name string) (NoteModifier, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, s := range Scale {
		if s == n {
			return NoteModifier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown note name %q", name)
}

// Absolute returns the MIDI note of pitch class n in octave oct, with C4 = 60.
func Absolute(n NoteModifier, oct int) AbsoluteNote {
	return AbsoluteNote((oct+1)*12 + int(n))
}

func (a AbsoluteNote) String() string {
	return fmt.Sprintf("%s%d", Scale[int(a)%12], int(a)/12-1)
}

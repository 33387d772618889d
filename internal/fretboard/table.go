package fretboard

import (
	"fmt"
	"io"
)

// WriteTable prints one row per fret with the note on every string.
func (b *Board) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-5s", "fret"); err != nil {
		return err
	}
	for s := 0; s < NumStrings; s++ {
		if _, err := fmt.Fprintf(w, "%-4d", s); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for f := 0; f <= NumFrets; f++ {
		if _, err := fmt.Fprintf(w, "%-5d", f); err != nil {
			return err
		}
		for s := 0; s < NumStrings; s++ {
			if _, err := fmt.Fprintf(w, "%-4s", b.Note(f, s)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

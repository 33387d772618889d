package fretboard

import (
	"errors"
	"fmt"

	"github.com/minikomi/fretboye/internal/note"
)

const (
	NumStrings = 6
	NumFrets   = 12
	// FretSpan is the share of the bar width covered by fret lines.
	FretSpan = 0.99
)

var ErrInvalidConfig = errors.New("invalid fretboard config")

// Config is built once at startup and never modified afterwards.
type Config struct {
	Scale   []string
	Tuning  []note.NoteModifier
	Octaves []int

	ScreenWidth  float64
	ScreenHeight float64

	BarWidth     float64
	BarHeight    float64
	EdgeGap      float64
	MarkerOffset float64
	MarkerRadius float64

	NoteTextSize   int
	FretNumberSize int
}

func DefaultConfig() Config {
	return Config{
		Scale:        note.Scale,
		Tuning:       note.StandardTuning,
		Octaves:      note.StandardOctaves,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		BarWidth:     1500,
		BarHeight:    150,
		EdgeGap:      0.05,
		MarkerOffset: 15,
		MarkerRadius: 12,

		NoteTextSize:   NoteTextSize,
		FretNumberSize: FretNumberSize,
	}
}

func (c Config) Validate() error {
	if len(c.Scale) != 12 {
		return fmt.Errorf("%w: scale must have 12 notes, got %d", ErrInvalidConfig, len(c.Scale))
	}
	if len(c.Tuning) != NumStrings {
		return fmt.Errorf("%w: tuning must have %d strings, got %d", ErrInvalidConfig, NumStrings, len(c.Tuning))
	}
	for i, n := range c.Tuning {
		if int(n) >= len(c.Scale) {
			return fmt.Errorf("%w: tuning index %d out of range on string %d", ErrInvalidConfig, n, i)
		}
	}
	if len(c.Octaves) != len(c.Tuning) {
		return fmt.Errorf("%w: need one octave per string, got %d", ErrInvalidConfig, len(c.Octaves))
	}
	for i, oct := range c.Octaves {
		// highest fretted note must still fit in a MIDI note number
		if oct < -1 || int(note.Absolute(c.Tuning[i], 0))+oct*12+NumFrets > 127 {
			return fmt.Errorf("%w: octave %d out of range on string %d", ErrInvalidConfig, oct, i)
		}
	}
	if c.BarWidth <= 0 || c.BarHeight <= 0 {
		return fmt.Errorf("%w: bar size must be positive", ErrInvalidConfig)
	}
	if c.ScreenWidth < c.BarWidth || c.ScreenHeight < c.BarHeight {
		return fmt.Errorf("%w: bar does not fit on a %gx%g screen", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.EdgeGap < 0 || c.EdgeGap >= 0.5 {
		return fmt.Errorf("%w: edge gap must be in [0, 0.5), got %g", ErrInvalidConfig, c.EdgeGap)
	}
	if c.MarkerRadius <= 0 {
		return fmt.Errorf("%w: marker radius must be positive", ErrInvalidConfig)
	}
	if c.NoteTextSize <= 0 || c.FretNumberSize <= 0 {
		return fmt.Errorf("%w: text sizes must be positive", ErrInvalidConfig)
	}
	return nil
}

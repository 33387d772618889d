package midiout

import (
	"github.com/minikomi/fretboye/internal/fretboard"
	"github.com/minikomi/fretboye/internal/note"

	"github.com/rs/zerolog/log"
)

// Forwarder turns marker taps into notes on an external MIDI port. A tap
// starts a note, Release stops it.
type Forwarder struct {
	wr       *Writer
	velocity uint8
	held     []note.AbsoluteNote
}

func NewForwarder(wr *Writer, velocity uint8) *Forwarder {
	return &Forwarder{wr: wr, velocity: velocity}
}

func (f *Forwarder) HandleTap(ev fretboard.TapEvent) {
	if err := f.wr.NoteOn(uint8(ev.Pitch), f.velocity); err != nil {
		log.Warn().Err(err).Str("pitch", ev.Pitch.String()).Msg("midi note on")
		return
	}
	f.held = append(f.held, ev.Pitch)
}

// Release stops every note started since the previous Release.
func (f *Forwarder) Release() {
	for _, p := range f.held {
		if err := f.wr.NoteOff(uint8(p)); err != nil {
			log.Warn().Err(err).Str("pitch", p.String()).Msg("midi note off")
		}
	}
	f.held = f.held[:0]
}

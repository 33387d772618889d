package main

import (
	"github.com/minikomi/fretboye/internal/fretboard"
	"github.com/minikomi/fretboye/internal/logging"
	"github.com/minikomi/fretboye/internal/midiout"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/veandco/go-sdl2/sdl"
)

var keyToCommand = map[sdl.Keycode]string{
	sdl.K_ESCAPE: "quit",
	sdl.K_q:      "quit",
}

type input struct {
	board     *fretboard.Board
	forwarder *midiout.Forwarder
	running   bool
}

func logKeyEvent(ev *sdl.KeyboardEvent) {
	log.Trace().
		Uint32("ts", ev.Timestamp).
		Uint32("type", ev.Type).
		Int32("sym", int32(ev.Keysym.Sym)).
		Uint16("modifiers", ev.Keysym.Mod).
		Uint8("state", ev.State).
		Uint8("repeat", ev.Repeat).
		Msg("keyboard")
}

func (in *input) HandleKeyEvent(ev *sdl.KeyboardEvent) {
	if logging.Enabled(zerolog.TraceLevel) {
		logKeyEvent(ev)
	}
	command, commandPressed := keyToCommand[ev.Keysym.Sym]
	if !commandPressed || ev.State != sdl.PRESSED || ev.Repeat != 0 {
		return
	}
	switch command {
	case "quit":
		in.running = false
	}
}

// HandleMouseButtonEvent taps the marker under the cursor on press and ends
// any forwarded notes on release. Coordinates are already in logical pixels.
func (in *input) HandleMouseButtonEvent(ev *sdl.MouseButtonEvent) {
	if ev.Button != sdl.BUTTON_LEFT {
		return
	}
	switch ev.State {
	case sdl.PRESSED:
		p := fretboard.Point{X: float64(ev.X), Y: float64(ev.Y)}
		if !in.board.Tap(p) {
			log.Debug().Int32("x", ev.X).Int32("y", ev.Y).Msg("click outside markers")
		}
	case sdl.RELEASED:
		if in.forwarder != nil {
			in.forwarder.Release()
		}
	}
}

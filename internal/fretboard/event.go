package fretboard

import "github.com/minikomi/fretboye/internal/note"

// TapEvent is emitted when a marker is activated.
type TapEvent struct {
	Note   string
	Fret   int
	String int
	Pitch  note.AbsoluteNote
}

type TapHandler func(TapEvent)

// OnTap registers h. Handlers run synchronously in registration order.
func (b *Board) OnTap(h TapHandler) {
	b.handlers = append(b.handlers, h)
}

// Tap dispatches a TapEvent if p hits a marker and reports whether it did.
func (b *Board) Tap(p Point) bool {
	m, ok := b.MarkerAt(p)
	if !ok {
		return false
	}
	ev := TapEvent{Note: m.Note, Fret: m.Fret, String: m.String, Pitch: m.Pitch}
	for _, h := range b.handlers {
		h(ev)
	}
	return true
}

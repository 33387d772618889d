package fretboard

import (
	"image/color"
	"strconv"
)

var (
	BackgroundColor = color.RGBA{0x64, 0x95, 0xed, 0xff}
	BarColor        = color.RGBA{0xee, 0xee, 0xee, 0xff}
	StringColor     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	FretColor       = color.RGBA{0x77, 0x77, 0x77, 0xe6}
	FretNumberColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	NaturalColor    = color.RGBA{0x22, 0x22, 0x22, 0xff}
	SharpColor      = color.RGBA{0x77, 0x77, 0x77, 0xff}
	NoteTextColor   = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

const (
	NoteTextSize   = 17
	FretNumberSize = 32
	fretNumberGap  = 10
	fretLineWidth  = 3
)

type Anchor int

const (
	// AnchorCenter centers the label on At.
	AnchorCenter Anchor = iota
	// AnchorTop centers the label horizontally with its top edge on At.
	AnchorTop
)

type Rect struct {
	X, Y, W, H float64
	Fill       color.RGBA
}

type Line struct {
	From, To Point
	Width    float64
	Color    color.RGBA
}

type Label struct {
	Text   string
	At     Point
	Size   int
	Bold   bool
	Anchor Anchor
	Color  color.RGBA
}

// Dot is a filled circle with a label on top of it.
type Dot struct {
	Center Point
	Radius float64
	Fill   color.RGBA
	Label  Label
}

// Scene lists everything to draw, in painting order.
type Scene struct {
	Background  color.RGBA
	Bar         Rect
	Strings     []Line
	Frets       []Line
	FretNumbers []Label
	Markers     []Dot
}

func (b *Board) Scene() Scene {
	o := b.origin
	w, h := b.cfg.BarWidth, b.cfg.BarHeight
	sc := Scene{
		Background: BackgroundColor,
		Bar:        Rect{X: o.X, Y: o.Y, W: w, H: h, Fill: BarColor},
	}
	for i := 0; i < NumStrings; i++ {
		y := o.Y + b.StringOffset(i)
		sc.Strings = append(sc.Strings, Line{
			From:  Point{o.X, y},
			To:    Point{o.X + w, y},
			Width: 1 + 0.3*float64(i),
			Color: StringColor,
		})
	}
	for i := 0; i <= NumFrets; i++ {
		x := o.X + b.FretOffset(i)
		sc.Frets = append(sc.Frets, Line{
			From:  Point{x, o.Y},
			To:    Point{x, o.Y + h},
			Width: fretLineWidth,
			Color: FretColor,
		})
		sc.FretNumbers = append(sc.FretNumbers, Label{
			Text:   strconv.Itoa(i),
			At:     Point{x, o.Y + h + fretNumberGap},
			Size:   b.cfg.FretNumberSize,
			Bold:   true,
			Anchor: AnchorTop,
			Color:  FretNumberColor,
		})
	}
	for _, m := range b.markers {
		fill := NaturalColor
		if m.Sharp {
			fill = SharpColor
		}
		sc.Markers = append(sc.Markers, Dot{
			Center: m.Center,
			Radius: b.cfg.MarkerRadius,
			Fill:   fill,
			Label: Label{
				Text:   m.Note,
				At:     m.Center,
				Size:   b.cfg.NoteTextSize,
				Anchor: AnchorCenter,
				Color:  NoteTextColor,
			},
		})
	}
	return sc
}

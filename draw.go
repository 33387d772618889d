package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/minikomi/fretboye/internal/fretboard"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	size int
	bold bool
}

// painter rasterizes a fretboard.Scene onto an SDL renderer.
type painter struct {
	renderer *sdl.Renderer
	fontPath string
	fonts    map[fontKey]*ttf.Font
}

func newPainter(renderer *sdl.Renderer, fontPath string) *painter {
	return &painter{
		renderer: renderer,
		fontPath: fontPath,
		fonts:    map[fontKey]*ttf.Font{},
	}
}

func (p *painter) Close() {
	for k, f := range p.fonts {
		f.Close()
		delete(p.fonts, k)
	}
}

func (p *painter) font(size int, bold bool) (*ttf.Font, error) {
	k := fontKey{size, bold}
	if f, ok := p.fonts[k]; ok {
		return f, nil
	}
	f, err := ttf.OpenFont(p.fontPath, size)
	if err != nil {
		return nil, fmt.Errorf("error opening font %s: %w", p.fontPath, err)
	}
	if bold {
		f.SetStyle(ttf.STYLE_BOLD)
	}
	p.fonts[k] = f
	return f, nil
}

func sdlColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func px(v float64) int32 {
	return int32(math.Round(v))
}

func (p *painter) Draw(sc fretboard.Scene) error {
	r := p.renderer
	r.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	bg := sc.Background
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.Clear()

	bar := sc.Bar
	r.SetDrawColor(bar.Fill.R, bar.Fill.G, bar.Fill.B, bar.Fill.A)
	rect := sdl.Rect{X: px(bar.X), Y: px(bar.Y), W: px(bar.W), H: px(bar.H)}
	r.FillRect(&rect)

	for _, l := range sc.Strings {
		p.drawLine(l)
	}
	for _, l := range sc.Frets {
		p.drawLine(l)
	}
	for _, lb := range sc.FretNumbers {
		if err := p.drawLabel(lb); err != nil {
			return err
		}
	}
	for _, d := range sc.Markers {
		x, y, rad := px(d.Center.X), px(d.Center.Y), px(d.Radius)
		gfx.FilledCircleColor(r, x, y, rad, sdlColor(d.Fill))
		gfx.AACircleColor(r, x, y, rad, sdlColor(d.Fill))
		if err := p.drawLabel(d.Label); err != nil {
			return err
		}
	}

	r.Present()
	return nil
}

func (p *painter) drawLine(l fretboard.Line) {
	w := px(l.Width)
	if w < 1 {
		w = 1
	}
	gfx.ThickLineColor(p.renderer, px(l.From.X), px(l.From.Y), px(l.To.X), px(l.To.Y), w, sdlColor(l.Color))
}

func (p *painter) drawLabel(l fretboard.Label) error {
	font, err := p.font(l.Size, l.Bold)
	if err != nil {
		return err
	}
	solid, err := font.RenderUTF8Blended(l.Text, sdlColor(l.Color))
	if err != nil {
		return fmt.Errorf("error rendering %q: %w", l.Text, err)
	}
	defer solid.Free()

	texture, err := p.renderer.CreateTextureFromSurface(solid)
	if err != nil {
		return fmt.Errorf("error creating texture for %q: %w", l.Text, err)
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: px(l.At.X) - solid.W/2, Y: px(l.At.Y), W: solid.W, H: solid.H}
	if l.Anchor == fretboard.AnchorCenter {
		rect.Y -= solid.H / 2
	}
	return p.renderer.Copy(texture, nil, &rect)
}

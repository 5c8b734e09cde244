package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// overlay is the small set of 2D primitives the overhead map needs.
// Coordinates are screen pixels.
type overlay interface {
	line(x0, y0, x1, y1 float64, c color.RGBA)
	fillCircle(cx, cy, r float64, c color.RGBA)
	strokeCircle(cx, cy, r float64, c color.RGBA)
	fillRect(x, y, w, h float64, c color.RGBA)
}

// textOverlay prints debug text at a pixel position.
type textOverlay interface {
	text(s string, x, y int)
}

// ebitenOverlay draws onto an ebiten image with the vector package.
type ebitenOverlay struct {
	dst *ebiten.Image
}

func (o ebitenOverlay) line(x0, y0, x1, y1 float64, c color.RGBA) {
	vector.StrokeLine(o.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
}

func (o ebitenOverlay) fillCircle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(o.dst, float32(cx), float32(cy), float32(r), c, false)
}

func (o ebitenOverlay) strokeCircle(cx, cy, r float64, c color.RGBA) {
	vector.StrokeCircle(o.dst, float32(cx), float32(cy), float32(r), 1, c, false)
}

func (o ebitenOverlay) fillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(o.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (o ebitenOverlay) text(s string, x, y int) {
	ebitenutil.DebugPrintAt(o.dst, s, x, y)
}

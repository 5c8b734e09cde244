package main

import (
	"image"
	"image/color"
)

// framebuffer is an RGBA software canvas.
type framebuffer struct {
	img  *image.RGBA
	w, h int
}

func newFramebuffer(w, h int) *framebuffer {
	return &framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
}

// pixels exposes the raw RGBA bytes, row-major with no padding.
func (f *framebuffer) pixels() []byte { return f.img.Pix }

func (f *framebuffer) set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	i := y*f.img.Stride + x*4
	p := f.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func (f *framebuffer) at(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// vline draws rows y1..y2 of column x. A span with y2 < y1 draws nothing;
// otherwise both bounds are clamped to the screen. A single row gets the
// fill colour, longer spans get top and bottom caps around the fill.
func (f *framebuffer) vline(x, y1, y2 int, sh shade) {
	if y2 < y1 || x < 0 || x >= f.w {
		return
	}
	y1 = clampInt(y1, 0, f.h-1)
	y2 = clampInt(y2, 0, f.h-1)
	if y1 == y2 {
		f.set(x, y1, sh.fill)
		return
	}
	f.set(x, y1, sh.top)
	for y := y1 + 1; y < y2; y++ {
		f.set(x, y, sh.fill)
	}
	f.set(x, y2, sh.bottom)
}

func (f *framebuffer) clear(c color.RGBA) {
	pix := f.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// line plots a segment with Bresenham's integer algorithm.
func (f *framebuffer) line(fx0, fy0, fx1, fy1 float64, c color.RGBA) {
	x0, y0, x1, y1 := toScreen(fx0), toScreen(fy0), toScreen(fx1), toScreen(fy1)
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		f.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeCircle draws a circle outline with the midpoint algorithm.
func (f *framebuffer) strokeCircle(fcx, fcy, fr float64, c color.RGBA) {
	cx, cy, r := toScreen(fcx), toScreen(fcy), toScreen(fr)
	if r <= 0 {
		f.set(cx, cy, c)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		f.set(cx+x, cy+y, c)
		f.set(cx+y, cy+x, c)
		f.set(cx-y, cy+x, c)
		f.set(cx-x, cy+y, c)
		f.set(cx-x, cy-y, c)
		f.set(cx-y, cy-x, c)
		f.set(cx+y, cy-x, c)
		f.set(cx+x, cy-y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (f *framebuffer) fillCircle(fcx, fcy, fr float64, c color.RGBA) {
	cx, cy, r := toScreen(fcx), toScreen(fcy), toScreen(fr)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				f.set(cx+x, cy+y, c)
			}
		}
	}
}

func (f *framebuffer) fillRect(fx, fy, fw, fh float64, c color.RGBA) {
	x0, y0 := max(toScreen(fx), 0), max(toScreen(fy), 0)
	x1, y1 := min(toScreen(fx+fw), f.w), min(toScreen(fy+fh), f.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.set(x, y, c)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

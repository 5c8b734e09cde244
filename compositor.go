package main

import "image/color"

// spanKind tags what a span represents on screen.
type spanKind uint8

const (
	spanCeiling spanKind = iota
	spanFloor
	spanWall
	spanUpper
	spanLower
	spanFiller
)

func (k spanKind) String() string {
	switch k {
	case spanCeiling:
		return "ceiling"
	case spanFloor:
		return "floor"
	case spanWall:
		return "wall"
	case spanUpper:
		return "upper"
	case spanLower:
		return "lower"
	case spanFiller:
		return "filler"
	}
	return "unknown"
}

// span is one vertical draw command in screen column x covering rows
// y1..y2 inclusive.
type span struct {
	x, y1, y2 int
	shade     shade
	kind      spanKind
}

// spanSink receives the walker's ordered output. beginSector is called
// each time a queued sector is picked up, before its spans.
type spanSink interface {
	beginSector(item walkItem)
	emit(s span)
}

// canvas is the pixel output the compositor draws into.
type canvas interface {
	vline(x, y1, y2 int, sh shade)
	clear(c color.RGBA)
}

// canvasSink draws spans straight onto a canvas as they are produced.
type canvasSink struct {
	c canvas
}

func (s canvasSink) beginSector(walkItem) {}

func (s canvasSink) emit(sp span) { s.c.vline(sp.x, sp.y1, sp.y2, sp.shade) }

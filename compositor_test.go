package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testShade = shade{top: colRed, fill: colGreen, bottom: colBlue}

func column(fb *framebuffer, x int) []color.RGBA {
	out := make([]color.RGBA, fb.h)
	for y := range out {
		out[y] = fb.at(x, y)
	}
	return out
}

func TestVlineInvertedSpanIsNoOp(t *testing.T) {
	fb := newFramebuffer(4, 10)
	fb.clear(colBlack)
	before := append([]byte(nil), fb.pixels()...)

	fb.vline(1, 5, 3, testShade)
	fb.vline(1, 0, -1, testShade)
	fb.vline(1, 20, 12, testShade)
	assert.Equal(t, before, fb.pixels())
}

func TestVlineSingleRowUsesFill(t *testing.T) {
	fb := newFramebuffer(4, 10)
	fb.clear(colBlack)
	fb.vline(1, 4, 4, testShade)
	assert.Equal(t, colGreen, fb.at(1, 4))
	assert.Equal(t, colBlack, fb.at(1, 3))
	assert.Equal(t, colBlack, fb.at(1, 5))
}

func TestVlineCapsAndFill(t *testing.T) {
	fb := newFramebuffer(4, 10)
	fb.clear(colBlack)
	fb.vline(2, 2, 6, testShade)
	want := []color.RGBA{colBlack, colBlack, colRed, colGreen, colGreen, colGreen, colBlue, colBlack, colBlack, colBlack}
	assert.Equal(t, want, column(fb, 2))

	fb.vline(3, 0, 1, testShade)
	assert.Equal(t, colRed, fb.at(3, 0))
	assert.Equal(t, colBlue, fb.at(3, 1))
}

func TestVlineClampsToScreen(t *testing.T) {
	fb := newFramebuffer(4, 10)
	fb.clear(colBlack)
	fb.vline(0, -5, 20, testShade)
	col := column(fb, 0)
	assert.Equal(t, colRed, col[0])
	assert.Equal(t, colBlue, col[9])
	for _, c := range col[1:9] {
		assert.Equal(t, colGreen, c)
	}

	// Both ends below the screen collapse onto the last row.
	fb.vline(1, 12, 15, testShade)
	assert.Equal(t, colGreen, fb.at(1, 9))

	// Columns outside the screen are ignored.
	before := append([]byte(nil), fb.pixels()...)
	fb.vline(-1, 0, 9, testShade)
	fb.vline(4, 0, 9, testShade)
	assert.Equal(t, before, fb.pixels())
}

func TestCanvasSinkDrawsSpans(t *testing.T) {
	fb := newFramebuffer(2, 4)
	fb.clear(colBlack)
	var sink spanSink = canvasSink{fb}
	sink.beginSector(walkItem{})
	sink.emit(span{x: 1, y1: 1, y2: 1, shade: testShade, kind: spanWall})
	assert.Equal(t, colGreen, fb.at(1, 1))
}

func TestSpanKindString(t *testing.T) {
	assert.Equal(t, "ceiling", spanCeiling.String())
	assert.Equal(t, "filler", spanFiller.String())
	assert.Equal(t, "unknown", spanKind(99).String())
}

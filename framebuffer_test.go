package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFramebufferLine(t *testing.T) {
	fb := newFramebuffer(8, 8)
	fb.clear(colBlack)
	fb.line(0, 0, 7, 7, colRed)
	for i := 0; i < 8; i++ {
		assert.Equal(t, colRed, fb.at(i, i))
	}
	assert.Equal(t, colBlack, fb.at(7, 0))

	// Off-screen parts are dropped.
	fb.line(-4, 3, 20, 3, colCyan)
	for x := 0; x < 8; x++ {
		assert.Equal(t, colCyan, fb.at(x, 3))
	}
}

func TestFramebufferCircles(t *testing.T) {
	fb := newFramebuffer(16, 16)
	fb.clear(colBlack)
	fb.strokeCircle(8, 8, 3, colYellow)
	assert.Equal(t, colYellow, fb.at(11, 8))
	assert.Equal(t, colYellow, fb.at(8, 5))
	assert.Equal(t, colBlack, fb.at(8, 8))

	fb.fillCircle(8, 8, 2, colMagenta)
	assert.Equal(t, colMagenta, fb.at(8, 8))
	assert.Equal(t, colMagenta, fb.at(10, 8))
	assert.Equal(t, colBlack, fb.at(11, 11))
}

func TestFramebufferFillRectClips(t *testing.T) {
	fb := newFramebuffer(4, 4)
	fb.clear(colBlack)
	fb.fillRect(-2, 2, 10, 10, colGreen)
	assert.Equal(t, colBlack, fb.at(0, 1))
	assert.Equal(t, colGreen, fb.at(0, 2))
	assert.Equal(t, colGreen, fb.at(3, 3))
}

func TestFramebufferClear(t *testing.T) {
	fb := newFramebuffer(3, 2)
	fb.clear(colBlue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, colBlue, fb.at(x, y))
		}
	}
	assert.Len(t, fb.pixels(), 3*2*4)
}

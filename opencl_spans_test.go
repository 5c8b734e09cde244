//go:build opencl

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketKeepsColumnOrder(t *testing.T) {
	r := &openCLSpanRasterizer{
		width:   3,
		offsets: make([]int32, 4),
		cursor:  make([]int32, 3),
	}
	spans := []span{
		{x: 2, y1: 1, y2: 4, shade: shadeWall},
		{x: 0, y1: 0, y2: 0, shade: shadeFloor},
		{x: 2, y1: 5, y2: 6, shade: shadeFiller},
		{x: 7, y1: 0, y2: 1, shade: shadeWall},
	}
	kept := r.bucket(spans)
	assert.Equal(t, 3, kept)
	assert.Equal(t, []int32{0, 1, 1, 3}, r.offsets)
	assert.Equal(t, int32(0), r.words[0])
	assert.Equal(t, int32(1), r.words[spanWords])
	assert.Equal(t, int32(5), r.words[2*spanWords])
	assert.Equal(t, packRGBA(colDarkRed), r.words[2*spanWords+3])
}

func TestPackRGBA(t *testing.T) {
	// 0xff0000ff: alpha in the high byte, red in the low byte.
	assert.Equal(t, int32(-16776961), packRGBA(colRed))
}

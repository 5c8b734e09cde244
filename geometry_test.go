package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSide(t *testing.T) {
	start, end := vec2{0, 0}, vec2{10, 0}
	assert.Greater(t, pointSide(vec2{5, 5}, start, end), 0.0)
	assert.Less(t, pointSide(vec2{5, -5}, start, end), 0.0)
	assert.Equal(t, 0.0, pointSide(vec2{3, 0}, start, end))
}

func TestOverlapAcceptsEitherOrder(t *testing.T) {
	assert.True(t, overlap(5, 0, 4, 6))
	assert.True(t, overlap(0, 1, 1, 2))
	assert.False(t, overlap(0, 1, 2, 3))
	assert.False(t, overlap(3, 2, 1, 0))
}

func TestCrossesEdge(t *testing.T) {
	start, end := vec2{0, 0}, vec2{10, 0}
	tests := []struct {
		name string
		p, d vec2
		want bool
	}{
		{"leaves through edge", vec2{5, 1}, vec2{0, -2}, true},
		{"stops on edge line", vec2{5, 1}, vec2{0, -1}, false},
		{"moves inward", vec2{5, 1}, vec2{0, 0.5}, false},
		{"outside edge box", vec2{15, 1}, vec2{0, -2}, false},
		{"no motion", vec2{5, 1}, vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, crossesEdge(tt.p, tt.d, start, end))
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	p := segmentIntersection(segment{vec2{0, 0}, vec2{2, 2}}, segment{vec2{0, 2}, vec2{2, 0}})
	assert.InDelta(t, 1.0, p.x, 1e-12)
	assert.InDelta(t, 1.0, p.y, 1e-12)

	parallel := segmentIntersection(segment{vec2{0, 0}, vec2{1, 0}}, segment{vec2{0, 1}, vec2{1, 1}})
	assert.False(t, finite(parallel.x) && finite(parallel.y))
}

func TestProjectOnto(t *testing.T) {
	assert.Equal(t, vec2{1, 0}, projectOnto(vec2{1, 1}, vec2{1, 0}))
	assert.Equal(t, vec2{0, -3}, projectOnto(vec2{2, -3}, vec2{0, 5}))
	assert.Equal(t, vec2{}, projectOnto(vec2{1, 1}, vec2{}))
}

func TestToScreenClampsAndTruncates(t *testing.T) {
	assert.Equal(t, screenLimit, toScreen(1e30))
	assert.Equal(t, -screenLimit, toScreen(math.Inf(-1)))
	assert.Equal(t, -2, toScreen(-2.7))
	assert.Equal(t, 2, toScreen(2.7))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-4, 0, 9))
	assert.Equal(t, 9, clampInt(12, 0, 9))
	assert.Equal(t, 5, clampInt(5, 0, 9))
}

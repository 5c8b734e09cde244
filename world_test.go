package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldValidation(t *testing.T) {
	square := box(0, 0, 10, 10, 0, 20)
	tests := []struct {
		name    string
		sectors []Sector
		player  int
		want    error
	}{
		{"no sectors", nil, 0, ErrNoSectors},
		{"two vertices", []Sector{{vertices: []vec2{{0, 0}, {1, 0}}, neighbors: []neighbor{wall(), wall()}}}, 0, ErrTooFewVertices},
		{"neighbor count", []Sector{{vertices: square.vertices, neighbors: []neighbor{wall()}}}, 0, ErrNeighborCount},
		{"unknown portal target", []Sector{box(0, 0, 10, 10, 0, 20, wall(), portalTo(3), wall(), wall())}, 0, ErrSectorIndex},
		{"player sector", []Sector{square}, 1, ErrPlayerSector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newWorld(tt.sectors, Player{sector: tt.player})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSectorEdgeIndexing(t *testing.T) {
	s := box(0, 0, 10, 10, 0, 20, portalTo(1), wall(), wall(), wall())
	start, end, nb := s.edge(0)
	assert.Equal(t, vec2{0, 10}, start)
	assert.Equal(t, vec2{0, 0}, end)
	assert.Equal(t, portalTo(1), nb)

	start, end, nb = s.edge(2)
	assert.Equal(t, vec2{10, 0}, start)
	assert.Equal(t, vec2{10, 10}, end)
	assert.Equal(t, wall(), nb)
}

func TestNeighbor(t *testing.T) {
	_, ok := wall().target()
	assert.False(t, ok)
	n, ok := portalTo(0).target()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "wall", wall().String())
	assert.Equal(t, "portal(2)", portalTo(2).String())
}

func TestSetAngleNormalizes(t *testing.T) {
	var p Player
	p.setAngle(-math.Pi / 2)
	assert.InDelta(t, 3*math.Pi/2, p.angle, 1e-12)
	assert.InDelta(t, -1.0, p.sin, 1e-12)

	p.setAngle(2 * math.Pi)
	assert.Equal(t, 0.0, p.angle)
	assert.Equal(t, 1.0, p.cos)

	p.setAngle(5 * math.Pi)
	assert.InDelta(t, math.Pi, p.angle, 1e-9)
	assert.GreaterOrEqual(t, p.angle, 0.0)
	assert.Less(t, p.angle, 2*math.Pi)
}

func TestUnload(t *testing.T) {
	w := testWorld(t, []Sector{box(0, 0, 10, 10, 0, 20)}, 5, 5, 0, 0)
	require.NotNil(t, w.currentSector())
	w.Unload()
	assert.Nil(t, w.currentSector())

	// A walk over an unloaded world draws nothing.
	rec := &spanRecorder{}
	stats := newPortalWalker(32, 24, 10, 5).walk(w, rec)
	assert.Empty(t, rec.spans)
	assert.Empty(t, stats.items)
}

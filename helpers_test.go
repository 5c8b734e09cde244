package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// box returns the clockwise rectangle (x0,y0)-(x1,y1) with the given edge
// neighbors, indexed like Sector.neighbors.
func box(x0, y0, x1, y1, floor, ceil float64, nbs ...neighbor) Sector {
	if len(nbs) == 0 {
		nbs = []neighbor{wall(), wall(), wall(), wall()}
	}
	return Sector{
		floor:     floor,
		ceil:      ceil,
		vertices:  []vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}},
		neighbors: nbs,
	}
}

// testWorld builds a validated world with the player standing at (x, y)
// in sector, eye height applied.
func testWorld(t *testing.T, sectors []Sector, x, y, angle float64, sector int) *World {
	t.Helper()
	w, err := newWorld(sectors, Player{pos: vec3{x: x, y: y}, angle: angle, sector: sector})
	require.NoError(t, err)
	newKinematics(defaultConfig(), nil).movePlayer(w, 0, 0)
	return w
}

// twoRooms is two 10x10 rooms side by side joined by the portal at x=10.
func twoRooms(floorB, ceilB float64) []Sector {
	return []Sector{
		box(0, 0, 10, 10, 0, 20, wall(), wall(), portalTo(1), wall()),
		box(10, 0, 20, 10, floorB, ceilB, portalTo(0), wall(), wall(), wall()),
	}
}

// spanRecorder keeps every span of a walk and the item it belonged to.
type spanRecorder struct {
	items []walkItem
	spans []span
	owner []walkItem
}

func (r *spanRecorder) beginSector(item walkItem) { r.items = append(r.items, item) }

func (r *spanRecorder) emit(s span) {
	r.spans = append(r.spans, s)
	r.owner = append(r.owner, r.items[len(r.items)-1])
}

func (r *spanRecorder) ofKind(k spanKind) []span {
	var out []span
	for _, s := range r.spans {
		if s.kind == k {
			out = append(out, s)
		}
	}
	return out
}

package main

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

var (
	ErrNoSectors      = errors.New("map has no sectors")
	ErrTooFewVertices = errors.New("sector has fewer than 3 vertices")
	ErrNeighborCount  = errors.New("sector neighbor count differs from vertex count")
	ErrSectorIndex    = errors.New("neighbor references unknown sector")
	ErrPlayerSector   = errors.New("player sector out of range")
)

// neighbor describes what lies behind one sector edge: either a solid wall
// (the zero value) or a portal into another sector.
type neighbor struct {
	sector int
	portal bool
}

func wall() neighbor { return neighbor{} }

func portalTo(sector int) neighbor { return neighbor{sector: sector, portal: true} }

// target returns the sector behind a portal edge.
func (n neighbor) target() (int, bool) {
	return n.sector, n.portal
}

func (n neighbor) String() string {
	if !n.portal {
		return "wall"
	}
	return fmt.Sprintf("portal(%d)", n.sector)
}

// Sector is a convex polygon extruded between floor and ceil. Vertices are
// wound clockwise in screen coordinates; neighbors[i] describes the edge
// that ends at vertices[i], so neighbors[0] closes the polygon from the
// last vertex back to the first.
type Sector struct {
	floor, ceil float64
	vertices    []vec2
	neighbors   []neighbor
}

// edge returns the i-th edge of s, its endpoints and what lies behind it.
func (s *Sector) edge(i int) (start, end vec2, n neighbor) {
	prev := i - 1
	if prev < 0 {
		prev = len(s.vertices) - 1
	}
	return s.vertices[prev], s.vertices[i], s.neighbors[i]
}

// vec3 is a position or velocity with a vertical component.
type vec3 struct {
	x, y, z float64
}

// Player holds the viewer pose. sin and cos cache the facing angle.
type Player struct {
	pos      vec3
	velocity vec3
	angle    float64
	sin, cos float64
	sector   int
}

// setAngle normalizes a into [0, 2π) and refreshes the cached sine/cosine.
func (p *Player) setAngle(a float64) {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	p.angle = a
	p.sin, p.cos = math.Sincos(a)
}

// World is the map model together with the viewer. Only the per-frame
// update mutates it; the walker and compositor read it.
type World struct {
	sectors []Sector
	player  Player
}

// newWorld validates the sectors and player and returns a world ready for
// rendering.
func newWorld(sectors []Sector, player Player) (*World, error) {
	w := &World{sectors: sectors, player: player}
	if err := w.validate(); err != nil {
		return nil, err
	}
	w.player.setAngle(w.player.angle)
	return w, nil
}

func (w *World) validate() error {
	if len(w.sectors) == 0 {
		return ErrNoSectors
	}
	for i := range w.sectors {
		s := &w.sectors[i]
		if len(s.vertices) < 3 {
			return fmt.Errorf("sector %d: %w", i, ErrTooFewVertices)
		}
		if len(s.vertices) != len(s.neighbors) {
			return fmt.Errorf("sector %d has %d vertices and %d neighbors: %w",
				i, len(s.vertices), len(s.neighbors), ErrNeighborCount)
		}
		for e, n := range s.neighbors {
			if t, ok := n.target(); ok && (t < 0 || t >= len(w.sectors)) {
				return fmt.Errorf("sector %d edge %d -> %d: %w", i, e, t, ErrSectorIndex)
			}
		}
	}
	if w.player.sector < 0 || w.player.sector >= len(w.sectors) {
		return fmt.Errorf("player sector %d of %d: %w", w.player.sector, len(w.sectors), ErrPlayerSector)
	}
	return nil
}

// currentSector returns the sector the player occupies, or nil once the
// world has been unloaded.
func (w *World) currentSector() *Sector {
	if w.player.sector < 0 || w.player.sector >= len(w.sectors) {
		return nil
	}
	return &w.sectors[w.player.sector]
}

// Unload discards the map model.
func (w *World) Unload() {
	w.sectors = nil
}

// portalCount returns the number of portal edges over all sectors.
func (w *World) portalCount() int {
	n := 0
	for i := range w.sectors {
		for _, nb := range w.sectors[i].neighbors {
			if nb.portal {
				n++
			}
		}
	}
	return n
}

// dump logs every sector edge and the player pose at debug level.
func (w *World) dump(log *zap.Logger) {
	for i := range w.sectors {
		s := &w.sectors[i]
		log.Debug("sector", zap.Int("index", i), zap.Float64("floor", s.floor), zap.Float64("ceil", s.ceil))
		for v, p := range s.vertices {
			log.Debug("  vertex",
				zap.Int("index", v),
				zap.Float64("x", p.x),
				zap.Float64("y", p.y),
				zap.Stringer("edge", s.neighbors[v]))
		}
	}
	log.Debug("player",
		zap.Float64("x", w.player.pos.x),
		zap.Float64("y", w.player.pos.y),
		zap.Float64("angle", w.player.angle),
		zap.Int("sector", w.player.sector))
}

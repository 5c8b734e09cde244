package main

import (
	"go.uber.org/zap"
)

// kinematics moves the player through the sector graph. It is the only
// writer of the player's pose.
type kinematics struct {
	eyeHeight  float64
	headMargin float64
	kneeHeight float64
	moveSpeed  float64
	turnSpeed  float64

	// moving is set while the player pushes and cleared by a wall slide.
	moving bool
	log    *zap.Logger
}

func newKinematics(cfg Config, log *zap.Logger) *kinematics {
	if log == nil {
		log = zap.NewNop()
	}
	return &kinematics{
		eyeHeight:  cfg.EyeHeight,
		headMargin: cfg.HeadMargin,
		kneeHeight: cfg.KneeHeight,
		moveSpeed:  cfg.MoveSpeed,
		turnSpeed:  cfg.TurnSpeed,
		log:        log,
	}
}

// movePlayer translates the player by (dx, dy). If the move leaves the
// current sector through a portal edge, the player's sector becomes the one
// behind it; the first such edge wins. The eye is then placed eyeHeight
// above the floor and the facing angle renormalized.
func (k *kinematics) movePlayer(w *World, dx, dy float64) {
	pl := &w.player
	sect := w.currentSector()
	if sect == nil {
		return
	}
	p, d := vec2{pl.pos.x, pl.pos.y}, vec2{dx, dy}
	n := len(sect.vertices)
	for e := 0; e < n; e++ {
		start, end, nb := sect.edge((e + 1) % n)
		next, ok := nb.target()
		if !ok || !crossesEdge(p, d, start, end) {
			continue
		}
		k.log.Debug("sector transition", zap.Int("from", pl.sector), zap.Int("to", next))
		pl.sector = next
		break
	}
	pl.pos.x += dx
	pl.pos.y += dy
	pl.pos.z = w.sectors[pl.sector].floor + k.eyeHeight
	pl.setAngle(pl.angle)
}

// collide checks the player's velocity against the current sector's edges.
// A move that exits through a wall, or through a portal whose opening is
// too low for the head or whose floor is above knee height, is turned into
// a slide along that edge. The slid move is checked again until no edge
// blocks it, so a push into a corner stops at both walls. It returns the
// displacement to apply and whether an edge blocked the move.
func (k *kinematics) collide(w *World) (vec2, bool) {
	pl := &w.player
	d := vec2{pl.velocity.x, pl.velocity.y}
	sect := w.currentSector()
	if sect == nil {
		return d, false
	}
	p := vec2{pl.pos.x, pl.pos.y}
	n := len(sect.vertices)
	blocked := false
	for pass := 0; ; pass++ {
		start, end, nb, hit := k.blockingEdge(w, sect, p, d)
		if !hit {
			break
		}
		blocked = true
		if pass == n {
			// Sliding along every edge in turn still leaves the sector.
			d = vec2{}
			break
		}
		d = projectOnto(d, end.sub(start))
		k.log.Debug("wall slide",
			zap.Int("sector", pl.sector),
			zap.Stringer("edge", nb),
			zap.Float64("dx", d.x),
			zap.Float64("dy", d.y))
	}
	if blocked {
		pl.velocity.x, pl.velocity.y = d.x, d.y
	}
	return d, blocked
}

// blockingEdge returns the first edge of sect, in walk order, that stops
// the move d from p.
func (k *kinematics) blockingEdge(w *World, sect *Sector, p, d vec2) (start, end vec2, nb neighbor, hit bool) {
	n := len(sect.vertices)
	for e := 0; e < n; e++ {
		start, end, nb = sect.edge((e + 1) % n)
		if crossesEdge(p, d, start, end) && !k.passable(w, sect, nb) {
			return start, end, nb, true
		}
	}
	return vec2{}, vec2{}, neighbor{}, false
}

// passable reports whether the player fits through the opening behind nb.
// Walls never fit.
func (k *kinematics) passable(w *World, sect *Sector, nb neighbor) bool {
	next, ok := nb.target()
	if !ok {
		return false
	}
	ns := &w.sectors[next]
	holeLow := max(sect.floor, ns.floor)
	holeHigh := min(sect.ceil, ns.ceil)
	z := w.player.pos.z
	if holeHigh < z+k.headMargin {
		return false
	}
	return holeLow <= z-k.eyeHeight+k.kneeHeight
}

// step advances the player by one tick of dt seconds under the given
// controls and reports whether a wall blocked the move.
func (k *kinematics) step(w *World, in controls, dt float64) bool {
	pl := &w.player
	blocked := false
	if k.moving && (pl.velocity.x != 0 || pl.velocity.y != 0) {
		d, hit := k.collide(w)
		if hit {
			k.moving = false
			blocked = true
		}
		k.movePlayer(w, d.x, d.y)
	}

	speedup := speedNormal
	switch {
	case in.fast:
		speedup = speedFast
	case in.slow:
		speedup = speedSlow
	}
	if in.turnLeft {
		pl.angle -= speedup * k.turnSpeed * dt
	}
	if in.turnRight {
		pl.angle += speedup * k.turnSpeed * dt
	}
	k.movePlayer(w, 0, 0)

	pushing := in.pushing()
	var mv vec2
	step := k.moveSpeed * speedup * dt
	if in.forward {
		mv = mv.add(vec2{pl.cos * step, pl.sin * step})
	}
	if in.back {
		mv = mv.sub(vec2{pl.cos * step, pl.sin * step})
	}
	if in.strafeLeft {
		mv = mv.add(vec2{pl.sin * step, -pl.cos * step})
	}
	if in.strafeRight {
		mv = mv.sub(vec2{pl.sin * step, -pl.cos * step})
	}

	acc := coastAcceleration
	if pushing {
		acc = pushAcceleration
	}
	pl.velocity.x = pl.velocity.x*(1-acc) + mv.x*acc
	pl.velocity.y = pl.velocity.y*(1-acc) + mv.y*acc
	if pushing {
		k.moving = true
	}
	return blocked
}

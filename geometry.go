package main

import "math"

// vec2 is a point or direction on the map plane.
type vec2 struct {
	x, y float64
}

func (v vec2) add(o vec2) vec2 { return vec2{v.x + o.x, v.y + o.y} }

func (v vec2) sub(o vec2) vec2 { return vec2{v.x - o.x, v.y - o.y} }

func (v vec2) dot(o vec2) float64 { return v.x*o.x + v.y*o.y }

// segment is a directed line segment between two map points.
type segment struct {
	a, b vec2
}

// cross returns the 2D cross product ax*by - bx*ay.
func cross(ax, ay, bx, by float64) float64 {
	return ax*by - bx*ay
}

// overlap reports whether the closed ranges [a0,a1] and [b0,b1] intersect.
// The bounds of each range may be given in either order.
func overlap(a0, a1, b0, b1 float64) bool {
	return math.Min(a0, a1) <= math.Max(b0, b1) && math.Min(b0, b1) <= math.Max(a0, a1)
}

// boxesIntersect reports whether the bounding boxes of two segments intersect.
func boxesIntersect(s1, s2 segment) bool {
	return overlap(s1.a.x, s1.b.x, s2.a.x, s2.b.x) && overlap(s1.a.y, s1.b.y, s2.a.y, s2.b.y)
}

// pointSide tells on which side of the directed edge start->end p lies.
// With clockwise sector winding a negative result means outside.
func pointSide(p, start, end vec2) float64 {
	return cross(end.x-start.x, end.y-start.y, p.x-start.x, p.y-start.y)
}

// segmentIntersection returns the intersection of the infinite lines through
// s1 and s2. Parallel lines divide by zero; callers must rule that out or
// check the result with finite.
func segmentIntersection(s1, s2 segment) vec2 {
	c1 := cross(s1.a.x, s1.a.y, s1.b.x, s1.b.y)
	c2 := cross(s2.a.x, s2.a.y, s2.b.x, s2.b.y)
	dx1, dy1 := s1.a.x-s1.b.x, s1.a.y-s1.b.y
	dx2, dy2 := s2.a.x-s2.b.x, s2.a.y-s2.b.y
	den := cross(dx1, dy1, dx2, dy2)
	return vec2{
		x: cross(c1, dx1, c2, dx2) / den,
		y: cross(c1, dy1, c2, dy2) / den,
	}
}

// crossesEdge reports whether moving from p by d leaves the sector through
// the edge start->end: the move's box must touch the edge's box and the
// destination must lie strictly outside. A destination exactly on the edge
// line counts as inside.
func crossesEdge(p, d, start, end vec2) bool {
	dest := p.add(d)
	return boxesIntersect(segment{p, dest}, segment{start, end}) && pointSide(dest, start, end) < 0
}

// projectOnto returns the vector projection of d onto dir. A zero dir
// yields a zero vector.
func projectOnto(d, dir vec2) vec2 {
	den := dir.dot(dir)
	if den == 0 {
		return vec2{}
	}
	k := d.dot(dir) / den
	return vec2{dir.x * k, dir.y * k}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clampInt constrains v to lie within the inclusive [lo, hi] range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// screenLimit bounds projected coordinates before integer conversion so
// near-plane divisions cannot overflow int.
const screenLimit = 1 << 20

// toScreen truncates a projected coordinate toward zero after clamping it
// to ±screenLimit.
func toScreen(v float64) int {
	if v > screenLimit {
		return screenLimit
	}
	if v < -screenLimit {
		return -screenLimit
	}
	return int(v)
}

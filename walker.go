package main

// walkItem is one unit of portal work: draw sector within screen columns
// x1..x2 inclusive.
type walkItem struct {
	sector int
	x1, x2 int
}

// walkStats summarizes one walk. items aliases walker memory and is only
// valid until the next walk.
type walkStats struct {
	items     []walkItem
	spans     int
	truncated bool
}

// portalWalker traverses the sector graph breadth first from the player's
// sector, projecting every edge and emitting column spans. Its buffers
// are reused between frames.
type portalWalker struct {
	width, height int
	hfov, vfov    float64

	ytop, ybottom []int
	queue         []walkItem
	visited       []walkItem
}

func newPortalWalker(width, height int, hfov, vfov float64) *portalWalker {
	return &portalWalker{
		width:   width,
		height:  height,
		hfov:    hfov,
		vfov:    vfov,
		ytop:    make([]int, width),
		ybottom: make([]int, width),
	}
}

// camPoint is a map point in camera space: tx lateral, tz depth.
type camPoint struct {
	tx, tz float64
}

// toCamera translates p relative to the player and rotates it into the
// player's view.
func toCamera(p vec2, pl *Player) camPoint {
	vx, vy := p.x-pl.pos.x, p.y-pl.pos.y
	return camPoint{
		tx: vx*pl.sin - vy*pl.cos,
		tz: vx*pl.cos + vy*pl.sin,
	}
}

var (
	leftFrustum  = segment{vec2{-nearSide, nearZ}, vec2{-farSide, farZ}}
	rightFrustum = segment{vec2{nearSide, nearZ}, vec2{farSide, farZ}}
)

// clipToFrustum pulls endpoints that sit behind the near plane onto the
// approximate view frustum. ok is false when the clip degenerates.
func clipToFrustum(p1, p2 camPoint) (camPoint, camPoint, bool) {
	wallSeg := segment{vec2{p1.tx, p1.tz}, vec2{p2.tx, p2.tz}}
	i1 := segmentIntersection(wallSeg, leftFrustum)
	i2 := segmentIntersection(wallSeg, rightFrustum)
	pick := func() camPoint {
		if i1.y > 0 {
			return camPoint{i1.x, i1.y}
		}
		return camPoint{i2.x, i2.y}
	}
	if p1.tz < nearZ {
		p1 = pick()
	}
	if p2.tz < nearZ {
		p2 = pick()
	}
	ok := finite(p1.tx) && finite(p1.tz) && finite(p2.tx) && finite(p2.tz) && p1.tz > 0 && p2.tz > 0
	return p1, p2, ok
}

// screenX projects a camera point to a screen column.
func (pw *portalWalker) screenX(p camPoint) int {
	return pw.width/2 - toScreen(p.tx*pw.hfov/p.tz)
}

// screenY projects a height relative to the eye at depth tz to a screen row.
func (pw *portalWalker) screenY(height, tz float64) int {
	return pw.height/2 - toScreen(height*pw.vfov/tz)
}

func (pw *portalWalker) reset() {
	for x := range pw.ytop {
		pw.ytop[x] = 0
		pw.ybottom[x] = pw.height - 1
	}
	pw.queue = pw.queue[:0]
	pw.visited = pw.visited[:0]
}

// walk renders one frame of w into sink.
func (pw *portalWalker) walk(w *World, sink spanSink) walkStats {
	pw.reset()
	stats := walkStats{}
	if w.currentSector() == nil || pw.width <= 0 || pw.height <= 0 {
		return stats
	}
	budget := maxWalkItemsPerColumn * pw.width
	pw.queue = append(pw.queue, walkItem{sector: w.player.sector, x1: 0, x2: pw.width - 1})
	for head := 0; head < len(pw.queue); head++ {
		if head >= budget {
			stats.truncated = true
			break
		}
		item := pw.queue[head]
		pw.visited = append(pw.visited, item)
		sink.beginSector(item)
		stats.spans += pw.drawSector(w, item, sink)
	}
	stats.items = pw.visited
	return stats
}

// drawSector emits the spans for every edge of item's sector and queues
// the sectors visible through its portals. It returns the span count.
func (pw *portalWalker) drawSector(w *World, item walkItem, sink spanSink) int {
	pl := &w.player
	sect := &w.sectors[item.sector]
	n := len(sect.vertices)
	emitted := 0
	emit := func(s span) {
		sink.emit(s)
		emitted++
	}
	for k := 0; k < n; k++ {
		start, end, nb := sect.edge((k + 1) % n)

		p1, p2 := toCamera(start, pl), toCamera(end, pl)
		if p1.tz <= 0 && p2.tz <= 0 {
			continue
		}
		if p1.tz <= 0 || p2.tz <= 0 {
			var ok bool
			if p1, p2, ok = clipToFrustum(p1, p2); !ok {
				continue
			}
		}

		x1, x2 := pw.screenX(p1), pw.screenX(p2)
		if x1 >= x2 || x2 < item.x1 || x1 > item.x2 {
			continue
		}

		yceil := sect.ceil - pl.pos.z
		yfloor := sect.floor - pl.pos.z
		y1a, y1b := pw.screenY(yceil, p1.tz), pw.screenY(yfloor, p1.tz)
		y2a, y2b := pw.screenY(yceil, p2.tz), pw.screenY(yfloor, p2.tz)

		next, isPortal := nb.target()
		var ny1a, ny1b, ny2a, ny2b int
		if isPortal {
			ns := &w.sectors[next]
			nyceil := ns.ceil - pl.pos.z
			nyfloor := ns.floor - pl.pos.z
			ny1a, ny1b = pw.screenY(nyceil, p1.tz), pw.screenY(nyfloor, p1.tz)
			ny2a, ny2b = pw.screenY(nyceil, p2.tz), pw.screenY(nyfloor, p2.tz)
		}

		beginX := max(x1, item.x1)
		endX := min(x2, item.x2)
		for x := beginX; x <= endX; x++ {
			top, bottom := pw.ytop[x], pw.ybottom[x]
			ya := lerpColumn(x, x1, x2, y1a, y2a)
			yb := lerpColumn(x, x1, x2, y1b, y2b)
			cya := clampInt(ya, top, bottom)
			cyb := clampInt(yb, top, bottom)

			emit(span{x: x, y1: top, y2: cya - 1, shade: shadeCeiling, kind: spanCeiling})
			emit(span{x: x, y1: cyb + 1, y2: bottom, shade: shadeFloor, kind: spanFloor})

			edgeColumn := x == x1 || x == x2
			if !isPortal {
				sh := shadeWall
				if edgeColumn {
					sh = shadeWallEdge
				}
				emit(span{x: x, y1: cya, y2: cyb, shade: sh, kind: spanWall})
				continue
			}

			cnya := clampInt(lerpColumn(x, x1, x2, ny1a, ny2a), top, bottom)
			cnyb := clampInt(lerpColumn(x, x1, x2, ny1b, ny2b), top, bottom)

			upper, lower := shadeWall, shadeLower
			if edgeColumn {
				upper, lower = shadeWallEdge, shadeLowerEdge
			}
			emit(span{x: x, y1: cya, y2: cnya - 1, shade: upper, kind: spanUpper})
			pw.ytop[x] = clampInt(max(cya, cnya), top, pw.height-1)

			emit(span{x: x, y1: cnyb + 1, y2: cyb, shade: lower, kind: spanLower})
			pw.ybottom[x] = clampInt(min(cyb, cnyb), 0, bottom)

			emit(span{x: x, y1: pw.ytop[x], y2: pw.ybottom[x], shade: shadeFiller, kind: spanFiller})
		}

		if isPortal && endX >= beginX {
			pw.queue = append(pw.queue, walkItem{sector: next, x1: beginX, x2: endX})
		}
	}
	return emitted
}

// lerpColumn interpolates the row at column x between (x1,y1) and (x2,y2)
// with integer arithmetic. x1 must differ from x2.
func lerpColumn(x, x1, x2, y1, y2 int) int {
	return (x-x1)*(y2-y1)/(x2-x1) + y1
}

package main

import "fmt"

// mapView places the overhead map on screen: map units are scaled by
// scale and offset by the origin.
type mapView struct {
	scale            float64
	originX, originY float64
}

func defaultMapView() mapView {
	return mapView{scale: mapScale, originX: mapOriginX, originY: mapOriginY}
}

func (v mapView) project(p vec2) (float64, float64) {
	return v.originX + v.scale*p.x, v.originY + v.scale*p.y
}

// drawMap2D draws every sector outline over a dark background, walls in
// cyan and portals in red, then the player and the corners of the sector
// the player is in.
func drawMap2D(o overlay, w *World, v mapView) {
	lo, hi := mapBounds(w)
	x0, y0 := v.project(lo)
	x1, y1 := v.project(hi)
	o.fillRect(x0-mapMargin, y0-mapMargin, x1-x0+2*mapMargin, y1-y0+2*mapMargin, colVeryDarkGrey)
	for i := range w.sectors {
		s := &w.sectors[i]
		for e := range s.vertices {
			start, end, nb := s.edge(e)
			c := colCyan
			if nb.portal {
				c = colRed
			}
			x0, y0 := v.project(start)
			x1, y1 := v.project(end)
			o.line(x0, y0, x1, y1, c)
		}
	}
	drawPlayer2D(o, w, v)
}

// mapBounds returns the corners of the box holding every vertex and the
// map origin.
func mapBounds(w *World) (lo, hi vec2) {
	for i := range w.sectors {
		for _, p := range w.sectors[i].vertices {
			lo.x, lo.y = min(lo.x, p.x), min(lo.y, p.y)
			hi.x, hi.y = max(hi.x, p.x), max(hi.y, p.y)
		}
	}
	return lo, hi
}

func drawPlayer2D(o overlay, w *World, v mapView) {
	pl := &w.player
	pos := vec2{pl.pos.x, pl.pos.y}
	px, py := v.project(pos)
	fx, fy := v.project(pos.add(vec2{pl.cos, pl.sin}))
	o.fillCircle(px, py, 4, colMagenta)
	o.line(px, py, fx, fy, colMagenta)
	if sect := w.currentSector(); sect != nil {
		for _, c := range sect.vertices {
			cx, cy := v.project(c)
			o.strokeCircle(cx, cy, 2, colYellow)
		}
	}
}

// playerStats formats the pose lines shown under the map.
func playerStats(w *World) []string {
	pl := &w.player
	return []string{
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", pl.pos.x, pl.pos.y, pl.pos.z),
		fmt.Sprintf("Angle   : %.3f", pl.angle),
		fmt.Sprintf("Sector  : %d", pl.sector),
	}
}

// drawPlayerStats prints the pose below the map.
func drawPlayerStats(o textOverlay, w *World, v mapView) {
	_, hi := mapBounds(w)
	_, bottom := v.project(hi)
	y := int(bottom) + mapMargin + 6
	for i, line := range playerStats(w) {
		o.text(line, int(v.originX), y+i*16)
	}
}

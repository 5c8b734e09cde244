package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw blits the software framebuffer and paints the optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.sess.rend.fb
	if b := screen.Bounds(); b.Dx() == fb.w && b.Dy() == fb.h {
		screen.WritePixels(fb.pixels())
	}

	if g.sess.showMap {
		o := ebitenOverlay{dst: screen}
		v := defaultMapView()
		drawMap2D(o, g.sess.world, v)
		drawPlayerStats(o, g.sess.world, v)
	}

	if g.sess.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	r := g.sess.rend
	mode := "full"
	if g.sess.slomo {
		mode = fmt.Sprintf("slomo x%d", r.replaySpeed)
		if r.paused {
			mode += " (paused)"
		}
	}
	dev := "cpu"
	if r.gpu != nil {
		dev = r.gpu.deviceName()
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nRender: %.2f ms (%s, %s)\nSectors: %d  Spans: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.lastRender.Seconds()*1000, mode, dev,
		len(r.stats.items), r.stats.spans)
}

package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game adapts a session to ebiten's game loop.
type Game struct {
	sess *session
	bump *bumpSound

	lastRender time.Duration
	log        *zap.Logger
}

// newGame builds the window front end. Audio failures are logged and the
// game runs silent.
func newGame(sess *session, enableAudio bool, log *zap.Logger) *Game {
	g := &Game{sess: sess, log: log}
	if enableAudio {
		if b, err := newBumpSound(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			g.bump = b
			sess.onBlock = b.play
		}
	}
	return g
}

// Update applies input, moves the player and renders the next frame into
// the framebuffer.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if !g.sess.update(readKeyboard(), dt) {
		return ebiten.Termination
	}
	start := time.Now()
	g.sess.render()
	g.lastRender = time.Since(start)
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.sess.cfg.Width, g.sess.cfg.Height
}

func (g *Game) close() {
	if g.bump != nil {
		g.bump.close()
	}
	g.sess.close()
}

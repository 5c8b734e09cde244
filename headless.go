package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// headlessRun describes a windowless rendering run.
type headlessRun struct {
	frames  int
	turn    float64
	pngPath string
}

// frameDigest hashes the framebuffer's pixels.
func frameDigest(fb *framebuffer) uint64 {
	return xxhash.Sum64(fb.pixels())
}

// runHeadless renders run.frames full frames, turning the player by
// run.turn radians after each, and returns the digest of the last frame.
func runHeadless(sess *session, run headlessRun, log *zap.Logger) (uint64, error) {
	if run.frames <= 0 {
		return 0, fmt.Errorf("headless run needs at least one frame, got %d", run.frames)
	}
	var digest uint64
	for i := 0; i < run.frames; i++ {
		sess.rend.renderFrame(sess.world)
		if sess.showMap {
			drawMap2D(sess.rend.fb, sess.world, defaultMapView())
		}
		digest = frameDigest(sess.rend.fb)
		log.Info("frame",
			zap.Int("index", i),
			zap.String("digest", fmt.Sprintf("%016x", digest)),
			zap.Int("sectors", len(sess.rend.stats.items)),
			zap.Int("spans", sess.rend.stats.spans))
		if run.turn != 0 {
			sess.world.player.angle += run.turn
			sess.kin.movePlayer(sess.world, 0, 0)
		}
	}
	if run.pngPath != "" {
		if err := writePNG(sess.rend.fb, run.pngPath); err != nil {
			return digest, err
		}
		log.Info("wrote frame", zap.String("path", run.pngPath))
	}
	return digest, nil
}

func writePNG(fb *framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, fb.img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

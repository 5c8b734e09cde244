package main

import (
	"go.uber.org/zap"
)

// session is the state shared by every front end: the world, the player
// physics, the renderer and the viewer toggles. Window, terminal and
// headless modes differ only in how they feed controls in and get pixels out.
type session struct {
	cfg   Config
	world *World
	kin   *kinematics
	rend  *renderer

	showMap bool
	slomo   bool
	debug   bool

	// onBlock is called when a wall stops the player.
	onBlock func()

	log *zap.Logger
}

func newSession(cfg Config, world *World, log *zap.Logger) *session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &session{
		cfg:   cfg,
		world: world,
		kin:   newKinematics(cfg, log),
		rend:  newRenderer(cfg, log),
		log:   log,
	}
	s.kin.movePlayer(world, 0, 0)
	return s
}

// update applies one tick of input. It returns false when the user asked
// to quit.
func (s *session) update(in controls, dt float64) bool {
	if in.quit {
		return false
	}
	if in.togglePause {
		s.rend.paused = !s.rend.paused
		s.log.Debug("pause toggled", zap.Bool("paused", s.rend.paused))
	}
	if in.toggleMap {
		s.showMap = !s.showMap
	}
	if in.replayFaster {
		s.rend.adjustReplaySpeed(1)
	}
	if in.replaySlower {
		s.rend.adjustReplaySpeed(-1)
	}

	before := s.world.player.sector
	if s.kin.step(s.world, in, dt) && s.onBlock != nil {
		s.onBlock()
	}
	if after := s.world.player.sector; after != before {
		s.log.Info("entered sector", zap.Int("sector", after), zap.Int("from", before))
	}
	return true
}

// render draws the 3D view into the renderer's framebuffer, either whole
// or one replay step at a time.
func (s *session) render() {
	if s.slomo {
		s.rend.replayTick(s.world)
	} else {
		s.rend.renderFrame(s.world)
	}
}

// resize rebuilds the renderer for a new screen size, keeping the replay
// pace and the GPU choice.
func (s *session) resize(width, height int) {
	if width == s.cfg.Width && height == s.cfg.Height {
		return
	}
	speed, paused := s.rend.replaySpeed, s.rend.paused
	gpu := s.rend.gpu != nil
	s.rend.close()
	s.cfg.Width, s.cfg.Height = width, height
	s.rend = newRenderer(s.cfg, s.log)
	s.rend.replaySpeed, s.rend.paused = speed, paused
	if gpu {
		s.enableGPU()
	}
	s.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// enableGPU tries to route full frames through the OpenCL rasterizer and
// logs why it stays on the CPU otherwise.
func (s *session) enableGPU() {
	rast, err := newOpenCLSpanRasterizer(s.cfg.Width, s.cfg.Height)
	if err != nil {
		s.log.Warn("GPU rasterizer unavailable, using CPU compositor", zap.Error(err))
		return
	}
	s.rend.useGPU(rast)
}

func (s *session) close() {
	s.rend.close()
}

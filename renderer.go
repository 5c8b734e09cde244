package main

import (
	"go.uber.org/zap"
)

// spanBatch collects a whole frame of spans for a batch rasterizer.
type spanBatch struct {
	spans []span
}

func (b *spanBatch) beginSector(walkItem) {}

func (b *spanBatch) emit(s span) { b.spans = append(b.spans, s) }

// spanRasterizer draws a frame's spans into a framebuffer in one batch.
// Spans of the same column must be applied in slice order.
type spanRasterizer interface {
	rasterize(fb *framebuffer, spans []span) error
	deviceName() string
	close()
}

// renderer turns the world into pixels, either a full frame at a time or
// through the slow-motion replay queue.
type renderer struct {
	walker *portalWalker
	fb     *framebuffer
	replay replayQueue
	batch  spanBatch
	gpu    spanRasterizer

	paused      bool
	replaySpeed int
	stats       walkStats
	frames      uint64
	warnedTrunc bool

	log *zap.Logger
}

func newRenderer(cfg Config, log *zap.Logger) *renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &renderer{
		walker:      newPortalWalker(cfg.Width, cfg.Height, cfg.hfov(), cfg.vfov()),
		fb:          newFramebuffer(cfg.Width, cfg.Height),
		replaySpeed: cfg.ReplaySpeed,
		log:         log,
	}
}

// useGPU routes full-frame rendering through r. A nil r keeps the CPU path.
func (r *renderer) useGPU(rast spanRasterizer) {
	r.gpu = rast
	if rast != nil {
		r.log.Info("GPU span rasterizer enabled", zap.String("device", rast.deviceName()))
	}
}

// renderFrame clears the framebuffer and draws one complete frame.
func (r *renderer) renderFrame(w *World) {
	r.fb.clear(colBlack)
	if r.gpu == nil {
		r.record(r.walker.walk(w, canvasSink{r.fb}))
		return
	}
	r.batch.spans = r.batch.spans[:0]
	r.record(r.walker.walk(w, &r.batch))
	if err := r.gpu.rasterize(r.fb, r.batch.spans); err != nil {
		r.log.Warn("GPU rasterizer failed, using CPU compositor", zap.Error(err))
		r.gpu.close()
		r.gpu = nil
		for _, s := range r.batch.spans {
			r.fb.vline(s.x, s.y1, s.y2, s.shade)
		}
	}
}

// replayTick advances slow-motion playback. When the previous frame has
// been fully played, a new walk fills the queue and the screen is cleared;
// otherwise replaySpeed commands are played.
func (r *renderer) replayTick(w *World) {
	if r.paused {
		return
	}
	if r.replay.empty() {
		r.record(r.walker.walk(w, &r.replay))
		r.fb.clear(colBlack)
		r.log.Debug("replay frame queued",
			zap.Uint64("frame", r.frames),
			zap.Int("commands", r.replay.pending()))
		return
	}
	r.replay.drain(r.fb, r.replaySpeed)
}

// adjustReplaySpeed changes the replay pace, clamped to its bounds.
func (r *renderer) adjustReplaySpeed(delta int) {
	r.replaySpeed = clampInt(r.replaySpeed+delta, minReplaySpeed, maxReplaySpeed)
}

func (r *renderer) record(stats walkStats) {
	r.stats = stats
	r.frames++
	if stats.truncated && !r.warnedTrunc {
		r.warnedTrunc = true
		r.log.Warn("portal walk hit its work budget; map may contain inconsistent portals",
			zap.Int("items", len(stats.items)))
	}
}

func (r *renderer) close() {
	if r.gpu != nil {
		r.gpu.close()
		r.gpu = nil
	}
}

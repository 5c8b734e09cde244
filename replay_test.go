package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pixelSpan(x int) span {
	return span{x: x, y1: 0, y2: 0, shade: shadeWall, kind: spanWall}
}

func TestReplayMarkerPreviewsNextGroup(t *testing.T) {
	fb := newFramebuffer(4, 1)
	fb.clear(colBlack)
	var q replayQueue
	q.beginSector(walkItem{sector: 0})
	q.emit(pixelSpan(0))
	q.emit(pixelSpan(1))
	q.beginSector(walkItem{sector: 1})
	q.emit(pixelSpan(2))
	require.Equal(t, 5, q.pending())

	// The marker paints its whole group in the highlight colour.
	assert.Equal(t, 1, q.drain(fb, 1))
	assert.Equal(t, colDarkGreen, fb.at(0, 0))
	assert.Equal(t, colDarkGreen, fb.at(1, 0))
	assert.Equal(t, colBlack, fb.at(2, 0))

	// Real spans then replace the preview one by one.
	assert.Equal(t, 1, q.drain(fb, 1))
	assert.Equal(t, colGrey, fb.at(0, 0))
	assert.Equal(t, colDarkGreen, fb.at(1, 0))

	assert.Equal(t, 2, q.drain(fb, 2))
	assert.Equal(t, colGrey, fb.at(1, 0))
	assert.Equal(t, colDarkGreen, fb.at(2, 0))

	// Draining past the end plays what is left and resets the buffer.
	assert.Equal(t, 1, q.drain(fb, 10))
	assert.Equal(t, colGrey, fb.at(2, 0))
	assert.True(t, q.empty())
	assert.Equal(t, 0, q.pending())
	assert.Equal(t, 0, q.head)
}

func TestReplaySpeedIsClamped(t *testing.T) {
	r := newRenderer(defaultConfig(), zap.NewNop())
	assert.Equal(t, defaultReplaySpeed, r.replaySpeed)
	r.adjustReplaySpeed(-10)
	assert.Equal(t, minReplaySpeed, r.replaySpeed)
	r.adjustReplaySpeed(100)
	assert.Equal(t, maxReplaySpeed, r.replaySpeed)
	r.adjustReplaySpeed(-1)
	assert.Equal(t, maxReplaySpeed-1, r.replaySpeed)
}

func TestReplayConvergesToFullFrame(t *testing.T) {
	w, err := loadWorldFile("")
	require.NoError(t, err)
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 64, 48
	newKinematics(cfg, nil).movePlayer(w, 0, 0)

	direct := newRenderer(cfg, nil)
	direct.renderFrame(w)

	slow := newRenderer(cfg, nil)
	slow.adjustReplaySpeed(maxReplaySpeed)
	slow.replayTick(w)
	require.False(t, slow.replay.empty())
	ticks := 0
	for !slow.replay.empty() {
		slow.replayTick(w)
		ticks++
	}
	assert.Greater(t, ticks, 1)
	assert.Equal(t, direct.fb.pixels(), slow.fb.pixels())
	assert.Equal(t, direct.stats.spans, slow.stats.spans)
}

func TestReplayPauseHoldsFrame(t *testing.T) {
	w := testWorld(t, []Sector{box(0, 0, 10, 10, 0, 20)}, 5, 5, 0, 0)
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 32, 24
	r := newRenderer(cfg, nil)
	r.replayTick(w)
	pending := r.replay.pending()
	r.paused = true
	r.replayTick(w)
	assert.Equal(t, pending, r.replay.pending())
	r.paused = false
	r.replayTick(w)
	assert.Equal(t, pending-r.replaySpeed, r.replay.pending())
}

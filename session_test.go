package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionSettlesEyeHeight(t *testing.T) {
	sess := newTestSession(t, 64, 48)
	assert.Equal(t, float64(eyeHeight), sess.world.player.pos.z)
}

func TestSessionToggles(t *testing.T) {
	sess := newTestSession(t, 64, 48)
	require.True(t, sess.update(controls{togglePause: true, toggleMap: true, replayFaster: true}, 1.0/60))
	assert.True(t, sess.rend.paused)
	assert.True(t, sess.showMap)
	assert.Equal(t, defaultReplaySpeed+1, sess.rend.replaySpeed)

	require.True(t, sess.update(controls{togglePause: true, replaySlower: true}, 1.0/60))
	assert.False(t, sess.rend.paused)
	assert.Equal(t, defaultReplaySpeed, sess.rend.replaySpeed)

	assert.False(t, sess.update(controls{quit: true}, 1.0/60))
}

func TestSessionReportsBlockedMoves(t *testing.T) {
	w, err := newWorld([]Sector{box(0, 0, 10, 10, 0, 20)}, Player{pos: vec3{x: 9.9, y: 5}, sector: 0})
	require.NoError(t, err)
	sess := newSession(defaultConfig(), w, zap.NewNop())
	bumps := 0
	sess.onBlock = func() { bumps++ }

	for i := 0; i < 30; i++ {
		sess.update(controls{forward: true, fast: true}, 1.0/60)
	}
	assert.Positive(t, bumps)
	assert.LessOrEqual(t, sess.world.player.pos.x, 10.0)
}

func TestSessionSlomoRendersStepwise(t *testing.T) {
	sess := newTestSession(t, 64, 48)
	sess.slomo = true
	sess.render()
	pending := sess.rend.replay.pending()
	require.Positive(t, pending)
	sess.render()
	assert.Equal(t, pending-sess.rend.replaySpeed, sess.rend.replay.pending())
}

func TestSessionResizeKeepsReplayState(t *testing.T) {
	sess := newTestSession(t, 64, 48)
	sess.rend.adjustReplaySpeed(4)
	sess.rend.paused = true
	sess.resize(80, 60)
	assert.Equal(t, 80, sess.rend.fb.w)
	assert.Equal(t, 60, sess.rend.fb.h)
	assert.Equal(t, defaultReplaySpeed+4, sess.rend.replaySpeed)
	assert.True(t, sess.rend.paused)
	assert.Equal(t, 80, sess.cfg.Width)
}

func TestSessionEnableGPUFallsBack(t *testing.T) {
	sess := newTestSession(t, 64, 48)
	sess.enableGPU()
	if sess.rend.gpu == nil {
		// Built without OpenCL or no device present: the CPU path renders.
		sess.render()
		assert.NotZero(t, sess.rend.frames)
		return
	}
	sess.render()
	assert.NotZero(t, sess.rend.frames)
	sess.close()
	assert.Nil(t, sess.rend.gpu)
}

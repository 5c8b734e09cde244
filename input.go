package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// controls is one tick's worth of player and viewer input.
type controls struct {
	forward, back           bool
	strafeLeft, strafeRight bool
	turnLeft, turnRight     bool
	fast, slow              bool

	togglePause  bool
	toggleMap    bool
	replayFaster bool
	replaySlower bool
	quit         bool
}

// pushing reports whether any translation key is held.
func (c controls) pushing() bool {
	return c.forward || c.back || c.strafeLeft || c.strafeRight
}

// readKeyboard polls the ebiten keyboard state.
func readKeyboard() controls {
	return controls{
		forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		back:        ebiten.IsKeyPressed(ebiten.KeyS),
		strafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		strafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
		turnLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		turnRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		fast:        ebiten.IsKeyPressed(ebiten.KeyShift),
		slow:        ebiten.IsKeyPressed(ebiten.KeyInsert),

		togglePause:  inpututil.IsKeyJustPressed(ebiten.KeyP),
		toggleMap:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		replayFaster: inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) || inpututil.IsKeyJustPressed(ebiten.KeyEqual),
		replaySlower: inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) || inpututil.IsKeyJustPressed(ebiten.KeyMinus),
		quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

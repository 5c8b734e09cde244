package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// heldKey names a movement key whose state is emulated in the terminal.
type heldKey int

const (
	holdForward heldKey = iota
	holdBack
	holdStrafeLeft
	holdStrafeRight
	holdTurnLeft
	holdTurnRight
	holdFast
	holdSlow
	holdCount
)

// keyHolder turns terminal key presses into held-key state. Terminals only
// report presses and autorepeat, so a key counts as held for a short
// window after each event.
type keyHolder struct {
	hold    time.Duration
	until   [holdCount]time.Time
	pending controls
}

func newKeyHolder(hold time.Duration) *keyHolder {
	return &keyHolder{hold: hold}
}

func (k *keyHolder) press(ev *tcell.EventKey, now time.Time) {
	expire := now.Add(k.hold)
	set := func(h heldKey) { k.until[h] = expire }
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.pending.quit = true
		return
	case tcell.KeyUp:
		set(holdForward)
	case tcell.KeyDown:
		set(holdBack)
	case tcell.KeyLeft:
		set(holdTurnLeft)
	case tcell.KeyRight:
		set(holdTurnRight)
	case tcell.KeyInsert:
		set(holdSlow)
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) || ev.Modifiers()&tcell.ModShift != 0 {
			set(holdFast)
		}
		switch unicode.ToLower(r) {
		case 'w':
			set(holdForward)
		case 's':
			set(holdBack)
		case 'q':
			set(holdStrafeLeft)
		case 'e':
			set(holdStrafeRight)
		case 'a':
			set(holdTurnLeft)
		case 'd':
			set(holdTurnRight)
		case 'p':
			k.pending.togglePause = true
		case 'm':
			k.pending.toggleMap = true
		case '+', '=':
			k.pending.replayFaster = true
		case '-':
			k.pending.replaySlower = true
		}
	}
}

// snapshot returns the controls active at now and clears the one-shot
// toggles.
func (k *keyHolder) snapshot(now time.Time) controls {
	held := func(h heldKey) bool { return now.Before(k.until[h]) }
	c := k.pending
	c.forward = held(holdForward)
	c.back = held(holdBack)
	c.strafeLeft = held(holdStrafeLeft)
	c.strafeRight = held(holdStrafeRight)
	c.turnLeft = held(holdTurnLeft)
	c.turnRight = held(holdTurnRight)
	c.fast = held(holdFast)
	c.slow = held(holdSlow)
	k.pending = controls{}
	return c
}

// terminalView renders a session into a tcell screen, two framebuffer
// rows per cell using the upper half block.
type terminalView struct {
	screen tcell.Screen
	sess   *session
	keys   *keyHolder
	log    *zap.Logger
}

func newTerminalView(sess *session, log *zap.Logger) (*terminalView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.HideCursor()
	t := &terminalView{
		screen: screen,
		sess:   sess,
		keys:   newKeyHolder(terminalKeyHoldDuration),
		log:    log,
	}
	t.fit()
	return t, nil
}

// terminalFrameSize maps a cols x rows terminal to a framebuffer size. The
// last row is kept for the stats line.
func terminalFrameSize(cols, rows int) (int, int) {
	return max(cols, 1), max(2*(rows-1), 2)
}

func (t *terminalView) fit() {
	cols, rows := t.screen.Size()
	t.sess.resize(terminalFrameSize(cols, rows))
}

// run drives the session until the user quits.
func (t *terminalView) run() {
	defer t.screen.Fini()
	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go pollEvents(t.screen, events, done)

	ticker := time.NewTicker(terminalFrameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				t.keys.press(ev, time.Now())
			case *tcell.EventResize:
				t.screen.Sync()
				t.fit()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !t.sess.update(t.keys.snapshot(now), dt) {
				t.log.Info("terminal session ended")
				return
			}
			t.sess.render()
			if t.sess.showMap {
				drawMap2D(t.sess.rend.fb, t.sess.world, terminalMapView())
			}
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// terminalMapView shrinks the overhead map to suit the coarse terminal
// resolution.
func terminalMapView() mapView {
	return mapView{scale: 2, originX: 6, originY: 6}
}

func (t *terminalView) draw() {
	fb := t.sess.rend.fb
	cols, rows := t.screen.Size()
	for y := 0; y < rows-1 && 2*y+1 < fb.h; y++ {
		for x := 0; x < cols && x < fb.w; x++ {
			style := tcell.StyleDefault.
				Foreground(termColor(fb.at(x, 2*y))).
				Background(termColor(fb.at(x, 2*y+1)))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	t.drawText(0, rows-1, cols, t.statusLine())
	t.screen.Show()
}

func (t *terminalView) statusLine() string {
	parts := []string{}
	if t.sess.showMap {
		parts = append(parts, playerStats(t.sess.world)...)
	}
	r := t.sess.rend
	if t.sess.slomo {
		parts = append(parts, fmt.Sprintf("slomo x%d", r.replaySpeed))
	}
	parts = append(parts, fmt.Sprintf("sectors %d spans %d", len(r.stats.items), r.stats.spans))
	return strings.Join(parts, " | ")
}

func (t *terminalView) drawText(x, y, width int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack)
	col := x
	for _, r := range s {
		if col >= width {
			break
		}
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		t.screen.SetContent(col, y, ' ', nil, style)
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

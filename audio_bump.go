package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	bumpFrequency = 140.0
	bumpGain      = 0.35
)

// bumpStream is an endless 16-bit stereo stream that stays silent until
// trigger arms a short decaying tone.
type bumpStream struct {
	mu        sync.Mutex
	remaining int
	total     int
	phase     float64
}

func newBumpStream() *bumpStream {
	return &bumpStream{total: int(bumpDuration.Seconds() * audioSampleRate)}
}

// trigger restarts the tone. Calls while a tone is playing restart it.
func (s *bumpStream) trigger() {
	s.mu.Lock()
	s.remaining = s.total
	s.phase = 0
	s.mu.Unlock()
}

func (s *bumpStream) Read(p []byte) (int, error) {
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	step := 2 * math.Pi * bumpFrequency / audioSampleRate
	for i := 0; i < frameBytes; i += 4 {
		var v int16
		if s.remaining > 0 {
			env := float64(s.remaining) / float64(s.total)
			v = int16(math.Sin(s.phase) * env * env * bumpGain * 32767)
			s.phase += step
			s.remaining--
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *bumpStream) Close() error {
	return nil
}

// bumpSound owns the audio player fed by a bumpStream.
type bumpSound struct {
	stream *bumpStream
	player *audio.Player
}

func newBumpSound() (*bumpSound, error) {
	ctx := audio.NewContext(audioSampleRate)
	stream := newBumpStream()
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	player.SetBufferSize(audioBufferDuration)
	player.Play()
	return &bumpSound{stream: stream, player: player}, nil
}

func (b *bumpSound) play() { b.stream.trigger() }

func (b *bumpSound) close() {
	_ = b.player.Close()
}

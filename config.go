package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rendering, movement and pacing defaults. Screen size and field of view
// factors can be overridden from a YAML config file.
const (
	defaultWidth       = 608
	defaultHeight      = 480
	defaultScale       = 1
	defaultHFOVFactor  = 0.73
	defaultVFOVFactor  = 0.20
	eyeHeight          = 6
	headMargin         = 1
	kneeHeight         = 2
	defaultMoveSpeed   = 2.0
	defaultTurnSpeed   = 1.0
	defaultTPS         = 60
	pushAcceleration   = 0.4
	coastAcceleration  = 0.2
	speedFast          = 5.0
	speedSlow          = 0.2
	speedNormal        = 2.0
	defaultReplaySpeed = 3
	minReplaySpeed     = 1
	maxReplaySpeed     = 20

	// Near-field frustum used to clip walls that pass behind the viewer.
	nearZ    = 1e-4
	farZ     = 5.0
	nearSide = 1e-5
	farSide  = 20.0

	// maxWalkItemsPerColumn caps portal work per frame on malformed maps.
	maxWalkItemsPerColumn = 64

	mapScale   = 5.0
	mapOriginX = 10
	mapOriginY = 10
	mapMargin  = 5

	audioSampleRate         = 48000
	audioBufferDuration     = 80 * time.Millisecond
	bumpDuration            = 60 * time.Millisecond
	terminalKeyHoldDuration = 150 * time.Millisecond
	terminalFrameInterval   = 33 * time.Millisecond
)

var errInvalidConfig = errors.New("invalid config")

// Config collects every tunable of a run. Fields absent from the YAML
// keep their defaults.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       int     `yaml:"scale"`
	HFOVFactor  float64 `yaml:"hfov"`
	VFOVFactor  float64 `yaml:"vfov"`
	EyeHeight   float64 `yaml:"eye_height"`
	HeadMargin  float64 `yaml:"head_margin"`
	KneeHeight  float64 `yaml:"knee_height"`
	MoveSpeed   float64 `yaml:"move_speed"`
	TurnSpeed   float64 `yaml:"turn_speed"`
	ReplaySpeed int     `yaml:"replay_speed"`
	MapFile     string  `yaml:"map"`
	LogLevel    string  `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Width:       defaultWidth,
		Height:      defaultHeight,
		Scale:       defaultScale,
		HFOVFactor:  defaultHFOVFactor,
		VFOVFactor:  defaultVFOVFactor,
		EyeHeight:   eyeHeight,
		HeadMargin:  headMargin,
		KneeHeight:  kneeHeight,
		MoveSpeed:   defaultMoveSpeed,
		TurnSpeed:   defaultTurnSpeed,
		ReplaySpeed: defaultReplaySpeed,
		LogLevel:    "info",
	}
}

// loadConfig reads YAML from r on top of the defaults.
func loadConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfigFile returns the defaults when path is empty.
func loadConfigFile(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	cfg, err := loadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("screen %dx%d: %w", c.Width, c.Height, errInvalidConfig)
	case c.Scale <= 0:
		return fmt.Errorf("scale %d: %w", c.Scale, errInvalidConfig)
	case c.HFOVFactor <= 0 || c.VFOVFactor <= 0:
		return fmt.Errorf("fov %.3f/%.3f: %w", c.HFOVFactor, c.VFOVFactor, errInvalidConfig)
	case c.EyeHeight <= 0:
		return fmt.Errorf("eye height %.2f: %w", c.EyeHeight, errInvalidConfig)
	case c.ReplaySpeed < minReplaySpeed || c.ReplaySpeed > maxReplaySpeed:
		return fmt.Errorf("replay speed %d outside [%d,%d]: %w",
			c.ReplaySpeed, minReplaySpeed, maxReplaySpeed, errInvalidConfig)
	}
	return nil
}

// hfov and vfov are the projection scales derived from the screen height.
func (c Config) hfov() float64 { return c.HFOVFactor * float64(c.Height) }

func (c Config) vfov() float64 { return c.VFOVFactor * float64(c.Height) }

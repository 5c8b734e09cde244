package main

import "flag"

// Command-line flags. Flags that mirror a Config field only override the
// config file when given explicitly.
var (
	// mapFlag selects the map file; the embedded map is used when empty.
	mapFlag = flag.String("map", "", "map file to load (default: built-in map)")

	// configFlag points at an optional YAML config file.
	configFlag = flag.String("config", "", "YAML config file overlaying the built-in defaults")

	// slomoFlag starts in slow-motion replay mode.
	slomoFlag = flag.Bool("slomo", false, "start in slow-motion replay of the portal walk")

	replaySpeedFlag = flag.Int("replay-speed", defaultReplaySpeed, "draw commands played per tick in slow-motion mode (1-20)")

	// showMapFlag starts with the overhead map visible.
	showMapFlag = flag.Bool("show-map", false, "show the overhead map and player stats")

	// headlessFlag renders without a window and logs a digest per frame.
	headlessFlag = flag.Bool("headless", false, "render frames without a window and log their digests")
	framesFlag   = flag.Int("frames", 60, "frames to render in headless mode")
	turnFlag     = flag.Float64("turn", 0, "radians to turn the player per headless frame")
	pngFlag      = flag.String("png", "", "write the last headless frame to this PNG file")

	// termFlag renders into the terminal with half-block characters.
	termFlag = flag.Bool("term", false, "render into the terminal instead of a window")

	logLevelFlag = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFileFlag  = flag.String("log-file", "", "write logs to this file instead of stderr")

	// enableAudioFlag plays a short click whenever a wall blocks movement.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a bump sound when a wall blocks movement")

	// gpuFlag rasterizes spans with OpenCL when built with -tags opencl.
	gpuFlag = flag.Bool("gpu", false, "rasterize spans with OpenCL (requires -tags opencl)")

	// cpuProfileFlag writes a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// debugFlag enables the FPS and walk statistics overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and portal walk statistics overlay")
)

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.MapFile = *mapFlag
		case "replay-speed":
			cfg.ReplaySpeed = *replaySpeedFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		}
	})
}

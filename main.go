package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const windowTitle = "Portal Renderer"

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portalview:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfigFile(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if *configFlag != "" {
		log.Info("config loaded", zap.String("path", *configFlag))
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag, log)
		if err != nil {
			return err
		}
		defer stop()
	}

	world, err := loadWorldFile(cfg.MapFile)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}
	defer world.Unload()
	logWorld(log, world, cfg.MapFile)

	sess := newSession(cfg, world, log)
	sess.showMap = *showMapFlag
	sess.slomo = *slomoFlag
	sess.debug = *debugFlag
	defer sess.close()
	if *gpuFlag {
		sess.enableGPU()
	}

	switch {
	case *headlessFlag:
		digest, err := runHeadless(sess, headlessRun{frames: *framesFlag, turn: *turnFlag, pngPath: *pngFlag}, log)
		if err != nil {
			return err
		}
		fmt.Printf("%016x\n", digest)
		return nil
	case *termFlag:
		tv, err := newTerminalView(sess, log)
		if err != nil {
			return err
		}
		tv.run()
		return nil
	}

	runtime.GOMAXPROCS(runtime.NumCPU())
	g := newGame(sess, *enableAudioFlag, log)
	defer g.close()
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	log.Info("shutdown", zap.Uint64("frames", sess.rend.frames))
	return nil
}

// buildLogger keeps the terminal image clean: in terminal mode logs are
// dropped unless they go to a file.
func buildLogger(cfg Config) (*zap.Logger, error) {
	if *termFlag && *logFileFlag == "" {
		return zap.NewNop(), nil
	}
	return newLogger(cfg.LogLevel, *logFileFlag)
}

func logWorld(log *zap.Logger, w *World, path string) {
	if path == "" {
		path = "(built-in)"
	}
	vertices := 0
	for i := range w.sectors {
		vertices += len(w.sectors[i].vertices)
	}
	log.Info("map loaded",
		zap.String("path", path),
		zap.Int("sectors", len(w.sectors)),
		zap.Int("vertices", vertices),
		zap.Int("portals", w.portalCount()),
		zap.Int("player_sector", w.player.sector))
	w.dump(log)
}

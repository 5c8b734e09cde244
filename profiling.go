package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"go.uber.org/zap"
)

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function flushes the profile and is safe to call more than once.
func startCPUProfile(path string, log *zap.Logger) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	log.Info("CPU profiling", zap.String("path", path))
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Warn("closing profile", zap.Error(err))
			}
		})
	}
	return stop, nil
}

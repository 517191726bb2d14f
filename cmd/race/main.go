// Package main runs the driving demo.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/audio"
	"github.com/Faultbox/gldemos/internal/game"
	"github.com/Faultbox/gldemos/internal/game/race"
	"github.com/Faultbox/gldemos/internal/logger"
)

// Crash tone used when no crash_sound file is configured.
const (
	crashToneHz  = 110
	crashToneLen = 250 * time.Millisecond
)

func main() {
	flags := config.ParseFlags()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("config loaded", zap.Any("race", cfg.Race))

	g, err := game.New("Race", cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	var cues race.CuePlayer
	if cfg.Audio.Enabled {
		am := setupAudio(cfg.Audio)
		defer am.Close()
		cues = am
	}

	g.Start(race.NewScene(cfg, g.Renderer(), g.Window(), cues))
	if err := g.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}
}

// setupAudio registers the crash cue and opens the speaker. A missing audio
// device only costs the sound.
func setupAudio(cfg config.AudioConfig) *audio.Manager {
	am := audio.New()
	am.SetVolume(cfg.Volume)

	am.RegisterTone(race.CrashCue, crashToneHz, crashToneLen)
	if cfg.CrashSound != "" {
		if err := am.LoadWAVFile(race.CrashCue, cfg.CrashSound); err != nil {
			logger.Warn("crash sound not loaded, using tone",
				zap.String("path", cfg.CrashSound),
				zap.Error(err),
			)
		}
	}

	if err := am.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	return am
}

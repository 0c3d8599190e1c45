// Package main is the entry point for Guess the Flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/samdwyer/guesstheflag/internal/app"
	"github.com/samdwyer/guesstheflag/internal/config"
	"github.com/samdwyer/guesstheflag/internal/flagdata"
	"github.com/samdwyer/guesstheflag/internal/logging"
	"github.com/samdwyer/guesstheflag/internal/quiz"
	"github.com/samdwyer/guesstheflag/internal/telemetry"
	"github.com/samdwyer/guesstheflag/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (overrides GUESSTHEFLAG_SEED; 0 keeps the configured value)")
	flag.Parse()

	// .env is optional; variables may be set directly
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessionID := uuid.NewString()
	logger = logger.With().Str("session", sessionID).Logger()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			EndpointURL: cfg.Telemetry.Endpoint,
			Headers:     cfg.Telemetry.Headers(),
		})
		if err != nil {
			// Game still works without observability
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	registry, err := flagdata.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load flags: %w", err)
	}

	game, err := quiz.New(registry.IDs(),
		quiz.WithSource(quiz.NewRandSource(cfg.Seed)),
		quiz.WithEndRule(cfg.EndRule),
	)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	recorder := telemetry.NewGameRecorder(ctx, telemetry.Tracer("quiz"), sessionID)
	defer recorder.Close()
	game.Subscribe(recorder.Listen)
	game.Subscribe(app.LogEvents(logger))

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	a := app.New(screen, game, registry, logger, app.Config{ShowLabels: cfg.ShowLabels})
	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

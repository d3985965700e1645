// cmd/asteroids/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/random"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

// exitError carries the process exit code of a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 1
}

// run returns only after every deferred cleanup has happened, so a failure
// is flushed to the log before the process exits.
func run() error {
	configPath := flag.String("config", "config.json", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file and exit")
	renderer := flag.String("renderer", "terminal", "Renderer type: 'terminal', 'engo' or 'null'")
	seedPhrase := flag.String("seed-phrase", "", "Seed the obstacle field from a phrase (overrides config)")
	ticks := flag.Int("ticks", 600, "Number of ticks to simulate (null renderer only)")
	sound := flag.Bool("sound", false, "Play a thruster sound while the engine is on")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath, *renderer)
	if err != nil {
		logging.NewLogger().Error(context.Background(), "Failed to open log file", err, "log_path", *logPath)
		return err
	}
	defer closeLog()

	ctx := logging.WithCorrelationID(context.Background(), "")

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			return err
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return nil
	}

	cfg, err := loadConfig(ctx, logger, *configPath, *seedPhrase)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		return err
	}

	generator, err := random.NewFromConfig(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to create random generator", err)
		return err
	}

	eventBus := event.NewEventBus()
	sim, err := engine.NewSimulation(cfg, generator,
		engine.WithEventBus(eventBus),
		engine.WithLogger(logger),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create simulation", err)
		return err
	}

	if *sound {
		thruster := render.NewThrusterSound()
		if err := thruster.Initialize(); err != nil {
			logger.Warn(ctx, "Sound disabled", "error", err.Error())
		} else {
			thruster.Attach(eventBus)
			defer thruster.Close()
		}
	}

	switch *renderer {
	case "engo":
		engo.Run(engorender.RunOptions(sim, "Asteroids"), engorender.NewGameScene(sim, logger))
	case "null":
		err = runHeadless(logger, sim, *ticks)
	case "terminal":
		err = runTerminal(ctx, logger, sim)
	default:
		err = &exitError{code: 2, err: fmt.Errorf("unknown renderer %q", *renderer)}
	}

	if err != nil {
		logger.Error(ctx, "Game stopped with an error", err)
		return err
	}
	logger.Info(ctx, "Game finished",
		"session_id", sim.SessionID(),
		"score", sim.Score(),
		"ticks", sim.Tick(),
	)
	return nil
}

// newLogger sends logs to path when given. The terminal renderer owns the
// screen, so without a path its logs are discarded.
func newLogger(path, renderer string) (*logging.Logger, func(), error) {
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger := logging.NewLoggerTo(file)
		return logger, func() {
			_ = logger.Sync()
			_ = file.Close()
		}, nil
	}
	if renderer == "terminal" {
		return logging.NewNopLogger(), func() {}, nil
	}
	logger := logging.NewLogger()
	return logger, func() { _ = logger.Sync() }, nil
}

func loadConfig(ctx context.Context, logger *logging.Logger, path, seedPhrase string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}
	if seedPhrase != "" {
		cfg.Runtime.SeedPhrase = seedPhrase
	}
	if cfg.Runtime.Seed == 0 && cfg.Runtime.SeedPhrase == "" {
		cfg.Runtime.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

func runHeadless(logger *logging.Logger, sim *engine.Simulation, ticks int) error {
	nullRenderer := render.NewNullRenderer(logger)
	dt := 1 / float64(sim.Config().Runtime.TickRate)
	for i := 0; i < ticks; i++ {
		if err := sim.Advance(dt); err != nil {
			return logging.WrapError(err, "advancing tick %d", sim.Tick())
		}
		render.DrawFrame(nullRenderer, sim.Snapshot())
	}
	return nil
}

func runTerminal(ctx context.Context, logger *logging.Logger, sim *engine.Simulation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialise screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal := render.NewTerminalRenderer(screen, sim.Space())
	commands := make(chan engine.Command, 8)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return render.PollInput(ctx, screen, commands)
	})
	g.Go(func() error {
		return sim.Run(ctx, commands, func(state *engine.State) {
			render.DrawFrame(terminal, state)
		})
	})
	g.Go(func() error {
		<-ctx.Done()
		_ = render.Interrupt(screen)
		return nil
	})

	logger.Info(ctx, "Terminal session running", "session_id", sim.SessionID())
	if err := g.Wait(); err != nil && !errors.Is(err, render.ErrQuit) {
		return err
	}
	return nil
}

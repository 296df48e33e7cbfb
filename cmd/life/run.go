package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/joeclark-phd/bufferbuffer/internal/config"
	"github.com/joeclark-phd/bufferbuffer/internal/life"
	"github.com/joeclark-phd/bufferbuffer/internal/ticker"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	configPath  string
	generations uint64
	logLevel    string
}

// Name implements subcommands.Command.Name.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Run) Synopsis() string {
	return "run a scenario at its tick rate, logging each generation"
}

// Usage implements subcommands.Command.Usage.
func (*Run) Usage() string {
	return `run -config <file> [options] - run a Life scenario.

Runs the scenario at its tick_rate until the generation limit is reached or
the process receives SIGINT or SIGTERM.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.configPath, "config", "", "scenario file (.yaml, .yml or .toml)")
	f.Uint64Var(&r.generations, "generations", 0, "generation limit, overriding the scenario (0: use scenario)")
	f.StringVar(&r.logLevel, "log-level", "", "log level, overriding the scenario")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if r.configPath == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := config.Load(r.configPath)
	if err != nil {
		logrus.WithError(err).Error("loading scenario")
		return subcommands.ExitFailure
	}
	log, err := newLogger(r.logLevel, s.LogLevel)
	if err != nil {
		logrus.WithError(err).Error("parsing log level")
		return subcommands.ExitUsageError
	}
	if r.generations > 0 {
		s.Generations = r.generations
	}

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		_, err := simulate(gctx, s, log)
		return err
	})
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case <-sig:
			log.Info("shutting down gracefully")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("simulation failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// simulate runs s on a tick loop and returns the final world.
func simulate(ctx context.Context, s *config.Scenario, log logrus.FieldLogger) (*life.World, error) {
	seed, err := s.Grid()
	if err != nil {
		return nil, err
	}
	world, err := life.NewWorld(seed)
	if err != nil {
		return nil, err
	}

	log = log.WithField("scenario", s.Name)
	log.WithFields(logrus.Fields{
		"width":      s.Width,
		"height":     s.Height,
		"population": world.Population(),
	}).Info("scenario loaded")

	loop := ticker.New(ticker.Config{
		TickRate: time.Duration(s.TickRate),
		MaxTicks: s.Generations,
	}, func(context.Context, uint64) error {
		world.Tick()
		pop := world.Population()
		log.WithFields(logrus.Fields{
			"generation": world.Generation(),
			"population": pop,
		}).Debug("tick")
		if pop == 0 {
			log.WithField("generation", world.Generation()).Info("population died out")
			return ticker.ErrStop
		}
		return nil
	}, log)

	if err := loop.Run(ctx); err != nil {
		return world, err
	}
	log.WithFields(logrus.Fields{
		"generation": world.Generation(),
		"population": world.Population(),
	}).Info("simulation finished")
	return world, nil
}

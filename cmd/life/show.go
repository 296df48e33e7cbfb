package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/joeclark-phd/bufferbuffer/internal/config"
	"github.com/joeclark-phd/bufferbuffer/internal/life"
)

// Show implements subcommands.Command for the "show" command.
type Show struct {
	configPath  string
	generations uint64
}

// Name implements subcommands.Command.Name.
func (*Show) Name() string {
	return "show"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Show) Synopsis() string {
	return "print a scenario after some generations"
}

// Usage implements subcommands.Command.Usage.
func (*Show) Usage() string {
	return `show -config <file> [-generations N] - print a Life scenario.

Steps the scenario as fast as possible and prints the resulting grid.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Show) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.configPath, "config", "", "scenario file (.yaml, .yml or .toml)")
	f.Uint64Var(&s.generations, "generations", 0, "generations to step (0: use scenario)")
}

// Execute implements subcommands.Command.Execute.
func (s *Show) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if s.configPath == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	sc, err := config.Load(s.configPath)
	if err != nil {
		logrus.WithError(err).Error("loading scenario")
		return subcommands.ExitFailure
	}
	n := sc.Generations
	if s.generations > 0 {
		n = s.generations
	}
	if err := show(os.Stdout, sc, n); err != nil {
		logrus.WithError(err).Error("show failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func show(w io.Writer, sc *config.Scenario, generations uint64) error {
	seed, err := sc.Grid()
	if err != nil {
		return err
	}
	world, err := life.NewWorld(seed)
	if err != nil {
		return err
	}
	for i := uint64(0); i < generations; i++ {
		world.Tick()
	}
	_, err = fmt.Fprintf(w, "%s after %d generations (population %d)\n%s\n",
		sc.Name, world.Generation(), world.Population(), world.Snapshot())
	return err
}

// Binary life runs Conway's Game of Life scenarios on a double buffer.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&Run{}, "")
	subcommands.Register(&Show{}, "")

	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	os.Exit(int(subcommands.Execute(context.Background())))
}

// newLogger returns a logger at the flag level, falling back to the
// scenario level and then to info.
func newLogger(flagLevel, scenarioLevel string) (*logrus.Logger, error) {
	log := logrus.StandardLogger()
	level := flagLevel
	if level == "" {
		level = scenarioLevel
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}

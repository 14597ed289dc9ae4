// Command obscalc evaluates observable expressions from the command line.
//
// Definitions may be loaded from YAML files with --define; bare
// parameters are supplied with --with and kinematic variables with --kin:
//
//	obscalc eval '<<mass::mu>> / <<mass::tau>>' \
//	    --with mass::mu=0.105658 --with mass::tau=1.77682
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "obscalc",
		Short:        "obscalc evaluates composed physics observables",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(debug)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}

func setupLogger(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

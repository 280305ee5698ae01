// Command graphgolf searches for small-diameter, low-average-path-length
// regular graphs of a given order and degree, persisting the best graph
// found to an edge-list file on interrupt or in one-shot mode.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/lpirl-go/graphgolf/controller"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		edgesPath string
		serial    bool
		once      bool
		debug     bool
		verbose   bool
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "graphgolf <order> <degree>",
		Short: "Search for small-diameter, low-ASPL regular graphs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("graphgolf: invalid order %q: %w", args[0], err)
			}
			degree, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("graphgolf: invalid degree %q: %w", args[1], err)
			}

			log := newLogger(debug, verbose)

			cfg := controller.Config{
				Order:     order,
				Degree:    degree,
				EdgesPath: edgesPath,
				Once:      once,
				Serial:    serial,
				Seed:      seed,
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			return controller.Run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVarP(&edgesPath, "edges", "e", "", "load initial graph from an edge-list file instead of random completion")
	cmd.Flags().BoolVarP(&serial, "serial", "s", false, "run only the first applicable enhancer each round instead of racing all applicable enhancers (debugging aid only)")
	cmd.Flags().BoolVarP(&once, "once", "o", false, "exit after the first adopted graph")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug-level logging")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (info-level) logging")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed worker RNGs deterministically (0: unspecified, seeded from the wall clock)")

	return cmd
}

// newLogger builds a zerolog.Logger writing human-readable output to
// stderr, at a level selected by the debug/verbose flags. Default level is
// warn, matching a quiet CLI that only speaks up for adopted graphs and
// the final persisted result.
func newLogger(debug, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case debug:
		level = zerolog.DebugLevel
	case verbose:
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

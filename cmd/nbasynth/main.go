// Command nbasynth drives ω-regex synthesis over a corpus of LTL formulas
// whose automata were pre-translated to HOA files.
//
// The LTL→NBA translation itself is external (spot's ltl2tgba); nbasynth
// consumes its output:
//
//	<automata-dir>/<index>.state.hoa   state-based shape
//	<automata-dir>/<index>.trans.hoa   transition-based shape
//	<automata-dir>/<index>.degen.hoa   degeneralized shape
//
// Subcommands:
//
//	compute - run the configured method matrix and write expression
//	          metrics plus stage timings to a CSV (created or truncated).
//	census  - count states, finals and transitions per shape to a CSV.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "nbasynth",
		Short:         "Synthesize ω-regular expressions from Büchi automata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "nbasynth.yaml", "run configuration file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newCensusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nbasynth:", err)
		os.Exit(1)
	}
}

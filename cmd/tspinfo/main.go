// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/katalvlaran/tsplib/tsplib"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose   int
	logPath   string
	lenient   bool
	strict    bool
	symmetry  bool
	tolerance float64
	json      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "tspinfo",
		Short:         "Inspect explicit-distance TSPLIB instances",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if g.logPath != "" {
				path = &g.logPath
			}
			commonlog.Configure(g.verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&g.logPath, "log", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&g.lenient, "lenient", false, `accept "KEY : value" and "KEY:value" header lines`)
	rootCmd.PersistentFlags().BoolVar(&g.strict, "strict", false, "fail on header keys declared more than once")
	rootCmd.PersistentFlags().BoolVar(&g.symmetry, "check-symmetry", false, "reject FULL_MATRIX sections that are not symmetric")
	rootCmd.PersistentFlags().Float64Var(&g.tolerance, "tolerance", 0, "largest |d(i,j) - d(j,i)| accepted by --check-symmetry")
	rootCmd.PersistentFlags().BoolVar(&g.json, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(newHeaderCmd(&g))
	rootCmd.AddCommand(newMatrixCmd(&g))
	rootCmd.AddCommand(newCoordsCmd(&g))

	return rootCmd
}

// load parses path with the options selected by g.
func load(g *globalFlags, path string) (*tsplib.Instance, error) {
	opts := []tsplib.Option{tsplib.WithLogger(commonlog.GetLogger("tspinfo"))}
	if g.lenient {
		opts = append(opts, tsplib.WithLenientSeparator())
	}
	if g.strict {
		opts = append(opts, tsplib.WithStrictEntries())
	}
	if g.symmetry {
		if g.tolerance < 0 || math.IsNaN(g.tolerance) || math.IsInf(g.tolerance, 0) {
			return nil, fmt.Errorf("--tolerance must be finite and non-negative, got %g", g.tolerance)
		}
		opts = append(opts, tsplib.WithSymmetryCheck(g.tolerance))
	}

	return tsplib.ParseFile(path, opts...)
}

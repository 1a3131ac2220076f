package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wick/config"
	"github.com/katalvlaran/wick/contract"
	"github.com/katalvlaran/wick/engine"
	"github.com/katalvlaran/wick/input"
	"github.com/katalvlaran/wick/report"
	"github.com/spf13/cobra"
)

// newRootCmd wires the command tree to the given output streams.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wick",
		Short: "Evaluate matrix elements of second-quantized operators",
		Long: `wick enumerates the full contractions of <bra| op1 ... opk |ket>,
derives the signed Kronecker-delta expression of each one and merges
terms that differ only by a relabelling of electrons.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd(stdout, stderr), newCountCmd(stdout))
	return rootCmd
}

// newRunCmd evaluates every task of an input file.
func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		workers   int
		logLevel  string
		logFormat string
		quiet     bool
	)
	cmd := &cobra.Command{
		Use:   "run [input file]",
		Short: "Evaluate all tasks of a native (.inp) or YAML input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("quiet") {
				cfg.Quiet = quiet
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			logger := cfg.Logger(stderr)

			in, err := input.ParseFile(args[0])
			if err != nil {
				return err
			}
			logger.Info("input parsed",
				"file", args[0],
				"operators", in.Table.Len(),
				"tasks", len(in.Tasks),
			)

			eng := engine.New(engine.WithLogger(logger), engine.WithWorkers(cfg.Workers))
			results, err := eng.EvaluateAll(cmd.Context(), in.Table, in.Tasks)
			if err != nil {
				return err
			}

			var opts []report.Option
			if cfg.Quiet {
				opts = append(opts, report.WithQuiet())
			}
			return report.New(stdout, opts...).Write(results)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "tasks evaluated concurrently")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "text or json")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print merged terms only")

	return cmd
}

// newCountCmd prints (n−1)!! next to the enumerated number of matchings.
func newCountCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "count [n]",
		Short: "Count the full contractions of n elementary operators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("count: n must be a non-negative integer, got %q", args[0])
			}
			if n > 16 {
				return fmt.Errorf("count: n = %d is too large to enumerate", n)
			}
			_, err = fmt.Fprintf(stdout, "n=%d closed-form=%d enumerated=%d\n",
				n, contract.CountAll(n), contract.Count(contract.All(n)))
			return err
		},
	}
}

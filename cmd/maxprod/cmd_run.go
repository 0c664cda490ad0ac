package main

import (
	"github.com/davidvella/maxprod/internal/demo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	length int
	low    float64
	high   float64
	seed   uint64
	mode   string
)

// intCmd runs the zero-segmented scan.
var intCmd = &cobra.Command{
	Use:   "int [values...]",
	Short: "Maximal product over unsigned integers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := demo.ParseUints(args)
		if err != nil {
			return err
		}
		_, err = newRunner(cmd).Int(seq)
		return err
	},
}

// realCmd runs run compression and reduction.
var realCmd = &cobra.Command{
	Use:   "real [values...]",
	Short: "Maximal product over non-negative reals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := demo.ParseFloats(args)
		if err != nil {
			return err
		}
		_, err = newRunner(cmd).Real(seq)
		return err
	},
}

// randomCmd draws a sequence in the configured mode, reals by default.
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Maximal product over a uniformly drawn sequence",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().IntVarP(&length, "length", "n", 0, "sequence length (default from config)")
	randomCmd.Flags().Float64Var(&low, "low", 0, "lower bound, inclusive; must be 0 in int mode (default from config)")
	randomCmd.Flags().Float64Var(&high, "high", 0, "upper bound; exclusive for reals, inclusive and truncated for ints, at most 2^53 (default from config)")
	randomCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 for a fresh one")
	randomCmd.Flags().StringVar(&mode, "mode", "", "int or real (default from config)")
}

func runRandom(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("low") {
		cfg.Low = low
	}
	if flags.Changed("high") {
		cfg.High = high
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("drawing random sequence",
		zap.String("mode", cfg.Mode),
		zap.Int("length", cfg.Length),
		zap.Float64("low", cfg.Low),
		zap.Float64("high", cfg.High))

	r := newRunner(cmd)
	if cfg.Mode == demo.ModeInt {
		_, err := r.RandomInt(cfg.Length, cfg.IntLimit())
		return err
	}
	_, err := r.Random(cfg.Length, cfg.Low, cfg.High)
	return err
}

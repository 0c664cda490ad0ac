// Command maxprod prints the subrange of a sequence with the largest product.
package main

import (
	"fmt"
	"os"

	"github.com/davidvella/maxprod/internal/demo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	cfg    *demo.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "maxprod",
	Short: "Find the contiguous subrange with the largest product",
	Long: `maxprod runs the linear-time maximal-product algorithms on one sequence
and prints the sequence, the chosen inclusive range and its product.

Examples:
  maxprod int 0 1 0 7 0 3
  maxprod real 0.1,0.5,13,2,0.1,4,6,7,8,0.1,0.2
  maxprod random --length 20 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = demo.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}

		zcfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compression and reduction details")

	rootCmd.AddCommand(intCmd, realCmd, randomCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRunner builds a runner writing to the command's output.
func newRunner(cmd *cobra.Command, opts ...demo.Option) *demo.Runner {
	base := []demo.Option{
		demo.WithOutput(cmd.OutOrStdout()),
		demo.WithLogger(logger.With(zap.String("command", cmd.Name()))),
	}
	return demo.NewRunner(append(append(base, cfg.Options()...), opts...)...)
}

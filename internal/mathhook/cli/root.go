// Package cli implements the MathHook command-line interface.
//
// This package uses global variables to manage CLI state, which is the
// standard pattern for Cobra-based CLI applications. The globals are
// initialized in PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathhook/mathhook/internal/mathhook/config"
	"github.com/mathhook/mathhook/pkg/mathhook"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Global state initialized in PersistentPreRunE
	cfg    *config.Config
	logger *config.Logger
	engine mathhook.Engine
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mathhook-gcd",
	Short: "Exact polynomial GCD over the integers",
	Long: `MathHook computes exact greatest common divisors of integer polynomials
using modular arithmetic with Chinese Remainder reconstruction.

Univariate polynomials are dense coefficient lists by ascending degree.
Multivariate polynomials are sparse term lists over named variables.

Example:
  mathhook-gcd gcd --f "-1,0,1" --g "1,-2,1"
  mathhook-gcd lcm --f "0,1" --g "0,2"
  mathhook-gcd gcd --vars x,y --f "1:1,1" --g "1:1,1; 1:1,0"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// initGlobals initializes global configuration, logger, and engine.
func initGlobals() error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
	} else {
		cfg = config.Defaults()
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err = config.NewLogger(config.ParseLogLevel(cfg.Logging.Level), cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	engine, err = mathhook.NewEngine(cfg.Options())
	if err != nil {
		return err
	}

	logger.Debug("engine initialized: max_primes=%d max_eval_points=%d workers=%d",
		cfg.Engine.MaxPrimes, cfg.Engine.MaxEvalPoints, cfg.Engine.Workers)
	return nil
}

// cleanup releases global state.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(lcmCmd)
	rootCmd.AddCommand(cofactorsCmd)
	rootCmd.AddCommand(coprimeCmd)
}

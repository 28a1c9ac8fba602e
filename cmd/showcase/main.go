// Command showcase runs the Forgeline site pages built on kinetic.
//
//	showcase run --config configs/site.yaml --page products
//	showcase pages
//	showcase validate
//	showcase replay scripts/tour.yaml --headless
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	logLevel   string

	logger = zap.NewNop()
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Forgeline site showcase for the kinetic motion layer",
	Long: `showcase lays out the pages described by a YAML site config and runs
them in a window, with scroll reveals, parallax sections, tilt cards,
marquees and floating elements.

Every config scalar can be overridden from the environment with the
KINETIC_ prefix, for example KINETIC_WINDOW_TITLE.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel != "" {
			if err := setLevel(logLevel); err != nil {
				return err
			}
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = level
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func setLevel(s string) error {
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	level.SetLevel(l)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/site.yaml", "Site config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to the config's log_level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cmd implements the cfkit command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

var (
	cfgFile string
	// Verbose enables debug output and diagnostics from the ownership layer.
	Verbose bool

	lib *cfkit.Library
)

var rootCmd = &cobra.Command{
	Use:           "cfkit",
	Short:         "Inspect Apple framework objects through the cfkit ownership layer",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if Verbose {
			log.SetLevel(log.DebugLevel)
		}
		cfg, err := cfkit.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		z, err := newZap(cfg.LogLevel)
		if err != nil {
			return err
		}
		lib, err = cfkit.Open(cfg, cfkit.WithLogger(logging.NewZap(z)))
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"backend":     cfkit.Backend(),
			"leak_policy": cfg.LeakPolicy,
		}).Debug("cfkit opened")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if lib == nil {
			return nil
		}
		return lib.Close()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihandler.Default)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file (CFKIT_* variables override it)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.AddCommand(versionCmd, probeCmd, unitsCmd)
}

// newZap builds the diagnostics logger. --verbose lowers its level to debug.
func newZap(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if Verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = !Verbose
	return zc.Build()
}

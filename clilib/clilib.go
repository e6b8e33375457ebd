// Package clilib holds the command line plumbing shared by the review tools
package clilib

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"goReviewLab/configlib"
	"goReviewLab/reviewlib"
)

// AddCommonFlags registers the flags both tools accept
func AddCommonFlags(flags *pflag.FlagSet, cfgFile *string) {
	flags.StringVar(cfgFile, "config", "", "config file (default: ./reviewlab.yaml)")
	flags.String("dataset", configlib.DefaultDataset, "review CSV file")
	flags.Bool("strip-html", false, "convert HTML review cells to plain text")
	flags.String("language", "", "keep only review text detected as this language (e.g. english)")
	flags.String("out", "", "also write results to this tab separated file")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("debug", false, "dump the loaded configuration")
}

// NewLogger returns a stderr logger, silent unless verbose
func NewLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", 0)
}

// NewStatusLogger returns a stderr logger for progress lines that are always shown
func NewStatusLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

// LoadConfig resolves the configuration for cmd and builds its logger
func LoadConfig(cmd *cobra.Command, cfgFile string) (*configlib.Config, *log.Logger, error) {
	cfg, err := configlib.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Debug {
		goDebug.Print("config", cfg)
	}
	return cfg, NewLogger(cfg.Verbose), nil
}

// Report prints a pipeline failure the way the tools always have: a missing
// dataset gets its own message, anything else is echoed. Neither is fatal.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, reviewlib.ErrDatasetNotFound) {
		fmt.Fprintln(w, "Error: The CSV file was not found.")
		return
	}
	fmt.Fprintf(w, "An error occurred: %v\n", err)
}

// NewConfigCommand returns the "config" subcommand printing the effective settings
func NewConfigCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Display the configuration after merging all sources.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (REVIEWLAB_*)
3. Config file (./reviewlab.yaml or --config)
4. Defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configlib.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			b, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

// Execute runs root and exits non-zero on an unhandled error
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

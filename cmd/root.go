// Package cmd contains the CLI commands for the dsk application.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/diceseed-go/internal/config"
)

// verbose holds the global --verbose flag state.
var verbose bool

// pause holds the global --pause flag state.
var pause bool

// settings holds the environment defaults loaded before each run.
var settings config.Config

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetPause reports whether the process waits for Enter before exiting.
func GetPause() bool {
	return pause
}

// NewRootCmd creates the bare root command. BuildCommandTree adds the
// subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dsk",
		Short:         "Turn dice rolls into a BIP39 mnemonic seed",
		Long:          "dsk converts physical six-sided dice rolls into BIP39 entropy and the matching mnemonic phrase.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applySettings(cmd)
		},
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&pause, "pause", false, "Wait for Enter before exiting")

	return cmd
}

// applySettings loads the environment and fills in flags the user did not set.
func applySettings(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings = cfg

	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		verbose = cfg.Verbose
	}
	if !flags.Changed("pause") {
		pause = cfg.Pause
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	defaultDataDir = "~/.coinmelt"
)

type rootConfig struct {
	Ctx context.Context

	ConfigPath string
	DataDir    string
}

func newRootCommand() *cobra.Command {
	config := new(rootConfig)
	cmd := &cobra.Command{
		Use:   "coinmelt",
		Short: "Track a silver coin collection and compute its melt value",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			config.Ctx = cmdCtx()
			return nil
		},
		Version: getVersion(),
	}
	cmd.PersistentFlags().StringVarP(
		&config.ConfigPath,
		"config", "",
		"",
		"Path to the config file (defaults to <data-dir>/config.toml)")
	cmd.PersistentFlags().StringVarP(
		&config.DataDir,
		"data-dir", "",
		defaultDataDir,
		"Directory to store data (quantities, logs)")

	cmd.AddCommand(newListCommand(config))
	cmd.AddCommand(newValueCommand(config))
	cmd.AddCommand(newPriceCommand(config))
	cmd.AddCommand(newSetCommand(config))
	cmd.AddCommand(newClearCommand(config))
	cmd.AddCommand(newThemeCommand(config))
	return cmd
}

func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s (built with %s)\n", buildInfo.Main.Version, runtime.Version())
}

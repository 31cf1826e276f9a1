package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCommand(rootConfig *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the interface theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := ""
			if len(args) > 0 {
				theme = args[0]
			}
			return checkCmd(doTheme(rootConfig, theme))
		},
	}
}

func doTheme(config *rootConfig, theme string) error {
	db, err := openQuantityDB(config.Ctx, config.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if theme == "" {
		current, err := db.Theme(config.Ctx)
		if err != nil {
			return err
		}
		fmt.Println(current)
		return nil
	}

	if err := db.SetTheme(config.Ctx, theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", theme)
	return nil
}

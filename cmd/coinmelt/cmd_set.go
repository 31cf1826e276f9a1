package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinmelt/coinmelt/pkg/validate"
)

func newSetCommand(rootConfig *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY QUANTITY",
		Short: "Set the owned quantity for a coin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doSet(rootConfig, args[0], args[1]))
		},
	}
}

func doSet(config *rootConfig, key, rawQuantity string) error {
	db, err := openQuantityDB(config.Ctx, config.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	quantities, err := db.LoadQuantities(config.Ctx)
	if err != nil {
		return err
	}

	quantity := validate.PositiveInteger(rawQuantity, 0)
	if quantity > 0 {
		quantities[key] = quantity
	} else {
		delete(quantities, key)
	}

	if err := db.SaveQuantities(config.Ctx, quantities); err != nil {
		return err
	}

	fmt.Printf("Quantity for %q set to %d\n", key, quantity)
	return nil
}

func newClearCommand(rootConfig *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all owned quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doClear(rootConfig))
		},
	}
}

func doClear(config *rootConfig) error {
	if err := promptConfirm("Clear all coin quantities"); err != nil {
		return err
	}

	db, err := openQuantityDB(config.Ctx, config.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.ClearQuantities(config.Ctx); err != nil {
		return err
	}

	fmt.Println("All quantities cleared.")
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinmelt/coinmelt/pkg/silverprice"
	"github.com/coinmelt/coinmelt/pkg/spotfeed"
)

func newPriceCommand(rootConfig *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Show the live silver spot price",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doPrice(rootConfig))
		},
	}
}

func doPrice(config *rootConfig) error {
	cfg, err := loadConfig(config)
	if err != nil {
		return err
	}

	quoter, err := cfg.SpotFeed.NewQuoter()
	if err != nil {
		return err
	}

	quote, err := quoter.GetQuote(config.Ctx, spotfeed.XAG)
	if err != nil {
		return err
	}

	var state silverprice.State
	state.Set(quote.Price.InexactFloat64())

	fmt.Printf("Silver spot: %s%s/tOz (%s%s/g)\n",
		cfg.Display.Currency, state.DisplayTroyOunce(),
		cfg.Display.Currency, state.DisplayGram())
	if !quote.LastUpdated.IsZero() {
		fmt.Printf("Last updated: %s\n", quote.LastUpdated.Local())
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coinmelt/coinmelt/pkg/coin"
	configpkg "github.com/coinmelt/coinmelt/pkg/config"
	"github.com/coinmelt/coinmelt/pkg/filter"
	"github.com/coinmelt/coinmelt/pkg/render"
	"github.com/coinmelt/coinmelt/pkg/silverprice"
	"github.com/coinmelt/coinmelt/pkg/spotfeed"
	"github.com/coinmelt/coinmelt/pkg/totals"
)

type valueConfig struct {
	*rootConfig

	Price        string
	PricePerGram string
	Search       string
}

func newValueCommand(rootConfig *rootConfig) *cobra.Command {
	config := &valueConfig{
		rootConfig: rootConfig,
	}
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Compute the melt value of the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doValue(config))
		},
	}
	cmd.Flags().StringVarP(
		&config.Price,
		"price", "",
		"",
		"Silver price per troy ounce (skips the live feed)")
	cmd.Flags().StringVarP(
		&config.PricePerGram,
		"price-per-gram", "",
		"",
		"Silver price per gram (skips the live feed)")
	cmd.Flags().StringVarP(
		&config.Search,
		"search", "",
		"",
		"Only count coins matching this query")
	return cmd
}

func doValue(config *valueConfig) error {
	cfg, err := loadConfig(config.rootConfig)
	if err != nil {
		return err
	}

	dir, err := resolveDataDir(config.DataDir)
	if err != nil {
		return err
	}
	log, err := openLog(dir)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	state, err := resolvePrice(config.Ctx, config.Price, config.PricePerGram, cfg.SpotFeed)
	if err != nil {
		return err
	}

	db, err := openQuantityDB(config.Ctx, config.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	grouped, diags, err := loadCatalogue(config.rootConfig, log, cfg)
	if err != nil {
		return err
	}

	var store coin.Store
	store.Replace(grouped)
	snapshot := store.Snapshot()

	quantities, err := db.LoadQuantities(config.Ctx)
	if err != nil {
		return err
	}

	visible := filter.Visibility(snapshot, config.Search)
	items := render.Items(snapshot, visible, quantities)

	calc := totals.Calculator{Currency: cfg.Display.Currency}
	result := calc.Recompute(strconv.FormatFloat(state.TroyOunce(), 'f', -1, 64), items)

	render.Diagnostics(os.Stderr, diags)
	fmt.Printf("Spot price: %s%s/tOz (%s%s/g)\n",
		cfg.Display.Currency, state.DisplayTroyOunce(),
		cfg.Display.Currency, state.DisplayGram())
	render.Tree{Out: os.Stdout}.Render(snapshot, visible, quantities, result)
	render.Totals(os.Stdout, result)

	// persist so the stored quantities match what was just totalled
	if err := db.SaveQuantities(config.Ctx, result.Quantities); err != nil {
		return err
	}

	return nil
}

func resolvePrice(ctx context.Context, price, pricePerGram string, feed configpkg.SpotFeed) (*silverprice.State, error) {
	state := new(silverprice.State)
	switch {
	case pricePerGram != "":
		state.SetGram(pricePerGram)
	case price != "":
		state.SetTroyOunce(price)
	default:
		quoter, err := feed.NewQuoter()
		if err != nil {
			return nil, err
		}
		quote, err := quoter.GetQuote(ctx, spotfeed.XAG)
		if err != nil {
			return nil, err
		}
		state.Set(quote.Price.InexactFloat64())
	}
	return state, nil
}

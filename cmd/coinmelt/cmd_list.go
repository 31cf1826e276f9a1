package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coinmelt/coinmelt/pkg/coin"
	"github.com/coinmelt/coinmelt/pkg/filter"
	"github.com/coinmelt/coinmelt/pkg/render"
	"github.com/coinmelt/coinmelt/pkg/totals"
)

type listConfig struct {
	*rootConfig

	Search string
}

func newListCommand(rootConfig *rootConfig) *cobra.Command {
	config := &listConfig{
		rootConfig: rootConfig,
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the coin catalogue grouped by country",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(doList(config))
		},
	}
	cmd.Flags().StringVarP(
		&config.Search,
		"search", "",
		"",
		"Only show coins matching this query")
	return cmd
}

func doList(config *listConfig) error {
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

	// no price: subtotals are zero, the footer still shows the weight
	calc := totals.Calculator{Currency: cfg.Display.Currency}
	result := calc.Recompute("0", items)

	render.Diagnostics(os.Stderr, diags)
	render.Tree{Out: os.Stdout}.Render(snapshot, visible, quantities, result)
	render.Totals(os.Stdout, result)

	return nil
}

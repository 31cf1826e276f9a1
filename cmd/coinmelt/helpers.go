package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/coinmelt/coinmelt/pkg/coin"
	"github.com/coinmelt/coinmelt/pkg/coincsv"
	"github.com/coinmelt/coinmelt/pkg/config"
)

var (
	usageErr = errs.Class("usage")
)

func promptConfirm(label string) error {
	_, err := (&promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}).Run()
	if err != nil {
		return errors.New("aborted")
	}
	return nil
}

// loadConfig loads the TOML config. An explicitly given path must exist; the
// default path falls back to built-in defaults when absent.
func loadConfig(rootConfig *rootConfig) (config.Config, error) {
	if rootConfig.ConfigPath != "" {
		return config.Load(rootConfig.ConfigPath)
	}

	dir, err := resolveDataDir(rootConfig.DataDir)
	if err != nil {
		return config.Config{}, err
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Parse(nil)
	}
	return config.Load(path)
}

// loadCatalogue fetches or reads the catalogue CSV, parses it and groups the
// validated coins by country. Strictly ordered: fetch, then parse, then
// group. Only the load itself can fail; parse problems come back as
// diagnostics.
func loadCatalogue(rootConfig *rootConfig, log *zap.Logger, cfg config.Config) (coin.Grouped, []coincsv.Diagnostic, error) {
	source := string(cfg.CSV.Source)
	limits := cfg.CSV.Limits()

	var result coincsv.Result
	var err error
	if coincsv.IsURL(source) {
		result, err = coincsv.FetchWithLimits(rootConfig.Ctx, source, limits)
	} else {
		result, err = coincsv.LoadWithLimits(source, limits)
	}
	if err != nil {
		return nil, nil, err
	}

	grouped := coin.GroupByCountry(result.Coins())
	log.Debug("catalogue loaded",
		zap.String("source", source),
		zap.Int("records", len(result.Records)),
		zap.Int("grouped", grouped.Len()),
		zap.Int("diagnostics", len(result.Diagnostics)))

	return grouped, result.Diagnostics, nil
}

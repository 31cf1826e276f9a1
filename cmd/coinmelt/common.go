package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/zeebo/errs/v2"

	"github.com/mitchellh/go-homedir"

	"github.com/coinmelt/coinmelt/pkg/quantitydb"
)

func cmdCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		sig := <-ch
		fmt.Fprintf(os.Stderr, "Signal %q received\n", sig)
		cancel()
	}()
	return ctx
}

func checkCmd(err error) error {
	switch {
	case err == nil:
		return nil
	case usageErr.Has(err):
		// If it is a usage error, return it directly so cobra command will
		// show usage. Otherwise, print and exit with non-zero exit status.
		return err
	}
	// other errors exit with 2
	fmt.Fprintf(os.Stderr, "error: %+v\n", err)
	os.Exit(2)
	return err
}

func resolveDataDir(dataDir string) (string, error) {
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return "", errs.Wrap(err)
	}
	if err := os.MkdirAll(expanded, 0755); err != nil {
		return "", errs.Wrap(err)
	}
	return expanded, nil
}

func openQuantityDB(ctx context.Context, dataDir string) (*quantitydb.DB, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return quantitydb.Open(ctx, filepath.Join(dir, "quantities.db"))
}

package quantitydb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinmelt/coinmelt/pkg/quantitydb"
)

func openTestDB(t *testing.T) *quantitydb.DB {
	db, err := quantitydb.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	return db
}

func TestSaveAndLoadQuantities(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	// empty database yields an empty set
	quantities, err := db.LoadQuantities(ctx)
	require.NoError(t, err)
	require.Empty(t, quantities)

	err = db.SaveQuantities(ctx, map[string]int{
		"France-5_Francs-1963": 4,
		"Mexico-Un_Peso-1947":  2,
		"UK-Crown-1935":        0,  // omitted, not stored as zero
		"Canada-Dollar-1965":   -3, // omitted
	})
	require.NoError(t, err)

	quantities, err = db.LoadQuantities(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		"France-5_Francs-1963": 4,
		"Mexico-Un_Peso-1947":  2,
	}, quantities)
}

func TestSaveQuantitiesReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.SaveQuantities(ctx, map[string]int{"a": 1, "b": 2}))
	require.NoError(t, db.SaveQuantities(ctx, map[string]int{"b": 5}))

	quantities, err := db.LoadQuantities(ctx)
	require.NoError(t, err)
	// "a" is gone: each save replaces the whole set
	require.Equal(t, map[string]int{"b": 5}, quantities)
}

func TestClearQuantities(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.SaveQuantities(ctx, map[string]int{"a": 1}))
	require.NoError(t, db.ClearQuantities(ctx))

	quantities, err := db.LoadQuantities(ctx)
	require.NoError(t, err)
	require.Empty(t, quantities)
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	theme, err := db.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, quantitydb.ThemeLight, theme)

	require.NoError(t, db.SetTheme(ctx, quantitydb.ThemeDark))
	theme, err = db.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, quantitydb.ThemeDark, theme)

	err = db.SetTheme(ctx, "solarized")
	require.EqualError(t, err, `invalid theme "solarized": must be "dark" or "light"`)
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "quantities.db")

	db, err := quantitydb.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.SaveQuantities(ctx, map[string]int{"a": 7}))
	require.NoError(t, db.Close())

	db, err = quantitydb.Open(ctx, path)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	quantities, err := db.LoadQuantities(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 7}, quantities)
}

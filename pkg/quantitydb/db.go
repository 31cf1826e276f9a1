// Package quantitydb persists the user's owned coin quantities, plus a
// couple of interface preferences, in a sqlite database. Quantities are
// stored wholesale on every save: only values greater than zero are kept,
// keyed by the coin's stable key.
package quantitydb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/errs"
)

const dbVersion = 1

const schema = `
	CREATE TABLE metadata (
		version INTEGER NOT NULL
	);
	CREATE TABLE quantities (
		key TEXT NOT NULL PRIMARY KEY,
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	);
	CREATE TABLE settings (
		name TEXT NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	);
`

type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) the quantity database at path.
func Open(ctx context.Context, path string) (*DB, error) {
	return open(ctx, path)
}

// OpenInMemory opens a fresh in-memory database. Used by tests.
func OpenInMemory(ctx context.Context) (*DB, error) {
	return open(ctx, ":memory:")
}

func open(ctx context.Context, path string) (_ *DB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer func() {
		if err != nil {
			err = errs.Combine(err, db.Close())
		}
	}()

	var version int
	err = db.QueryRowContext(ctx, `SELECT version FROM metadata`).Scan(&version)
	switch {
	case isMissingTable(err), errors.Is(err, sql.ErrNoRows):
		if err := initSchema(ctx, db); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errs.Wrap(err)
	case version > dbVersion:
		// not safe to continue against a database from a future tool
		return nil, errs.New("database version is in the future (%d); upgrade your tool (%d)", version, dbVersion)
	}

	return &DB{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errs.Wrap(err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO metadata(version) VALUES(?)`, dbVersion); err != nil {
		return errs.Wrap(err)
	}
	return nil
}

func (d *DB) Close() error {
	return errs.Wrap(d.db.Close())
}

// SaveQuantities replaces the stored quantity set with quantities. Entries
// that are zero or negative are omitted, not stored as zero.
func (d *DB) SaveQuantities(ctx context.Context, quantities map[string]int) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() {
		if err != nil {
			err = errs.Combine(err, tx.Rollback())
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quantities`); err != nil {
		return errs.Wrap(err)
	}
	for key, quantity := range quantities {
		if quantity <= 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO quantities(key, quantity) VALUES(?, ?)`, key, quantity); err != nil {
			return errs.Wrap(err)
		}
	}
	return errs.Wrap(tx.Commit())
}

// LoadQuantities returns the stored quantity set.
func (d *DB) LoadQuantities(ctx context.Context) (map[string]int, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT key, quantity FROM quantities`)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer func() { _ = rows.Close() }()

	quantities := make(map[string]int)
	for rows.Next() {
		var key string
		var quantity int
		if err := rows.Scan(&key, &quantity); err != nil {
			return nil, errs.Wrap(err)
		}
		quantities[key] = quantity
	}
	return quantities, errs.Wrap(rows.Err())
}

// ClearQuantities removes every stored quantity.
func (d *DB) ClearQuantities(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM quantities`)
	return errs.Wrap(err)
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	themeSetting = "theme"
)

// SetTheme stores the interface theme preference.
func (d *DB) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return errs.New("invalid theme %q: must be %q or %q", theme, ThemeDark, ThemeLight)
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO settings(name, value) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		themeSetting, theme)
	return errs.Wrap(err)
}

// Theme returns the stored theme preference, defaulting to light.
func (d *DB) Theme(ctx context.Context) (string, error) {
	var theme string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE name = ?`, themeSetting).Scan(&theme)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ThemeLight, nil
	case err != nil:
		return "", errs.Wrap(err)
	}
	return theme, nil
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

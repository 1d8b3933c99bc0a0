// Package snapshot exports the in-memory stores to a SQLite file. The
// dashboard never reads the file back.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"admin-dashboard/internal"
	"admin-dashboard/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL,
	avatar TEXT,
	exported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stats (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	label TEXT NOT NULL,
	value TEXT NOT NULL,
	change TEXT NOT NULL,
	trend TEXT NOT NULL,
	exported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	user TEXT NOT NULL,
	amount TEXT NOT NULL,
	amount_cents INTEGER,
	status TEXT NOT NULL,
	date TEXT NOT NULL,
	exported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Result counts the rows written per table
type Result struct {
	Users        int
	Stats        int
	Transactions int
}

// Export replaces the contents of the database at path with the given state
func Export(ctx context.Context, path string, auth store.AuthState, dash store.DashboardState) (Result, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return Result{}, fmt.Errorf("open database %s: %w", path, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return Result{}, fmt.Errorf("connect to database %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return Result{}, fmt.Errorf("create tables: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	var res Result
	for _, table := range []string{"users", "stats", "transactions"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Result{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if u := auth.User; u != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email, role, avatar) VALUES (?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Email, string(u.Role), sql.NullString{String: u.Avatar, Valid: u.Avatar != ""},
		); err != nil {
			return Result{}, fmt.Errorf("insert user %s: %w", u.ID, err)
		}
		res.Users++
	}

	for i, s := range dash.Stats {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stats (id, position, label, value, change, trend) VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, i, s.Label, s.Value, s.Change, string(s.Trend),
		); err != nil {
			return Result{}, fmt.Errorf("insert stat %s: %w", s.ID, err)
		}
		res.Stats++
	}

	for i, t := range dash.Transactions {
		cents := sql.NullInt64{}
		if c, err := internal.AmountCents(t.Amount); err == nil {
			cents = sql.NullInt64{Int64: c, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, position, user, amount, amount_cents, status, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.User, t.Amount, cents, string(t.Status), t.Date,
		); err != nil {
			return Result{}, fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
		res.Transactions++
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit export: %w", err)
	}
	return res, nil
}

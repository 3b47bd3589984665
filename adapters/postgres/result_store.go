// Package postgres persists assembled runs in PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cytostats/domain/stats"
	"cytostats/internal/errors"
	"cytostats/ports"
)

// ResultStoreImpl implements ports.ResultStore for PostgreSQL. Each run is
// stored as one row in stat_runs plus one row per result cell in
// stat_cells, preserving row and column order.
type ResultStoreImpl struct {
	db *sqlx.DB
}

// Open connects to the database at url.
func Open(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect: " + err.Error())
	}
	return db, nil
}

var _ ports.ResultStore = (*ResultStoreImpl)(nil)

// NewResultStore creates a PostgreSQL result store.
func NewResultStore(db *sqlx.DB) *ResultStoreImpl {
	return &ResultStoreImpl{db: db}
}

// Init creates the schema if it does not exist.
func (r *ResultStoreImpl) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stat_runs (
			id         TEXT PRIMARY KEY,
			statistic  TEXT NOT NULL,
			layout     TEXT NOT NULL,
			columns    JSONB NOT NULL,
			warnings   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS stat_cells (
			run_id  TEXT NOT NULL REFERENCES stat_runs(id) ON DELETE CASCADE,
			row_idx INT  NOT NULL,
			col_idx INT  NOT NULL,
			value   TEXT NOT NULL,
			PRIMARY KEY (run_id, row_idx, col_idx)
		);
	`)
	if err != nil {
		return errors.DatabaseError("failed to create schema: " + err.Error())
	}
	return nil
}

// SaveRun stores a run and its result cells in one transaction.
func (r *ResultStoreImpl) SaveRun(ctx context.Context, run *stats.Run) error {
	columns, err := json.Marshal(run.Table.Columns)
	if err != nil {
		return errors.Wrap(err, "failed to encode columns")
	}
	warnings, err := json.Marshal(run.Warnings)
	if err != nil {
		return errors.Wrap(err, "failed to encode warnings")
	}
	layout := "wide"
	if run.Long {
		layout = "long"
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin transaction: " + err.Error())
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO stat_runs (id, statistic, layout, columns, warnings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, run.ID, run.Statistic, layout, columns, warnings, run.CreatedAt)
	if err != nil {
		return errors.DatabaseError("failed to insert run: " + err.Error())
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO stat_cells (run_id, row_idx, col_idx, value)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return errors.DatabaseError("failed to prepare cell insert: " + err.Error())
	}
	defer stmt.Close()

	for i, row := range run.Table.Rows {
		for j, cell := range row {
			if _, err := stmt.ExecContext(ctx, run.ID, i, j, cell); err != nil {
				return errors.DatabaseError("failed to insert cell: " + err.Error())
			}
		}
	}
	return tx.Commit()
}

package recorder

import (
	"database/sql"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"greenwatt/core/market"
	"greenwatt/internal/errors"
	"greenwatt/internal/logging"
)

// SQLiteRecorder persists price history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Internal("open sqlite", err)
	}

	// WAL mode so dashboard reads do not block scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Internal("set WAL mode", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, errors.Internal("migrate price history schema", err)
	}

	logging.Info("price history recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_ticks (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			date   TEXT NOT NULL,
			smp    REAL NOT NULL,
			rec    REAL NOT NULL,
			carbon REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_ticks_date ON price_ticks(date)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordTick appends one price observation
func (r *SQLiteRecorder) RecordTick(tick market.PriceTick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO price_ticks (date, smp, rec, carbon) VALUES (?, ?, ?, ?)`,
		tick.Date, tick.SMP, tick.REC, tick.Carbon,
	)
	if err != nil {
		return errors.Internal("record price tick", err)
	}
	return nil
}

// History returns up to limit recent observations, oldest first
func (r *SQLiteRecorder) History(limit int) ([]market.PriceTick, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := r.db.Query(
		`SELECT date, smp, rec, carbon FROM (
			SELECT id, date, smp, rec, carbon FROM price_ticks ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, errors.Internal("query price history", err)
	}
	defer rows.Close()

	var ticks []market.PriceTick
	for rows.Next() {
		var tick market.PriceTick
		if err := rows.Scan(&tick.Date, &tick.SMP, &tick.REC, &tick.Carbon); err != nil {
			return nil, errors.Internal("scan price tick", err)
		}
		ticks = append(ticks, tick)
	}
	return ticks, rows.Err()
}

// Close closes the database
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

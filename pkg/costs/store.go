package costs

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createRequestsTable = `
CREATE TABLE IF NOT EXISTS request_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	model TEXT NOT NULL,
	input_tokens INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	total_tokens INTEGER NOT NULL,
	cost_usd REAL NOT NULL,
	operation TEXT NOT NULL
)`

// Store persists cost history rows to SQLite so spend survives across CLI
// invocations.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed initializes) the cost history database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cost store: %w", err)
	}
	if _, err := db.Exec(createRequestsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cost store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Insert(req RequestInfo) error {
	_, err := s.db.Exec(
		`INSERT INTO request_history (timestamp, model, input_tokens, output_tokens, total_tokens, cost_usd, operation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.Timestamp, req.Model, req.InputTokens, req.OutputTokens, req.TotalTokens, req.CostUSD, req.Operation,
	)
	if err != nil {
		return fmt.Errorf("insert request row: %w", err)
	}
	return nil
}

// PersistedTotal sums every stored request, across all runs.
func (s *Store) PersistedTotal() (float64, error) {
	var total sql.NullFloat64
	if err := s.db.QueryRow(`SELECT SUM(cost_usd) FROM request_history`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum request history: %w", err)
	}
	return total.Float64, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Package store persists SGD backend responses in DuckDB so that
// repeated CLI invocations can skip the network the way the in-process
// memo does within one wrapper instance. Only successful responses are
// ever written; the table is queryable with any DuckDB client.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	sgd "github.com/yeastlab/go-sgd"
)

// Store manages a DuckDB connection holding cached responses. It
// implements sgd.Store.
type Store struct {
	db   *sql.DB
	path string
}

var _ sgd.Store = (*Store)(nil)

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		url VARCHAR PRIMARY KEY,
		status INTEGER,
		header VARCHAR,
		body BLOB,
		fetched_at TIMESTAMP
	)`)
	return err
}

// Get returns the cached response for url, if any.
func (s *Store) Get(url string) (*sgd.Response, bool, error) {
	var (
		status     int
		headerJSON string
		body       []byte
	)
	err := s.db.QueryRow(
		`SELECT status, header, body FROM responses WHERE url = ?`, url,
	).Scan(&status, &headerJSON, &body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query response cache: %w", err)
	}

	resp := &sgd.Response{
		StatusCode: status,
		Body:       body,
		URL:        url,
	}
	if headerJSON != "" {
		if err := json.Unmarshal([]byte(headerJSON), &resp.Header); err != nil {
			return nil, false, fmt.Errorf("decode cached header: %w", err)
		}
	}
	return resp, true, nil
}

// Put stores a response, replacing any previous entry for its URL.
func (s *Store) Put(url string, resp *sgd.Response) error {
	headerJSON, err := json.Marshal(resp.Header)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO responses (url, status, header, body, fetched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		url, resp.StatusCode, string(headerJSON), resp.Body, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

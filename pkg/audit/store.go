package audit

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Column widths from the audit_log schema. Values are truncated rather
// than rejected; a too-long action must not fail the append.
const (
	maxActionLength  = 50
	maxDetailsLength = 100
)

// Record is one audit trail entry. Timestamp is the request start time;
// Action encodes method and path; Details carries the response status.
type Record struct {
	Timestamp time.Time
	Action    string
	Details   string
}

// Store handles audit record persistence to the database
type Store struct {
	db *sql.DB
}

// NewStore creates an audit store on its own connection.
func NewStore(dbURL string) (*Store, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection.
// Useful for sharing the server pool and for testing with sqlmock.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save appends one record to the audit trail. The timestamp is stored as
// ISO-8601 text in UTC.
func (s *Store) Save(record Record) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO audit_log (timestamp, action, details)
		VALUES ($1, $2, $3)
	`,
		record.Timestamp.UTC().Format(time.RFC3339),
		truncate(record.Action, maxActionLength),
		truncate(record.Details, maxDetailsLength),
	)
	return err
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
	_ "github.com/marcboeker/go-duckdb"
)

// InMemoryPath selects a private in-memory database
const InMemoryPath = ":memory:"

// DB wraps a DuckDB connection and stores session state
type DB struct {
	conn *sql.DB
	mu   sync.Mutex // Protects all database operations from concurrent access
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	dsn := dbPath
	if dsn == InMemoryPath {
		dsn = ""
	}

	// Open DuckDB connection
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	// One connection keeps an in-memory database alive between calls
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}

	if err := db.InitializeSchema(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// InitializeSchema creates the sessions table and its indexes if missing
func (db *DB) InitializeSchema(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := db.conn.ExecContext(ctx, BuildSessionsTableSQL()); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	for _, stmt := range BuildIndexesSQL() {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveSession inserts or replaces a session row
func (db *DB) SaveSession(ctx context.Context, s *types.Session) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	seedJSON, err := json.Marshal(s.Seed)
	if err != nil {
		return fmt.Errorf("failed to marshal seed: %w", err)
	}

	placeholders := make([]string, len(sessionColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		tableSessions,
		strings.Join(sessionColumns, ", "),
		strings.Join(placeholders, ", "))

	_, err = db.conn.ExecContext(ctx, query,
		s.ID,
		s.ParentID,
		s.Origin,
		string(seedJSON),
		s.Draws,
		s.Locale,
		s.LocaleFallback,
		s.Checksum,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}

	return nil
}

// GetSession retrieves a session by its ID.
// A missing row returns an error wrapping session.ErrNotFound.
func (db *DB) GetSession(ctx context.Context, id string) (*types.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?",
		strings.Join(sessionColumns, ", "), tableSessions)

	s, err := scanSession(db.conn.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", session.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	return s, nil
}

// ListSessions returns every session ordered by creation time
func (db *DB) ListSessions(ctx context.Context) ([]*types.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at, id",
		strings.Join(sessionColumns, ", "), tableSessions)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*types.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// DeleteSession removes a session.
// A missing row returns an error wrapping session.ErrNotFound.
func (db *DB) DeleteSession(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	result, err := db.conn.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", tableSessions), id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", session.ErrNotFound, id)
	}

	return nil
}

// GetSessionCount returns the number of stored sessions
func (db *DB) GetSessionCount(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", tableSessions)
	if err := db.conn.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*types.Session, error) {
	s := &types.Session{}
	var seedJSON string

	err := row.Scan(
		&s.ID,
		&s.ParentID,
		&s.Origin,
		&seedJSON,
		&s.Draws,
		&s.Locale,
		&s.LocaleFallback,
		&s.Checksum,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(seedJSON), &s.Seed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed: %w", err)
	}

	return s, nil
}

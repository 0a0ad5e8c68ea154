// Package journal keeps pre-rewrite file snapshots in a SQLite database so
// an in-place conversion can be undone.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Snapshots kept per file; older ones are pruned on each new record.
const keepPerFile = 10

// Journal is an open snapshot store.
type Journal struct {
	db *sql.DB
}

// DefaultPath returns the journal location under the user cache directory.
func DefaultPath() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(cache, "ascii-blocks", "journal.db"), nil
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			taken_at TEXT NOT NULL,
			content TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_snapshots_path ON snapshots(path)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots index: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores content as the newest snapshot for path and prunes old ones.
// Paths are stored absolute so the same file journals consistently from any
// working directory. Returns the snapshot ID.
func (j *Journal) Record(path, content string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := j.db.Exec(
		`INSERT INTO snapshots (id, path, taken_at, content) VALUES (?, ?, ?, ?)`,
		id, abs, ts, content,
	); err != nil {
		return "", fmt.Errorf("record snapshot: %w", err)
	}

	_, err = j.db.Exec(`
		DELETE FROM snapshots WHERE path = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE path = ?
			ORDER BY taken_at DESC, rowid DESC LIMIT ?
		)`, abs, abs, keepPerFile)
	if err != nil {
		return "", fmt.Errorf("prune snapshots: %w", err)
	}
	return id, nil
}

// Restore pops the newest snapshot for path, returning its content. The
// second return is false when the journal has nothing for this file.
func (j *Journal) Restore(path string) (string, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}

	var id, content string
	err = j.db.QueryRow(
		`SELECT id, content FROM snapshots WHERE path = ? ORDER BY taken_at DESC, rowid DESC LIMIT 1`,
		abs,
	).Scan(&id, &content)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load snapshot: %w", err)
	}

	if _, err := j.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return "", false, fmt.Errorf("drop snapshot: %w", err)
	}
	return content, true, nil
}

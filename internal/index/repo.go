package index

import (
	"fmt"
	"strings"
	"time"

	"github.com/dokonepal/doko/internal/models"
)

const defaultLimit = 50

// Insert records one activity entry. Re-inserting an id already present is
// a no-op, so replaying the in-memory feed after a reload is safe.
func (db *DB) Insert(entry models.Activity) error {
	_, err := db.conn.Exec(`
		INSERT OR IGNORE INTO activity (id, kind, message, created_at)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Kind, entry.Message, entry.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("index: insert activity: %w", err)
	}
	return nil
}

// Recent returns the newest entries, newest first.
func (db *DB) Recent(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := db.conn.Query(`
		SELECT id, kind, message, created_at
		FROM activity
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("index: recent: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose message contains term, optionally narrowed
// to one kind, newest first. The match is case-insensitive.
func (db *DB) Search(term, kind string, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	where := []string{"1=1"}
	args := []any{}
	if term = strings.TrimSpace(term); term != "" {
		where = append(where, "message LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(term)+"%")
	}
	if kind != "" {
		where = append(where, "kind = ?")
		args = append(args, kind)
	}
	args = append(args, limit)

	rows, err := db.conn.Query(`
		SELECT id, kind, message, created_at
		FROM activity
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// CountByKind returns the total number of entries per activity kind.
func (db *DB) CountByKind() (map[string]int, error) {
	rows, err := db.conn.Query(`SELECT kind, COUNT(*) FROM activity GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("index: count by kind: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("index: scan count: %w", err)
		}
		out[kind] = n
	}
	return out, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]models.Activity, error) {
	out := []models.Activity{}
	for rows.Next() {
		var e models.Activity
		var created time.Time
		if err := rows.Scan(&e.ID, &e.Kind, &e.Message, &created); err != nil {
			return nil, fmt.Errorf("index: scan entry: %w", err)
		}
		e.Timestamp = created
		out = append(out, e)
	}
	return out, rows.Err()
}

// escapeLike escapes LIKE metacharacters in a user-supplied term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

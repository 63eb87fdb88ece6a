// Package history keeps a SQLite index of finished exports. It backs the
// "last used folder" default and the CLI's -history listing.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"maptojson/internal/export"
)

type Entry struct {
	ID          string        `json:"id"`
	LevelName   string        `json:"level_name"`
	Path        string        `json:"path"`
	Folder      string        `json:"folder"`
	Bytes       int64         `json:"bytes"`
	Compressed  bool          `json:"compressed"`
	Digest      string        `json:"digest"`
	NamesDigest string        `json:"names_digest"`
	Counts      export.Counts `json:"counts"`
	CreatedAt   time.Time     `json:"created_at"`
}

// FromResult builds an entry for a finished export. ID and CreatedAt are
// filled in by Record when empty.
func FromResult(res export.Result, namesDigest string) Entry {
	return Entry{
		LevelName:   res.LevelName,
		Path:        res.Path,
		Folder:      filepath.Dir(res.Path),
		Bytes:       res.Bytes,
		Compressed:  res.Compressed,
		Digest:      res.Digest,
		NamesDigest: namesDigest,
		Counts:      res.Counts,
	}
}

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteHistory struct {
	db   *sql.DB
	once sync.Once
}

func OpenSQLite(path string) (*SQLiteHistory, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteHistory{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exports (
			id TEXT PRIMARY KEY,
			level_name TEXT NOT NULL,
			path TEXT NOT NULL,
			folder TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			compressed INTEGER NOT NULL,
			digest TEXT NOT NULL,
			names_digest TEXT NOT NULL,
			counts_json TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_exports_level ON exports(level_name, created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteHistory) Close() error {
	var err error
	s.once.Do(func() {
		err = s.db.Close()
	})
	return err
}

// Record stores e and returns it with ID and CreatedAt populated.
func (s *SQLiteHistory) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Folder == "" && e.Path != "" {
		e.Folder = filepath.Dir(e.Path)
	}
	counts, err := json.Marshal(e.Counts)
	if err != nil {
		return Entry{}, err
	}
	compressed := 0
	if e.Compressed {
		compressed = 1
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO exports(id,level_name,path,folder,bytes,compressed,digest,names_digest,counts_json,created_at)
		 VALUES(?,?,?,?,?,?,?,?,?,?)`,
		e.ID, e.LevelName, e.Path, e.Folder, e.Bytes, compressed, e.Digest, e.NamesDigest, string(counts),
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record export: %w", err)
	}
	return e, nil
}

// LastFolder returns the folder of the newest export, or "" when the
// history is empty.
func (s *SQLiteHistory) LastFolder(ctx context.Context) (string, error) {
	var folder string
	err := s.db.QueryRowContext(ctx,
		`SELECT folder FROM exports ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&folder)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("last folder: %w", err)
	}
	return folder, nil
}

// Recent lists up to n entries, newest first.
func (s *SQLiteHistory) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,level_name,path,folder,bytes,compressed,digest,names_digest,counts_json,created_at
		 FROM exports ORDER BY created_at DESC, rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent exports: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e          Entry
			compressed int
			counts     string
			created    string
		)
		if err := rows.Scan(&e.ID, &e.LevelName, &e.Path, &e.Folder, &e.Bytes, &compressed,
			&e.Digest, &e.NamesDigest, &counts, &created); err != nil {
			return nil, err
		}
		e.Compressed = compressed != 0
		if err := json.Unmarshal([]byte(counts), &e.Counts); err != nil {
			return nil, fmt.Errorf("export %s counts: %w", e.ID, err)
		}
		if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("export %s created_at: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

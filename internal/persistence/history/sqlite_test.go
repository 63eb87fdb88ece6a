package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"maptojson/internal/export"
)

func TestSQLiteHistory_RecordAndLastFolder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "db", "history.db")

	h, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer h.Close()

	if folder, err := h.LastFolder(ctx); err != nil || folder != "" {
		t.Fatalf("empty LastFolder=%q err=%v", folder, err)
	}

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := FromResult(export.Result{
		Path:      "/maps/a/One.json",
		LevelName: "One",
		Bytes:     1200,
		Digest:    "aa",
		Counts:    export.Counts{Points: 4},
	}, "names1")
	first.CreatedAt = base
	rec, err := h.Record(ctx, first)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ID == "" || rec.Folder != "/maps/a" {
		t.Fatalf("record=%+v", rec)
	}

	second := FromResult(export.Result{Path: "/maps/b/Two.json.zst", LevelName: "Two", Compressed: true}, "names1")
	second.CreatedAt = base.Add(100 * time.Millisecond)
	if _, err := h.Record(ctx, second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	folder, err := h.LastFolder(ctx)
	if err != nil {
		t.Fatalf("LastFolder: %v", err)
	}
	if folder != "/maps/b" {
		t.Fatalf("LastFolder=%q want /maps/b", folder)
	}

	recent, err := h.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent=%d want 2", len(recent))
	}
	if recent[0].LevelName != "Two" || !recent[0].Compressed {
		t.Fatalf("newest=%+v", recent[0])
	}
	if recent[1].Counts.Points != 4 || recent[1].Bytes != 1200 || recent[1].NamesDigest != "names1" {
		t.Fatalf("oldest=%+v", recent[1])
	}
	if !recent[1].CreatedAt.Equal(base) {
		t.Fatalf("created_at=%v want %v", recent[1].CreatedAt, base)
	}
}

func TestSQLiteHistory_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	h, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if _, err := h.Record(ctx, Entry{LevelName: "Keep", Path: "/x/Keep.json"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	var (
		name   string
		folder string
	)
	row := db.QueryRow(`SELECT level_name,folder FROM exports LIMIT 1`)
	if err := row.Scan(&name, &folder); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if name != "Keep" || folder != "/x" {
		t.Fatalf("row mismatch: name=%q folder=%q", name, folder)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected error")
	}
}

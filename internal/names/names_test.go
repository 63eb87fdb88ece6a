package names

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"maptojson/internal/level"
)

func TestDefault_MonsterTable(t *testing.T) {
	tables := Default()
	if n := tables.MonsterName(2); !n.Valid || n.Value != "Tick Kamakazi" {
		t.Fatalf("monster 2=%+v want Tick Kamakazi", n)
	}
	if n := tables.MonsterName(9999); n.Valid {
		t.Fatalf("monster 9999 resolved to %q", n.Value)
	}
	if n := tables.MonsterName(-1); n.Valid {
		t.Fatalf("monster -1 resolved to %q", n.Value)
	}
	if tables.Digest == "" {
		t.Fatalf("expected digest")
	}
}

func TestDefault_CollectionTables(t *testing.T) {
	tables := Default()
	if n := tables.WallCollectionName(4); n.Value != "Pfhor" {
		t.Fatalf("wall 4=%q want Pfhor", n.Value)
	}
	if n := tables.LandscapeName(3); n.Value != "Outer Space" {
		t.Fatalf("landscape 3=%q want Outer Space", n.Value)
	}
	if n := tables.WallCollectionName(5); n.Valid {
		t.Fatalf("wall 5 should not resolve")
	}
}

func TestObjectSubtype_PerType(t *testing.T) {
	tables := Default()
	if _, ok := tables.ObjectSubtype(level.ObjectPlayer, 0); ok {
		t.Fatalf("player should have no subtype")
	}
	if _, ok := tables.ObjectSubtype(level.ObjectGoal, 0); ok {
		t.Fatalf("goal should have no subtype")
	}
	cases := []struct {
		typ  level.ObjectType
		idx  int16
		want string
	}{
		{level.ObjectMonster, 0, "Tick Energy"},
		{level.ObjectScenery, 0, "(L) Light Dirt"},
		{level.ObjectItem, 1, "Magnum Pistol"},
		{level.ObjectSound, 5, "Wind"},
	}
	for _, c := range cases {
		n, ok := tables.ObjectSubtype(c.typ, c.idx)
		if !ok || n.Value != c.want {
			t.Fatalf("%s %d=%+v want %q", c.typ, c.idx, n, c.want)
		}
	}
}

func TestLoad_OverrideFallsBackPerTable(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "names.yaml")
	if err := os.WriteFile(p, []byte("monsters:\n  - Bob\n  - Fred\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tables, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := tables.MonsterName(1); n.Value != "Fred" {
		t.Fatalf("monster 1=%q want Fred", n.Value)
	}
	if n := tables.MonsterName(2); n.Valid {
		t.Fatalf("monster 2 should be out of range in override")
	}
	if n := tables.ItemName(0); n.Value != "Knife" {
		t.Fatalf("items should fall back to built-in, got %q", n.Value)
	}
	if tables.Digest == Default().Digest {
		t.Fatalf("override digest should differ from built-in")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "names.yaml")
	if err := os.WriteFile(p, []byte("monsters: {"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestName_MarshalJSON(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]Name{{}, {Value: "(S) Bob & Blood", Valid: true}}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got, want := buf.String(), "[null,\"(S) Bob & Blood\"]\n"; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

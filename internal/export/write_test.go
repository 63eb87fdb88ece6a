package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"maptojson/internal/level"
)

func sampleLevel() level.Level {
	poly := level.Polygon{
		Type:           level.PolygonNormal,
		VertexCount:    3,
		FloorTexture:   level.NewShapeDescriptor(17, 0, 1),
		CeilingTexture: level.EmptyShape,
		CeilingHeight:  1024,
		MediaIndex:     0,
		AmbientSound:   0,
		RandomSound:    -1,
	}
	for i := 0; i < level.MaxVertices; i++ {
		poly.AdjacentPolygonIndexes[i] = -1
	}
	poly.EndpointIndexes = [level.MaxVertices]int16{0, 1, 2}
	poly.LineIndexes = [level.MaxVertices]int16{0, 1, 2}
	poly.SideIndexes = [level.MaxVertices]int16{0, -1, -1}

	return level.Level{
		Name:        "Waterloo <Waterpark>",
		Environment: 0,
		Landscape:   2,
		Mission:     level.MissionExtermination,
		EntryPoints: level.EntrySinglePlayer | level.EntryMultiplayerCooperative,
		Endpoints:   []level.Point{{X: 0, Y: 0}, {X: 1024, Y: 0}, {X: 0, Y: 1024}},
		Lines: []level.Line{
			{EndpointIndexes: [2]int16{0, 1}, Flags: level.LineSolid, ClockwisePolygonSideIndex: 0, CounterclockwisePolygonSideIndex: -1, ClockwisePolygonOwner: 0, CounterclockwisePolygonOwner: -1},
			{EndpointIndexes: [2]int16{1, 2}, Flags: level.LineSolid, ClockwisePolygonSideIndex: -1, CounterclockwisePolygonSideIndex: -1, ClockwisePolygonOwner: 0, CounterclockwisePolygonOwner: -1},
			{EndpointIndexes: [2]int16{2, 0}, Flags: level.LineSolid, ClockwisePolygonSideIndex: -1, CounterclockwisePolygonSideIndex: -1, ClockwisePolygonOwner: 0, CounterclockwisePolygonOwner: -1},
		},
		Polygons: []level.Polygon{poly},
		Objects: []level.MapObject{
			{Type: level.ObjectPlayer, PolygonIndex: 0, X: 100, Y: 100},
			{Type: level.ObjectMonster, Index: 2, PolygonIndex: 0, X: 200, Y: 200, Flags: level.ObjectDeaf},
			{Type: level.ObjectSound, Index: 0, Facing: -2, PolygonIndex: 0},
		},
		Sides: []level.Side{{
			Type:        level.SideFull,
			Primary:     level.TextureDefinition{Texture: level.NewShapeDescriptor(17, 0, 4)},
			Secondary:   level.TextureDefinition{Texture: level.EmptyShape},
			Transparent: level.TextureDefinition{Texture: level.EmptyShape},
			Flags:       level.SideIsControlPanel | level.SideControlPanelStatus,
			LineIndex:   0,
		}},
		Platforms: []level.Platform{{Type: level.PlatformSphtDoor, Flags: level.PlatformIsDoor, Tag: -1, PolygonIndex: 0}},
		Lights: []level.Light{{
			Type:          level.LightNormal,
			Flags:         level.LightInitiallyActive,
			TagIndex:      -1,
			PrimaryActive: level.LightFunction{LightingFunction: level.LightingConstant, Period: 30, Intensity: 1},
		}},
		ItemPlacement:    []level.Placement{{InitialCount: 1, RandomChance: 65535}},
		MonsterPlacement: []level.Placement{{}, {}, {MinimumCount: 2, RandomLocation: true}},
		Annotations:      []level.Annotation{{X: 10, Y: 20, PolygonIndex: 0, Text: "start"}},
		Medias:           []level.Media{{Type: 0, LightIndex: 0, High: 256, MinimumLightIntensity: 0.5}},
		AmbientSounds:    []level.AmbientSound{{SoundIndex: 3, Volume: 100}},
		RandomSounds: []level.RandomSound{
			{SoundIndex: 1, Flags: level.RandomSoundNonDirectional, Pitch: 1},
			{SoundIndex: 2, Direction: 128, DeltaDirection: 16, Pitch: 1},
		},
	}
}

func decodeFile(t *testing.T, path string) map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func TestWriteFile_SinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	e := New(nil, DefaultOptions())
	res, err := e.WriteFile(path, level.Level{Name: "One", Endpoints: []level.Point{{X: 100, Y: 200}}})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if res.Counts.Points != 1 || res.Counts.Lines != 0 {
		t.Fatalf("counts=%+v", res.Counts)
	}

	doc := decodeFile(t, path)
	points := doc["points"].([]any)
	if len(points) != 1 {
		t.Fatalf("points=%v", points)
	}
	p := points[0].(map[string]any)
	if p["x"] != float64(100) || p["y"] != float64(200) {
		t.Fatalf("point=%v", p)
	}
	for _, k := range []string{"lines", "polygons", "objects", "sides", "platforms", "lights",
		"itemPlacement", "monsterPlacement", "annotations", "medias", "ambientSounds", "randomSounds"} {
		arr, ok := doc[k].([]any)
		if !ok || len(arr) != 0 {
			t.Fatalf("%s=%v want []", k, doc[k])
		}
	}
	if _, ok := doc["mapInfo"].(map[string]any); !ok {
		t.Fatalf("mapInfo missing")
	}
}

func TestWriteFile_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmt.json")
	e := New(nil, DefaultOptions())
	lvl := sampleLevel()
	res, err := e.WriteFile(path, lvl)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if int64(len(b)) != res.Bytes {
		t.Fatalf("bytes=%d file=%d", res.Bytes, len(b))
	}
	if !strings.HasPrefix(string(b), "{\n  \"points\": [") {
		t.Fatalf("unexpected head: %q", b[:min(len(b), 40)])
	}
	if !strings.HasSuffix(string(b), "}\n") {
		t.Fatalf("missing trailing newline")
	}
	if !strings.Contains(string(b), `"name": "Waterloo <Waterpark>"`) {
		t.Fatalf("level name should not be HTML escaped")
	}
	keys := []string{`"points"`, `"lines"`, `"polygons"`, `"objects"`, `"sides"`, `"platforms"`, `"lights"`,
		`"itemPlacement"`, `"monsterPlacement"`, `"annotations"`, `"medias"`, `"ambientSounds"`, `"randomSounds"`, `"mapInfo"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(string(b), "\n  "+k+":")
		if i <= last {
			t.Fatalf("key %s out of order", k)
		}
		last = i
	}
}

func TestWriteFile_MatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", "map.schema.json"))
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	path := filepath.Join(t.TempDir(), "map.json")
	if _, err := New(nil, DefaultOptions()).WriteFile(path, sampleLevel()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var v any
	b, _ := os.ReadFile(path)
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := schema.Validate(v); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestWriteFile_PreservesOrderAndLength(t *testing.T) {
	lvl := sampleLevel()
	path := filepath.Join(t.TempDir(), "order.json")
	res, err := New(nil, DefaultOptions()).WriteFile(path, lvl)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if res.Counts.Objects != len(lvl.Objects) || res.Counts.MonsterPlacement != 3 || res.Counts.RandomSounds != 2 {
		t.Fatalf("counts=%+v", res.Counts)
	}
	doc := decodeFile(t, path)
	objects := doc["objects"].([]any)
	wantTypes := []string{"Player", "Monster", "Sound"}
	for i, o := range objects {
		if got := o.(map[string]any)["type"]; got != wantTypes[i] {
			t.Fatalf("objects[%d].type=%v want %s", i, got, wantTypes[i])
		}
	}
	mp := doc["monsterPlacement"].([]any)
	if mp[2].(map[string]any)["minimumCount"] != float64(2) {
		t.Fatalf("monsterPlacement[2]=%v", mp[2])
	}
}

func TestWriteFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	e := New(nil, DefaultOptions())
	lvl := sampleLevel()
	a, err := e.WriteFile(filepath.Join(dir, "a.json"), lvl)
	if err != nil {
		t.Fatalf("WriteFile a: %v", err)
	}
	b, err := e.WriteFile(filepath.Join(dir, "b.json"), lvl)
	if err != nil {
		t.Fatalf("WriteFile b: %v", err)
	}
	if a.Digest != b.Digest {
		t.Fatalf("digest mismatch %s != %s", a.Digest, b.Digest)
	}
	ra, _ := os.ReadFile(a.Path)
	rb, _ := os.ReadFile(b.Path)
	if !bytes.Equal(ra, rb) {
		t.Fatalf("outputs differ")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		path := filepath.Join(t.TempDir(), "x.json")
		if err := os.WriteFile(path, bytes.Repeat([]byte("stale "), 10000), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}
		opts := DefaultOptions()
		opts.Atomic = atomic
		if _, err := New(nil, opts).WriteFile(path, level.Level{Name: "fresh"}); err != nil {
			t.Fatalf("WriteFile atomic=%v: %v", atomic, err)
		}
		doc := decodeFile(t, path)
		if doc["mapInfo"].(map[string]any)["name"] != "fresh" {
			t.Fatalf("atomic=%v: not overwritten", atomic)
		}
		entries, _ := os.ReadDir(filepath.Dir(path))
		if len(entries) != 1 {
			t.Fatalf("atomic=%v: leftover files %v", atomic, entries)
		}
	}
}

func TestWriteFile_EmptyPath(t *testing.T) {
	_, err := New(nil, DefaultOptions()).WriteFile("  ", level.Level{})
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("err=%v want ErrEmptyPath", err)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "x.json")
	if _, err := New(nil, DefaultOptions()).WriteFile(path, level.Level{}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written")
	}
}

func TestWriteFile_Zstd(t *testing.T) {
	dir := t.TempDir()
	e := New(nil, DefaultOptions())
	lvl := sampleLevel()
	plain, err := e.WriteFile(filepath.Join(dir, "map.json"), lvl)
	if err != nil {
		t.Fatalf("WriteFile plain: %v", err)
	}
	packed, err := e.WriteFile(filepath.Join(dir, "map.json.zst"), lvl)
	if err != nil {
		t.Fatalf("WriteFile zst: %v", err)
	}
	if !packed.Compressed || plain.Compressed {
		t.Fatalf("compressed flags plain=%v packed=%v", plain.Compressed, packed.Compressed)
	}
	if packed.Digest != plain.Digest {
		t.Fatalf("digest should cover the uncompressed text")
	}

	f, err := os.Open(packed.Path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()
	got, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	want, _ := os.ReadFile(plain.Path)
	if !bytes.Equal(got, want) {
		t.Fatalf("decompressed output differs from plain output")
	}
}

func TestWriteFile_CompressNever(t *testing.T) {
	opts := DefaultOptions()
	opts.Compress = CompressNever
	path := filepath.Join(t.TempDir(), "map.zst")
	res, err := New(nil, opts).WriteFile(path, level.Level{})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if res.Compressed {
		t.Fatalf("should not compress")
	}
	decodeFile(t, path)
}

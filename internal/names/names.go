// Package names resolves the small numeric subtype codes stored in a map
// (monster, scenery, item and sound kinds, texture and landscape
// collections) to human readable names.
//
// The tables are data, not code: Default parses the built-in names.yaml and
// Load reads a replacement file so other content sets can be described
// without rebuilding.
package names

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"maptojson/internal/level"
)

//go:embed names.yaml
var builtin []byte

type Tables struct {
	Monsters        []string `yaml:"monsters"`
	Scenery         []string `yaml:"scenery"`
	Items           []string `yaml:"items"`
	Sounds          []string `yaml:"sounds"`
	WallCollections []string `yaml:"wall_collections"`
	Landscapes      []string `yaml:"landscape_collections"`

	// Digest is the sha256 of the source document.
	Digest string `yaml:"-"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. The result is shared and must not be
// modified.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(builtin)
		if err != nil {
			panic(fmt.Sprintf("names: built-in tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Load reads a names file. Tables the file leaves out are taken from the
// built-in set.
func Load(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def := Default()
	fill := func(dst *[]string, src []string) {
		if *dst == nil {
			*dst = src
		}
	}
	fill(&t.Monsters, def.Monsters)
	fill(&t.Scenery, def.Scenery)
	fill(&t.Items, def.Items)
	fill(&t.Sounds, def.Sounds)
	fill(&t.WallCollections, def.WallCollections)
	fill(&t.Landscapes, def.Landscapes)
	return t, nil
}

func Parse(raw []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("names: %w", err)
	}
	sum := sha256.Sum256(raw)
	t.Digest = hex.EncodeToString(sum[:])
	return &t, nil
}

func (t *Tables) MonsterName(i int) Name        { return lookup(t.Monsters, i) }
func (t *Tables) SceneryName(i int) Name        { return lookup(t.Scenery, i) }
func (t *Tables) ItemName(i int) Name           { return lookup(t.Items, i) }
func (t *Tables) SoundName(i int) Name          { return lookup(t.Sounds, i) }
func (t *Tables) WallCollectionName(i int) Name { return lookup(t.WallCollections, i) }
func (t *Tables) LandscapeName(i int) Name      { return lookup(t.Landscapes, i) }

// ObjectSubtype resolves an object's subtype code through the table of its
// type. ok is false for players and goals, which have no subtype name.
func (t *Tables) ObjectSubtype(typ level.ObjectType, index int16) (n Name, ok bool) {
	switch typ {
	case level.ObjectMonster:
		return t.MonsterName(int(index)), true
	case level.ObjectScenery:
		return t.SceneryName(int(index)), true
	case level.ObjectItem:
		return t.ItemName(int(index)), true
	case level.ObjectSound:
		return t.SoundName(int(index)), true
	default:
		return Name{}, false
	}
}

func lookup(table []string, i int) Name {
	if i < 0 || i >= len(table) {
		return Name{}
	}
	return Name{Value: table[i], Valid: true}
}

// Name is a resolved table entry. The zero value means "no name" and
// encodes as JSON null.
type Name struct {
	Value string
	Valid bool
}

func (n Name) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.Value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

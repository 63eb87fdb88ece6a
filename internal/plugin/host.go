package plugin

import "maptojson/internal/level"

// SessionFunc adapts a function to Session.
type SessionFunc func() level.Level

func (f SessionFunc) Level() level.Level { return f() }

// MapSettings is a fixed settings store.
type MapSettings map[string]string

func (m MapSettings) Setting(key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}

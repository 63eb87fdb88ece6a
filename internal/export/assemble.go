package export

import "maptojson/internal/level"

// Assemble translates every collection of l, in stored order, into one
// Document. Array position is the entity's index, so nothing is filtered,
// reordered or deduplicated. Cross references are not checked.
func (t *Translator) Assemble(l *level.Level) *Document {
	return &Document{
		Points:           translateAll(l.Endpoints, t.Point),
		Lines:            translateAll(l.Lines, t.Line),
		Polygons:         translateAll(l.Polygons, t.Polygon),
		Objects:          translateAll(l.Objects, t.MapObject),
		Sides:            translateAll(l.Sides, t.Side),
		Platforms:        translateAll(l.Platforms, t.Platform),
		Lights:           translateAll(l.Lights, t.Light),
		ItemPlacement:    translateAll(l.ItemPlacement, t.Placement),
		MonsterPlacement: translateAll(l.MonsterPlacement, t.Placement),
		Annotations:      translateAll(l.Annotations, t.Annotation),
		Medias:           translateAll(l.Medias, t.Media),
		AmbientSounds:    translateAll(l.AmbientSounds, t.AmbientSound),
		RandomSounds:     translateAll(l.RandomSounds, t.RandomSound),
		MapInfo:          t.MapInfo(l),
	}
}

// translateAll never returns nil so empty categories encode as [].
func translateAll[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

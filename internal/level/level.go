package level

import "slices"

// Level is the whole editable map as the host editor holds it in memory.
// Every cross reference between collections is a plain index into a sibling
// slice; a negative index means "absent".
type Level struct {
	Name string

	// Environment is the wall texture collection code, Landscape the
	// landscape collection code.
	Environment int16
	Landscape   int16

	Mission     MissionFlags
	EnvFlags    EnvironmentFlags
	EntryPoints EntryPointFlags

	Endpoints        []Point
	Lines            []Line
	Polygons         []Polygon
	Objects          []MapObject
	Sides            []Side
	Platforms        []Platform
	Lights           []Light
	ItemPlacement    []Placement
	MonsterPlacement []Placement
	Annotations      []Annotation
	Medias           []Media
	AmbientSounds    []AmbientSound
	RandomSounds     []RandomSound
}

// Clone returns a deep copy that shares no slices with l. Export runs on a
// clone so host edits cannot race with an export in progress.
func (l Level) Clone() Level {
	out := l
	out.Endpoints = slices.Clone(l.Endpoints)
	out.Lines = slices.Clone(l.Lines)
	out.Polygons = slices.Clone(l.Polygons)
	out.Objects = slices.Clone(l.Objects)
	out.Sides = slices.Clone(l.Sides)
	out.Platforms = slices.Clone(l.Platforms)
	out.Lights = slices.Clone(l.Lights)
	out.ItemPlacement = slices.Clone(l.ItemPlacement)
	out.MonsterPlacement = slices.Clone(l.MonsterPlacement)
	out.Annotations = slices.Clone(l.Annotations)
	out.Medias = slices.Clone(l.Medias)
	out.AmbientSounds = slices.Clone(l.AmbientSounds)
	out.RandomSounds = slices.Clone(l.RandomSounds)
	return out
}

// MissionFlags is the mission type bitfield of the map info chunk.
type MissionFlags uint16

const (
	MissionExtermination MissionFlags = 1 << iota
	MissionExploration
	MissionRetrieval
	MissionRepair
	MissionRescue
	MissionExplorationM1
	MissionRescueM1
	MissionRepairM1
)

func (f MissionFlags) Has(bit MissionFlags) bool { return f&bit != 0 }

// EnvironmentFlags holds hazard and behavior switches for the whole level.
type EnvironmentFlags uint16

const (
	EnvVacuum EnvironmentFlags = 1 << iota
	EnvMagnetic
	EnvRebellion
	EnvLowGravity
	EnvGlueM1
	EnvOuchM1
	EnvRebellionM1
	EnvSongIndexM1
	EnvTerminalsStopTime
	EnvM1ActivationRange
	EnvM1Weapons
	_
	_
	EnvNetwork
	EnvSinglePlayer
)

func (f EnvironmentFlags) Has(bit EnvironmentFlags) bool { return f&bit != 0 }

// EntryPointFlags lists the game modes the level supports.
type EntryPointFlags uint32

const (
	EntrySinglePlayer EntryPointFlags = 1 << iota
	EntryMultiplayerCooperative
	EntryMultiplayerCarnage
	EntryKillTheManWithTheBall
	EntryKingOfTheHill
	EntryDefense
	EntryRugby
	EntryCaptureTheFlag
)

func (f EntryPointFlags) Has(bit EntryPointFlags) bool { return f&bit != 0 }

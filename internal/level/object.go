package level

type ObjectType int16

const (
	ObjectMonster ObjectType = iota
	ObjectScenery
	ObjectItem
	ObjectPlayer
	ObjectGoal
	ObjectSound
)

var objectTypeNames = [...]string{"Monster", "Scenery", "Item", "Player", "Goal", "Sound"}

func (t ObjectType) String() string { return enumName(objectTypeNames[:], int(t)) }

type ObjectFlags uint16

const (
	// ObjectInvisible doubles as "teleports in" for monsters and items.
	ObjectInvisible ObjectFlags = 1 << iota
	// ObjectOnPlatform marks a sound object as a platform sound.
	ObjectOnPlatform
	ObjectFromCeiling
	ObjectBlind
	ObjectDeaf
	// ObjectFloats doubles as "teleports out" for monsters.
	ObjectFloats
	ObjectNetworkOnly
)

func (f ObjectFlags) Has(bit ObjectFlags) bool { return f&bit != 0 }

type ActivationBias int16

const (
	ActivateOnPlayer ActivationBias = iota
	ActivateOnNearestHostile
	ActivateOnGoal
	ActivateRandomly
)

var activationBiasNames = [...]string{"Player", "NearestHostile", "Goal", "Random"}

func (b ActivationBias) String() string { return enumName(activationBiasNames[:], int(b)) }

// MapObject is a placed instance: monster, scenery, item, player start, goal
// or sound source. Index is the subtype code within Type.
type MapObject struct {
	Type         ObjectType
	Index        int16
	Facing       int16
	PolygonIndex int16
	X, Y, Z      int16
	Flags        ObjectFlags

	ActivationBias ActivationBias
}

// UseLightForVolume reports whether a sound object takes its volume from a
// light; the engine stores that as a negative facing.
func (o MapObject) UseLightForVolume() bool { return o.Facing < 0 }

// Volume is the direct volume of a sound object.
func (o MapObject) Volume() int16 { return o.Facing }

// Light is the light index whose intensity drives a sound object's volume.
func (o MapObject) Light() int16 { return -o.Facing - 1 }

func (o MapObject) Invisible() bool   { return o.Flags.Has(ObjectInvisible) }
func (o MapObject) OnPlatform() bool  { return o.Flags.Has(ObjectOnPlatform) }
func (o MapObject) FromCeiling() bool { return o.Flags.Has(ObjectFromCeiling) }
func (o MapObject) Blind() bool       { return o.Flags.Has(ObjectBlind) }
func (o MapObject) Deaf() bool        { return o.Flags.Has(ObjectDeaf) }
func (o MapObject) Floats() bool      { return o.Flags.Has(ObjectFloats) }
func (o MapObject) NetworkOnly() bool { return o.Flags.Has(ObjectNetworkOnly) }

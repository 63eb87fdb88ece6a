package level

type PlatformType int16

const (
	PlatformSphtDoor PlatformType = iota
	PlatformSphtSplitDoor
	PlatformLockedSphtDoor
	PlatformSphtPlatform
	PlatformNoisySphtPlatform
	PlatformHeavySphtDoor
	PlatformPfhorDoor
	PlatformHeavySphtPlatform
	PlatformPfhorPlatform
)

var platformTypeNames = [...]string{
	"SphtDoor",
	"SphtSplitDoor",
	"LockedSphtDoor",
	"SphtPlatform",
	"NoisySphtPlatform",
	"HeavySphtDoor",
	"PfhorDoor",
	"HeavySphtPlatform",
	"PfhorPlatform",
}

func (t PlatformType) String() string { return enumName(platformTypeNames[:], int(t)) }

// PlatformFlags is the static behavior bitfield of a platform.
type PlatformFlags uint32

const (
	PlatformInitiallyActive PlatformFlags = 1 << iota
	PlatformInitiallyExtended
	PlatformDeactivatesAtEachLevel
	PlatformDeactivatesAtInitialLevel
	PlatformActivatesAdjacentPlatformsWhenDeactivating
	PlatformExtendsFloorToCeiling
	PlatformComesFromFloor
	PlatformComesFromCeiling
	PlatformCausesDamage
	PlatformDoesNotActivateParent
	PlatformActivatesOnlyOnce
	PlatformActivatesLight
	PlatformDeactivatesLight
	PlatformIsPlayerControllable
	PlatformIsMonsterControllable
	PlatformReversesDirectionWhenObstructed
	PlatformCannotBeExternallyDeactivated
	PlatformUsesNativePolygonHeights
	PlatformDelaysBeforeActivation
	PlatformActivatesAdjacentPlatformsWhenActivating
	PlatformDeactivatesAdjacentPlatformsWhenActivating
	PlatformDeactivatesAdjacentPlatformsWhenDeactivating
	PlatformContractsSlower
	PlatformActivatesAdjacentPlatformsAtEachLevel
	PlatformIsLocked
	PlatformIsSecret
	PlatformIsDoor
)

func (f PlatformFlags) Has(bit PlatformFlags) bool { return f&bit != 0 }

type Platform struct {
	Type          PlatformType
	MinimumHeight int16
	MaximumHeight int16
	Speed         int16
	Delay         int16
	Tag           int16
	Flags         PlatformFlags

	PolygonIndex int16
}

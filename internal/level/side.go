package level

type SideType int16

const (
	SideFull SideType = iota
	SideHigh
	SideLow
	SideComposite
	SideSplit
)

var sideTypeNames = [...]string{"Full", "High", "Low", "Composite", "Split"}

func (t SideType) String() string { return enumName(sideTypeNames[:], int(t)) }

type SideFlags uint16

const (
	SideControlPanelStatus SideFlags = 1 << iota
	SideIsControlPanel
	SideIsRepairSwitch
	SideIsDestructiveSwitch
	SideIsLightedSwitch
	SideSwitchCanBeDestroyed
	SideSwitchCanOnlyBeHitByProjectiles

	SideDirty SideFlags = 0x4000
)

func (f SideFlags) Has(bit SideFlags) bool { return f&bit != 0 }

// TextureDefinition places one texture on a wall face.
type TextureDefinition struct {
	X       int16
	Y       int16
	Texture ShapeDescriptor
}

type Side struct {
	Type  SideType
	Flags SideFlags

	Primary     TextureDefinition
	Secondary   TextureDefinition
	Transparent TextureDefinition

	PrimaryTransferMode     int16
	SecondaryTransferMode   int16
	TransparentTransferMode int16

	PrimaryLightsourceIndex     int16
	SecondaryLightsourceIndex   int16
	TransparentLightsourceIndex int16

	ControlPanelType        int16
	ControlPanelPermutation int16

	PolygonIndex int16
	LineIndex    int16

	AmbientDelta int32
}

func (s Side) IsControlPanel() bool { return s.Flags.Has(SideIsControlPanel) }

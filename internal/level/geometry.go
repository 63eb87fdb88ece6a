package level

import "strconv"

// Point is a map endpoint in world units.
type Point struct {
	X int16
	Y int16
}

type LineFlags uint16

const (
	LineDecorative         LineFlags = 0x0100
	LineHasTransparentSide LineFlags = 0x0200
	LineVariableElevation  LineFlags = 0x0400
	LineElevation          LineFlags = 0x0800
	LineLandscape          LineFlags = 0x1000
	LineTransparent        LineFlags = 0x2000
	LineSolid              LineFlags = 0x4000
)

func (f LineFlags) Has(bit LineFlags) bool { return f&bit != 0 }

type Line struct {
	EndpointIndexes [2]int16
	Flags           LineFlags

	HighestAdjacentFloor  int16
	LowestAdjacentCeiling int16

	ClockwisePolygonSideIndex        int16
	CounterclockwisePolygonSideIndex int16
	ClockwisePolygonOwner            int16
	CounterclockwisePolygonOwner     int16
}

// MaxVertices is the fixed slot count of a polygon's index arrays.
const MaxVertices = 8

type Polygon struct {
	Type        PolygonType
	Permutation int16

	VertexCount            int16
	EndpointIndexes        [MaxVertices]int16
	LineIndexes            [MaxVertices]int16
	SideIndexes            [MaxVertices]int16
	AdjacentPolygonIndexes [MaxVertices]int16

	FloorTexture   ShapeDescriptor
	CeilingTexture ShapeDescriptor
	FloorHeight    int16
	CeilingHeight  int16
	FloorLight     int16
	CeilingLight   int16

	FloorTransferMode   int16
	CeilingTransferMode int16

	MediaIndex   int16
	MediaLight   int16
	AmbientSound int16
	RandomSound  int16
}

type PolygonType int16

const (
	PolygonNormal PolygonType = iota
	PolygonItemImpassable
	PolygonMonsterImpassable
	PolygonHill
	PolygonBase
	PolygonPlatform
	PolygonLightOnTrigger
	PolygonPlatformOnTrigger
	PolygonLightOffTrigger
	PolygonPlatformOffTrigger
	PolygonTeleporter
	PolygonZoneBorder
	PolygonGoal
	PolygonVisibleMonsterTrigger
	PolygonInvisibleMonsterTrigger
	PolygonDualMonsterTrigger
	PolygonItemTrigger
	PolygonMustBeExplored
	PolygonAutomaticExit
	PolygonMinorOuch
	PolygonMajorOuch
	PolygonGlue
	PolygonGlueTrigger
	PolygonSuperglue
)

var polygonTypeNames = [...]string{
	"Normal",
	"ItemImpassable",
	"MonsterImpassable",
	"Hill",
	"Base",
	"Platform",
	"LightOnTrigger",
	"PlatformOnTrigger",
	"LightOffTrigger",
	"PlatformOffTrigger",
	"Teleporter",
	"ZoneBorder",
	"Goal",
	"VisibleMonsterTrigger",
	"InvisibleMonsterTrigger",
	"DualMonsterTrigger",
	"ItemTrigger",
	"MustBeExplored",
	"AutomaticExit",
	"MinorOuch",
	"MajorOuch",
	"Glue",
	"GlueTrigger",
	"Superglue",
}

func (t PolygonType) String() string { return enumName(polygonTypeNames[:], int(t)) }

// ShapeDescriptor is the packed reference to one bitmap of a texture
// collection: bitmap in the low byte, collection in bits 8..12 and the
// color table in bits 13..15.
type ShapeDescriptor uint16

// EmptyShape marks a texture slot that references nothing.
const EmptyShape ShapeDescriptor = 0xFFFF

func NewShapeDescriptor(collection, clut, bitmap uint8) ShapeDescriptor {
	return ShapeDescriptor(uint16(clut&0x7)<<13 | uint16(collection&0x1f)<<8 | uint16(bitmap))
}

func (sd ShapeDescriptor) IsEmpty() bool    { return sd == EmptyShape }
func (sd ShapeDescriptor) Collection() uint8 { return uint8(sd>>8) & 0x1f }
func (sd ShapeDescriptor) CLUT() uint8       { return uint8(sd>>13) & 0x7 }
func (sd ShapeDescriptor) Bitmap() uint8     { return uint8(sd) }

func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return strconv.Itoa(v)
}

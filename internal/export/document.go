package export

import "maptojson/internal/names"

// Document is the top-level JSON object. Field order is key order.
type Document struct {
	Points           []Point        `json:"points"`
	Lines            []Line         `json:"lines"`
	Polygons         []Polygon      `json:"polygons"`
	Objects          []Object       `json:"objects"`
	Sides            []Side         `json:"sides"`
	Platforms        []Platform     `json:"platforms"`
	Lights           []Light        `json:"lights"`
	ItemPlacement    []Placement    `json:"itemPlacement"`
	MonsterPlacement []Placement    `json:"monsterPlacement"`
	Annotations      []Annotation   `json:"annotations"`
	Medias           []Media        `json:"medias"`
	AmbientSounds    []AmbientSound `json:"ambientSounds"`
	RandomSounds     []RandomSound  `json:"randomSounds"`
	MapInfo          MapInfo        `json:"mapInfo"`
}

// Counts holds the array length of every category of a Document.
type Counts struct {
	Points           int `json:"points"`
	Lines            int `json:"lines"`
	Polygons         int `json:"polygons"`
	Objects          int `json:"objects"`
	Sides            int `json:"sides"`
	Platforms        int `json:"platforms"`
	Lights           int `json:"lights"`
	ItemPlacement    int `json:"itemPlacement"`
	MonsterPlacement int `json:"monsterPlacement"`
	Annotations      int `json:"annotations"`
	Medias           int `json:"medias"`
	AmbientSounds    int `json:"ambientSounds"`
	RandomSounds     int `json:"randomSounds"`
}

func (d *Document) Counts() Counts {
	return Counts{
		Points:           len(d.Points),
		Lines:            len(d.Lines),
		Polygons:         len(d.Polygons),
		Objects:          len(d.Objects),
		Sides:            len(d.Sides),
		Platforms:        len(d.Platforms),
		Lights:           len(d.Lights),
		ItemPlacement:    len(d.ItemPlacement),
		MonsterPlacement: len(d.MonsterPlacement),
		Annotations:      len(d.Annotations),
		Medias:           len(d.Medias),
		AmbientSounds:    len(d.AmbientSounds),
		RandomSounds:     len(d.RandomSounds),
	}
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Line struct {
	Points                       [2]int `json:"points"`
	Decorative                   bool   `json:"decorative"`
	HasTransparentSide           bool   `json:"hasTransparentSide"`
	VariableElevation            bool   `json:"variableElevation"`
	Elevation                    bool   `json:"elevation"`
	Landscape                    bool   `json:"landscape"`
	Transparent                  bool   `json:"transparent"`
	Solid                        bool   `json:"solid"`
	HighestAdjacentFloor         int    `json:"highestAdjacentFloor"`
	LowestAdjacentCeiling        int    `json:"lowestAdjacentCeiling"`
	ClockwiseSideIndex           *int   `json:"clockwiseSideIndex"`
	CounterclockwiseSideIndex    *int   `json:"counterclockwiseSideIndex"`
	ClockwisePolygonOwner        *int   `json:"clockwisePolygonOwner"`
	CounterclockwisePolygonOwner *int   `json:"counterclockwisePolygonOwner"`
}

type ShapeDescriptor struct {
	Collection int `json:"collection"`
	CLUT       int `json:"clut"`
	Bitmap     int `json:"bitmap"`
}

type Polygon struct {
	Type                string           `json:"type"`
	Permutation         string           `json:"permutation"`
	Vertices            []int            `json:"vertices"`
	Lines               []int            `json:"lines"`
	Sides               []int            `json:"sides"`
	AdjacentPolygons    []*int           `json:"adjacentPolygons"`
	FloorTexture        *ShapeDescriptor `json:"floorTexture"`
	CeilingTexture      *ShapeDescriptor `json:"ceilingTexture"`
	FloorHeight         int              `json:"floorHeight"`
	CeilingHeight       int              `json:"ceilingHeight"`
	FloorLight          int              `json:"floorLight"`
	CeilingLight        int              `json:"ceilingLight"`
	FloorTransferMode   int              `json:"floorTransferMode"`
	CeilingTransferMode int              `json:"ceilingTransferMode"`
	Media               *PolygonMedia    `json:"media"`
	AmbientSound        *int             `json:"ambientSound"`
	RandomSound         *int             `json:"randomSound"`
}

type PolygonMedia struct {
	Index int `json:"index"`
	Light int `json:"light"`
}

// Object carries both field-set branches; the sound branch and the
// placement branch are mutually exclusive pointers.
type Object struct {
	Type    string      `json:"type"`
	Subtype *names.Name `json:"subtype,omitempty"`

	Volume          *int  `json:"volume,omitempty"`
	VolumeFromLight *int  `json:"volumeFromLight,omitempty"`
	PlatformSound   *bool `json:"platformSound,omitempty"`
	Floats          *bool `json:"floats,omitempty"`

	Facing       *int  `json:"facing,omitempty"`
	TeleportsIn  *bool `json:"teleportsIn,omitempty"`
	TeleportsOut *bool `json:"teleportsOut,omitempty"`

	Polygon     *int `json:"polygon"`
	X           int  `json:"x"`
	Y           int  `json:"y"`
	Z           int  `json:"z"`
	FromCeiling bool `json:"fromCeiling"`
	NetworkOnly bool `json:"networkOnly"`

	ActivationBias *string `json:"activationBias,omitempty"`
	Blind          *bool   `json:"blind,omitempty"`
	Deaf           *bool   `json:"deaf,omitempty"`
}

type TextureDefinition struct {
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Texture      *ShapeDescriptor `json:"texture"`
	TransferMode int              `json:"transferMode"`
	Light        int              `json:"light"`
}

type ControlPanel struct {
	Type                      int  `json:"type"`
	Permutation               int  `json:"permutation"`
	InitialState              bool `json:"initialState"`
	IsRepairSwitch            bool `json:"isRepairSwitch"`
	IsDestructiveSwitch       bool `json:"isDestructiveSwitch"`
	ControlPanelRequiresLight bool `json:"controlPanelRequiresLight"`
	IsDestructibleSwitch      bool `json:"isDestructibleSwitch"`
	IsProjectileSwitch        bool `json:"isProjectileSwitch"`
}

type Side struct {
	Type         string             `json:"type"`
	Primary      *TextureDefinition `json:"primary"`
	Secondary    *TextureDefinition `json:"secondary"`
	Transparent  *TextureDefinition `json:"transparent"`
	ControlPanel *ControlPanel      `json:"controlPanel"`
	PolygonIndex *int               `json:"polygonIndex"`
	LineIndex    *int               `json:"lineIndex"`
	AmbientDelta *int               `json:"ambientDelta,omitempty"`
}

type Platform struct {
	Type          string `json:"type"`
	MinimumHeight int    `json:"minimumHeight"`
	MaximumHeight int    `json:"maximumHeight"`
	Speed         int    `json:"speed"`
	Delay         int    `json:"delay"`
	Tag           *int   `json:"tag"`

	InitiallyActive                              bool `json:"initiallyActive"`
	InitiallyExtended                            bool `json:"initiallyExtended"`
	DeactivatesAtEachLevel                       bool `json:"deactivatesAtEachLevel"`
	DeactivatesAtInitialLevel                    bool `json:"deactivatesAtInitialLevel"`
	ActivatesAdjacentPlatformsWhenDeactivating   bool `json:"activatesAdjacentPlatformsWhenDeactivating"`
	ExtendsFloorToCeiling                        bool `json:"extendsFloorToCeiling"`
	ComesFromFloor                               bool `json:"comesFromFloor"`
	ComesFromCeiling                             bool `json:"comesFromCeiling"`
	CausesDamage                                 bool `json:"causesDamage"`
	DoesNotActivateParent                        bool `json:"doesNotActivateParent"`
	ActivatesOnlyOnce                            bool `json:"activatesOnlyOnce"`
	ActivatesLight                               bool `json:"activatesLight"`
	DeactivatesLight                             bool `json:"deactivatesLight"`
	IsPlayerControllable                         bool `json:"isPlayerControllable"`
	IsMonsterControllable                        bool `json:"isMonsterControllable"`
	ReversesDirectionWhenObstructed              bool `json:"reversesDirectionWhenObstructed"`
	CannotBeExternallyDeactivated                bool `json:"cannotBeExternallyDeactivated"`
	UsesNativePolygonHeights                     bool `json:"usesNativePolygonHeights"`
	DelaysBeforeActivation                       bool `json:"delaysBeforeActivation"`
	ActivatesAdjacentPlatformsWhenActivating     bool `json:"activatesAdjacentPlatformsWhenActivating"`
	DeactivatesAdjacentPlatformsWhenActivating   bool `json:"deactivatesAdjacentPlatformsWhenActivating"`
	DeactivatesAdjacentPlatformsWhenDeactivating bool `json:"deactivatesAdjacentPlatformsWhenDeactivating"`
	ActivatesAdjacentPlatformsAtEachLevel        bool `json:"activatesAdjacentPlatformsAtEachLevel"`
	IsLocked                                     bool `json:"isLocked"`
	IsSecret                                     bool `json:"isSecret"`
	IsDoor                                       bool `json:"isDoor"`
}

type LightFunction struct {
	Function       string  `json:"function"`
	Period         int     `json:"period"`
	DeltaPeriod    int     `json:"deltaPeriod"`
	Intensity      float64 `json:"intensity"`
	DeltaIntensity float64 `json:"deltaIntensity"`
}

type Light struct {
	Type              string        `json:"type"`
	InitiallyActive   bool          `json:"initiallyActive"`
	Stateless         bool          `json:"stateless"`
	Phase             int           `json:"phase"`
	Tag               *int          `json:"tag"`
	PrimaryActive     LightFunction `json:"primaryActive"`
	SecondaryActive   LightFunction `json:"secondaryActive"`
	BecomingActive    LightFunction `json:"becomingActive"`
	PrimaryInactive   LightFunction `json:"primaryInactive"`
	SecondaryInactive LightFunction `json:"secondaryInactive"`
	BecomingInactive  LightFunction `json:"becomingInactive"`
}

type Placement struct {
	InitialCount   int  `json:"initialCount"`
	MinimumCount   int  `json:"minimumCount"`
	MaximumCount   int  `json:"maximumCount"`
	RandomCount    int  `json:"randomCount"`
	RandomPercent  int  `json:"randomPercent"`
	RandomChance   int  `json:"randomChance"`
	RandomLocation bool `json:"randomLocation"`
}

type Annotation struct {
	Type    *int   `json:"type,omitempty"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Polygon *int   `json:"polygon"`
	Text    string `json:"text"`
}

type Media struct {
	Type                   int     `json:"type"`
	SoundObstructedByFloor bool    `json:"soundObstructedByFloor"`
	ControllingLight       int     `json:"controllingLight"`
	DirectionOfCurrent     int     `json:"directionOfCurrent"`
	MagnitudeOfCurrent     int     `json:"magnitudeOfCurrent"`
	MinimumLightIntensity  float64 `json:"minimumLightIntensity"`
	HighTide               int     `json:"highTide"`
	LowTide                int     `json:"lowTide"`
}

type AmbientSound struct {
	Sound  int `json:"sound"`
	Volume int `json:"volume"`
}

// RandomSound carries either NonDirectional or the Direction pair, never
// both.
type RandomSound struct {
	Sound          int     `json:"sound"`
	Volume         int     `json:"volume"`
	DeltaVolume    int     `json:"deltaVolume"`
	Period         int     `json:"period"`
	DeltaPeriod    int     `json:"deltaPeriod"`
	NonDirectional *bool   `json:"nonDirectional,omitempty"`
	Direction      *int    `json:"direction,omitempty"`
	DeltaDirection *int    `json:"deltaDirection,omitempty"`
	Pitch          float64 `json:"pitch"`
	DeltaPitch     float64 `json:"deltaPitch"`
}

type MapInfo struct {
	Name                string      `json:"name"`
	WallCollection      names.Name  `json:"wallCollection"`
	LandscapeCollection names.Name  `json:"landscapeCollection"`
	Mission             Mission     `json:"mission"`
	Environment         Environment `json:"environment"`
	EntryPoints         EntryPoints `json:"entryPoints"`
}

type Mission struct {
	Extermination bool `json:"extermination"`
	Exploration   bool `json:"exploration"`
	Retrieval     bool `json:"retrieval"`
	Repair        bool `json:"repair"`
	Rescue        bool `json:"rescue"`
	ExplorationM1 bool `json:"explorationM1"`
	RescueM1      bool `json:"rescueM1"`
	RepairM1      bool `json:"repairM1"`
}

// Environment leaves out the network-only and single-player-only flags.
type Environment struct {
	Vacuum            bool `json:"vacuum"`
	Magnetic          bool `json:"magnetic"`
	Rebellion         bool `json:"rebellion"`
	LowGravity        bool `json:"lowGravity"`
	GlueM1            bool `json:"glueM1"`
	OuchM1            bool `json:"ouchM1"`
	RebellionM1       bool `json:"rebellionM1"`
	SongIndexM1       bool `json:"songIndexM1"`
	TerminalsStopTime bool `json:"terminalsStopTime"`
	M1ActivationRange bool `json:"m1ActivationRange"`
	M1Weapons         bool `json:"m1Weapons"`
}

type EntryPoints struct {
	Solo    bool `json:"solo"`
	Coop    bool `json:"coop"`
	EMFH    bool `json:"emfh"`
	KTMWTB  bool `json:"ktmwtb"`
	KOTH    bool `json:"koth"`
	Defense bool `json:"defense"`
	Rugby   bool `json:"rugby"`
	CTF     bool `json:"ctf"`
}

package export

import (
	"strconv"

	"maptojson/internal/level"
	"maptojson/internal/names"
)

// Translator maps level records to their JSON shapes. Every method is a
// pure function of its arguments and the name tables.
type Translator struct {
	Names *names.Tables
}

func NewTranslator(tables *names.Tables) *Translator {
	if tables == nil {
		tables = names.Default()
	}
	return &Translator{Names: tables}
}

// index turns a sentinel-coded index into nil when negative.
func index(v int16) *int {
	if v < 0 {
		return nil
	}
	i := int(v)
	return &i
}

func ptr[T any](v T) *T { return &v }

func (t *Translator) Point(p level.Point) Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

func (t *Translator) Line(l level.Line) Line {
	return Line{
		Points:                       [2]int{int(l.EndpointIndexes[0]), int(l.EndpointIndexes[1])},
		Decorative:                   l.Flags.Has(level.LineDecorative),
		HasTransparentSide:           l.Flags.Has(level.LineHasTransparentSide),
		VariableElevation:            l.Flags.Has(level.LineVariableElevation),
		Elevation:                    l.Flags.Has(level.LineElevation),
		Landscape:                    l.Flags.Has(level.LineLandscape),
		Transparent:                  l.Flags.Has(level.LineTransparent),
		Solid:                        l.Flags.Has(level.LineSolid),
		HighestAdjacentFloor:         int(l.HighestAdjacentFloor),
		LowestAdjacentCeiling:        int(l.LowestAdjacentCeiling),
		ClockwiseSideIndex:           index(l.ClockwisePolygonSideIndex),
		CounterclockwiseSideIndex:    index(l.CounterclockwisePolygonSideIndex),
		ClockwisePolygonOwner:        index(l.ClockwisePolygonOwner),
		CounterclockwisePolygonOwner: index(l.CounterclockwisePolygonOwner),
	}
}

// ShapeDescriptor returns nil for the empty descriptor.
func (t *Translator) ShapeDescriptor(sd level.ShapeDescriptor) *ShapeDescriptor {
	if sd.IsEmpty() {
		return nil
	}
	return &ShapeDescriptor{
		Collection: int(sd.Collection()),
		CLUT:       int(sd.CLUT()),
		Bitmap:     int(sd.Bitmap()),
	}
}

func (t *Translator) Polygon(p level.Polygon) Polygon {
	n := int(p.VertexCount)
	out := Polygon{
		Type:                p.Type.String(),
		Permutation:         strconv.Itoa(int(p.Permutation)),
		Vertices:            make([]int, 0, n),
		Lines:               make([]int, 0, n),
		Sides:               make([]int, 0, n),
		AdjacentPolygons:    make([]*int, 0, n),
		FloorTexture:        t.ShapeDescriptor(p.FloorTexture),
		CeilingTexture:      t.ShapeDescriptor(p.CeilingTexture),
		FloorHeight:         int(p.FloorHeight),
		CeilingHeight:       int(p.CeilingHeight),
		FloorLight:          int(p.FloorLight),
		CeilingLight:        int(p.CeilingLight),
		FloorTransferMode:   int(p.FloorTransferMode),
		CeilingTransferMode: int(p.CeilingTransferMode),
		AmbientSound:        index(p.AmbientSound),
		RandomSound:         index(p.RandomSound),
	}
	for i := 0; i < n; i++ {
		out.Vertices = append(out.Vertices, int(p.EndpointIndexes[i]))
		out.Lines = append(out.Lines, int(p.LineIndexes[i]))
		out.Sides = append(out.Sides, int(p.SideIndexes[i]))
		out.AdjacentPolygons = append(out.AdjacentPolygons, index(p.AdjacentPolygonIndexes[i]))
	}
	if p.MediaIndex >= 0 {
		out.Media = &PolygonMedia{Index: int(p.MediaIndex), Light: int(p.MediaLight)}
	}
	return out
}

func (t *Translator) MapObject(o level.MapObject) Object {
	out := Object{
		Type:        o.Type.String(),
		Polygon:     index(o.PolygonIndex),
		X:           int(o.X),
		Y:           int(o.Y),
		Z:           int(o.Z),
		FromCeiling: o.FromCeiling(),
		NetworkOnly: o.NetworkOnly(),
	}
	if name, ok := t.Names.ObjectSubtype(o.Type, o.Index); ok {
		out.Subtype = &name
	}
	if o.Type == level.ObjectSound {
		if o.UseLightForVolume() {
			out.VolumeFromLight = ptr(int(o.Light()))
		} else {
			out.Volume = ptr(int(o.Volume()))
		}
		out.PlatformSound = ptr(o.OnPlatform())
		out.Floats = ptr(o.Floats())
	} else {
		out.Facing = ptr(int(o.Facing))
		out.TeleportsIn = ptr(o.Invisible())
		out.TeleportsOut = ptr(o.Floats())
	}
	if o.Type == level.ObjectMonster {
		out.ActivationBias = ptr(o.ActivationBias.String())
		out.Blind = ptr(o.Blind())
		out.Deaf = ptr(o.Deaf())
	}
	return out
}

// TextureDefinition returns nil when the slot holds no texture. The
// transfer mode and light index live on the owning side and are passed in.
func (t *Translator) TextureDefinition(def level.TextureDefinition, transferMode, lightsourceIndex int16) *TextureDefinition {
	if def.Texture.IsEmpty() {
		return nil
	}
	return &TextureDefinition{
		X:            int(def.X),
		Y:            int(def.Y),
		Texture:      t.ShapeDescriptor(def.Texture),
		TransferMode: int(transferMode),
		Light:        int(lightsourceIndex),
	}
}

func (t *Translator) Side(s level.Side) Side {
	out := Side{
		Type:         s.Type.String(),
		Primary:      t.TextureDefinition(s.Primary, s.PrimaryTransferMode, s.PrimaryLightsourceIndex),
		Secondary:    t.TextureDefinition(s.Secondary, s.SecondaryTransferMode, s.SecondaryLightsourceIndex),
		Transparent:  t.TextureDefinition(s.Transparent, s.TransparentTransferMode, s.TransparentLightsourceIndex),
		PolygonIndex: index(s.PolygonIndex),
		LineIndex:    index(s.LineIndex),
	}
	if s.IsControlPanel() {
		out.ControlPanel = &ControlPanel{
			Type:                      int(s.ControlPanelType),
			Permutation:               int(s.ControlPanelPermutation),
			InitialState:              s.Flags.Has(level.SideControlPanelStatus),
			IsRepairSwitch:            s.Flags.Has(level.SideIsRepairSwitch),
			IsDestructiveSwitch:       s.Flags.Has(level.SideIsDestructiveSwitch),
			ControlPanelRequiresLight: s.Flags.Has(level.SideIsLightedSwitch),
			IsDestructibleSwitch:      s.Flags.Has(level.SideSwitchCanBeDestroyed),
			IsProjectileSwitch:        s.Flags.Has(level.SideSwitchCanOnlyBeHitByProjectiles),
		}
	}
	if s.AmbientDelta != 0 {
		out.AmbientDelta = ptr(int(s.AmbientDelta))
	}
	return out
}

// Platform emits every behavior flag, false ones included.
func (t *Translator) Platform(p level.Platform) Platform {
	f := p.Flags
	return Platform{
		Type:          p.Type.String(),
		MinimumHeight: int(p.MinimumHeight),
		MaximumHeight: int(p.MaximumHeight),
		Speed:         int(p.Speed),
		Delay:         int(p.Delay),
		Tag:           index(p.Tag),

		InitiallyActive:                              f.Has(level.PlatformInitiallyActive),
		InitiallyExtended:                            f.Has(level.PlatformInitiallyExtended),
		DeactivatesAtEachLevel:                       f.Has(level.PlatformDeactivatesAtEachLevel),
		DeactivatesAtInitialLevel:                    f.Has(level.PlatformDeactivatesAtInitialLevel),
		ActivatesAdjacentPlatformsWhenDeactivating:   f.Has(level.PlatformActivatesAdjacentPlatformsWhenDeactivating),
		ExtendsFloorToCeiling:                        f.Has(level.PlatformExtendsFloorToCeiling),
		ComesFromFloor:                               f.Has(level.PlatformComesFromFloor),
		ComesFromCeiling:                             f.Has(level.PlatformComesFromCeiling),
		CausesDamage:                                 f.Has(level.PlatformCausesDamage),
		DoesNotActivateParent:                        f.Has(level.PlatformDoesNotActivateParent),
		ActivatesOnlyOnce:                            f.Has(level.PlatformActivatesOnlyOnce),
		ActivatesLight:                               f.Has(level.PlatformActivatesLight),
		DeactivatesLight:                             f.Has(level.PlatformDeactivatesLight),
		IsPlayerControllable:                         f.Has(level.PlatformIsPlayerControllable),
		IsMonsterControllable:                        f.Has(level.PlatformIsMonsterControllable),
		ReversesDirectionWhenObstructed:              f.Has(level.PlatformReversesDirectionWhenObstructed),
		CannotBeExternallyDeactivated:                f.Has(level.PlatformCannotBeExternallyDeactivated),
		UsesNativePolygonHeights:                     f.Has(level.PlatformUsesNativePolygonHeights),
		DelaysBeforeActivation:                       f.Has(level.PlatformDelaysBeforeActivation),
		ActivatesAdjacentPlatformsWhenActivating:     f.Has(level.PlatformActivatesAdjacentPlatformsWhenActivating),
		DeactivatesAdjacentPlatformsWhenActivating:   f.Has(level.PlatformDeactivatesAdjacentPlatformsWhenActivating),
		DeactivatesAdjacentPlatformsWhenDeactivating: f.Has(level.PlatformDeactivatesAdjacentPlatformsWhenDeactivating),
		ActivatesAdjacentPlatformsAtEachLevel:        f.Has(level.PlatformActivatesAdjacentPlatformsAtEachLevel),
		IsLocked:                                     f.Has(level.PlatformIsLocked),
		IsSecret:                                     f.Has(level.PlatformIsSecret),
		IsDoor:                                       f.Has(level.PlatformIsDoor),
	}
}

func (t *Translator) LightFunction(fn level.LightFunction) LightFunction {
	return LightFunction{
		Function:       fn.LightingFunction.String(),
		Period:         int(fn.Period),
		DeltaPeriod:    int(fn.DeltaPeriod),
		Intensity:      fn.Intensity,
		DeltaIntensity: fn.DeltaIntensity,
	}
}

func (t *Translator) Light(l level.Light) Light {
	return Light{
		Type:              l.Type.String(),
		InitiallyActive:   l.InitiallyActive(),
		Stateless:         l.Stateless(),
		Phase:             int(l.Phase),
		Tag:               index(l.TagIndex),
		PrimaryActive:     t.LightFunction(l.PrimaryActive),
		SecondaryActive:   t.LightFunction(l.SecondaryActive),
		BecomingActive:    t.LightFunction(l.BecomingActive),
		PrimaryInactive:   t.LightFunction(l.PrimaryInactive),
		SecondaryInactive: t.LightFunction(l.SecondaryInactive),
		BecomingInactive:  t.LightFunction(l.BecomingInactive),
	}
}

func (t *Translator) Placement(p level.Placement) Placement {
	return Placement{
		InitialCount:   int(p.InitialCount),
		MinimumCount:   int(p.MinimumCount),
		MaximumCount:   int(p.MaximumCount),
		RandomCount:    int(p.RandomCount),
		RandomPercent:  p.RandomPercent(),
		RandomChance:   int(p.RandomChance),
		RandomLocation: p.RandomLocation,
	}
}

func (t *Translator) Annotation(a level.Annotation) Annotation {
	out := Annotation{
		X:       int(a.X),
		Y:       int(a.Y),
		Polygon: index(a.PolygonIndex),
		Text:    a.Text,
	}
	if a.Type != 0 {
		out.Type = ptr(int(a.Type))
	}
	return out
}

func (t *Translator) Media(m level.Media) Media {
	return Media{
		Type:                   int(m.Type),
		SoundObstructedByFloor: m.SoundObstructedByFloor(),
		ControllingLight:       int(m.LightIndex),
		DirectionOfCurrent:     int(m.Direction),
		MagnitudeOfCurrent:     int(m.CurrentMagnitude),
		MinimumLightIntensity:  m.MinimumLightIntensity,
		HighTide:               int(m.High),
		LowTide:                int(m.Low),
	}
}

func (t *Translator) AmbientSound(s level.AmbientSound) AmbientSound {
	return AmbientSound{Sound: int(s.SoundIndex), Volume: int(s.Volume)}
}

func (t *Translator) RandomSound(s level.RandomSound) RandomSound {
	out := RandomSound{
		Sound:       int(s.SoundIndex),
		Volume:      int(s.Volume),
		DeltaVolume: int(s.DeltaVolume),
		Period:      int(s.Period),
		DeltaPeriod: int(s.DeltaPeriod),
		Pitch:       s.Pitch,
		DeltaPitch:  s.DeltaPitch,
	}
	if s.NonDirectional() {
		out.NonDirectional = ptr(true)
	} else {
		out.Direction = ptr(int(s.Direction))
		out.DeltaDirection = ptr(int(s.DeltaDirection))
	}
	return out
}

func (t *Translator) MapInfo(l *level.Level) MapInfo {
	m, e, ep := l.Mission, l.EnvFlags, l.EntryPoints
	return MapInfo{
		Name:                l.Name,
		WallCollection:      t.Names.WallCollectionName(int(l.Environment)),
		LandscapeCollection: t.Names.LandscapeName(int(l.Landscape)),
		Mission: Mission{
			Extermination: m.Has(level.MissionExtermination),
			Exploration:   m.Has(level.MissionExploration),
			Retrieval:     m.Has(level.MissionRetrieval),
			Repair:        m.Has(level.MissionRepair),
			Rescue:        m.Has(level.MissionRescue),
			ExplorationM1: m.Has(level.MissionExplorationM1),
			RescueM1:      m.Has(level.MissionRescueM1),
			RepairM1:      m.Has(level.MissionRepairM1),
		},
		Environment: Environment{
			Vacuum:            e.Has(level.EnvVacuum),
			Magnetic:          e.Has(level.EnvMagnetic),
			Rebellion:         e.Has(level.EnvRebellion),
			LowGravity:        e.Has(level.EnvLowGravity),
			GlueM1:            e.Has(level.EnvGlueM1),
			OuchM1:            e.Has(level.EnvOuchM1),
			RebellionM1:       e.Has(level.EnvRebellionM1),
			SongIndexM1:       e.Has(level.EnvSongIndexM1),
			TerminalsStopTime: e.Has(level.EnvTerminalsStopTime),
			M1ActivationRange: e.Has(level.EnvM1ActivationRange),
			M1Weapons:         e.Has(level.EnvM1Weapons),
		},
		EntryPoints: EntryPoints{
			Solo:    ep.Has(level.EntrySinglePlayer),
			Coop:    ep.Has(level.EntryMultiplayerCooperative),
			EMFH:    ep.Has(level.EntryMultiplayerCarnage),
			KTMWTB:  ep.Has(level.EntryKillTheManWithTheBall),
			KOTH:    ep.Has(level.EntryKingOfTheHill),
			Defense: ep.Has(level.EntryDefense),
			Rugby:   ep.Has(level.EntryRugby),
			CTF:     ep.Has(level.EntryCaptureTheFlag),
		},
	}
}

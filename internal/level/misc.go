package level

import "math"

// Placement is the spawn quota for one monster or item subtype; the slice
// position is the subtype code.
type Placement struct {
	InitialCount int16
	MinimumCount int16
	MaximumCount int16
	RandomCount  int16

	// RandomChance is the per-tick spawn chance scaled to 0..65535.
	RandomChance   uint16
	RandomLocation bool
}

// RandomPercent is RandomChance as a rounded percentage.
func (p Placement) RandomPercent() int {
	return int(math.Round(float64(p.RandomChance) * 100 / math.MaxUint16))
}

// Annotation is an editor-only note placed on the map.
type Annotation struct {
	Type         int16
	X, Y         int16
	PolygonIndex int16
	Text         string
}

type MediaFlags uint16

const MediaSoundObstructedByFloor MediaFlags = 1

func (f MediaFlags) Has(bit MediaFlags) bool { return f&bit != 0 }

// Media is a liquid body; Low and High are the tide bounds.
type Media struct {
	Type             int16
	Flags            MediaFlags
	LightIndex       int16
	Direction        int16
	CurrentMagnitude int16
	Low              int16
	High             int16

	MinimumLightIntensity float64
}

func (m Media) SoundObstructedByFloor() bool { return m.Flags.Has(MediaSoundObstructedByFloor) }

type AmbientSound struct {
	SoundIndex int16
	Volume     int16
}

type RandomSoundFlags uint16

const RandomSoundNonDirectional RandomSoundFlags = 1

func (f RandomSoundFlags) Has(bit RandomSoundFlags) bool { return f&bit != 0 }

type RandomSound struct {
	Flags          RandomSoundFlags
	SoundIndex     int16
	Volume         int16
	DeltaVolume    int16
	Period         int16
	DeltaPeriod    int16
	Direction      int16
	DeltaDirection int16
	Pitch          float64
	DeltaPitch     float64
}

func (s RandomSound) NonDirectional() bool { return s.Flags.Has(RandomSoundNonDirectional) }

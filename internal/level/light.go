package level

type LightType int16

const (
	LightNormal LightType = iota
	LightStrobe
	LightMedia
)

var lightTypeNames = [...]string{"Normal", "Strobe", "Media"}

func (t LightType) String() string { return enumName(lightTypeNames[:], int(t)) }

type LightingFunction int16

const (
	LightingConstant LightingFunction = iota
	LightingLinear
	LightingSmooth
	LightingFlicker
)

var lightingFunctionNames = [...]string{"Constant", "Linear", "Smooth", "Flicker"}

func (f LightingFunction) String() string { return enumName(lightingFunctionNames[:], int(f)) }

type LightFlags uint16

const (
	LightInitiallyActive LightFlags = 1 << iota
	LightSlavedIntensities
	LightStateless
)

func (f LightFlags) Has(bit LightFlags) bool { return f&bit != 0 }

// LightFunction is one animation curve of a light. Intensities are
// fractions of full brightness.
type LightFunction struct {
	LightingFunction LightingFunction
	Period           int16
	DeltaPeriod      int16
	Intensity        float64
	DeltaIntensity   float64
}

type Light struct {
	Type     LightType
	Flags    LightFlags
	Phase    int16
	TagIndex int16

	PrimaryActive     LightFunction
	SecondaryActive   LightFunction
	BecomingActive    LightFunction
	PrimaryInactive   LightFunction
	SecondaryInactive LightFunction
	BecomingInactive  LightFunction
}

func (l Light) InitiallyActive() bool { return l.Flags.Has(LightInitiallyActive) }
func (l Light) Stateless() bool       { return l.Flags.Has(LightStateless) }

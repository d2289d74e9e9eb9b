package cgm

// RealPrecision identifies the layout of a REAL-typed field.
type RealPrecision int

const (
	RealFixed32 RealPrecision = iota
	RealFixed64
	RealFloating32
	RealFloating64
)

func (p RealPrecision) String() string {
	switch p {
	case RealFixed32:
		return "Fixed32"
	case RealFixed64:
		return "Fixed64"
	case RealFloating32:
		return "Floating32"
	case RealFloating64:
		return "Floating64"
	default:
		return "Fixed32"
	}
}

// VDCType selects whether VDC-typed fields decode as integers or reals.
type VDCType int

const (
	VDCInteger VDCType = iota
	VDCReal
)

func (t VDCType) String() string {
	if t == VDCReal {
		return "real"
	}
	return "integer"
}

// ColourModel identifies the direct-color component interpretation.
type ColourModel int

const (
	ColourModelRGB ColourModel = iota
	ColourModelCIELAB
	ColourModelCIELUV
	ColourModelCMYK
	ColourModelRGBRelated
)

func (m ColourModel) String() string {
	switch m {
	case ColourModelRGB:
		return "rgb"
	case ColourModelCIELAB:
		return "cielab"
	case ColourModelCIELUV:
		return "cieluv"
	case ColourModelCMYK:
		return "cmyk"
	case ColourModelRGBRelated:
		return "rgb_related"
	default:
		return "rgb"
	}
}

// ColourSelectionMode selects whether COLOUR-typed fields decode as a color
// table index or as direct component values.
type ColourSelectionMode int

const (
	ColourSelectionIndexed ColourSelectionMode = iota
	ColourSelectionDirect
)

func (m ColourSelectionMode) String() string {
	if m == ColourSelectionDirect {
		return "direct"
	}
	return "indexed"
}

// CharacterCodingAnnouncer identifies the announced text encoding.
type CharacterCodingAnnouncer int

const (
	CharCodingBasic7Bit CharacterCodingAnnouncer = iota
	CharCodingBasic8Bit
	CharCodingExtended7Bit
	CharCodingExtended8Bit
)

func (c CharacterCodingAnnouncer) String() string {
	switch c {
	case CharCodingBasic7Bit:
		return "BASIC7BIT"
	case CharCodingBasic8Bit:
		return "BASIC8BIT"
	case CharCodingExtended7Bit:
		return "EXTD7BIT"
	case CharCodingExtended8Bit:
		return "EXTD8BIT"
	default:
		return "BASIC7BIT"
	}
}

// ColourTriple is a 3-component direct color value, used for COLOUR VALUE
// EXTENT and BACKGROUND COLOUR.
type ColourTriple struct {
	R, G, B int
}

// SpecificationMode selects whether a width/size field is absolute (VDC) or
// scaled (a plain real factor of a nominal line width).
type SpecificationMode int

const (
	SpecificationAbsolute SpecificationMode = iota
	SpecificationScaled
)

func (m SpecificationMode) String() string {
	if m == SpecificationScaled {
		return "scaled"
	}
	return "abs"
}

// State is the evolving metafile decode context. It is mutated exclusively
// by the decoder of the owning command and is never global — every Decode
// call constructs its own State.
type State struct {
	IntegerPrecision      int
	RealPrecision         RealPrecision
	IndexPrecision        int
	ColourPrecision       int
	ColourIndexPrecision  int
	VDCType               VDCType
	VDCIntegerPrecision   int
	VDCRealPrecision      RealPrecision
	ColourModel           ColourModel
	ColourSelectionMode   ColourSelectionMode
	ColourValueExtentMin  ColourTriple
	ColourValueExtentMax  ColourTriple
	NamePrecision         int
	CharacterCoding       CharacterCodingAnnouncer
	LineWidthMode         SpecificationMode
	EdgeWidthMode         SpecificationMode
	MarkerSizeMode        SpecificationMode

	// emitVDCAsReal records whether the ForceRealVdcOnEmit override has
	// promoted an Integer VDC TYPE to real-formatted output. On the emit side
	// applyStateTransition sets it from Settings.VdcMode; the VDCType
	// command's decoder sets it for every Integer VDC TYPE, and VDC reads
	// never consult it.
	emitVDCAsReal bool
}

// NewState returns the metafile decode state with its documented defaults.
func NewState() *State {
	return &State{
		IntegerPrecision:     16,
		RealPrecision:        RealFixed32,
		IndexPrecision:       16,
		ColourPrecision:      8,
		ColourIndexPrecision: 8,
		VDCType:              VDCInteger,
		VDCIntegerPrecision:  16,
		VDCRealPrecision:     RealFixed32,
		ColourModel:          ColourModelRGB,
		ColourSelectionMode:  ColourSelectionIndexed,
		ColourValueExtentMin: ColourTriple{0, 0, 0},
		ColourValueExtentMax: ColourTriple{255, 255, 255},
		NamePrecision:        16,
		CharacterCoding:      CharCodingBasic7Bit,
		LineWidthMode:        SpecificationAbsolute,
		EdgeWidthMode:        SpecificationAbsolute,
		MarkerSizeMode:       SpecificationAbsolute,
	}
}

// vdcEmitsAsReal reports whether VDC-typed fields should be formatted as
// reals by the emitter, accounting for the compatibility override.
func (s *State) vdcEmitsAsReal() bool {
	return s.VDCType == VDCReal || s.emitVDCAsReal
}

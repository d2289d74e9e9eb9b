package cgm

// Header identifies every Command's class and element id, carried by
// every variant.
type Header struct {
	Class ClassCode
	ID    uint16
}

// Command is the tagged-sum member contract: every decoded command carries
// its Header, and knows how to render itself as clear text. The factory
// (factory.go) is the only place new variants are registered; the interface
// lets the emitter dispatch without a giant type switch.
type Command interface {
	Header() Header
	emitText(s *State, w *textWriter)
}

// base is embedded by every concrete command to satisfy Header() once.
type base struct {
	class ClassCode
	id    uint16
}

func (b base) Header() Header { return Header{Class: b.class, ID: b.id} }

// Point is a 2D VDC-typed coordinate pair.
type Point struct {
	X, Y float64
}

// ColourKind distinguishes an indexed color reference from a direct color
// value within Color.
type ColourKind int

const (
	ColourIndexed ColourKind = iota
	ColourDirect
)

// Color is the sum of Indexed(u32) and Direct{r,g,b[,k]}, chosen by the
// metafile's colour_selection_mode at read time.
type Color struct {
	Kind    ColourKind
	Index   uint32
	R, G, B int
	// HasK and K carry a fourth (black) component when the active colour
	// model is CMYK; R, G, B are always populated (converted from CMYK when
	// that model is active, matching the reference reader's behavior).
	HasK bool
	K    int
}

// SDRMember is one (data_type, count, values) entry of a Structured Data
// Record.
type SDRMember struct {
	Type  StructuredDataType
	Count int
	// Values holds one of: int, uint, uint32, float64, string, Color, VC,
	// *SDR, depending on Type. Readers that don't recognize a type code abort the
	// SDR with an Unsupported diagnostic rather than guessing.
	Values []any
}

// SDR is a Structured Data Record: an ordered sequence of typed members.
type SDR struct {
	Members []SDRMember
}

// VC is a viewport coordinate: either an absolute integer or a fractional
// real, selected by the device viewport specification mode.
type VC struct {
	IsReal bool
	Int    int
	Real   float64
}

package cgm

// Metafile descriptor commands (class 1) announce the global properties of
// the metafile, several of them (precisions, VDC type, colour mode/extent,
// name precision, character coding) mutating State for every command that
// follows.

type MetafileVersion struct {
	base
	Version int
}

type MetafileDescription struct {
	base
	Description string
}

type VDCTypeCommand struct {
	base
	Type VDCType
}

type IntegerPrecisionCommand struct {
	base
	Bits int
}

type RealPrecisionCommand struct {
	base
	Precision RealPrecision
	// ExponentWidth and FractionWidth are the raw field widths (in bits) as
	// decoded from the binary stream, used to render REALPREC's clear-text
	// extent rather than just its classified form.
	ExponentWidth, FractionWidth int
}

type IndexPrecisionCommand struct {
	base
	Bits int
}

type ColourPrecisionCommand struct {
	base
	Bits int
}

type ColourIndexPrecisionCommand struct {
	base
	Bits int
}

type MaximumColourIndex struct {
	base
	Index uint32
}

type ColourValueExtent struct {
	base
	Min, Max ColourTriple
}

// MetafileElementList preserves the decoded element identifiers verbatim
// rather than re-deriving mnemonic keywords: no keyword table is exhaustive
// enough to round trip arbitrary element lists losslessly, so the raw
// (class, id) pairs are kept and the emitter renders them numerically.
type MetafileElementList struct {
	base
	Elements []Header
}

type FontList struct {
	base
	Names []string
}

type CharacterSetList struct {
	base
	Entries []CharacterSetEntry
}

type CharacterSetEntry struct {
	Type       int
	Designator string
}

type CharacterCodingAnnouncerCommand struct {
	base
	Announcer CharacterCodingAnnouncer
}

type NamePrecisionCommand struct {
	base
	Bits int
}

type MaximumVDCExtent struct {
	base
	First, Second Point
}

type ColourModelCommand struct {
	base
	Model ColourModel
}

// FontProperties is left as Unknown (raw bytes preserved) per DESIGN.md's
// Open Question resolution: its SDR payload's font-property type codes are
// not specified precisely enough here to decode without guessing.

func init() {
	register(ClassMetafileDescriptor, IDMetafileVersion, decodeMetafileVersion)
	register(ClassMetafileDescriptor, IDMetafileDescription, decodeMetafileDescription)
	register(ClassMetafileDescriptor, IDVDCType, decodeVDCType)
	register(ClassMetafileDescriptor, IDIntegerPrecision, decodeIntegerPrecision)
	register(ClassMetafileDescriptor, IDRealPrecision, decodeRealPrecision)
	register(ClassMetafileDescriptor, IDIndexPrecision, decodeIndexPrecision)
	register(ClassMetafileDescriptor, IDColourPrecision, decodeColourPrecision)
	register(ClassMetafileDescriptor, IDColourIndexPrecision, decodeColourIndexPrecision)
	register(ClassMetafileDescriptor, IDMaximumColourIndex, decodeMaximumColourIndex)
	register(ClassMetafileDescriptor, IDColourValueExtent, decodeColourValueExtent)
	register(ClassMetafileDescriptor, IDMetafileElementList, decodeMetafileElementList)
	register(ClassMetafileDescriptor, IDFontList, decodeFontList)
	register(ClassMetafileDescriptor, IDCharacterSetList, decodeCharacterSetList)
	register(ClassMetafileDescriptor, IDCharacterCodingAnnouncer, decodeCharacterCodingAnnouncer)
	register(ClassMetafileDescriptor, IDNamePrecision, decodeNamePrecision)
	register(ClassMetafileDescriptor, IDMaximumVDCExtent, decodeMaximumVDCExtent)
	register(ClassMetafileDescriptor, IDColourModel, decodeColourModel)
}

func decodeMetafileVersion(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	return &MetafileVersion{base{ClassMetafileDescriptor, IDMetafileVersion}, v}, nil
}

func decodeMetafileDescription(r *argReader) (Command, error) {
	d, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &MetafileDescription{base{ClassMetafileDescriptor, IDMetafileDescription}, d}, nil
}

// decodeVDCType is an owning-command decoder: it mutates state.VDCType for
// every VDC-typed field decoded afterward, and sets state.emitVDCAsReal for
// an Integer VDC TYPE. It has no access to Settings; the Settings-driven
// override is applied on the emit side by applyStateTransition.
func decodeVDCType(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	t := VDCType(v)
	r.state.VDCType = t
	if t == VDCInteger {
		r.state.emitVDCAsReal = true
	}
	return &VDCTypeCommand{base{ClassMetafileDescriptor, IDVDCType}, t}, nil
}

func decodeIntegerPrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.IntegerPrecision = v
	return &IntegerPrecisionCommand{base{ClassMetafileDescriptor, IDIntegerPrecision}, v}, nil
}

func decodeRealPrecision(r *argReader) (Command, error) {
	form, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	exponentWidth, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	fractionWidth, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	var p RealPrecision
	switch form {
	case 0:
		p = RealFloating32
	case 1:
		p = RealFloating64
	default:
		p = RealFixed32
	}
	r.state.RealPrecision = p
	return &RealPrecisionCommand{base{ClassMetafileDescriptor, IDRealPrecision}, p, exponentWidth, fractionWidth}, nil
}

func decodeIndexPrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.IndexPrecision = v
	return &IndexPrecisionCommand{base{ClassMetafileDescriptor, IDIndexPrecision}, v}, nil
}

func decodeColourPrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.ColourPrecision = v
	return &ColourPrecisionCommand{base{ClassMetafileDescriptor, IDColourPrecision}, v}, nil
}

func decodeColourIndexPrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.ColourIndexPrecision = v
	return &ColourIndexPrecisionCommand{base{ClassMetafileDescriptor, IDColourIndexPrecision}, v}, nil
}

func decodeMaximumColourIndex(r *argReader) (Command, error) {
	v, err := r.ReadColourIndex()
	if err != nil {
		return nil, err
	}
	return &MaximumColourIndex{base{ClassMetafileDescriptor, IDMaximumColourIndex}, v}, nil
}

// decodeColourValueExtent is an owning-command decoder for state's colour
// scaling bounds. Its own two triples are read as raw, unscaled component
// values, since the command defines the extent rather than being scaled
// by it.
func decodeColourValueExtent(r *argReader) (Command, error) {
	width := widthForPrecision(r.state.ColourPrecision)
	readTriple := func() (ColourTriple, error) {
		a, err := r.readUnsignedWidth(width)
		if err != nil {
			return ColourTriple{}, err
		}
		b, err := r.readUnsignedWidth(width)
		if err != nil {
			return ColourTriple{}, err
		}
		c, err := r.readUnsignedWidth(width)
		if err != nil {
			return ColourTriple{}, err
		}
		return ColourTriple{int(a), int(b), int(c)}, nil
	}
	min, err := readTriple()
	if err != nil {
		return nil, err
	}
	max, err := readTriple()
	if err != nil {
		return nil, err
	}
	r.state.ColourValueExtentMin = min
	r.state.ColourValueExtentMax = max
	return &ColourValueExtent{base{ClassMetafileDescriptor, IDColourValueExtent}, min, max}, nil
}

func decodeMetafileElementList(r *argReader) (Command, error) {
	count, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	elements := make([]Header, 0, count)
	for i := 0; i < count; i++ {
		class, err := r.ReadIndex()
		if err != nil {
			return nil, err
		}
		id, err := r.ReadIndex()
		if err != nil {
			return nil, err
		}
		elements = append(elements, Header{Class: ClassCode(class), ID: uint16(id)})
	}
	return &MetafileElementList{base{ClassMetafileDescriptor, IDMetafileElementList}, elements}, nil
}

func decodeFontList(r *argReader) (Command, error) {
	var names []string
	for !r.atEnd() {
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return &FontList{base{ClassMetafileDescriptor, IDFontList}, names}, nil
}

func decodeCharacterSetList(r *argReader) (Command, error) {
	var entries []CharacterSetEntry
	for !r.atEnd() {
		t, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		designator, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		entries = append(entries, CharacterSetEntry{Type: t, Designator: designator})
	}
	return &CharacterSetList{base{ClassMetafileDescriptor, IDCharacterSetList}, entries}, nil
}

func decodeCharacterCodingAnnouncer(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	a := CharacterCodingAnnouncer(v)
	r.state.CharacterCoding = a
	return &CharacterCodingAnnouncerCommand{base{ClassMetafileDescriptor, IDCharacterCodingAnnouncer}, a}, nil
}

func decodeNamePrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.NamePrecision = v
	return &NamePrecisionCommand{base{ClassMetafileDescriptor, IDNamePrecision}, v}, nil
}

func decodeMaximumVDCExtent(r *argReader) (Command, error) {
	first, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &MaximumVDCExtent{base{ClassMetafileDescriptor, IDMaximumVDCExtent}, first, second}, nil
}

func decodeColourModel(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	m := ColourModel(v)
	r.state.ColourModel = m
	return &ColourModelCommand{base{ClassMetafileDescriptor, IDColourModel}, m}, nil
}

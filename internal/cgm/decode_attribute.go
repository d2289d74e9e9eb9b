package cgm

// Attribute commands (class 5) set the bundle used by subsequently drawn
// primitives. None mutate State; LINE/EDGE WIDTH MODE (class 2) are State,
// and the widths set here are read as VDCs or plain reals depending on that
// mode, which the decoder consults at decode time and the emitter again at
// emit time.

type LineColour struct {
	base
	Colour Color
}

type LineTypeCommand struct {
	base
	Type int
}

type LineWidth struct {
	base
	Width float64
}

type EdgeColour struct {
	base
	Colour Color
}

type EdgeTypeCommand struct {
	base
	Type int
}

type EdgeWidth struct {
	base
	Width float64
}

type EdgeVisibility struct {
	base
	Visible bool
}

type InteriorStyle struct {
	base
	Style int
}

type FillColour struct {
	base
	Colour Color
}

type TextColour struct {
	base
	Colour Color
}

type TextFontIndex struct {
	base
	Index int
}

type CharacterHeight struct {
	base
	Height float64
}

type CharacterOrientation struct {
	base
	Up, Base Point
}

type CharacterSetIndexCommand struct {
	base
	Index int
}

type AlternateCharacterSetIndex struct {
	base
	Index int
}

type TextAlignment struct {
	base
	Horizontal, Vertical int
	ContHoriz, ContVert  float64
}

type CharacterExpansionFactor struct {
	base
	Factor float64
}

type LineCap struct {
	base
	CapIndicator, JoinIndicator int
}

type LineJoin struct {
	base
	Indicator int
}

type LineTypeContinuation struct {
	base
	Mode int
}

// HatchStyleDefinition and GeometricPatternDefinition carry small
// self-describing nested (type, count, value) records, read through the
// shared SDR parser in sdr.go.
type HatchStyleDefinition struct {
	base
	Index int
	Style *SDR
}

type GeometricPatternDefinition struct {
	base
	Index   int
	Pattern *SDR
}

type InterpolatedInterior struct {
	base
	Style    int
	Stylised *SDR
}

type ColourTableCommand struct {
	base
	StartIndex int
	Entries    []ColourTriple
}

func init() {
	register(ClassAttribute, IDLineColour, decodeLineColour)
	register(ClassAttribute, IDLineType, decodeLineType)
	register(ClassAttribute, IDLineWidth, decodeLineWidth)
	register(ClassAttribute, IDEdgeColour, decodeEdgeColour)
	register(ClassAttribute, IDEdgeType, decodeEdgeType)
	register(ClassAttribute, IDEdgeWidth, decodeEdgeWidth)
	register(ClassAttribute, IDEdgeVisibility, decodeEdgeVisibility)
	register(ClassAttribute, IDInteriorStyle, decodeInteriorStyle)
	register(ClassAttribute, IDFillColour, decodeFillColour)
	register(ClassAttribute, IDTextColour, decodeTextColour)
	register(ClassAttribute, IDTextFontIndex, decodeTextFontIndex)
	register(ClassAttribute, IDCharacterHeight, decodeCharacterHeight)
	register(ClassAttribute, IDCharacterOrientation, decodeCharacterOrientation)
	register(ClassAttribute, IDCharacterSetIndex, decodeCharacterSetIndex)
	register(ClassAttribute, IDAlternateCharacterSetIndex, decodeAlternateCharacterSetIndex)
	register(ClassAttribute, IDTextAlignment, decodeTextAlignment)
	register(ClassAttribute, IDCharacterExpansionFactor, decodeCharacterExpansionFactor)
	register(ClassAttribute, IDLineCap, decodeLineCap)
	register(ClassAttribute, IDLineJoin, decodeLineJoin)
	register(ClassAttribute, IDLineTypeContinuation, decodeLineTypeContinuation)
	register(ClassAttribute, IDHatchStyleDefinition, decodeHatchStyleDefinition)
	register(ClassAttribute, IDGeometricPatternDefinition, decodeGeometricPatternDefinition)
	register(ClassAttribute, IDInterpolatedInterior, decodeInterpolatedInterior)
	register(ClassAttribute, IDColourTable, decodeColourTable)
}

func decodeLineColour(r *argReader) (Command, error) {
	c, err := r.ReadColour()
	if err != nil {
		return nil, err
	}
	return &LineColour{base{ClassAttribute, IDLineColour}, c}, nil
}

func decodeLineType(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &LineTypeCommand{base{ClassAttribute, IDLineType}, v}, nil
}

// decodeLineWidth reads either a VDC (absolute mode) or a plain real
// (scaled mode) depending on state.LineWidthMode.
func decodeLineWidth(r *argReader) (Command, error) {
	if r.state.LineWidthMode == SpecificationAbsolute {
		v, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return &LineWidth{base{ClassAttribute, IDLineWidth}, v}, nil
	}
	v, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	return &LineWidth{base{ClassAttribute, IDLineWidth}, v}, nil
}

func decodeEdgeColour(r *argReader) (Command, error) {
	c, err := r.ReadColour()
	if err != nil {
		return nil, err
	}
	return &EdgeColour{base{ClassAttribute, IDEdgeColour}, c}, nil
}

func decodeEdgeType(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &EdgeTypeCommand{base{ClassAttribute, IDEdgeType}, v}, nil
}

func decodeEdgeWidth(r *argReader) (Command, error) {
	if r.state.EdgeWidthMode == SpecificationAbsolute {
		v, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return &EdgeWidth{base{ClassAttribute, IDEdgeWidth}, v}, nil
	}
	v, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	return &EdgeWidth{base{ClassAttribute, IDEdgeWidth}, v}, nil
}

func decodeEdgeVisibility(r *argReader) (Command, error) {
	v, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &EdgeVisibility{base{ClassAttribute, IDEdgeVisibility}, v}, nil
}

func decodeInteriorStyle(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	return &InteriorStyle{base{ClassAttribute, IDInteriorStyle}, v}, nil
}

func decodeFillColour(r *argReader) (Command, error) {
	c, err := r.ReadColour()
	if err != nil {
		return nil, err
	}
	return &FillColour{base{ClassAttribute, IDFillColour}, c}, nil
}

func decodeTextColour(r *argReader) (Command, error) {
	c, err := r.ReadColour()
	if err != nil {
		return nil, err
	}
	return &TextColour{base{ClassAttribute, IDTextColour}, c}, nil
}

func decodeTextFontIndex(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &TextFontIndex{base{ClassAttribute, IDTextFontIndex}, v}, nil
}

func decodeCharacterHeight(r *argReader) (Command, error) {
	v, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	return &CharacterHeight{base{ClassAttribute, IDCharacterHeight}, v}, nil
}

func decodeCharacterOrientation(r *argReader) (Command, error) {
	upX, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	upY, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	baseX, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	baseY, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	return &CharacterOrientation{base{ClassAttribute, IDCharacterOrientation}, Point{upX, upY}, Point{baseX, baseY}}, nil
}

func decodeCharacterSetIndex(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &CharacterSetIndexCommand{base{ClassAttribute, IDCharacterSetIndex}, v}, nil
}

func decodeAlternateCharacterSetIndex(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &AlternateCharacterSetIndex{base{ClassAttribute, IDAlternateCharacterSetIndex}, v}, nil
}

func decodeTextAlignment(r *argReader) (Command, error) {
	h, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	ch, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	cv, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	return &TextAlignment{base{ClassAttribute, IDTextAlignment}, h, v, ch, cv}, nil
}

func decodeCharacterExpansionFactor(r *argReader) (Command, error) {
	v, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	return &CharacterExpansionFactor{base{ClassAttribute, IDCharacterExpansionFactor}, v}, nil
}

func decodeLineCap(r *argReader) (Command, error) {
	cap, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	join, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &LineCap{base{ClassAttribute, IDLineCap}, cap, join}, nil
}

func decodeLineJoin(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &LineJoin{base{ClassAttribute, IDLineJoin}, v}, nil
}

func decodeLineTypeContinuation(r *argReader) (Command, error) {
	v, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	return &LineTypeContinuation{base{ClassAttribute, IDLineTypeContinuation}, v}, nil
}

func decodeHatchStyleDefinition(r *argReader) (Command, error) {
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	sdr, err := r.readSDR()
	if err != nil {
		return nil, err
	}
	return &HatchStyleDefinition{base{ClassAttribute, IDHatchStyleDefinition}, idx, sdr}, nil
}

func decodeGeometricPatternDefinition(r *argReader) (Command, error) {
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, err
	}
	sdr, err := r.readSDR()
	if err != nil {
		return nil, err
	}
	return &GeometricPatternDefinition{base{ClassAttribute, IDGeometricPatternDefinition}, idx, sdr}, nil
}

func decodeInterpolatedInterior(r *argReader) (Command, error) {
	style, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	sdr, err := r.readSDR()
	if err != nil {
		return nil, err
	}
	return &InterpolatedInterior{base{ClassAttribute, IDInterpolatedInterior}, style, sdr}, nil
}

func decodeColourTable(r *argReader) (Command, error) {
	start, err := r.ReadColourIndex()
	if err != nil {
		return nil, err
	}
	width := widthForPrecision(r.state.ColourPrecision)
	var entries []ColourTriple
	for !r.atEnd() {
		red, err := r.readUnsignedWidth(width)
		if err != nil {
			return nil, err
		}
		green, err := r.readUnsignedWidth(width)
		if err != nil {
			return nil, err
		}
		blue, err := r.readUnsignedWidth(width)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ColourTriple{int(red), int(green), int(blue)})
	}
	return &ColourTableCommand{base{ClassAttribute, IDColourTable}, int(start), entries}, nil
}

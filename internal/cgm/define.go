package cgm

// ClassCode identifies one of the element classes defined by ISO/IEC 8632-3
// clause 6. The four high bits of every command header carry this value.
type ClassCode uint8

const (
	ClassDelimiter         ClassCode = 0
	ClassMetafileDescriptor ClassCode = 1
	ClassPictureDescriptor  ClassCode = 2
	ClassControl            ClassCode = 3
	ClassGraphicalPrimitive ClassCode = 4
	ClassAttribute          ClassCode = 5
	ClassEscape             ClassCode = 6
	ClassExternal           ClassCode = 7
	ClassSegment            ClassCode = 8
	ClassApplicationStructure ClassCode = 9
)

// String renders a class code the way diagnostics and %-comments reference it.
func (c ClassCode) String() string {
	switch c {
	case ClassDelimiter:
		return "Delimiter"
	case ClassMetafileDescriptor:
		return "MetafileDescriptor"
	case ClassPictureDescriptor:
		return "PictureDescriptor"
	case ClassControl:
		return "Control"
	case ClassGraphicalPrimitive:
		return "GraphicalPrimitive"
	case ClassAttribute:
		return "Attribute"
	case ClassEscape:
		return "Escape"
	case ClassExternal:
		return "External"
	case ClassSegment:
		return "Segment"
	case ClassApplicationStructure:
		return "ApplicationStructure"
	default:
		return "Reserved"
	}
}

// Delimiter element IDs (class 0), ISO/IEC 8632-3 table 2.
const (
	IDNoOp                          = 0
	IDBeginMetafile                 = 1
	IDEndMetafile                   = 2
	IDBeginPicture                  = 3
	IDBeginPictureBody              = 4
	IDEndPicture                    = 5
	IDBeginSegment                  = 6
	IDEndSegment                    = 7
	IDBeginFigure                   = 8
	IDEndFigure                     = 9
	IDBeginProtectionRegion         = 10
	IDEndProtectionRegion           = 11
	IDBeginCompoundLine             = 12
	IDEndCompoundLine               = 13
	IDBeginCompoundTextPath         = 14
	IDEndCompoundTextPath           = 15
	IDBeginTileArray                = 16
	IDEndTileArray                  = 17
	IDBeginApplicationStructure     = 18
	IDBeginApplicationStructureBody = 19
	IDEndApplicationStructure       = 20
)

// Metafile descriptor element IDs (class 1).
const (
	IDMetafileVersion             = 1
	IDMetafileDescription         = 2
	IDVDCType                     = 3
	IDIntegerPrecision            = 4
	IDRealPrecision               = 5
	IDIndexPrecision              = 6
	IDColourPrecision             = 7
	IDColourIndexPrecision        = 8
	IDMaximumColourIndex          = 9
	IDColourValueExtent           = 10
	IDMetafileElementList         = 11
	IDMetafileDefaultsReplacement = 12
	IDFontList                    = 13
	IDCharacterSetList            = 14
	IDCharacterCodingAnnouncer    = 15
	IDNamePrecision               = 16
	IDMaximumVDCExtent            = 17
	IDColourModel                 = 18
	IDColourCharacterSetList      = 19
	IDFontProperties              = 21
)

// Picture descriptor element IDs (class 2).
const (
	IDScalingMode                  = 1
	IDColourSelectionMode          = 2
	IDLineWidthSpecificationMode   = 3
	IDMarkerSizeSpecificationMode  = 4
	IDEdgeWidthSpecificationMode   = 5
	IDVDCExtent                    = 6
	IDBackgroundColour             = 7
	IDDeviceViewportSpec           = 8
)

// Control element IDs (class 3).
const (
	IDVDCIntegerPrecision = 1
	IDVDCRealPrecision    = 2
	IDClipIndicator       = 3
	IDLineClippingMode    = 4
	IDMarkerClippingMode  = 5
	IDEdgeClippingMode    = 6
	IDTransparency        = 16
)

// Graphical primitive element IDs (class 4).
const (
	IDPolyline          = 1
	IDDisjointPolyline  = 2
	IDPolymarker        = 3
	IDText              = 4
	IDRestrictedText    = 5
	IDAppendText        = 6
	IDPolygon           = 7
	IDPolygonSet        = 8
	IDCellArray         = 9
	IDGDP               = 10
	IDRectangle         = 11
	IDCircle            = 12
	IDCircularArc3Point = 13
	IDCircularArcCentre = 15
	IDEllipse           = 17
	IDEllipticalArc     = 18
	IDPolybezier        = 26
)

// Attribute element IDs (class 5).
const (
	IDLineBundleIndex             = 1
	IDLineType                    = 2
	IDLineWidth                   = 3
	IDLineColour                  = 4
	IDMarkerBundleIndex           = 5
	IDMarkerType                  = 6
	IDMarkerSize                  = 7
	IDMarkerColour                = 8
	IDTextBundleIndex             = 9
	IDTextFontIndex                = 10
	IDTextPrecision                = 11
	IDCharacterExpansionFactor      = 12
	IDCharacterSpacing              = 13
	IDTextColour                    = 14
	IDCharacterHeight               = 15
	IDCharacterOrientation          = 16
	IDTextPath                      = 17
	IDTextAlignment                 = 18
	IDCharacterSetIndex             = 19
	IDAlternateCharacterSetIndex    = 20
	IDFillBundleIndex               = 21
	IDInteriorStyle                 = 22
	IDFillColour                    = 23
	IDHatchIndex                    = 24
	IDPatternIndex                  = 25
	IDEdgeBundleIndex               = 26
	IDEdgeType                      = 27
	IDEdgeWidth                     = 28
	IDEdgeColour                    = 29
	IDEdgeVisibility                = 30
	IDFillReferencePoint            = 31
	IDPatternTable                  = 32
	IDPatternSize                   = 33
	IDColourTable                   = 34
	IDAspectSourceFlags             = 35
	IDLineCap                       = 36
	IDLineJoin                      = 37
	IDLineTypeContinuation          = 38
	IDHatchStyleDefinition          = 41
	IDGeometricPatternDefinition    = 42
	IDInterpolatedInterior          = 44
)

// StructuredDataType is ISO/IEC 8632-3 table 7's SDR member type code.
type StructuredDataType int

const (
	SDTypeSDR   StructuredDataType = 0
	SDTypeCI    StructuredDataType = 1
	SDTypeCD    StructuredDataType = 2
	SDTypeN     StructuredDataType = 3
	SDTypeE     StructuredDataType = 4
	SDTypeI     StructuredDataType = 5
	sdTypeReserved StructuredDataType = 6
	SDTypeIF8   StructuredDataType = 7
	SDTypeIF16  StructuredDataType = 8
	SDTypeIF32  StructuredDataType = 9
	SDTypeIX    StructuredDataType = 10
	SDTypeR     StructuredDataType = 11
	SDTypeS     StructuredDataType = 12
	SDTypeSF    StructuredDataType = 13
	SDTypeVC    StructuredDataType = 14
	SDTypeVDC   StructuredDataType = 15
	SDTypeCCO   StructuredDataType = 16
	SDTypeUI8   StructuredDataType = 17
	SDTypeUI32  StructuredDataType = 18
	SDTypeBS    StructuredDataType = 19
	SDTypeCL    StructuredDataType = 20
	SDTypeUI16  StructuredDataType = 21
)

// longFormMarker is the 5-bit parameter-count value that signals a long-form
// argument length must be read from the following 16-bit word(s).
const longFormMarker = 31

// continuationBit marks, within a long-form partition length word, that
// another partition follows.
const continuationBit = 1 << 15

package cgm

// Picture descriptor commands (class 2) configure one picture's scaling,
// colour selection and clipping extents.

type ScalingMode struct {
	base
	Metric       bool
	ScaleFactor  float64
}

type ColourSelectionModeCommand struct {
	base
	Mode ColourSelectionMode
}

type LineWidthSpecificationMode struct {
	base
	Mode SpecificationMode
}

type EdgeWidthSpecificationMode struct {
	base
	Mode SpecificationMode
}

type VDCExtent struct {
	base
	First, Second Point
}

type BackgroundColour struct {
	base
	Colour ColourTriple
}

func init() {
	register(ClassPictureDescriptor, IDScalingMode, decodeScalingMode)
	register(ClassPictureDescriptor, IDColourSelectionMode, decodeColourSelectionMode)
	register(ClassPictureDescriptor, IDLineWidthSpecificationMode, decodeLineWidthSpecificationMode)
	register(ClassPictureDescriptor, IDEdgeWidthSpecificationMode, decodeEdgeWidthSpecificationMode)
	register(ClassPictureDescriptor, IDVDCExtent, decodeVDCExtent)
	register(ClassPictureDescriptor, IDBackgroundColour, decodeBackgroundColour)
}

func decodeScalingMode(r *argReader) (Command, error) {
	mode, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	factor, err := r.ReadReal()
	if err != nil {
		return nil, err
	}
	return &ScalingMode{base{ClassPictureDescriptor, IDScalingMode}, mode != 0, factor}, nil
}

// decodeColourSelectionMode is an owning-command decoder: it mutates
// state.ColourSelectionMode so every subsequent COLOUR-typed field decodes
// as indexed or direct accordingly.
func decodeColourSelectionMode(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	m := ColourSelectionMode(v)
	r.state.ColourSelectionMode = m
	return &ColourSelectionModeCommand{base{ClassPictureDescriptor, IDColourSelectionMode}, m}, nil
}

func decodeLineWidthSpecificationMode(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	m := SpecificationMode(v)
	r.state.LineWidthMode = m
	return &LineWidthSpecificationMode{base{ClassPictureDescriptor, IDLineWidthSpecificationMode}, m}, nil
}

func decodeEdgeWidthSpecificationMode(r *argReader) (Command, error) {
	v, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	m := SpecificationMode(v)
	r.state.EdgeWidthMode = m
	return &EdgeWidthSpecificationMode{base{ClassPictureDescriptor, IDEdgeWidthSpecificationMode}, m}, nil
}

func decodeVDCExtent(r *argReader) (Command, error) {
	first, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &VDCExtent{base{ClassPictureDescriptor, IDVDCExtent}, first, second}, nil
}

func decodeBackgroundColour(r *argReader) (Command, error) {
	width := widthForPrecision(r.state.ColourPrecision)
	read := func() (int, error) {
		v, err := r.readUnsignedWidth(width)
		return int(v), err
	}
	red, err := read()
	if err != nil {
		return nil, err
	}
	green, err := read()
	if err != nil {
		return nil, err
	}
	blue, err := read()
	if err != nil {
		return nil, err
	}
	return &BackgroundColour{base{ClassPictureDescriptor, IDBackgroundColour}, ColourTriple{red, green, blue}}, nil
}

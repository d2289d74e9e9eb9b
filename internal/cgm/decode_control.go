package cgm

// Control commands (class 3) govern clipping, transparency, and the VDC
// integer and real precisions used for VDC-typed fields.

type VDCIntegerPrecisionCommand struct {
	base
	Bits int
}

type VDCRealPrecisionCommand struct {
	base
	Precision RealPrecision
}

type ClipIndicator struct {
	base
	Enabled bool
}

type Transparency struct {
	base
	Enabled bool
}

func init() {
	register(ClassControl, IDVDCIntegerPrecision, decodeVDCIntegerPrecision)
	register(ClassControl, IDVDCRealPrecision, decodeVDCRealPrecision)
	register(ClassControl, IDClipIndicator, decodeClipIndicator)
	register(ClassControl, IDTransparency, decodeTransparency)
}

func decodeVDCIntegerPrecision(r *argReader) (Command, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	r.state.VDCIntegerPrecision = v
	return &VDCIntegerPrecisionCommand{base{ClassControl, IDVDCIntegerPrecision}, v}, nil
}

func decodeVDCRealPrecision(r *argReader) (Command, error) {
	form, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadInt(); err != nil {
		return nil, err
	}
	if _, err := r.ReadInt(); err != nil {
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
	r.state.VDCRealPrecision = p
	return &VDCRealPrecisionCommand{base{ClassControl, IDVDCRealPrecision}, p}, nil
}

func decodeClipIndicator(r *argReader) (Command, error) {
	v, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &ClipIndicator{base{ClassControl, IDClipIndicator}, v}, nil
}

func decodeTransparency(r *argReader) (Command, error) {
	v, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &Transparency{base{ClassControl, IDTransparency}, v}, nil
}

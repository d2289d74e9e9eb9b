package cgm

import (
	"fmt"
	"math"
)

// truncatedError carries the (class, id, offset, needed) tuple for a failed
// read; it never panics the caller.
type truncatedError struct {
	class  ClassCode
	id     uint16
	offset int
	needed int
	have   int
}

func (e *truncatedError) Error() string {
	return fmt.Sprintf("cgm: truncated argument: class=%s id=%d offset=%d needed=%d have=%d",
		e.class, e.id, e.offset, e.needed, e.have)
}

// argReader decodes precision-aware primitives from a borrowed command
// argument slice, threaded with the owning command's shared metafile state.
// It never retains the slice beyond the call that owns it.
type argReader struct {
	buf   []byte
	pos   int
	state *State
	class ClassCode
	id    uint16
}

func newArgReader(buf []byte, state *State, class ClassCode, id uint16) *argReader {
	return &argReader{buf: buf, state: state, class: class, id: id}
}

func (r *argReader) remaining() int { return len(r.buf) - r.pos }

func (r *argReader) atEnd() bool { return r.pos >= len(r.buf) }

func (r *argReader) need(n int) error {
	if r.remaining() < n {
		return &truncatedError{class: r.class, id: r.id, offset: r.pos, needed: n, have: r.remaining()}
	}
	return nil
}

func (r *argReader) readBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *argReader) readByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readSignedWidth reads a big-endian two's-complement signed integer of the
// given byte width (1, 2, 3, or 4).
func (r *argReader) readSignedWidth(width int) (int64, error) {
	b, err := r.readBytes(width)
	if err != nil {
		return 0, err
	}
	var v int64
	for _, c := range b {
		v = (v << 8) | int64(c)
	}
	signBit := int64(1) << (uint(width)*8 - 1)
	if v&signBit != 0 {
		v -= signBit << 1
	}
	return v, nil
}

// readUnsignedWidth reads a big-endian unsigned integer of the given byte width.
func (r *argReader) readUnsignedWidth(width int) (uint64, error) {
	b, err := r.readBytes(width)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range b {
		v = (v << 8) | uint64(c)
	}
	return v, nil
}

func widthForPrecision(bits int) int {
	switch bits {
	case 8:
		return 1
	case 16:
		return 2
	case 24:
		return 3
	case 32:
		return 4
	default:
		return 2
	}
}

// ReadInt reads a signed integer of state.IntegerPrecision bits.
func (r *argReader) ReadInt() (int, error) {
	v, err := r.readSignedWidth(widthForPrecision(r.state.IntegerPrecision))
	return int(v), err
}

// ReadUint reads an unsigned integer of state.IntegerPrecision bits.
func (r *argReader) ReadUint() (uint, error) {
	v, err := r.readUnsignedWidth(widthForPrecision(r.state.IntegerPrecision))
	return uint(v), err
}

// ReadIndex reads a signed integer of state.IndexPrecision bits.
func (r *argReader) ReadIndex() (int, error) {
	v, err := r.readSignedWidth(widthForPrecision(r.state.IndexPrecision))
	return int(v), err
}

// ReadName reads a signed integer of state.NamePrecision bits.
func (r *argReader) ReadName() (int, error) {
	v, err := r.readSignedWidth(widthForPrecision(r.state.NamePrecision))
	return int(v), err
}

// ReadEnum reads a fixed-width signed 16-bit enumeration value.
func (r *argReader) ReadEnum() (int, error) {
	v, err := r.readSignedWidth(2)
	return int(v), err
}

// ReadBool reads an enum and reports whether it is non-zero.
func (r *argReader) ReadBool() (bool, error) {
	v, err := r.ReadEnum()
	return v != 0, err
}

// ReadReal reads a real number per state.RealPrecision.
func (r *argReader) ReadReal() (float64, error) {
	return r.readRealAs(r.state.RealPrecision)
}

func (r *argReader) readRealAs(p RealPrecision) (float64, error) {
	switch p {
	case RealFixed32:
		whole, err := r.readSignedWidth(2)
		if err != nil {
			return 0, err
		}
		frac, err := r.readUnsignedWidth(2)
		if err != nil {
			return 0, err
		}
		return float64(whole) + float64(frac)/65536.0, nil
	case RealFixed64:
		whole, err := r.readSignedWidth(4)
		if err != nil {
			return 0, err
		}
		frac, err := r.readUnsignedWidth(4)
		if err != nil {
			return 0, err
		}
		return float64(whole) + float64(frac)/4294967296.0, nil
	case RealFloating32:
		bits, err := r.readUnsignedWidth(4)
		if err != nil {
			return 0, err
		}
		return float64(math.Float32frombits(uint32(bits))), nil
	case RealFloating64:
		bits, err := r.readUnsignedWidth(8)
		if err != nil {
			return 0, err
		}
		return math.Float64frombits(bits), nil
	default:
		return 0, fmt.Errorf("cgm: unsupported real precision %v", p)
	}
}

// ReadVDC reads a VDC, choosing integer or real form from state.VDCType.
func (r *argReader) ReadVDC() (float64, error) {
	if r.state.VDCType == VDCReal {
		return r.readRealAs(r.state.VDCRealPrecision)
	}
	v, err := r.readSignedWidth(widthForPrecision(r.state.VDCIntegerPrecision))
	return float64(v), err
}

// ReadPoint reads two VDCs in order (x, y).
func (r *argReader) ReadPoint() (Point, error) {
	x, err := r.ReadVDC()
	if err != nil {
		return Point{}, err
	}
	y, err := r.ReadVDC()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ReadPoints reads points until the argument buffer is exhausted; used by
// variable-length point-list primitives (LINE, POLYGON, ...).
func (r *argReader) ReadPoints() ([]Point, error) {
	var pts []Point
	for !r.atEnd() {
		p, err := r.ReadPoint()
		if err != nil {
			return pts, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// pointByteWidth is the encoded width of one Point at the current state.
// The point-list primitives (LINE, POLYGON, ...) do not use it; they read
// with ReadPoints until the arguments are exhausted.
func (r *argReader) pointByteWidth() int {
	if r.state.VDCType == VDCInteger {
		return 2 * widthForPrecision(r.state.VDCIntegerPrecision)
	}
	switch r.state.VDCRealPrecision {
	case RealFixed64, RealFloating64:
		return 16
	default:
		return 8
	}
}

// ReadColourIndex reads a color-table index at state.ColourIndexPrecision.
func (r *argReader) ReadColourIndex() (uint32, error) {
	v, err := r.readUnsignedWidth(widthForPrecision(r.state.ColourIndexPrecision))
	return uint32(v), err
}

// ReadDirectColour reads 3 (RGB/CIE) or 4 (CMYK) unsigned component values
// of state.ColourPrecision bits. Three-component values are scaled into a
// 0-255 triple by the colour value extent; CMYK values are converted to RGB
// without extent scaling and keep their K component.
func (r *argReader) ReadDirectColour() (Color, error) {
	width := widthForPrecision(r.state.ColourPrecision)
	readComponent := func() (int, error) {
		v, err := r.readUnsignedWidth(width)
		return int(v), err
	}

	switch r.state.ColourModel {
	case ColourModelCMYK:
		c, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		m, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		y, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		k, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		rr, gg, bb := cmykToRGB(c, m, y, k)
		return Color{Kind: ColourDirect, R: rr, G: gg, B: bb, HasK: true, K: k}, nil
	case ColourModelRGB, ColourModelRGBRelated, ColourModelCIELAB, ColourModelCIELUV:
		rr, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		gg, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		bb, err := readComponent()
		if err != nil {
			return Color{}, err
		}
		scaledR, scaledG, scaledB := scaleColourValue(rr, gg, bb, r.state.ColourValueExtentMin, r.state.ColourValueExtentMax)
		return Color{Kind: ColourDirect, R: scaledR, G: scaledG, B: scaledB}, nil
	default:
		return Color{}, fmt.Errorf("cgm: unsupported colour model %v", r.state.ColourModel)
	}
}

func cmykToRGB(c, m, y, k int) (int, int, int) {
	rr := int(255 * (1 - float64(c)/255) * (1 - float64(k)/255))
	gg := int(255 * (1 - float64(m)/255) * (1 - float64(k)/255))
	bb := int(255 * (1 - float64(y)/255) * (1 - float64(k)/255))
	return rr, gg, bb
}

func scaleColourValue(r, g, b int, min, max ColourTriple) (int, int, int) {
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	scale := func(v, lo, hi int) int {
		if lo == hi {
			return 0
		}
		return 255 * (v - lo) / (hi - lo)
	}
	r = clamp(r, min.R, max.R)
	g = clamp(g, min.G, max.G)
	b = clamp(b, min.B, max.B)
	return scale(r, min.R, max.R), scale(g, min.G, max.G), scale(b, min.B, max.B)
}

// ReadColour reads an indexed or direct color, chosen by
// state.ColourSelectionMode.
func (r *argReader) ReadColour() (Color, error) {
	if r.state.ColourSelectionMode == ColourSelectionDirect {
		return r.ReadDirectColour()
	}
	idx, err := r.ReadColourIndex()
	if err != nil {
		return Color{}, err
	}
	return Color{Kind: ColourIndexed, Index: idx}, nil
}

// stringLength reads the read_string length envelope: a length byte, or
// (when that byte is 255) one or more 16-bit words, each a 15-bit length
// with a continuation bit, for strings needing more than 32767 bytes.
func (r *argReader) stringLength() (int, error) {
	n, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if n != 255 {
		return int(n), nil
	}
	total := 0
	for {
		word, err := r.readUnsignedWidth(2)
		if err != nil {
			return 0, err
		}
		more := word&continuationBit != 0
		total += int(word &^ continuationBit)
		if !more {
			break
		}
	}
	return total, nil
}

// ReadString reads a length-prefixed octet string. The reader treats bytes
// as opaque octets and performs no transcoding.
func (r *argReader) ReadString() (string, error) {
	n, err := r.stringLength()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadFixedString reads one length-prefixed string exactly as ReadString
// does.
func (r *argReader) ReadFixedString() (string, error) {
	return r.ReadString()
}

// ReadVC reads a viewport coordinate; device_viewport_mode is not part of
// State, so callers that need VC decoding pass the active mode explicitly.
func (r *argReader) ReadVC(isReal bool) (VC, error) {
	if isReal {
		v, err := r.ReadReal()
		return VC{IsReal: true, Real: v}, err
	}
	v, err := r.ReadInt()
	return VC{IsReal: false, Int: v}, err
}

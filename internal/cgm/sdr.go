package cgm

import "fmt"

// readSDR reads a Structured Data Record: a string envelope whose bytes
// are a nested (type, count, values...) stream, recursing with the same
// metafile precisions active at parse time.
func (r *argReader) readSDR() (*SDR, error) {
	length, err := r.stringLength()
	if err != nil {
		return nil, err
	}
	body, err := r.readBytes(length)
	if err != nil {
		return nil, err
	}
	nested := newArgReader(body, r.state, r.class, r.id)

	sdr := &SDR{}
	for !nested.atEnd() {
		typeCode, err := nested.ReadIndex()
		if err != nil {
			return sdr, err
		}
		count, err := nested.ReadInt()
		if err != nil {
			return sdr, err
		}
		member := SDRMember{Type: StructuredDataType(typeCode), Count: count}
		for i := 0; i < count; i++ {
			v, err := nested.readSDRValue(StructuredDataType(typeCode))
			if err != nil {
				return sdr, err
			}
			member.Values = append(member.Values, v)
		}
		sdr.Members = append(sdr.Members, member)
	}
	return sdr, nil
}

func (r *argReader) readSDRValue(t StructuredDataType) (any, error) {
	switch t {
	case SDTypeSDR:
		return r.readSDR()
	case SDTypeCI:
		return r.ReadColourIndex()
	case SDTypeCD:
		return r.ReadDirectColour()
	case SDTypeN:
		return r.ReadName()
	case SDTypeE:
		return r.ReadEnum()
	case SDTypeI:
		return r.ReadInt()
	case SDTypeIF8:
		v, err := r.readSignedWidth(1)
		return int(v), err
	case SDTypeIF16:
		v, err := r.readSignedWidth(2)
		return int(v), err
	case SDTypeIF32:
		v, err := r.readSignedWidth(4)
		return int(v), err
	case SDTypeIX:
		return r.ReadIndex()
	case SDTypeR:
		return r.ReadReal()
	case SDTypeS, SDTypeSF:
		return r.ReadString()
	case SDTypeVC:
		return r.ReadVC(false)
	case SDTypeVDC:
		return r.ReadVDC()
	case SDTypeUI8:
		v, err := r.readUnsignedWidth(1)
		return uint(v), err
	case SDTypeUI16:
		v, err := r.readUnsignedWidth(2)
		return uint(v), err
	case SDTypeUI32:
		v, err := r.readUnsignedWidth(4)
		return uint(v), err
	default:
		return nil, fmt.Errorf("cgm: unsupported structured data type %d", int(t))
	}
}

package cgm

import "testing"

func TestReadSDRSingleIntMember(t *testing.T) {
	// Envelope: length byte (6), then (type=I index=5 as a 2-byte index,
	// count=1 as a 2-byte int, value=42 as a 2-byte int).
	body := []byte{
		0x00, byte(SDTypeI), // type, read as an index (16-bit signed default)
		0x00, 0x01, // count = 1
		0x00, 42, // value = 42
	}
	data := append([]byte{byte(len(body))}, body...)

	r := newArgReader(data, NewState(), ClassAttribute, IDHatchStyleDefinition)
	sdr, err := r.readSDR()
	if err != nil {
		t.Fatalf("readSDR() error: %v", err)
	}
	if len(sdr.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(sdr.Members))
	}
	m := sdr.Members[0]
	if m.Type != SDTypeI || m.Count != 1 {
		t.Errorf("member = %+v, want Type=I Count=1", m)
	}
	if len(m.Values) != 1 || m.Values[0].(int) != 42 {
		t.Errorf("values = %v, want [42]", m.Values)
	}
}

func TestReadSDRNested(t *testing.T) {
	inner := []byte{
		0x00, byte(SDTypeI),
		0x00, 0x01,
		0x00, 7,
	}
	innerEnvelope := append([]byte{byte(len(inner))}, inner...)

	outer := []byte{0x00, byte(SDTypeSDR), 0x00, 0x01}
	outer = append(outer, innerEnvelope...)
	data := append([]byte{byte(len(outer))}, outer...)

	r := newArgReader(data, NewState(), ClassAttribute, IDGeometricPatternDefinition)
	sdr, err := r.readSDR()
	if err != nil {
		t.Fatalf("readSDR() error: %v", err)
	}
	if len(sdr.Members) != 1 || sdr.Members[0].Type != SDTypeSDR {
		t.Fatalf("members = %+v", sdr.Members)
	}
	nested, ok := sdr.Members[0].Values[0].(*SDR)
	if !ok {
		t.Fatalf("nested value type = %T, want *SDR", sdr.Members[0].Values[0])
	}
	if len(nested.Members) != 1 || nested.Members[0].Values[0].(int) != 7 {
		t.Errorf("nested members = %+v", nested.Members)
	}
}

func TestReadSDRUnsupportedTypeErrors(t *testing.T) {
	body := []byte{0x00, 6, 0x00, 0x01, 0x00, 0x00}
	data := append([]byte{byte(len(body))}, body...)
	r := newArgReader(data, NewState(), ClassAttribute, IDHatchStyleDefinition)
	if _, err := r.readSDR(); err == nil {
		t.Fatal("readSDR() error = nil, want error for reserved type code 6")
	}
}

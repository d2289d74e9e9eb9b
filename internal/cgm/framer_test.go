package cgm

import "testing"

func TestFramerShortForm(t *testing.T) {
	// NOOP: class=0, id=0, param_length=0
	data := []byte{0x00, 0x00}
	f := newFramer(data)

	hdr, args, offset, ok, err := f.next()
	if err != nil {
		t.Fatalf("next() error: %v", err)
	}
	if !ok {
		t.Fatal("next() ok = false, want true")
	}
	if offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
	if hdr.Class != ClassDelimiter || hdr.ID != IDNoOp {
		t.Errorf("hdr = %+v, want {Delimiter 0}", hdr)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}

	_, _, _, ok, err = f.next()
	if err != nil {
		t.Fatalf("next() at end error: %v", err)
	}
	if ok {
		t.Error("next() at end ok = true, want false")
	}
}

func TestFramerShortFormOddLengthPadding(t *testing.T) {
	// BEGMF with a 5-byte string argument (length byte + "TEST"), padded
	// with one zero byte to stay word-aligned.
	word := commandWord(0<<commandWordClassShift | uint16(IDBeginMetafile)<<commandWordIDShift | 5)
	data := []byte{byte(word >> 8), byte(word), 4, 'T', 'E', 'S', 'T', 0x00, 0xff}

	f := newFramer(data)
	hdr, args, _, ok, err := f.next()
	if err != nil || !ok {
		t.Fatalf("next() = (%v, %v), want (nil, true)", err, ok)
	}
	if hdr.Class != ClassDelimiter || hdr.ID != IDBeginMetafile {
		t.Errorf("hdr = %+v", hdr)
	}
	if len(args) != 5 {
		t.Fatalf("len(args) = %d, want 5", len(args))
	}
	if f.pos != 8 {
		t.Errorf("pos after padding = %d, want 8 (skips the pad byte)", f.pos)
	}

	trailing := f.trailingBytes()
	if len(trailing) != 1 || trailing[0] != 0xff {
		t.Errorf("trailingBytes() = %v, want [0xff]", trailing)
	}
}

func TestFramerLongForm(t *testing.T) {
	// MFDESC argument long enough (36 bytes) to force long form: a single
	// partition, no continuation.
	word := commandWord(uint16(ClassMetafileDescriptor)<<commandWordClassShift | uint16(IDMetafileDescription)<<commandWordIDShift | longFormMarker)
	payload := make([]byte, 36)
	payload[0] = 35
	for i := 1; i < 36; i++ {
		payload[i] = 'x'
	}

	data := []byte{byte(word >> 8), byte(word)}
	data = append(data, byte(len(payload)>>8), byte(len(payload)))
	data = append(data, payload...)

	f := newFramer(data)
	hdr, args, _, ok, err := f.next()
	if err != nil || !ok {
		t.Fatalf("next() = (%v, %v), want (nil, true)", err, ok)
	}
	if hdr.Class != ClassMetafileDescriptor || hdr.ID != IDMetafileDescription {
		t.Errorf("hdr = %+v", hdr)
	}
	if len(args) != 36 {
		t.Fatalf("len(args) = %d, want 36", len(args))
	}
}

func TestFramerLongFormContinuation(t *testing.T) {
	word := commandWord(uint16(ClassMetafileDescriptor)<<commandWordClassShift | uint16(IDMetafileDescription)<<commandWordIDShift | longFormMarker)
	first := []byte{'a', 'b'}
	second := []byte{'c', 'd'}

	data := []byte{byte(word >> 8), byte(word)}
	data = append(data, byte((continuationBit|len(first))>>8), byte(continuationBit|len(first)))
	data = append(data, first...)
	data = append(data, byte(len(second)>>8), byte(len(second)))
	data = append(data, second...)

	f := newFramer(data)
	_, args, _, ok, err := f.next()
	if err != nil || !ok {
		t.Fatalf("next() = (%v, %v), want (nil, true)", err, ok)
	}
	if string(args) != "abcd" {
		t.Errorf("args = %q, want %q", args, "abcd")
	}
}

func TestFramerTruncatedShortForm(t *testing.T) {
	word := commandWord(0<<commandWordClassShift | 0<<commandWordIDShift | 4)
	data := []byte{byte(word >> 8), byte(word), 1, 2}

	f := newFramer(data)
	_, _, _, _, err := f.next()
	if err == nil {
		t.Fatal("next() error = nil, want a frameError for truncated short-form arguments")
	}
}

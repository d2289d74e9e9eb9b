package cgm

import "testing"

func TestCommandWordFields(t *testing.T) {
	// class=1 (MetafileDescriptor), id=1 (MFVERSION), param_length=2
	word := commandWord(1<<commandWordClassShift | 1<<commandWordIDShift | 2)

	if got := word.Class(); got != ClassMetafileDescriptor {
		t.Errorf("Class() = %v, want %v", got, ClassMetafileDescriptor)
	}
	if got := word.ElementID(); got != 1 {
		t.Errorf("ElementID() = %d, want 1", got)
	}
	if got := word.ParamLength(); got != 2 {
		t.Errorf("ParamLength() = %d, want 2", got)
	}
}

func TestCommandWordLongFormMarker(t *testing.T) {
	word := commandWord(4<<commandWordClassShift | 1<<commandWordIDShift | longFormMarker)
	if got := word.ParamLength(); got != longFormMarker {
		t.Errorf("ParamLength() = %d, want %d", got, longFormMarker)
	}
}

func TestPartitionWordLength(t *testing.T) {
	w := partitionWord(40)
	if got := w.length(); got != 40 {
		t.Errorf("length() = %d, want 40", got)
	}
	if w.hasMore() {
		t.Error("hasMore() = true, want false")
	}
}

func TestPartitionWordContinuation(t *testing.T) {
	w := partitionWord(continuationBit | 5)
	if got := w.length(); got != 5 {
		t.Errorf("length() = %d, want 5", got)
	}
	if !w.hasMore() {
		t.Error("hasMore() = false, want true")
	}
}

package cgm

import (
	"bytes"
	"strings"
	"testing"
)

func shortFormCommand(class ClassCode, id uint16, args []byte) []byte {
	word := commandWord(uint16(class)<<commandWordClassShift | id<<commandWordIDShift | uint16(len(args)))
	out := []byte{byte(word >> 8), byte(word)}
	out = append(out, args...)
	if len(args)%2 == 1 {
		out = append(out, 0x00)
	}
	return out
}

func beVDC(v int16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func bePoint(x, y int16) []byte {
	return append(beVDC(x), beVDC(y)...)
}

func lengthPrefixedString(s string) []byte {
	return append([]byte{byte(len(s))}, []byte(s)...)
}

// TestDecodeBasicStream exercises a minimal BEGMF/LINE/ENDMF metafile
// decoded entirely under default precisions, mirroring the header-framing
// round trip universal property.
func TestDecodeBasicStream(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassDelimiter, IDBeginMetafile, lengthPrefixedString("TEST"))...)
	data = append(data, shortFormCommand(ClassGraphicalPrimitive, IDPolyline, append(bePoint(10, 20), bePoint(30, 40)...))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, diags := Decode(data, DefaultSettings())
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if len(commands) != 3 {
		t.Fatalf("len(commands) = %d, want 3", len(commands))
	}

	begin, ok := commands[0].(*BeginMetafile)
	if !ok || begin.Name != "TEST" {
		t.Errorf("commands[0] = %+v, want BeginMetafile{Name: TEST}", commands[0])
	}

	line, ok := commands[1].(*Polyline)
	if !ok {
		t.Fatalf("commands[1] type = %T, want *Polyline", commands[1])
	}
	want := []Point{{10, 20}, {30, 40}}
	if len(line.Points) != 2 || line.Points[0] != want[0] || line.Points[1] != want[1] {
		t.Errorf("Points = %v, want %v", line.Points, want)
	}

	if _, ok := commands[2].(*EndMetafile); !ok {
		t.Errorf("commands[2] type = %T, want *EndMetafile", commands[2])
	}
}

// TestDecodeReportsTrailingBytes covers the non-fatal diagnostic for data
// following END METAFILE.
func TestDecodeReportsTrailingBytes(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)
	data = append(data, 0xAB, 0xCD)

	_, diags := Decode(data, DefaultSettings())
	if len(diags) != 1 || diags[0].Severity != SeverityInfo {
		t.Fatalf("diags = %v, want one Info diagnostic", diags)
	}
}

// TestVDCTypeIntegerForcesRealOnEmit covers the ForceRealVdcOnEmit
// compatibility override: an Integer VDC TYPE renders as "real" and
// subsequent VDC-typed fields format as reals.
func TestVDCTypeIntegerForcesRealOnEmit(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDVDCType, beVDC(int16(VDCInteger)))...)
	data = append(data, shortFormCommand(ClassGraphicalPrimitive, IDPolyline, bePoint(5, 7))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())

	var buf bytes.Buffer
	if diags := EmitClearText(commands, &buf, DefaultSettings()); len(diags) != 0 {
		t.Fatalf("EmitClearText diagnostics = %v, want none", diags)
	}

	out := buf.String()
	if !strings.Contains(out, "vdctype") || !strings.Contains(out, "real") {
		t.Errorf("output missing vdctype real override:\n%s", out)
	}
	if !strings.Contains(out, "5.0000") || !strings.Contains(out, "7.0000") {
		t.Errorf("output did not format VDC point as real:\n%s", out)
	}
}

// TestVDCTypePreservedWhenSettingRequests covers PreserveVdcType: no
// override, Integer VDC TYPE stays "integer" and points format as integers.
func TestVDCTypePreservedWhenSettingRequests(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDVDCType, beVDC(int16(VDCInteger)))...)
	data = append(data, shortFormCommand(ClassGraphicalPrimitive, IDPolyline, bePoint(5, 7))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())

	settings := DefaultSettings()
	settings.VdcMode = PreserveVdcType

	var buf bytes.Buffer
	EmitClearText(commands, &buf, settings)
	out := buf.String()

	if !strings.Contains(out, "integer") {
		t.Errorf("output missing preserved integer VDCTYPE:\n%s", out)
	}
	if strings.Contains(out, "5.0000") {
		t.Errorf("output formatted VDC as real under PreserveVdcType:\n%s", out)
	}
}

// TestUnknownCommandPreservesBytesAndDiagnoses covers the factory's
// Unknown fallback for an unregistered (class, id).
func TestUnknownCommandPreservesBytesAndDiagnoses(t *testing.T) {
	data := shortFormCommand(ClassEscape, 5, []byte{0x01, 0x02})

	commands, diags := Decode(data, DefaultSettings())
	if len(commands) != 1 {
		t.Fatalf("len(commands) = %d, want 1", len(commands))
	}
	unk, ok := commands[0].(*Unknown)
	if !ok {
		t.Fatalf("commands[0] type = %T, want *Unknown", commands[0])
	}
	if unk.class != ClassEscape || unk.id != 5 {
		t.Errorf("unk header = {%v %d}, want {Escape 5}", unk.class, unk.id)
	}
	if !bytes.Equal(unk.RawArgs, []byte{0x01, 0x02}) {
		t.Errorf("RawArgs = %v, want [1 2]", unk.RawArgs)
	}

	found := false
	for _, d := range diags {
		if d.Severity == SeverityUnimplemented {
			found = true
		}
	}
	if !found {
		t.Errorf("diags = %v, want an Unimplemented entry", diags)
	}
}

// TestUnknownCommandEmitsComment covers EmitUnknownAsComment's "%" rendering:
// the numeric class code, not its name, and a terminating ";", followed by
// the newline EmitClearText ends its output with.
func TestUnknownCommandEmitsComment(t *testing.T) {
	data := shortFormCommand(ClassEscape, 5, []byte{0x01, 0x02})
	commands, _ := Decode(data, DefaultSettings())

	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())
	out := buf.String()

	want := "% Unknown command: Class=6, ID=5 %;\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

// TestDecodeLongFormDescription exercises the long-form command-length
// framing path end to end through Decode, not just the framer.
func TestDecodeLongFormDescription(t *testing.T) {
	desc := strings.Repeat("x", 35)
	payload := lengthPrefixedString(desc) // 36 bytes total

	word := commandWord(uint16(ClassMetafileDescriptor)<<commandWordClassShift | uint16(IDMetafileDescription)<<commandWordIDShift | longFormMarker)
	var data []byte
	data = append(data, byte(word>>8), byte(word))
	data = append(data, byte(len(payload)>>8), byte(len(payload)))
	data = append(data, payload...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, diags := Decode(data, DefaultSettings())
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	md, ok := commands[0].(*MetafileDescription)
	if !ok || md.Description != desc {
		t.Errorf("commands[0] = %+v, want MetafileDescription{%q}", commands[0], desc)
	}
}

// TestColourValueExtentScalesSubsequentColours covers the owning-command
// state mutation for COLRVALUEEXT feeding a later direct FILLCOLR.
func TestColourValueExtentScalesSubsequentColours(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassPictureDescriptor, IDColourSelectionMode, beVDC(int16(ColourSelectionDirect)))...)
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDColourValueExtent, []byte{0, 0, 0, 100, 100, 100})...)
	data = append(data, shortFormCommand(ClassAttribute, IDFillColour, []byte{50, 100, 0})...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, diags := Decode(data, DefaultSettings())
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	fill, ok := commands[2].(*FillColour)
	if !ok {
		t.Fatalf("commands[2] type = %T, want *FillColour", commands[2])
	}
	if fill.Colour.R != 127 || fill.Colour.G != 255 || fill.Colour.B != 0 {
		t.Errorf("Colour = %+v, want RGB(127,255,0)", fill.Colour)
	}
}

// TestEmitIntegerPrecisionUsesSignedExtentForm covers the clear-text extent
// form for an 8-bit integer precision field: "-128, 127 % 8 binary bits %".
func TestEmitIntegerPrecisionUsesSignedExtentForm(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDIntegerPrecision, beVDC(8))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " integerprec -128, 127 % 8 binary bits %;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitIndexPrecisionUsesSignedExtentForm mirrors the integer precision
// extent form for INDEXPREC.
func TestEmitIndexPrecisionUsesSignedExtentForm(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDIndexPrecision, beVDC(8))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " indexprec -128, 127 % 8 binary bits %;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitColourPrecisionUsesUnsignedMax covers COLRPREC's "2^P - 1" form.
func TestEmitColourPrecisionUsesUnsignedMax(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDColourPrecision, beVDC(8))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " colrprec 255;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitColourIndexPrecisionUsesSignedMax covers COLRINDEXPREC's signed
// "2^(P-1) - 1" form.
func TestEmitColourIndexPrecisionUsesSignedMax(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDColourIndexPrecision, beVDC(8))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " colrindexprec 127;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitRealPrecisionUsesExtentForm covers REALPREC's full extent-and-bits
// clear-text form, derived from the decoded exponent and fraction widths.
func TestEmitRealPrecisionUsesExtentForm(t *testing.T) {
	var data []byte
	args := append(beVDC(0), append(beVDC(7), beVDC(9)...)...) // form=floating, exponent=7, fraction=9
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDRealPrecision, args)...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " realprec -511.0000, 511.0000, 7 % 10 binary bits %;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitColourValueExtentSpaceSeparatesTriples covers COLRVALUEEXT's
// "<R> <G> <B>, <R> <G> <B>" form: space within a triple, comma between.
func TestEmitColourValueExtentSpaceSeparatesTriples(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDColourValueExtent, []byte{0, 0, 0, 255, 255, 255})...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())

	want := " colrvalueext 0 0 0, 255 255 255;"
	if out := buf.String(); !strings.Contains(out, want) {
		t.Errorf("output = %q, want to contain %q", out, want)
	}
}

// TestEmitLowercasesClassOneThroughFiveKeywords covers the case-discipline
// rule: only class-0 delimiters stay uppercase, every other class lowercases
// its keyword (and classes 2-5 indent two spaces).
func TestEmitLowercasesClassOneThroughFiveKeywords(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassMetafileDescriptor, IDMetafileVersion, beVDC(1))...)
	data = append(data, shortFormCommand(ClassGraphicalPrimitive, IDPolyline, append(bePoint(1, 2), bePoint(3, 4)...))...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	commands, _ := Decode(data, DefaultSettings())
	var buf bytes.Buffer
	EmitClearText(commands, &buf, DefaultSettings())
	out := buf.String()

	if !strings.Contains(out, " mfversion 1;") {
		t.Errorf("output = %q, want lowercase 1-space-indented mfversion", out)
	}
	if !strings.Contains(out, "  line ") {
		t.Errorf("output = %q, want lowercase 2-space-indented line", out)
	}
	if strings.Contains(out, "MFVERSION") || strings.Contains(out, "LINE ") {
		t.Errorf("output = %q, want no uppercase class 1/4 keywords", out)
	}
}

// TestConvertRoundTripsUnknownAndKnownCommands is an end-to-end smoke test
// of the Convert orchestration function.
func TestConvertRoundTripsUnknownAndKnownCommands(t *testing.T) {
	var data []byte
	data = append(data, shortFormCommand(ClassDelimiter, IDBeginMetafile, lengthPrefixedString("PIC"))...)
	data = append(data, shortFormCommand(ClassEscape, 1, []byte{0x01, 0x02})...)
	data = append(data, shortFormCommand(ClassDelimiter, IDEndMetafile, nil)...)

	var buf bytes.Buffer
	diags := Convert(data, &buf, DefaultSettings())

	out := buf.String()
	if !strings.Contains(out, "BEGMF") || !strings.Contains(out, "ENDMF") {
		t.Errorf("output missing BEGMF/ENDMF:\n%s", out)
	}
	foundUnimplemented := false
	for _, d := range diags {
		if d.Severity == SeverityUnimplemented {
			foundUnimplemented = true
		}
	}
	if !foundUnimplemented {
		t.Errorf("diags = %v, want an Unimplemented entry for the escape command", diags)
	}
}

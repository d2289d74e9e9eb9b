package cgm

import "io"

// Decode parses a complete binary metafile into its command list. Decode
// never returns an error: framing failures are Fatal diagnostics that stop
// decoding at the byte they occurred, and every command decoded up to that
// point is returned alongside them.
func Decode(data []byte, settings Settings) ([]Command, []Diagnostic) {
	state := NewState()
	diags := &diagnosticSink{}
	f := newFramer(data)

	var commands []Command
	for {
		hdr, args, offset, ok, err := f.next()
		if err != nil {
			fe, _ := err.(*frameError)
			if fe != nil {
				diags.fatal(0, 0, int64(fe.offset), "%s", fe.reason)
			} else {
				diags.fatal(0, 0, int64(offset), "%v", err)
			}
			break
		}
		if !ok {
			break
		}

		cmd := decodeCommand(hdr, args, offset, state, diags)
		commands = append(commands, cmd)

		if hdr.Class == ClassDelimiter && hdr.ID == IDEndMetafile {
			break
		}
	}

	if trailing := f.trailingBytes(); len(trailing) > 0 {
		diags.info(ClassDelimiter, IDEndMetafile, int64(len(data)-len(trailing)), "%d trailing byte(s) after END METAFILE", len(trailing))
	}

	return commands, diags.drain()
}

// EmitClearText renders a decoded command list as ISO/IEC 8632-4 clear
// text. It replays the same State transitions the commands were decoded
// under, so mode-dependent formatting (VDC type, colour selection, width
// specification mode) matches the stream's own precisions rather than
// NewState's defaults.
func EmitClearText(commands []Command, sink io.Writer, settings Settings) []Diagnostic {
	state := NewState()
	diags := &diagnosticSink{}
	w := newTextWriter(sink, settings)

	for _, cmd := range commands {
		if u, isUnknown := cmd.(*Unknown); isUnknown {
			if !settings.EmitUnknownAsComment {
				continue
			}
			u.emitText(state, w)
			continue
		}
		applyStateTransition(state, cmd, settings)
		cmd.emitText(state, w)
	}
	if w.started {
		w.newline()
	}
	if w.err != nil {
		diags.fatal(0, 0, 0, "clear text write failed: %v", w.err)
	}
	return diags.drain()
}

// applyStateTransition mirrors decodeVDCType/decodeColourSelectionMode/...'s
// state mutation on the emit side, since EmitClearText may run over a
// command list that was not produced by this package's own Decode.
func applyStateTransition(state *State, cmd Command, settings Settings) {
	switch c := cmd.(type) {
	case *VDCTypeCommand:
		state.VDCType = c.Type
		state.emitVDCAsReal = settings.VdcMode == ForceRealVdcOnEmit && c.Type == VDCInteger
	case *IntegerPrecisionCommand:
		state.IntegerPrecision = c.Bits
	case *RealPrecisionCommand:
		state.RealPrecision = c.Precision
	case *IndexPrecisionCommand:
		state.IndexPrecision = c.Bits
	case *ColourPrecisionCommand:
		state.ColourPrecision = c.Bits
	case *ColourIndexPrecisionCommand:
		state.ColourIndexPrecision = c.Bits
	case *ColourValueExtent:
		state.ColourValueExtentMin = c.Min
		state.ColourValueExtentMax = c.Max
	case *NamePrecisionCommand:
		state.NamePrecision = c.Bits
	case *CharacterCodingAnnouncerCommand:
		state.CharacterCoding = c.Announcer
	case *ColourModelCommand:
		state.ColourModel = c.Model
	case *ColourSelectionModeCommand:
		state.ColourSelectionMode = c.Mode
	case *LineWidthSpecificationMode:
		state.LineWidthMode = c.Mode
	case *EdgeWidthSpecificationMode:
		state.EdgeWidthMode = c.Mode
	case *VDCIntegerPrecisionCommand:
		state.VDCIntegerPrecision = c.Bits
	case *VDCRealPrecisionCommand:
		state.VDCRealPrecision = c.Precision
	}
}

// Convert decodes a binary metafile and emits it as clear text in one
// call, concatenating the diagnostics from both stages.
func Convert(data []byte, sink io.Writer, settings Settings) []Diagnostic {
	commands, decodeDiags := Decode(data, settings)
	emitDiags := EmitClearText(commands, sink, settings)
	return append(decodeDiags, emitDiags...)
}

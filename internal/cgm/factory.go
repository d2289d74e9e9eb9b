package cgm

// decodeFunc decodes one command's already-framed argument bytes into its
// typed variant. It never panics: a truncated or unsupported read is turned
// into a diagnostic by decodeCommand, which falls back to Unknown.
type decodeFunc func(r *argReader) (Command, error)

// factory is the table keyed by (class_code, element_id), the single place
// new command variants are registered. Unknown keys fall back to the
// Unknown variant. Each decode_*.go file registers the variants it defines
// via its own init().
var factory = map[Header]decodeFunc{}

func register(class ClassCode, id uint16, fn decodeFunc) {
	factory[Header{Class: class, ID: id}] = fn
}

// decodeCommand routes (class, id, arg_bytes) to its decoder, threading the
// shared metafile state, and materializes Unknown with the raw bytes on any
// failure.
func decodeCommand(hdr Header, args []byte, offset int, state *State, diags *diagnosticSink) Command {
	fn, known := factory[hdr]
	if !known {
		diags.unimplemented(hdr.Class, hdr.ID, int64(offset), "no decoder registered for class=%s id=%d", hdr.Class, hdr.ID)
		return newUnknown(hdr, args)
	}

	r := newArgReader(args, state, hdr.Class, hdr.ID)
	cmd, err := fn(r)
	if err != nil {
		diags.unsupported(hdr.Class, hdr.ID, int64(offset+r.pos), "%v", err)
		return newUnknown(hdr, args)
	}
	if vt, ok := cmd.(*VDCTypeCommand); ok && vt.Type == VDCInteger {
		diags.info(hdr.Class, hdr.ID, int64(offset), "VDC TYPE Integer is emitted as real under the ForceRealVdcOnEmit compatibility override")
	}
	return cmd
}

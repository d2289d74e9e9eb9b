package cgm

// VdcMode selects how a decoded VDC TYPE of Integer is handled when the
// command list is emitted as clear text.
type VdcMode int

const (
	// ForceRealVdcOnEmit emits VDC TYPE Integer as "real" and formats
	// subsequent VDC-typed fields as reals, matching the ISO reference
	// implementation's interoperability workaround. This is the default.
	ForceRealVdcOnEmit VdcMode = iota
	// PreserveVdcType emits VDC TYPE and subsequent VDCs exactly as decoded,
	// with no compatibility override.
	PreserveVdcType
)

func (m VdcMode) String() string {
	if m == PreserveVdcType {
		return "PreserveVdcType"
	}
	return "ForceRealVdcOnEmit"
}

// Settings configures the decoder and emitter. The zero value is not valid;
// use DefaultSettings.
type Settings struct {
	// VdcMode controls the VDC-type emit override, see VdcMode.
	VdcMode VdcMode
	// WrapColumn is the soft line-wrap column used by the clear-text emitter.
	WrapColumn uint16
	// EmitUnknownAsComment, when true, renders Unknown commands as a
	// "% Unknown command: ... %;" clear-text comment. When false, Unknown
	// commands are silently skipped in the emitted text (they are still
	// present in the decoded command list either way).
	EmitUnknownAsComment bool
}

// DefaultSettings returns the package's documented default settings.
func DefaultSettings() Settings {
	return Settings{
		VdcMode:               ForceRealVdcOnEmit,
		WrapColumn:            80,
		EmitUnknownAsComment: true,
	}
}

package cgm

import "fmt"

// Severity classifies a Diagnostic on a four-level scale.
type Severity int

const (
	// SeverityInfo marks expected compatibility behavior, e.g. the VDC-type
	// emit override (see config.go's ForceRealVdcOnEmit).
	SeverityInfo Severity = iota
	// SeverityUnsupported marks a command whose argument uses a precision or
	// mode the decoder cannot interpret; the command becomes Unknown.
	SeverityUnsupported
	// SeverityUnimplemented marks a known (class, id) with no decoder yet.
	SeverityUnimplemented
	// SeverityFatal marks a framer invariant violation; decode halts at that byte.
	SeverityFatal
)

// String renders the severity the way log fields and diagnostic dumps expect.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityUnsupported:
		return "unsupported"
	case SeverityUnimplemented:
		return "unimplemented"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one accumulated decode or emit message:
// {severity, class, id, byte_offset, message}.
type Diagnostic struct {
	Severity   Severity
	Class      ClassCode
	ID         uint16
	ByteOffset int64
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] class=%s id=%d offset=%d: %s", d.Severity, d.Class, d.ID, d.ByteOffset, d.Message)
}

// diagnosticSink accumulates Diagnostic values during decode or emit. It
// never aborts the caller: decode and emit are both total operations.
type diagnosticSink struct {
	messages []Diagnostic
}

func (s *diagnosticSink) add(severity Severity, class ClassCode, id uint16, offset int64, format string, args ...any) {
	s.messages = append(s.messages, Diagnostic{
		Severity:   severity,
		Class:      class,
		ID:         id,
		ByteOffset: offset,
		Message:    fmt.Sprintf(format, args...),
	})
}

func (s *diagnosticSink) info(class ClassCode, id uint16, offset int64, format string, args ...any) {
	s.add(SeverityInfo, class, id, offset, format, args...)
}

func (s *diagnosticSink) unsupported(class ClassCode, id uint16, offset int64, format string, args ...any) {
	s.add(SeverityUnsupported, class, id, offset, format, args...)
}

func (s *diagnosticSink) unimplemented(class ClassCode, id uint16, offset int64, format string, args ...any) {
	s.add(SeverityUnimplemented, class, id, offset, format, args...)
}

func (s *diagnosticSink) fatal(class ClassCode, id uint16, offset int64, format string, args ...any) {
	s.add(SeverityFatal, class, id, offset, format, args...)
}

func (s *diagnosticSink) drain() []Diagnostic {
	out := s.messages
	s.messages = nil
	return out
}

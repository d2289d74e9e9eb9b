package cgm

import (
	"fmt"
	"io"
	"strings"
)

// textWriter renders a command list as ISO/IEC 8632-4 clear text:
// per-class keyword case and indentation, 4-decimal real formatting,
// single-quoted strings with doubled-quote escaping, and a soft line wrap
// that only breaks between top-level tokens.
type textWriter struct {
	w         io.Writer
	wrap      int
	col       int
	started   bool
	lastClass ClassCode
	err       error
}

func newTextWriter(w io.Writer, settings Settings) *textWriter {
	wrap := int(settings.WrapColumn)
	if wrap < 20 {
		wrap = 20
	}
	return &textWriter{w: w, wrap: wrap}
}

func (tw *textWriter) raw(s string) {
	if tw.err != nil {
		return
	}
	_, tw.err = io.WriteString(tw.w, s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		tw.col = len(s) - i - 1
	} else {
		tw.col += len(s)
	}
}

func (tw *textWriter) newline() {
	tw.raw("\n")
}

// command starts a new command line with the keyword cased per its class
// (uppercase for delimiters, lowercase for every other class) and an indent
// appropriate to that class.
func (tw *textWriter) command(class ClassCode, keyword string) {
	if tw.started {
		tw.newline()
	}
	tw.started = true
	tw.lastClass = class
	tw.raw(indentFor(class))
	if class == ClassDelimiter {
		tw.raw(keyword)
	} else {
		tw.raw(strings.ToLower(keyword))
	}
}

// indentFor returns the leading whitespace for a command's class: delimiters
// start at column 0, the metafile descriptor class indents one space, and
// every other class indents two.
func indentFor(class ClassCode) string {
	switch class {
	case ClassDelimiter:
		return ""
	case ClassMetafileDescriptor:
		return " "
	default:
		return "  "
	}
}

// token appends one space-separated argument token, wrapping to a new
// continuation line (indented to the current command's class) only between
// tokens, never inside one.
func (tw *textWriter) token(s string) {
	if tw.col > 0 && tw.col+1+len(s) > tw.wrap {
		tw.raw("\n" + indentFor(tw.lastClass))
		tw.raw(s)
		return
	}
	if tw.col > 0 {
		tw.raw(" ")
	}
	tw.raw(s)
}

func (tw *textWriter) end() {
	tw.raw(";")
}

// comment emits a "% ... %;" line, used for Unknown commands.
func (tw *textWriter) comment(format string, args ...any) {
	if tw.started {
		tw.newline()
	}
	tw.started = true
	tw.raw("% ")
	tw.raw(fmt.Sprintf(format, args...))
	tw.raw(" %;")
}

func formatReal(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func formatPoint(p Point) string {
	return fmt.Sprintf("(%s,%s)", formatReal(p.X), formatReal(p.Y))
}

func formatVDC(v float64, asReal bool) string {
	if asReal {
		return formatReal(v)
	}
	return fmt.Sprintf("%d", int64(v))
}

func formatString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func formatColour(c Color) string {
	if c.Kind == ColourIndexed {
		return fmt.Sprintf("%d", c.Index)
	}
	if c.HasK {
		return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.K)
	}
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

func formatTriple(t ColourTriple) string {
	return fmt.Sprintf("%d %d %d", t.R, t.G, t.B)
}

func formatBool(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

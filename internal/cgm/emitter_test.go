package cgm

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextWriterCommandAndTokens(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf, DefaultSettings())
	w.command(ClassDelimiter, "BEGMF")
	w.token("'TEST'")
	w.end()

	if got := buf.String(); got != "BEGMF 'TEST';" {
		t.Errorf("output = %q, want %q", got, "BEGMF 'TEST';")
	}
}

func TestTextWriterWrapsLongTokenLists(t *testing.T) {
	settings := DefaultSettings()
	settings.WrapColumn = 20
	var buf bytes.Buffer
	w := newTextWriter(&buf, settings)
	w.command(ClassGraphicalPrimitive, "LINE")
	for i := 0; i < 10; i++ {
		w.token("(1.0000,2.0000)")
	}
	w.end()

	out := buf.String()
	if !strings.Contains(out, "\n") {
		t.Errorf("expected output to wrap across lines, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20+5 {
			t.Errorf("line %q exceeds wrap column by more than the continuation indent", line)
		}
	}
}

func TestTextWriterMultipleCommandsSeparateLines(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf, DefaultSettings())
	w.command(ClassDelimiter, "BEGMF")
	w.token("'A'")
	w.end()
	w.command(ClassDelimiter, "ENDMF")
	w.end()

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "BEGMF 'A';" || lines[1] != "ENDMF;" {
		t.Errorf("lines = %q", lines)
	}
}

func TestFormatRealFourDecimals(t *testing.T) {
	if got := formatReal(1.5); got != "1.5000" {
		t.Errorf("formatReal(1.5) = %q, want %q", got, "1.5000")
	}
}

func TestFormatStringEscapesQuotes(t *testing.T) {
	if got := formatString("it's"); got != "'it''s'" {
		t.Errorf("formatString = %q, want %q", got, "'it''s'")
	}
}

func TestFormatPoint(t *testing.T) {
	if got := formatPoint(Point{1, 2}); got != "(1.0000,2.0000)" {
		t.Errorf("formatPoint = %q, want %q", got, "(1.0000,2.0000)")
	}
}

func TestIndentForClassifiesByClass(t *testing.T) {
	if indentFor(ClassGraphicalPrimitive) == "" {
		t.Error("expected non-empty indent for graphical primitives")
	}
	if indentFor(ClassDelimiter) != "" {
		t.Error("expected no indent for delimiter commands")
	}
}

package cgm

import "fmt"

func (c *LineColour) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINECOLR")
	w.token(formatColour(c.Colour))
	w.end()
}

func (c *LineTypeCommand) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINETYPE")
	w.token(fmt.Sprintf("%d", c.Type))
	w.end()
}

func (c *LineWidth) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINEWIDTH")
	if s.LineWidthMode == SpecificationAbsolute {
		w.token(formatVDC(c.Width, s.vdcEmitsAsReal()))
	} else {
		w.token(formatReal(c.Width))
	}
	w.end()
}

func (c *EdgeColour) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "EDGECOLR")
	w.token(formatColour(c.Colour))
	w.end()
}

func (c *EdgeTypeCommand) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "EDGETYPE")
	w.token(fmt.Sprintf("%d", c.Type))
	w.end()
}

func (c *EdgeWidth) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "EDGEWIDTH")
	if s.EdgeWidthMode == SpecificationAbsolute {
		w.token(formatVDC(c.Width, s.vdcEmitsAsReal()))
	} else {
		w.token(formatReal(c.Width))
	}
	w.end()
}

func (c *EdgeVisibility) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "EDGEVIS")
	w.token(formatBool(c.Visible))
	w.end()
}

func (c *InteriorStyle) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "INTSTYLE")
	w.token(fmt.Sprintf("%d", c.Style))
	w.end()
}

func (c *FillColour) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "FILLCOLR")
	w.token(formatColour(c.Colour))
	w.end()
}

func (c *TextColour) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "TEXTCOLR")
	w.token(formatColour(c.Colour))
	w.end()
}

func (c *TextFontIndex) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "TEXTFONTINDEX")
	w.token(fmt.Sprintf("%d", c.Index))
	w.end()
}

func (c *CharacterHeight) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "CHARHEIGHT")
	w.token(formatVDC(c.Height, s.vdcEmitsAsReal()))
	w.end()
}

func (c *CharacterOrientation) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "CHARORI")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDC(c.Up.X, asReal))
	w.token(formatVDC(c.Up.Y, asReal))
	w.token(formatVDC(c.Base.X, asReal))
	w.token(formatVDC(c.Base.Y, asReal))
	w.end()
}

func (c *CharacterSetIndexCommand) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "CHARSETINDEX")
	w.token(fmt.Sprintf("%d", c.Index))
	w.end()
}

func (c *AlternateCharacterSetIndex) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "ALTCHARSETINDEX")
	w.token(fmt.Sprintf("%d", c.Index))
	w.end()
}

func (c *TextAlignment) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "TEXTALIGN")
	w.token(fmt.Sprintf("%d", c.Horizontal))
	w.token(fmt.Sprintf("%d", c.Vertical))
	w.token(formatReal(c.ContHoriz))
	w.token(formatReal(c.ContVert))
	w.end()
}

func (c *CharacterExpansionFactor) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "CHAREXPAN")
	w.token(formatReal(c.Factor))
	w.end()
}

func (c *LineCap) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINECAP")
	w.token(fmt.Sprintf("%d", c.CapIndicator))
	w.token(fmt.Sprintf("%d", c.JoinIndicator))
	w.end()
}

func (c *LineJoin) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINEJOIN")
	w.token(fmt.Sprintf("%d", c.Indicator))
	w.end()
}

func (c *LineTypeContinuation) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "LINETYPECONT")
	w.token(fmt.Sprintf("%d", c.Mode))
	w.end()
}

func (c *HatchStyleDefinition) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "HATCHSTYLEDEF")
	w.token(fmt.Sprintf("%d", c.Index))
	emitSDR(w, c.Style)
	w.end()
}

func (c *GeometricPatternDefinition) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "PATTERNDEF")
	w.token(fmt.Sprintf("%d", c.Index))
	emitSDR(w, c.Pattern)
	w.end()
}

func (c *InterpolatedInterior) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "INTERPINT")
	w.token(fmt.Sprintf("%d", c.Style))
	emitSDR(w, c.Stylised)
	w.end()
}

func (c *ColourTableCommand) emitText(s *State, w *textWriter) {
	w.command(ClassAttribute, "COLRTABLE")
	w.token(fmt.Sprintf("%d", c.StartIndex))
	for _, e := range c.Entries {
		w.token(formatTriple(e))
	}
	w.end()
}

// emitSDR renders a Structured Data Record as a flat sequence of tokens:
// each member contributes its type code, its count, then its values in
// order, matching the nested (type, count, value[count]) layout it was
// decoded from.
func emitSDR(w *textWriter, sdr *SDR) {
	if sdr == nil {
		return
	}
	for _, m := range sdr.Members {
		w.token(fmt.Sprintf("%d", int(m.Type)))
		w.token(fmt.Sprintf("%d", m.Count))
		for _, v := range m.Values {
			w.token(formatSDRValue(v))
		}
	}
}

func formatSDRValue(v any) string {
	switch x := v.(type) {
	case *SDR:
		var parts []string
		for _, m := range x.Members {
			parts = append(parts, fmt.Sprintf("%d", int(m.Type)), fmt.Sprintf("%d", m.Count))
			for _, nested := range m.Values {
				parts = append(parts, formatSDRValue(nested))
			}
		}
		return "(" + fmt.Sprint(parts) + ")"
	case Color:
		return formatColour(x)
	case Point:
		return formatPoint(x)
	case VC:
		if x.IsReal {
			return formatReal(x.Real)
		}
		return fmt.Sprintf("%d", x.Int)
	case float64:
		return formatReal(x)
	case string:
		return formatString(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

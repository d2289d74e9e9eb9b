package cgm

import "fmt"

func (c *MetafileVersion) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "MFVERSION")
	w.token(fmt.Sprintf("%d", c.Version))
	w.end()
}

func (c *MetafileDescription) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "MFDESC")
	w.token(formatString(c.Description))
	w.end()
}

// emitText applies the ForceRealVdcOnEmit compatibility override: an
// Integer VDC TYPE is rendered as "real" when the active Settings request
// it, tracked by state.emitVDCAsReal, which applyStateTransition sets from
// the active Settings.
func (c *VDCTypeCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "VDCTYPE")
	if s.vdcEmitsAsReal() && c.Type == VDCInteger {
		w.token("real")
	} else {
		w.token(c.Type.String())
	}
	w.end()
}

func (c *IntegerPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "INTEGERPREC")
	emitSignedExtent(w, c.Bits)
	w.end()
}

func (c *RealPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "REALPREC")
	emitRealExtent(w, c.ExponentWidth, c.FractionWidth)
	w.end()
}

func (c *IndexPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "INDEXPREC")
	emitSignedExtent(w, c.Bits)
	w.end()
}

func (c *ColourPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "COLRPREC")
	w.token(fmt.Sprintf("%d", unsignedMax(c.Bits)))
	w.end()
}

func (c *ColourIndexPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "COLRINDEXPREC")
	w.token(fmt.Sprintf("%d", signedMax(c.Bits)))
	w.end()
}

// emitSignedExtent renders the clear-text extent of a P-bit two's
// complement field as "-<2^(P-1)>, <2^(P-1)-1> % <P> binary bits %".
func emitSignedExtent(w *textWriter, bits int) {
	w.token(fmt.Sprintf("-%d,", int64(1)<<(bits-1)))
	w.token(fmt.Sprintf("%d", signedMax(bits)))
	w.token(fmt.Sprintf("%% %d binary bits %%", bits))
}

// emitRealExtent renders a floating-point REAL PRECISION field's extent:
// the representable range is bounded by the fraction width, the exponent
// width is carried alongside it, and the reported bit count covers the sign
// bit plus the fraction.
func emitRealExtent(w *textWriter, exponentWidth, fractionWidth int) {
	max := float64(unsignedMax(fractionWidth))
	w.token(formatReal(-max) + ",")
	w.token(formatReal(max) + ",")
	w.token(fmt.Sprintf("%d", exponentWidth))
	w.token(fmt.Sprintf("%% %d binary bits %%", 1+fractionWidth))
}

func signedMax(bits int) int64 {
	return int64(1)<<(bits-1) - 1
}

func unsignedMax(bits int) int64 {
	return int64(1)<<bits - 1
}

func (c *MaximumColourIndex) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "MAXCOLRINDEX")
	w.token(fmt.Sprintf("%d", c.Index))
	w.end()
}

func (c *ColourValueExtent) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "COLRVALUEEXT")
	w.token(formatTriple(c.Min) + ",")
	w.token(formatTriple(c.Max))
	w.end()
}

func (c *MetafileElementList) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "MFELEMLIST")
	w.token(fmt.Sprintf("%d", len(c.Elements)))
	for _, e := range c.Elements {
		w.token(fmt.Sprintf("%d,%d", int(e.Class), e.ID))
	}
	w.end()
}

func (c *FontList) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "FONTLIST")
	for _, n := range c.Names {
		w.token(formatString(n))
	}
	w.end()
}

func (c *CharacterSetList) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "CHARSETLIST")
	for _, e := range c.Entries {
		w.token(fmt.Sprintf("%d", e.Type))
		w.token(formatString(e.Designator))
	}
	w.end()
}

func (c *CharacterCodingAnnouncerCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "CHARCODING")
	w.token(c.Announcer.String())
	w.end()
}

func (c *NamePrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "NAMEPRECISION")
	w.token(fmt.Sprintf("%d", c.Bits))
	w.end()
}

func (c *MaximumVDCExtent) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "MAXVDCEXT")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDCPoint(c.First, asReal))
	w.token(formatVDCPoint(c.Second, asReal))
	w.end()
}

func (c *ColourModelCommand) emitText(s *State, w *textWriter) {
	w.command(ClassMetafileDescriptor, "COLRMODEL")
	w.token(c.Model.String())
	w.end()
}

func formatVDCPoint(p Point, asReal bool) string {
	return fmt.Sprintf("(%s,%s)", formatVDC(p.X, asReal), formatVDC(p.Y, asReal))
}

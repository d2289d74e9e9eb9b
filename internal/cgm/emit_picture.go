package cgm

func (c *ScalingMode) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "SCALEMODE")
	if c.Metric {
		w.token("metric")
	} else {
		w.token("abstract")
	}
	w.token(formatReal(c.ScaleFactor))
	w.end()
}

func (c *ColourSelectionModeCommand) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "COLRMODE")
	w.token(c.Mode.String())
	w.end()
}

func (c *LineWidthSpecificationMode) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "LINEWIDTHMODE")
	w.token(c.Mode.String())
	w.end()
}

func (c *EdgeWidthSpecificationMode) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "EDGEWIDTHMODE")
	w.token(c.Mode.String())
	w.end()
}

func (c *VDCExtent) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "VDCEXT")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDCPoint(c.First, asReal))
	w.token(formatVDCPoint(c.Second, asReal))
	w.end()
}

func (c *BackgroundColour) emitText(s *State, w *textWriter) {
	w.command(ClassPictureDescriptor, "BACKCOLR")
	w.token(formatTriple(c.Colour))
	w.end()
}

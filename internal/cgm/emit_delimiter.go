package cgm

func (c *NoOp) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "NOOP")
	w.end()
}

func (c *BeginMetafile) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGMF")
	w.token(formatString(c.Name))
	w.end()
}

func (c *EndMetafile) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "ENDMF")
	w.end()
}

func (c *BeginPicture) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGPIC")
	w.token(formatString(c.Name))
	w.end()
}

func (c *BeginPictureBody) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGPICBODY")
	w.end()
}

func (c *EndPicture) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "ENDPIC")
	w.end()
}

func (c *BeginFigure) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGFIGURE")
	w.end()
}

func (c *EndFigure) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "ENDFIGURE")
	w.end()
}

func (c *MetafileDefaultsReplacement) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGMFDEFAULTS")
	w.end()
	for _, nested := range c.Commands {
		nested.emitText(s, w)
	}
	w.command(ClassDelimiter, "ENDMFDEFAULTS")
	w.end()
}

func (c *BeginApplicationStructure) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "BEGAPS")
	w.token(formatString(c.StructureType))
	w.token(formatString(c.Identifier))
	w.end()
}

func (c *BeginApplicationStructureBody) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "APSBODY")
	w.end()
}

func (c *EndApplicationStructure) emitText(s *State, w *textWriter) {
	w.command(ClassDelimiter, "ENDAPS")
	w.end()
}

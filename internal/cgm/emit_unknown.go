package cgm

// emitText renders an Unknown command as a "% Unknown command: ... %"
// comment. At the top level codec.go calls it only when
// Settings.EmitUnknownAsComment is set; nested commands inside a
// MetafileDefaultsReplacement are emitted whatever that setting says. This
// method always emits the comment form.
func (c *Unknown) emitText(s *State, w *textWriter) {
	w.comment("Unknown command: Class=%d, ID=%d", int(c.class), c.id)
}

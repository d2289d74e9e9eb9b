package cgm

import "fmt"

func (c *VDCIntegerPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassControl, "VDCINTEGERPREC")
	w.token(fmt.Sprintf("%d", c.Bits))
	w.end()
}

func (c *VDCRealPrecisionCommand) emitText(s *State, w *textWriter) {
	w.command(ClassControl, "VDCREALPREC")
	switch c.Precision {
	case RealFloating32, RealFloating64:
		w.token("floating")
	default:
		w.token("fixed")
	}
	w.end()
}

func (c *ClipIndicator) emitText(s *State, w *textWriter) {
	w.command(ClassControl, "CLIP")
	w.token(formatBool(c.Enabled))
	w.end()
}

func (c *Transparency) emitText(s *State, w *textWriter) {
	w.command(ClassControl, "TRANSPARENCY")
	w.token(formatBool(c.Enabled))
	w.end()
}

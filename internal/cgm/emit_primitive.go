package cgm

func emitVDCPoints(w *textWriter, s *State, pts []Point) {
	asReal := s.vdcEmitsAsReal()
	for _, p := range pts {
		w.token(formatVDCPoint(p, asReal))
	}
}

// emitVDCScalarPoint emits a point as two bare, space-separated VDC tokens
// rather than a parenthesized "(x,y)" pair.
func emitVDCScalarPoint(w *textWriter, p Point, asReal bool) {
	w.token(formatVDC(p.X, asReal))
	w.token(formatVDC(p.Y, asReal))
}

func polybezierContinuityKeyword(v int) string {
	if v == 0 {
		return "unbroken"
	}
	return "discontinuous"
}

func (c *Polyline) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "LINE")
	emitVDCPoints(w, s, c.Points)
	w.end()
}

func (c *DisjointPolyline) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "DISJTLINE")
	emitVDCPoints(w, s, c.Points)
	w.end()
}

func (c *Polygon) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "POLYGON")
	emitVDCPoints(w, s, c.Points)
	w.end()
}

func (c *CircleElement) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "CIRCLE")
	asReal := s.vdcEmitsAsReal()
	emitVDCScalarPoint(w, c.Centre, asReal)
	w.token(formatVDC(c.Radius, asReal))
	w.end()
}

func (c *CircularArcCentre) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "ARCCTR")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDCPoint(c.Centre, asReal))
	w.token(formatVDCPoint(c.StartDelta, asReal))
	w.token(formatVDCPoint(c.EndDelta, asReal))
	w.token(formatVDC(c.Radius, asReal))
	w.end()
}

func (c *EllipticalArc) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "ELLIPARC")
	asReal := s.vdcEmitsAsReal()
	emitVDCScalarPoint(w, c.Centre, asReal)
	emitVDCScalarPoint(w, c.First, asReal)
	emitVDCScalarPoint(w, c.Second, asReal)
	emitVDCScalarPoint(w, c.StartDelta, asReal)
	emitVDCScalarPoint(w, c.EndDelta, asReal)
	w.end()
}

func (c *EllipseElement) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "ELLIPSE")
	asReal := s.vdcEmitsAsReal()
	emitVDCScalarPoint(w, c.Centre, asReal)
	emitVDCScalarPoint(w, c.First, asReal)
	emitVDCScalarPoint(w, c.Second, asReal)
	w.end()
}

func (c *Polybezier) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "POLYBEZIER")
	w.token(polybezierContinuityKeyword(c.Continuity))
	asReal := s.vdcEmitsAsReal()
	for _, group := range c.Curves {
		for _, p := range group {
			w.token(formatVDCPoint(p, asReal))
		}
	}
	w.end()
}

func (c *RestrictedText) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "RESTRTEXT")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDC(c.DeltaWidth, asReal))
	w.token(formatVDC(c.DeltaHeight, asReal))
	emitVDCScalarPoint(w, c.Position, asReal)
	if c.FinalFlag {
		w.token("final")
	} else {
		w.token("notfinal")
	}
	w.token(formatString(c.Text))
	w.end()
}

func (c *RectangleElement) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "RECT")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDCPoint(c.First, asReal))
	w.token(formatVDCPoint(c.Second, asReal))
	w.end()
}

func (c *Text) emitText(s *State, w *textWriter) {
	w.command(ClassGraphicalPrimitive, "TEXT")
	asReal := s.vdcEmitsAsReal()
	w.token(formatVDCPoint(c.Position, asReal))
	if c.Final {
		w.token("final")
	} else {
		w.token("notfinal")
	}
	w.token(formatString(c.Value))
	w.end()
}

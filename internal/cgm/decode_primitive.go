package cgm

// Graphical primitive commands (class 4) draw the picture body. None of
// them mutate State; they only read under whatever precisions and modes are
// currently in force.

type Polyline struct {
	base
	Points []Point
}

type DisjointPolyline struct {
	base
	Points []Point
}

type Polygon struct {
	base
	Points []Point
}

type CircleElement struct {
	base
	Centre Point
	Radius float64
}

type CircularArcCentre struct {
	base
	Centre               Point
	StartDelta, EndDelta Point
	Radius               float64
}

type EllipticalArc struct {
	base
	Centre               Point
	First, Second        Point
	StartDelta, EndDelta Point
}

type EllipseElement struct {
	base
	Centre        Point
	First, Second Point
}

type Polybezier struct {
	base
	// Continuity is the leading enumerated indicator (unbroken=0,
	// discontinuous=1) read before the control point groups.
	Continuity int
	// Curves is a sequence of 4-point Bezier control groups read in order
	// until the arguments are exhausted. Every group is read as four full
	// points whatever Continuity says; groups do not share endpoints.
	Curves [][4]Point
}

type RestrictedText struct {
	base
	DeltaWidth, DeltaHeight float64
	Position                Point
	FinalFlag               bool
	Text                    string
}

type RectangleElement struct {
	base
	First, Second Point
}

type Text struct {
	base
	Position Point
	Final    bool
	Value    string
}

func init() {
	register(ClassGraphicalPrimitive, IDPolyline, decodePolyline)
	register(ClassGraphicalPrimitive, IDDisjointPolyline, decodeDisjointPolyline)
	register(ClassGraphicalPrimitive, IDPolygon, decodePolygon)
	register(ClassGraphicalPrimitive, IDCircle, decodeCircle)
	register(ClassGraphicalPrimitive, IDCircularArcCentre, decodeCircularArcCentre)
	register(ClassGraphicalPrimitive, IDEllipticalArc, decodeEllipticalArc)
	register(ClassGraphicalPrimitive, IDEllipse, decodeEllipse)
	register(ClassGraphicalPrimitive, IDPolybezier, decodePolybezier)
	register(ClassGraphicalPrimitive, IDRestrictedText, decodeRestrictedText)
	register(ClassGraphicalPrimitive, IDRectangle, decodeRectangle)
	register(ClassGraphicalPrimitive, IDText, decodeText)
}

func decodePolyline(r *argReader) (Command, error) {
	pts, err := r.ReadPoints()
	if err != nil {
		return nil, err
	}
	return &Polyline{base{ClassGraphicalPrimitive, IDPolyline}, pts}, nil
}

func decodeDisjointPolyline(r *argReader) (Command, error) {
	pts, err := r.ReadPoints()
	if err != nil {
		return nil, err
	}
	return &DisjointPolyline{base{ClassGraphicalPrimitive, IDDisjointPolyline}, pts}, nil
}

func decodePolygon(r *argReader) (Command, error) {
	pts, err := r.ReadPoints()
	if err != nil {
		return nil, err
	}
	return &Polygon{base{ClassGraphicalPrimitive, IDPolygon}, pts}, nil
}

func decodeCircle(r *argReader) (Command, error) {
	centre, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	radius, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	return &CircleElement{base{ClassGraphicalPrimitive, IDCircle}, centre, radius}, nil
}

func decodeCircularArcCentre(r *argReader) (Command, error) {
	centre, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	startDelta, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	endDelta, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	radius, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	return &CircularArcCentre{base{ClassGraphicalPrimitive, IDCircularArcCentre}, centre, startDelta, endDelta, radius}, nil
}

func decodeEllipticalArc(r *argReader) (Command, error) {
	centre, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	first, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	startDelta, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	endDelta, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &EllipticalArc{base{ClassGraphicalPrimitive, IDEllipticalArc}, centre, first, second, startDelta, endDelta}, nil
}

func decodeEllipse(r *argReader) (Command, error) {
	centre, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	first, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &EllipseElement{base{ClassGraphicalPrimitive, IDEllipse}, centre, first, second}, nil
}

func decodePolybezier(r *argReader) (Command, error) {
	continuity, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	var curves [][4]Point
	for !r.atEnd() {
		var group [4]Point
		for i := range group {
			p, err := r.ReadPoint()
			if err != nil {
				return nil, err
			}
			group[i] = p
		}
		curves = append(curves, group)
	}
	return &Polybezier{base{ClassGraphicalPrimitive, IDPolybezier}, continuity, curves}, nil
}

func decodeRestrictedText(r *argReader) (Command, error) {
	dw, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	dh, err := r.ReadVDC()
	if err != nil {
		return nil, err
	}
	flag, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	pos, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	text, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &RestrictedText{base{ClassGraphicalPrimitive, IDRestrictedText}, dw, dh, pos, flag != 0, text}, nil
}

func decodeRectangle(r *argReader) (Command, error) {
	first, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &RectangleElement{base{ClassGraphicalPrimitive, IDRectangle}, first, second}, nil
}

func decodeText(r *argReader) (Command, error) {
	pos, err := r.ReadPoint()
	if err != nil {
		return nil, err
	}
	flag, err := r.ReadEnum()
	if err != nil {
		return nil, err
	}
	text, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &Text{base{ClassGraphicalPrimitive, IDText}, pos, flag != 0, text}, nil
}

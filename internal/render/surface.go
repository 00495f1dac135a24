package render

// Surface accepts primitive draw requests derived from a decoded record.
// Coordinates are in record units; each backend decides how they map onto
// its output.
type Surface interface {
	// Circle draws a circle centered at (cx, cy) with the given radius.
	Circle(cx, cy, r float64)
	// Polygon draws a closed polygon from a flat ordered coordinate
	// sequence: x0, y0, x1, y1, ...
	Polygon(points []float64)
}

// Noop discards every draw call.
type Noop struct{}

func (Noop) Circle(cx, cy, r float64) {}

func (Noop) Polygon(points []float64) {}

// Tee fans each draw call out to every surface in order.
type Tee []Surface

func (t Tee) Circle(cx, cy, r float64) {
	for _, s := range t {
		s.Circle(cx, cy, r)
	}
}

func (t Tee) Polygon(points []float64) {
	for _, s := range t {
		s.Polygon(points)
	}
}

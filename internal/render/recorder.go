package render

// Call op names.
const (
	OpCircle  = "circle"
	OpPolygon = "polygon"
)

// Call is one captured draw request.
type Call struct {
	Op     string
	Params []float64
}

// Recorder captures draw calls for assertions and status reporting.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Circle(cx, cy, rad float64) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Params: []float64{cx, cy, rad}})
}

func (r *Recorder) Polygon(points []float64) {
	p := make([]float64, len(points))
	copy(p, points)
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Params: p})
}

package shape

import "github.com/danmuck/shapectl/internal/render"

type circle struct{}

// NewCircle constructs the circle variant. Parameters: center x, center y,
// radius.
func NewCircle() Shape { return circle{} }

func (circle) Kind() Kind      { return Circle }
func (circle) ParamCount() int { return Circle.ParamCount() }

func (c circle) Draw(s render.Surface, params []float64) error {
	if len(params) < c.ParamCount() {
		return ErrShortParams
	}
	s.Circle(params[0], params[1], params[2])
	return nil
}

package shape

import "github.com/danmuck/shapectl/internal/render"

type triangle struct{}

// NewTriangle constructs the triangle variant. Parameters: three x/y
// vertex pairs.
func NewTriangle() Shape { return triangle{} }

func (triangle) Kind() Kind      { return Triangle }
func (triangle) ParamCount() int { return Triangle.ParamCount() }

func (t triangle) Draw(s render.Surface, params []float64) error {
	if len(params) < t.ParamCount() {
		return ErrShortParams
	}
	s.Polygon(params)
	return nil
}

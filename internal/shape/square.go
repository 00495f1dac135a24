package shape

import "github.com/danmuck/shapectl/internal/render"

type square struct{}

// NewSquare constructs the square variant. Parameters: four x/y vertex
// pairs.
func NewSquare() Shape { return square{} }

func (square) Kind() Kind      { return Square }
func (square) ParamCount() int { return Square.ParamCount() }

func (sq square) Draw(s render.Surface, params []float64) error {
	if len(params) < sq.ParamCount() {
		return ErrShortParams
	}
	s.Polygon(params)
	return nil
}

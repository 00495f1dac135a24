package shape

import (
	"errors"

	"github.com/danmuck/shapectl/internal/render"
)

var ErrShortParams = errors.New("shape: not enough parameters for draw")

// Shape is the behavior object for one Kind. Instances carry no state
// beyond their kind; parameters arrive per draw call.
type Shape interface {
	Kind() Kind
	ParamCount() int
	// Draw translates params into surface calls. It returns ErrShortParams
	// without touching the surface when params holds fewer values than
	// ParamCount; the caller decides whether that is fatal.
	Draw(s render.Surface, params []float64) error
}

// Factory constructs a fresh Shape instance.
type Factory func() Shape

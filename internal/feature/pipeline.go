package feature

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/shapectl/internal/record"
	"github.com/danmuck/shapectl/internal/render"
	"github.com/danmuck/shapectl/internal/shape"
	"github.com/rs/zerolog/log"
)

var ErrUnknownKind = errors.New("feature: unknown kind tag")

// ParamPolicy decides what a draw with too few parameters does.
type ParamPolicy int

const (
	// PolicySilent logs and skips a short-parameter draw. This matches
	// record producers that predate strict validation.
	PolicySilent ParamPolicy = iota
	// PolicyStrict surfaces the draw error to the caller.
	PolicyStrict
)

// Pipeline reads one record, resolves its shape through the registry, and
// drives rendering. It is not safe for concurrent use; callers sharing one
// pipeline must serialize access.
type Pipeline struct {
	cache  *shape.Cache
	policy ParamPolicy

	current shape.Shape
	params  []float64
}

type Option func(*Pipeline)

func WithParamPolicy(p ParamPolicy) Option {
	return func(pl *Pipeline) { pl.policy = p }
}

// NewPipeline creates an empty pipeline over registry.
func NewPipeline(registry *shape.Registry, opts ...Option) *Pipeline {
	p := &Pipeline{cache: shape.NewCache(registry)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decode reads one record from r and replaces the loaded state. Any
// failure leaves previously loaded state untouched.
func (p *Pipeline) Decode(r io.Reader) error {
	tag, err := record.ReadTag(r)
	if err != nil {
		return err
	}

	kind, ok := shape.KindFromTag(tag)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKind, tag)
	}

	inst, err := p.cache.Resolve(kind)
	if err != nil {
		return err
	}

	params, err := record.ReadParams(r, inst.ParamCount())
	if err != nil {
		return err
	}

	p.current = inst
	p.params = params
	log.Debug().
		Stringer("kind", kind).
		Int("param_count", len(params)).
		Msg("record_loaded")
	return nil
}

// Render dispatches the loaded record to s. With nothing loaded it does
// nothing.
func (p *Pipeline) Render(s render.Surface) error {
	if p.current == nil {
		return nil
	}
	if err := p.current.Draw(s, p.params); err != nil {
		if p.policy == PolicyStrict {
			return err
		}
		log.Debug().
			Err(err).
			Stringer("kind", p.current.Kind()).
			Msg("draw_skipped")
	}
	return nil
}

// IsLoaded reports whether any decode has ever succeeded.
func (p *Pipeline) IsLoaded() bool {
	return p.current != nil
}

// Kind returns the loaded record's kind; ok is false while nothing is
// loaded.
func (p *Pipeline) Kind() (shape.Kind, bool) {
	if p.current == nil {
		return 0, false
	}
	return p.current.Kind(), true
}

// Params returns a copy of the loaded parameter sequence.
func (p *Pipeline) Params() []float64 {
	out := make([]float64, len(p.params))
	copy(out, p.params)
	return out
}

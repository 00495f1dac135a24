package shape

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrKindRegistered    = errors.New("shape: kind already registered")
	ErrKindNotRegistered = errors.New("shape: kind not registered")
	ErrNilFactory        = errors.New("shape: factory is nil")
)

// Registry maps kinds to shape constructors. It is assembled once at
// startup and read-only afterwards.
type Registry struct {
	items map[Kind]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[Kind]Factory)}
}

// Register adds a factory for kind. A kind that is already present is
// left untouched and the call fails.
func (r *Registry) Register(kind Kind, factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}
	if _, ok := r.items[kind]; ok {
		return fmt.Errorf("%w: %s", ErrKindRegistered, kind)
	}
	r.items[kind] = factory
	return nil
}

// Entry pairs a kind with its factory for batch registration.
type Entry struct {
	Kind    Kind
	Factory Factory
}

// RegisterAll applies each registration independently. Entries whose kind
// is free are committed even when the call as a whole fails; the returned
// error names every kind that collided.
func (r *Registry) RegisterAll(entries ...Entry) error {
	var collided []string
	for _, e := range entries {
		if err := r.Register(e.Kind, e.Factory); err != nil {
			collided = append(collided, e.Kind.String())
		}
	}
	if len(collided) > 0 {
		return fmt.Errorf("%w: %s", ErrKindRegistered, strings.Join(collided, ", "))
	}
	return nil
}

// New constructs a fresh instance of kind through its factory.
func (r *Registry) New(kind Kind) (Shape, error) {
	factory, ok := r.items[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindNotRegistered, kind)
	}
	return factory(), nil
}

// Kinds returns the registered kinds in stable order.
func (r *Registry) Kinds() []Kind {
	list := make([]Kind, 0, len(r.items))
	for k := range r.items {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Builtin returns a registry holding every built-in variant.
func Builtin() *Registry {
	r := NewRegistry()
	_ = r.RegisterAll(
		Entry{Kind: Circle, Factory: NewCircle},
		Entry{Kind: Triangle, Factory: NewTriangle},
		Entry{Kind: Square, Factory: NewSquare},
	)
	return r
}

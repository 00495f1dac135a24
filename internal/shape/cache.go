package shape

// Cache memoizes one live instance per kind. Instances are created through
// the registry on first resolve and reused forever; nothing evicts.
//
// Cache is not safe for concurrent use.
type Cache struct {
	registry  *Registry
	instances map[Kind]Shape
}

// NewCache creates an empty cache over registry.
func NewCache(registry *Registry) *Cache {
	return &Cache{registry: registry, instances: make(map[Kind]Shape)}
}

// Resolve returns the instance for kind, creating it on first encounter.
// A failed create leaves the cache untouched.
func (c *Cache) Resolve(kind Kind) (Shape, error) {
	if inst, ok := c.instances[kind]; ok {
		return inst, nil
	}
	inst, err := c.registry.New(kind)
	if err != nil {
		return nil, err
	}
	c.instances[kind] = inst
	return inst, nil
}

// Cached reports whether an instance for kind has been created.
func (c *Cache) Cached(kind Kind) bool {
	_, ok := c.instances[kind]
	return ok
}

package meta

import (
	"reflect"
	"sync"
)

// Cache is the process-lifetime metadata service. It starts empty, is never
// torn down, and exposes get-or-compute semantics. Reads are lock-free;
// concurrent first-time population of the same type may recompute the same
// descriptor redundantly, and the first stored result wins. Discovery is
// side-effect free, so recomputation is wasteful but never incorrect.
type Cache struct {
	descriptors sync.Map // reflect.Type -> *Descriptor
	immutable   sync.Map // reflect.Type -> bool
}

// NewCache creates an empty metadata cache.
func NewCache() *Cache {
	return &Cache{}
}

// Default is the shared cache backing the package-level copy operations.
var Default = NewCache()

// Describe returns the Descriptor for a type, building and memoizing it on
// first lookup. Descriptors are never mutated after insertion.
func (c *Cache) Describe(t reflect.Type) *Descriptor {
	if d, ok := c.descriptors.Load(t); ok {
		return d.(*Descriptor)
	}

	d := &Descriptor{
		Type:      t,
		Allocator: resolveAllocator(t),
		Immutable: c.immutableOf(t, make(map[reflect.Type]bool)),
	}
	if t.Kind() == reflect.Struct {
		d.Fields = fieldsOf(t)
	}

	stored, _ := c.descriptors.LoadOrStore(t, d)

	return stored.(*Descriptor)
}

// IsImmutable reports whether values of the type may be shared instead of
// copied.
func (c *Cache) IsImmutable(t reflect.Type) bool {
	return c.immutableOf(t, make(map[reflect.Type]bool))
}

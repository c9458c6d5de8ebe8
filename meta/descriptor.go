package meta

import "reflect"

// Descriptor holds everything the copy engine needs to know about one
// concrete type. Built once on first lookup, then shared read-only.
type Descriptor struct {
	// Type is the described type.
	Type reflect.Type

	// Allocator produces a pointer to a freshly zeroed instance of Type.
	// The pointee is addressable. Nil when the type cannot be
	// blank-allocated; the absence is only observed when a non-immutable
	// instance of the type actually has to be built.
	Allocator func() reflect.Value

	// Immutable reports whether instances may be shared by reference
	// instead of duplicated.
	Immutable bool

	// Fields lists the copyable fields for struct kinds, empty otherwise.
	Fields []Field
}

// resolveAllocator picks the blank-allocation handle for a type. Channel,
// func, interface and unsafe-pointer kinds have no meaningful blank
// instance and resolve to nil.
func resolveAllocator(t reflect.Type) func() reflect.Value {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return nil
	}

	return func() reflect.Value { return reflect.New(t) }
}

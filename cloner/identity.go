package cloner

import "reflect"

// identityKey identifies one source object strictly by identity, never by
// value equality. The type discriminates distinct objects sharing an
// address (a struct and its first field, zero-size pointees); slices carry
// length and capacity so that distinct slices sharing a backing array are
// not conflated.
type identityKey struct {
	typ  reflect.Type
	kind reflect.Kind
	ptr  uintptr
	len  int
	cap  int
}

// identityMap maps already-visited source objects to their produced copies.
// Scoped to a single top-level copy invocation and discarded when it
// returns.
type identityMap map[identityKey]reflect.Value

func keyOf(v reflect.Value) identityKey {
	key := identityKey{typ: v.Type(), kind: v.Kind()}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		key.ptr = v.Pointer()
	case reflect.Slice:
		key.ptr = v.Pointer()
		key.len = v.Len()
		key.cap = v.Cap()
	}

	return key
}

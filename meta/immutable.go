package meta

import (
	"math/big"
	"reflect"
	"time"
)

// immutableSeed pre-classifies well-known types whose sharing contract is
// not derivable from their structure: they wrap mutable buffers internally
// but expose no post-construction mutation through their values.
var immutableSeed = map[reflect.Type]bool{
	reflect.TypeOf(time.Time{}): true,
	reflect.TypeOf(big.Int{}):   true,
	reflect.TypeOf(big.Float{}): true,
	reflect.TypeOf(big.Rat{}):   true,
}

// immutableOf memoizes the structural immutability verdict for a type.
// inProgress guards against self-referential type graphs: a type whose
// verdict depends on its own in-flight classification resolves to the
// conservative "not immutable".
func (c *Cache) immutableOf(t reflect.Type, inProgress map[reflect.Type]bool) bool {
	if cached, ok := c.immutable.Load(t); ok {
		return cached.(bool)
	}

	if inProgress[t] {
		return false
	}

	inProgress[t] = true
	verdict := c.checkImmutability(t, inProgress)
	delete(inProgress, t)

	cached, _ := c.immutable.LoadOrStore(t, verdict)

	return cached.(bool)
}

// checkImmutability computes the structural verdict. A struct is immutable
// when every field is unexported (no code outside the declaring package can
// read or reassign it) and every field type is a value kind or itself
// immutable. Pointer and array types take their element's verdict. Slices,
// maps, channels and interfaces never qualify.
func (c *Cache) checkImmutability(t reflect.Type, inProgress map[reflect.Type]bool) bool {
	if seeded, ok := immutableSeed[t]; ok {
		return seeded
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Func, reflect.UnsafePointer:
		return true
	case reflect.Pointer, reflect.Array:
		return c.immutableOf(t.Elem(), inProgress)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath == "" {
				// exported: writable by anyone holding the value
				return false
			}
			if !c.immutableOf(f.Type, inProgress) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

package cloner

import (
	"fmt"
	"math"
	"reflect"

	"object-cloner/meta"
)

// shallowDepth is the reference-field traversal budget for ShallowCopy:
// the root and its direct reference fields are built, anything deeper is
// left at the zero value.
const shallowDepth = 2

type engine struct {
	cache *meta.Cache
}

var std = &engine{cache: meta.Default}

// DeepCopy returns an independent copy of object: every reachable mutable
// value is duplicated to unbounded depth, immutable values are shared.
// A nil input comes back unchanged.
func DeepCopy[T any](object T) (T, error) {
	return cloneRoot(object, math.MaxInt)
}

// ShallowCopy returns a copy bounded to two levels of reference-field
// traversal. Primitive fields and container contents are copied at any
// depth regardless of the bound. A nil input comes back unchanged.
func ShallowCopy[T any](object T) (T, error) {
	return cloneRoot(object, shallowDepth)
}

func cloneRoot[T any](object T, maxDeep int) (T, error) {
	var out T

	src := reflect.ValueOf(&object).Elem()
	cloned, err := std.doClone(src, make(identityMap), maxDeep)
	if err != nil {
		return out, err
	}
	if cloned.IsValid() {
		reflect.ValueOf(&out).Elem().Set(cloned)
	}

	return out, nil
}

// doClone is the core recursive step. It yields an invalid Value when the
// source is absent or the depth budget is spent; callers leave the zero
// value in place for that case.
func (e *engine) doClone(v reflect.Value, visited identityMap, maxDeep int) (reflect.Value, error) {
	if !v.IsValid() || maxDeep == 0 {
		return reflect.Value{}, nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(v.Type()), nil
		}

		elem, err := e.doClone(v.Elem(), visited, maxDeep)
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(v.Type()).Elem()
		if elem.IsValid() {
			out.Set(elem)
		}

		return out, nil
	}

	if e.cache.Describe(v.Type()).Immutable {
		return v, nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type()), nil
		}

		key := keyOf(v)
		if prev, ok := visited[key]; ok {
			return prev, nil
		}

		clone, err := e.newInstance(v.Type().Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		// register before descending so cycles resolve to this instance
		visited[key] = clone

		if v.Elem().Kind() == reflect.Struct {
			err = e.cloneFields(clone.Elem(), v.Elem(), visited, maxDeep)
		} else {
			err = e.clonePointee(clone.Elem(), v.Elem(), visited, maxDeep)
		}
		if err != nil {
			return reflect.Value{}, err
		}

		return clone, nil
	case reflect.Struct:
		clone, err := e.newInstance(v.Type())
		if err != nil {
			return reflect.Value{}, err
		}

		if err := e.cloneFields(clone.Elem(), v, visited, maxDeep); err != nil {
			return reflect.Value{}, err
		}

		return clone.Elem(), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return e.cloneContainer(v, visited, maxDeep)
	case reflect.Chan:
		if v.IsNil() {
			return reflect.Zero(v.Type()), nil
		}

		// a live channel has no blank-allocation handle
		_, err := e.newInstance(v.Type())

		return reflect.Value{}, err
	default:
		// value words are copied directly
		return v, nil
	}
}

// cloneFields copies every cached field descriptor of src's type into dst.
// dst must be a freshly allocated, addressable struct of the same type.
func (e *engine) cloneFields(dst, src reflect.Value, visited identityMap, maxDeep int) error {
	desc := e.cache.Describe(src.Type())
	src = addressable(src)

	for i := range desc.Fields {
		f := &desc.Fields[i]

		sf, err := readable(src.Field(f.Index))
		if err != nil {
			return err
		}

		var out reflect.Value
		switch f.Class {
		case meta.ClassPrimitive:
			out = sf
		case meta.ClassContainer:
			// container edges never consume depth budget
			out, err = e.cloneContainer(sf, visited, maxDeep)
		default:
			out, err = e.doClone(sf, visited, maxDeep-1)
		}
		if err != nil {
			return err
		}
		if !out.IsValid() {
			// budget spent or nil source: leave the zero value
			continue
		}

		if err := setField(dst.Field(f.Index), out); err != nil {
			return err
		}
	}

	return nil
}

// clonePointee fills dst with a copy of a non-struct pointee. The pointer
// edge itself already consumed the depth budget, so the pointee is copied
// at the same level.
func (e *engine) clonePointee(dst, src reflect.Value, visited identityMap, maxDeep int) error {
	out, err := e.doClone(src, visited, maxDeep)
	if err != nil {
		return err
	}
	if out.IsValid() {
		dst.Set(out)
	}

	return nil
}

// newInstance allocates a blank instance through the cached allocator,
// returning a pointer value with an addressable pointee.
func (e *engine) newInstance(t reflect.Type) (clone reflect.Value, err error) {
	desc := e.cache.Describe(t)
	if desc.Allocator == nil {
		return reflect.Value{}, fmt.Errorf("%w for %s", ErrInstantiation, typeStr(t))
	}

	defer func() {
		if r := recover(); r != nil {
			clone = reflect.Value{}
			err = fmt.Errorf("%w for %s: %v", ErrConstruction, typeStr(t), r)
		}
	}()

	return desc.Allocator(), nil
}

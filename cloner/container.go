package cloner

import (
	"reflect"

	"object-cloner/meta"
)

// cloneContainer duplicates slices, arrays and maps. The container itself
// is always a new instance; element traversal keeps the caller's depth
// budget, so graphs reachable purely through containers are copied to full
// depth even under a shallow copy.
func (e *engine) cloneContainer(v reflect.Value, visited identityMap, maxDeep int) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, nil
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type()), nil
		}

		key := keyOf(v)
		if prev, ok := visited[key]; ok {
			return prev, nil
		}

		clone := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		visited[key] = clone

		if err := e.cloneElements(clone, v, visited, maxDeep); err != nil {
			return reflect.Value{}, err
		}

		return clone, nil
	case reflect.Array:
		clone := reflect.New(v.Type()).Elem()
		if err := e.cloneElements(clone, v, visited, maxDeep); err != nil {
			return reflect.Value{}, err
		}

		return clone, nil
	case reflect.Map:
		return e.cloneMap(v, visited, maxDeep)
	default:
		return e.doClone(v, visited, maxDeep)
	}
}

// cloneElements fills dst with copies of src's elements. Value-kind
// elements are bulk-copied without per-element recursion.
func (e *engine) cloneElements(dst, src reflect.Value, visited identityMap, maxDeep int) error {
	if meta.Classify(src.Type().Elem()) == meta.ClassPrimitive {
		reflect.Copy(dst, src)
		return nil
	}

	for i := 0; i < src.Len(); i++ {
		out, err := e.doClone(src.Index(i), visited, maxDeep)
		if err != nil {
			return err
		}
		if out.IsValid() {
			dst.Index(i).Set(out)
		}
	}

	return nil
}

func (e *engine) cloneMap(v reflect.Value, visited identityMap, maxDeep int) (reflect.Value, error) {
	if v.IsNil() {
		return reflect.Zero(v.Type()), nil
	}

	key := keyOf(v)
	if prev, ok := visited[key]; ok {
		return prev, nil
	}

	clone := reflect.MakeMapWithSize(v.Type(), v.Len())
	visited[key] = clone

	for iter := v.MapRange(); iter.Next(); {
		mk, err := e.doClone(iter.Key(), visited, maxDeep)
		if err != nil {
			return reflect.Value{}, err
		}

		mv, err := e.doClone(iter.Value(), visited, maxDeep)
		if err != nil {
			return reflect.Value{}, err
		}

		if !mk.IsValid() || !mv.IsValid() {
			continue
		}
		clone.SetMapIndex(mk, mv)
	}

	return clone, nil
}

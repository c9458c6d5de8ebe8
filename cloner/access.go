package cloner

import (
	"fmt"
	"reflect"
	"unsafe"
)

// addressable returns v itself when addressable, otherwise an addressable
// copy. Struct values arriving through interfaces need this before their
// unexported fields can be reached.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}

	out := reflect.New(v.Type()).Elem()
	out.Set(v)

	return out
}

// readable returns a view of v that can be interfaced and assigned even
// when v is an unexported field.
func readable(v reflect.Value) (reflect.Value, error) {
	if v.CanInterface() {
		return v, nil
	}

	if v.CanAddr() {
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot read %s", ErrFieldAccess, typeStr(v.Type()))
}

// setField writes val into dst, unexported fields included. dst must be
// addressable for the unexported case.
func setField(dst, val reflect.Value) error {
	if dst.CanSet() {
		dst.Set(val)
		return nil
	}

	if dst.CanAddr() {
		reflect.NewAt(dst.Type(), unsafe.Pointer(dst.UnsafeAddr())).Elem().Set(val)
		return nil
	}

	return fmt.Errorf("%w: cannot write %s", ErrFieldAccess, typeStr(dst.Type()))
}

package cloner

import (
	"reflect"
	"strconv"
)

// typeStr names a type for error messages, fully qualifying named types so
// failures deep in a graph point at an unambiguous type.
func typeStr(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	case reflect.Chan:
		return "chan " + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

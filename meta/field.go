package meta

import "reflect"

// ClassEnum decides which copy rule applies to a value of a given type.
type ClassEnum int

const (
	ClassUnknown   ClassEnum = iota
	ClassPrimitive           // value word, copied directly
	ClassContainer           // slice, array or map, copied element-wise
	ClassReference           // pointer, interface, struct, chan or func

	// ClassTotal is a constant that represents the total number of classes defined
	ClassTotal = int(iota)
)

// String returns a human-readable representation of the ClassEnum.
func (c ClassEnum) String() string {
	switch c {
	case ClassPrimitive:
		return "primitive"
	case ClassContainer:
		return "container"
	case ClassReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Classify maps a type to its copy class by kind.
func Classify(t reflect.Type) ClassEnum {
	if t == nil {
		return ClassUnknown
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.UnsafePointer:
		return ClassPrimitive
	case reflect.Slice, reflect.Array, reflect.Map:
		return ClassContainer
	case reflect.Pointer, reflect.Interface, reflect.Struct, reflect.Chan, reflect.Func:
		return ClassReference
	default:
		return ClassUnknown
	}
}

// Field describes one struct field the engine has to copy. The engine
// itself navigates by Index and Class; Name, Exported and Embedded are
// descriptor metadata for callers inspecting a cached type.
type Field struct {
	Name     string       // Go field name
	Type     reflect.Type // declared field type
	Index    int          // field index in the struct
	Class    ClassEnum    // copy rule for the field
	Exported bool         // whether the field is exported
	Embedded bool         // whether the field is embedded (anonymous)
}

// fieldsOf enumerates every field of a struct type, unexported ones
// included. Each field appears exactly once, in declaration order.
// Embedded fields are listed as ordinary fields; their contents are
// reached by recursion, not flattened here.
func fieldsOf(t reflect.Type) []Field {
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fields = append(fields, Field{
			Name:     f.Name,
			Type:     f.Type,
			Index:    i,
			Class:    Classify(f.Type),
			Exported: f.PkgPath == "",
			Embedded: f.Anonymous,
		})
	}

	return fields
}

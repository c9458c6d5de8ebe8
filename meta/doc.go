// Package meta resolves and caches per-type metadata for the copy engine.
//
// For every concrete type it lazily builds a Descriptor holding:
//   - Allocator: a handle producing a blank instance, nil when the type
//     cannot be blank-allocated
//   - Immutable: whether instances may be shared instead of duplicated
//   - Fields: ordered field descriptors for struct kinds, unexported
//     fields included
//
// Descriptors live for the process lifetime and are never invalidated.
package meta

// Package cloner produces deep and depth-limited copies of arbitrary
// object graphs through runtime reflection. Copied types need no copy
// protocol of their own.
//
// DeepCopy duplicates every reachable mutable object to unbounded depth.
// ShallowCopy bounds traversal to two levels of reference fields.
// Both preserve shared references and cycles within one invocation,
// share immutable values instead of duplicating them, and copy
// unexported fields.
package cloner

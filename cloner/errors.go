package cloner

import "errors"

var (
	// ErrInstantiation reports a reachable value whose type cannot be
	// blank-allocated. The whole copy operation aborts with no result.
	ErrInstantiation = errors.New("cannot create new instance")

	// ErrFieldAccess reports a field that could not be read or written
	// despite forced accessibility.
	ErrFieldAccess = errors.New("field is not accessible")

	// ErrConstruction reports a blank allocation that itself failed.
	ErrConstruction = errors.New("instance construction failed")
)

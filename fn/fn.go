package fn

import (
	"github.com/on-the-ground/funcompat/tuple"
)

// Errors reported by ApplySlice before the wrapped function is called.
var (
	ErrArity   = tuple.ErrArity
	ErrArgType = tuple.ErrArgType
)

// as recovers a T from a tableized argument. A nil argument yields the zero T,
// which is how nil interface values pass through the table.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

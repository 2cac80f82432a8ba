package tuple

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrArity = errors.New("wrong number of values")
var ErrArgType = errors.New("value of wrong type")

func checkArity(want int, vs []any) error {
	if len(vs) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, want, len(vs))
	}
	return nil
}

// valueAt asserts vs[i] to T. Untyped nil is accepted only when T is an interface type.
func valueAt[T any](vs []any, i int) (T, error) {
	v, ok := vs[i].(T)
	if ok {
		return v, nil
	}
	if vs[i] == nil && any(v) == nil {
		return v, nil
	}
	return v, fmt.Errorf("%w: position %d wants %v, got %T", ErrArgType, i+1, reflect.TypeOf((*T)(nil)).Elem(), vs[i])
}

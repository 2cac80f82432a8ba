package tuple_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/funcompat/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuple3(t *testing.T) {
	tup := tuple.NewTuple3("a", 1, true)

	assert.Equal(t, 3, tup.Arity())
	assert.Equal(t, []any{"a", 1, true}, tup.Slice())

	s, n, b := tup.Values()
	assert.Equal(t, "a", s)
	assert.Equal(t, 1, n)
	assert.True(t, b)
	assert.Equal(t, tuple.Tuple3[string, int, bool]{V1: "a", V2: 1, V3: true}, tup)
}

func TestTuple1_Values(t *testing.T) {
	assert.Equal(t, 7, tuple.NewTuple1(7).Values())
}

func TestFromSlice20(t *testing.T) {
	vs := make([]any, 20)
	for i := range vs {
		vs[i] = i + 1
	}

	tup, err := tuple.FromSlice20[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int](vs)
	require.NoError(t, err)
	assert.Equal(t, 20, tup.Arity())
	assert.Equal(t, 1, tup.V1)
	assert.Equal(t, 20, tup.V20)
	assert.Equal(t, vs, tup.Slice())
}

func TestFromSlice_Arity(t *testing.T) {
	_, err := tuple.FromSlice2[int, int]([]any{1})
	assert.ErrorIs(t, err, tuple.ErrArity)
	assert.EqualError(t, err, "wrong number of values: want 2, got 1")

	_, err = tuple.FromSlice2[int, int]([]any{1, 2, 3})
	assert.ErrorIs(t, err, tuple.ErrArity)
}

func TestFromSlice_Type(t *testing.T) {
	tup, err := tuple.FromSlice2[int, string]([]any{1, 2})
	assert.ErrorIs(t, err, tuple.ErrArgType)
	assert.ErrorContains(t, err, "position 2 wants string")
	assert.Equal(t, tuple.Tuple2[int, string]{}, tup)
}

func TestFromSlice_Nil(t *testing.T) {
	tup, err := tuple.FromSlice2[fmt.Stringer, error]([]any{nil, nil})
	require.NoError(t, err)
	assert.Nil(t, tup.V1)
	assert.Nil(t, tup.V2)

	_, err = tuple.FromSlice1[*int]([]any{nil})
	assert.ErrorIs(t, err, tuple.ErrArgType)

	var p *int
	tp, err := tuple.FromSlice1[*int]([]any{p})
	require.NoError(t, err)
	assert.Nil(t, tp.V1)
}

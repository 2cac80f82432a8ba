package fn_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/on-the-ground/funcompat/fn"
	"github.com/on-the-ground/funcompat/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc1(t *testing.T) {
	double := fn.Lift1(func(i int) int { return i * 2 })

	assert.Equal(t, 4, double.Curried()(2))
	assert.Equal(t, 4, double.Tupled()(tuple.NewTuple1(2)))
	assert.Equal(t, 4, double.Curried().Uncurried()(2))

	res, err := double.ApplySlice([]any{2})
	require.NoError(t, err)
	assert.Equal(t, 4, res)
}

func TestFunc3_MixedTypes(t *testing.T) {
	f := fn.Lift3(func(s string, n int, sep rune) string {
		return strings.Repeat(s+string(sep), n)
	})

	assert.Equal(t, "ab;ab;", f.Curried()("ab")(2)(';'))
	assert.Equal(t, "ab;ab;", f.Tupled()(tuple.NewTuple3("ab", 2, ';')))

	_, err := f.ApplySlice([]any{"ab", 2, ";"})
	assert.ErrorIs(t, err, fn.ErrArgType)
	assert.ErrorContains(t, err, "position 3 wants int32")
}

func TestFunc2_NilInterfaceArgument(t *testing.T) {
	describe := fn.Lift2(func(name string, err error) string {
		if err == nil {
			return name + ": ok"
		}
		return name + ": " + err.Error()
	})

	res, err := describe.ApplySlice([]any{"job", nil})
	require.NoError(t, err)
	assert.Equal(t, "job: ok", res)

	res, err = describe.ApplySlice([]any{"job", errors.New("failed")})
	require.NoError(t, err)
	assert.Equal(t, "job: failed", res)

	_, err = describe.ApplySlice([]any{nil, nil})
	assert.ErrorIs(t, err, fn.ErrArgType)

	tableized := describe.Tableized(4)
	assert.Equal(t, "job: ok", tableized("job", nil))
	assert.Equal(t, "job: ok", tableized("job", nil))
}

type greeter struct{ greeting string }

func (g greeter) Apply(name string, times int) string {
	return strings.TrimSpace(strings.Repeat(g.greeting+" "+name+" ", times))
}

func TestAdapt2(t *testing.T) {
	f := fn.Adapt2[string, int, string](greeter{greeting: "hi"})

	assert.Equal(t, "hi bob hi bob", f("bob", 2))
	assert.Equal(t, "hi bob", f.Curried()("bob")(1))
	assert.Equal(t, "hi bob", f.Tupled()(tuple.NewTuple2("bob", 1)))
}

// Tuple results are how a function reports a failure value without panicking.
func TestFunc2_ErrorResultPassesThrough(t *testing.T) {
	div := fn.Lift2(func(a, b int) tuple.Tuple2[int, error] {
		if b == 0 {
			return tuple.NewTuple2(0, error(fmt.Errorf("divide %d by zero", a)))
		}
		return tuple.NewTuple2[int, error](a/b, nil)
	})

	_, err := div.Curried()(1)(0).Values()
	assert.EqualError(t, err, "divide 1 by zero")
	_, err = div.Tupled()(tuple.NewTuple2(1, 0)).Values()
	assert.EqualError(t, err, "divide 1 by zero")

	q, err := div.Curried()(9)(3).Values()
	require.NoError(t, err)
	assert.Equal(t, 3, q)
}

func TestFunc22_Curried(t *testing.T) {
	f := fn.Lift22(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20, a21, a22 int) int {
		return a1 - a22
	})

	assert.Equal(t, -21, f.Curried()(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20)(21)(22))
}

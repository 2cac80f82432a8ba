package fn_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/on-the-ground/funcompat/fn"
	"github.com/on-the-ground/funcompat/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fn.Function20[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int] = fn.Func20[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int](nil)

func sum20() fn.Func20[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int] {
	return fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15 + a16 + a17 + a18 + a19 + a20
	})
}

func oneToTwenty() []any {
	return []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
}

func TestFunc20_Sum(t *testing.T) {
	f := sum20()

	assert.Equal(t, 210, f(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, f.Apply(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, f.Curried()(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
	assert.Equal(t, 210, f.Tupled()(tuple.NewTuple20(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)))

	res, err := f.ApplySlice(oneToTwenty())
	require.NoError(t, err)
	assert.Equal(t, 210, res)
}

func TestFunc20_ArgumentOrder(t *testing.T) {
	f := fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 string) string {
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15 + a16 + a17 + a18 + a19 + a20
	})

	want := "abcdefghijklmnopqrst"
	assert.Equal(t, want, f("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t"))
	assert.Equal(t, want, f.Curried()("a")("b")("c")("d")("e")("f")("g")("h")("i")("j")("k")("l")("m")("n")("o")("p")("q")("r")("s")("t"))
	assert.Equal(t, want, f.Tupled()(tuple.NewTuple20("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t")))
}

func TestFunc20_DerivationsAreIndependent(t *testing.T) {
	f := sum20()

	c1, c2 := f.Curried(), f.Curried()
	partial := c1(1)
	assert.Equal(t, 210, partial(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
	// reusing a partially applied chain must not see earlier arguments
	assert.Equal(t, 209+100, c1(100)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
	assert.Equal(t, 210, partial(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
	assert.Equal(t, 210, c2(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))

	t1, t2 := f.Tupled(), f.Tupled()
	tup := tuple.NewTuple20(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
	assert.Equal(t, t1(tup), t2(tup))
}

var errNegative = errors.New("negative argument")

func TestFunc20_PanicPropagates(t *testing.T) {
	f := fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
		if a1 < 0 {
			panic(errNegative)
		}
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15 + a16 + a17 + a18 + a19 + a20
	})

	assert.PanicsWithError(t, errNegative.Error(), func() {
		f(-1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
	})
	assert.PanicsWithError(t, errNegative.Error(), func() {
		f.Curried()(-1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20)
	})
	assert.PanicsWithError(t, errNegative.Error(), func() {
		f.Tupled()(tuple.NewTuple20(-1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	})
	assert.PanicsWithError(t, errNegative.Error(), func() {
		_, _ = f.ApplySlice([]any{-1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	})
}

func TestFunc20_ApplySliceArity(t *testing.T) {
	calls := 0
	f := fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
		calls++
		return 0
	})

	_, err := f.ApplySlice(oneToTwenty()[:19])
	assert.ErrorIs(t, err, fn.ErrArity)
	assert.ErrorContains(t, err, "want 20, got 19")

	_, err = f.ApplySlice(append(oneToTwenty(), 21))
	assert.ErrorIs(t, err, fn.ErrArity)
	assert.ErrorContains(t, err, "want 20, got 21")

	_, err = f.ApplySlice(nil)
	assert.ErrorIs(t, err, fn.ErrArity)

	assert.Equal(t, 0, calls)
}

func TestFunc20_ApplySliceType(t *testing.T) {
	calls := 0
	f := fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
		calls++
		return 0
	})

	args := oneToTwenty()
	args[6] = "seven"
	_, err := f.ApplySlice(args)
	assert.ErrorIs(t, err, fn.ErrArgType)
	assert.ErrorContains(t, err, "position 7 wants int")

	args[6] = int64(7)
	_, err = f.ApplySlice(args)
	assert.ErrorIs(t, err, fn.ErrArgType)

	assert.Equal(t, 0, calls)
}

type weighted struct{}

func (weighted) Apply(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
	return 1*a1 + 2*a2 + 3*a3 + 4*a4 + 5*a5 + 6*a6 + 7*a7 + 8*a8 + 9*a9 + 10*a10 + 11*a11 + 12*a12 + 13*a13 + 14*a14 + 15*a15 + 16*a16 + 17*a17 + 18*a18 + 19*a19 + 20*a20
}

func TestAdapt20(t *testing.T) {
	f := fn.Adapt20[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int](weighted{})

	ones := []any{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	want := 210
	assert.Equal(t, want, f(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
	assert.Equal(t, want, f.Curried()(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1)(1))
	res, err := f.ApplySlice(ones)
	require.NoError(t, err)
	assert.Equal(t, want, res)

	// positional: only a20 is weighted by 20
	assert.Equal(t, 20, f(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1))
	assert.Equal(t, 20, f.Tupled()(tuple.NewTuple20(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1)))
}

func TestFunc20_Inverses(t *testing.T) {
	f := sum20()

	assert.Equal(t, 210, f.Curried().Uncurried()(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, fn.Untupled20(f.Tupled())(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, fn.Untupled20(f.Tupled()).Curried()(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
}

func TestFunc20_Tableized(t *testing.T) {
	calls := 0
	f := fn.Lift20(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15, a16, a17, a18, a19, a20 int) int {
		calls++
		return a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15 + a16 + a17 + a18 + a19 + a20
	}).Tableized(8)

	assert.Equal(t, 210, f(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, f(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 210, f.Curried()(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 211, f(2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20))
	assert.Equal(t, 2, calls)
}

func TestFunc20_ConcurrentViews(t *testing.T) {
	f := sum20()
	curried := f.Curried()
	tupled := f.Tupled()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, 209+i, curried(i)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20))
			assert.Equal(t, 209+i, tupled(tuple.NewTuple20(i, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)))
		}(i)
	}
	wg.Wait()
}

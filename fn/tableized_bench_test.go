package fn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/funcompat/fn"
	"github.com/on-the-ground/funcompat/tuple"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib fn.Func1[int, int]
	tableFib = fn.Lift1(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	}).Tableized(32)

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	sizes := []uint32{2, 8, 32}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("TrieSize_%d", size), func(b *testing.B) {
			var lev fn.Func2[string, string, int]
			lev = fn.Lift2(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev(a[1:], b[1:])
				}
				return 1 + min(
					lev(a[1:], b),
					lev(a, b[1:]),
					lev(a[1:], b[1:]),
				)
			}).Tableized(size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

func BenchmarkCurried20(b *testing.B) {
	f := sum20()
	for i := 0; i < b.N; i++ {
		_ = f.Curried()(1)(2)(3)(4)(5)(6)(7)(8)(9)(10)(11)(12)(13)(14)(15)(16)(17)(18)(19)(20)
	}
}

func BenchmarkTupled20(b *testing.B) {
	f := sum20().Tupled()
	t := tuple.NewTuple20(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
	for i := 0; i < b.N; i++ {
		_ = f(t)
	}
}

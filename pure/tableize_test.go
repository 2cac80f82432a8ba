package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/funcompat/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableize(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...pure.ComparableOrStringer) int {
		count++
		return args[0].(int) + args[1].(int)
	}, 2)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 5, fn(3, 2))
	assert.Equal(t, 2, count)
}

func TestTableize_NoArgs(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...pure.ComparableOrStringer) string {
		count++
		return "nullary"
	}, 1)

	assert.Equal(t, "nullary", fn())
	assert.Equal(t, "nullary", fn())
	assert.Equal(t, 2, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...pure.ComparableOrStringer) int {
		count++
		return len(args[0].(NonComparable).Field)
	}, 2)

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic due to missing Stringer and non-comparable type")
		}
	}()
	fn := pure.Tableize(func(args ...pure.ComparableOrStringer) int {
		return len(args[0].(TotallyInvalid).Field)
	}, 2)

	_ = fn(TotallyInvalid{Field: []int{1}})
}

package pure

import (
	"fmt"
)

// ComparableOrStringer is an argument Tableize can key on: a comparable value,
// or a fmt.Stringer keyed by its string form.
type ComparableOrStringer = any

// ComparableOrString is a trie key derived from a ComparableOrStringer.
type ComparableOrString = any

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// Tableize memoizes pureFn by its argument values in a Trie of maxTableSize.
//
// pureFn must be referentially transparent. An argument that is neither
// comparable nor a fmt.Stringer panics on first use.
func Tableize[O any](
	pureFn func(...ComparableOrStringer) O,
	maxTableSize uint32,
) func(...ComparableOrStringer) O {
	memo := NewTrie[O](maxTableSize)
	return func(args ...ComparableOrStringer) O {
		if len(args) == 0 {
			return pureFn()
		}
		keys := make([]ComparableOrString, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, ok := memo.Load(keys)
		if !ok {
			v = pureFn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}

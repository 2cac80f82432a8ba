package pure_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/funcompat/pure"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := pure.NewTrie[string](4)

	// store a value
	trie.Store([]pure.ComparableOrString{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]pure.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]pure.ComparableOrString{"a", "b", "x"})
	assert.False(t, ok)

	// prefix of a stored path is not an entry
	_, ok = trie.Load([]pure.ComparableOrString{"a", "b"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]pure.ComparableOrString{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]pure.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_Rotation(t *testing.T) {
	trie := pure.NewTrie[int](1)
	key := func(i int) []pure.ComparableOrString { return []pure.ComparableOrString{i} }

	trie.Store(key(1), 1)
	trie.Store(key(2), 2) // rotates: 1 moves to the old generation

	v, ok := trie.Load(key(1))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	trie.Store(key(3), 3) // rotates again: the generation holding 1 is dropped

	_, ok = trie.Load(key(1))
	assert.False(t, ok)
	v, ok = trie.Load(key(2))
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTrie_ConcurrentStoreLoad(t *testing.T) {
	trie := pure.NewTrie[string](1024)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys := []pure.ComparableOrString{"k", i}
			trie.Store(keys, fmt.Sprint(i))
			v, ok := trie.Load(keys)
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprint(i), v)
		}(i)
	}
	wg.Wait()
}

func TestTrie_ConcurrentStoresKeepRotating(t *testing.T) {
	const workers, perWorker = 8, 200
	trie := pure.NewTrie[int](1)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				trie.Store([]pure.ComparableOrString{"concurrent", w, i}, i)
			}
		}(w)
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		trie.Store([]pure.ComparableOrString{"seq", i}, i)
	}

	// two generations of size 1 hold at most the last two sequential stores
	_, ok := trie.Load([]pure.ComparableOrString{"seq", 0})
	assert.False(t, ok)
	_, ok = trie.Load([]pure.ComparableOrString{"seq", 97})
	assert.False(t, ok)
	v, ok := trie.Load([]pure.ComparableOrString{"seq", 99})
	assert.True(t, ok)
	assert.Equal(t, 99, v)

	for w := 0; w < workers; w++ {
		for i := 0; i < perWorker; i++ {
			_, ok := trie.Load([]pure.ComparableOrString{"concurrent", w, i})
			assert.False(t, ok, "worker %d store %d survived rotation", w, i)
		}
	}
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	trie := pure.NewTrie[int](2)
	trie.Load([]pure.ComparableOrString{})
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { pure.NewTrie[int](0) })
}

package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded memo keyed by a path of comparable keys.
//
// Entries live in two generations. Once the head generation has taken maxSize
// stores, the older generation is dropped and a fresh one becomes the head, so
// an entry survives at least maxSize subsequent stores.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32

	rotateMu sync.Mutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := t.lookup(t.memos[headIdx].Load(), keys); ok {
		return v, true
	}
	return t.lookup(t.memos[1-headIdx].Load(), keys)
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	if t.size.Add(1) > t.maxSize {
		t.rotate()
	}
	m, k := t.traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
}

// rotate drops the older generation and makes a fresh map the head. The size
// is rechecked under the lock so that stores racing past maxSize rotate once.
func (t *Trie[O]) rotate() {
	t.rotateMu.Lock()
	defer t.rotateMu.Unlock()
	if t.size.Load() <= t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(1)
}

func (t *Trie[O]) lookup(targetMap *sync.Map, keys []ComparableOrString) (O, bool) {
	var zero O
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			return zero, false
		}
		targetMap = v.(*sync.Map)
	}
	v, ok := targetMap.Load(keys[len(keys)-1])
	if !ok {
		return zero, false
	}
	return v.(O), true
}

func (t *Trie[O]) traverse(targetMap *sync.Map, keys []ComparableOrString) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

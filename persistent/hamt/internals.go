package hamt

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/npillmayer/immutable/hashing"
)

const (
	bitsPerLevel uint   = 5 // will produce nodes with up to 2 ^ 5 = 32 entries
	levelMask    uint64 = 1<<bitsPerLevel - 1
	maxShift     uint   = 60 // shifts 0, 5, …, 60 consume all 64 bits of a hash
)

// entry is a slot in a trie node. It either holds a key/value pair or, if child is
// non-nil, a sub-trie. For sub-tries which are collision nodes, hash is the hash
// shared by all keys of the collision node.
type entry[K, V any] struct {
	hash  uint64
	key   K
	value V
	child *hnode[K, V]
}

func childEntry[K, V any](node *hnode[K, V]) entry[K, V] {
	e := entry[K, V]{child: node}
	if node.collision {
		e.hash = node.entries[0].hash
	}
	return e
}

func (e entry[K, V]) String() string {
	if e.child != nil {
		return "▪︎"
	}
	return fmt.Sprintf("%v:%v", e.key, e.value)
}

// hnode is a node of the trie. Bitmap nodes hold at most 32 entries, ordered by
// their 5-bit index; bit i of bitmap is set iff an entry with index i is present.
// Collision nodes have no bitmap and hold key/value pairs with identical hashes.
// Nodes are never modified after they have become part of a map.
type hnode[K, V any] struct {
	bitmap    uint32
	entries   []entry[K, V]
	collision bool
}

func index(hash uint64, shift uint) uint32 {
	return uint32((hash >> shift) & levelMask)
}

func bitpos(hash uint64, shift uint) uint32 {
	return 1 << index(hash, shift)
}

// pos returns the position within node.entries of the entry for bit.
func (node *hnode[K, V]) pos(bit uint32) int {
	return bits.OnesCount32(node.bitmap & (bit - 1))
}

func (node *hnode[K, V]) clone() *hnode[K, V] {
	n := &hnode[K, V]{bitmap: node.bitmap, collision: node.collision}
	n.entries = make([]entry[K, V], len(node.entries))
	copy(n.entries, node.entries)
	return n
}

func (node *hnode[K, V]) withReplacedEntry(at int, e entry[K, V]) *hnode[K, V] {
	assertThat(at < len(node.entries), "entry index out of range: %d ≥ %d", at, len(node.entries))
	cow := node.clone()
	cow.entries[at] = e
	return cow
}

func (node *hnode[K, V]) withInsertedEntry(at int, bit uint32, e entry[K, V]) *hnode[K, V] {
	assertThat(at <= len(node.entries), "entry index out of range: %d > %d", at, len(node.entries))
	cow := &hnode[K, V]{bitmap: node.bitmap | bit, collision: node.collision}
	cow.entries = make([]entry[K, V], len(node.entries)+1)
	copy(cow.entries, node.entries[:at])
	cow.entries[at] = e
	copy(cow.entries[at+1:], node.entries[at:])
	return cow
}

func (node *hnode[K, V]) withRemovedEntry(at int, bit uint32) *hnode[K, V] {
	assertThat(at < len(node.entries), "entry index out of range: %d ≥ %d", at, len(node.entries))
	cow := &hnode[K, V]{bitmap: node.bitmap &^ bit, collision: node.collision}
	cow.entries = make([]entry[K, V], len(node.entries)-1)
	copy(cow.entries, node.entries[:at])
	copy(cow.entries[at:], node.entries[at+1:])
	return cow
}

// find returns the position of key in a collision node, or -1.
func (node *hnode[K, V]) find(key K, h hashing.Hasher[K]) int {
	for i, e := range node.entries {
		if h.Equal(e.key, key) {
			return i
		}
	}
	return -1
}

// merge creates a sub-trie at level shift holding two entries, which must not
// share the same slot in any node above. e1 may be a key/value pair or a collision
// node, e2 is a key/value pair.
func merge[K, V any](shift uint, e1, e2 entry[K, V]) *hnode[K, V] {
	if e1.hash == e2.hash {
		assertThat(e1.child == nil && e2.child == nil, "hash collision with a sub-trie")
		tracer().Debugf("collision node for hash %#x", e1.hash)
		return &hnode[K, V]{collision: true, entries: []entry[K, V]{e1, e2}}
	}
	assertThat(shift <= maxShift, "distinct hashes %#x and %#x exhausted", e1.hash, e2.hash)
	i1, i2 := index(e1.hash, shift), index(e2.hash, shift)
	if i1 == i2 {
		child := merge(shift+bitsPerLevel, e1, e2)
		return &hnode[K, V]{bitmap: 1 << i1, entries: []entry[K, V]{childEntry(child)}}
	}
	node := &hnode[K, V]{bitmap: 1<<i1 | 1<<i2}
	if i1 < i2 {
		node.entries = []entry[K, V]{e1, e2}
	} else {
		node.entries = []entry[K, V]{e2, e1}
	}
	return node
}

func (node hnode[K, V]) String() string {
	b := strings.Builder{}
	if node.collision {
		b.WriteByte('#')
	}
	b.WriteByte('[')
	for i, e := range node.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.hamt: "+msg, msgargs...)
		panic(msg)
	}
}

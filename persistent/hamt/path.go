package hamt

import (
	"fmt"
	"strings"
)

// slot denotes the entry at position pos within node, where bit is the bitmap bit
// of the entry (zero for entries of collision nodes).
type slot[K, V any] struct {
	pos  int
	bit  uint32
	node *hnode[K, V]
}

func (s slot[K, V]) String() string {
	return fmt.Sprintf("%d@%s", s.pos, s.node)
}

// cloneSeam links a copy of parent to child, replacing the sub-trie at parent's
// entry position.
func cloneSeam[K, V any](parent, child slot[K, V]) slot[K, V] {
	assertThat(parent.node != nil, "inconsistency: parent of a child is never nil")
	assertThat(parent.node.entries[parent.pos].child != nil, "inconsistency: parent slot does not link to a child")
	return slot[K, V]{node: parent.node.withReplacedEntry(parent.pos, childEntry(child.node))}
}

// collapse is like cloneSeam, but keeps the trie canonical after a removal:
// an empty child is removed from the parent,
// a child holding just a single key/value pair or a single collision node is
// replaced by its entry.
func collapse[K, V any](parent, child slot[K, V]) slot[K, V] {
	n := child.node
	switch {
	case len(n.entries) == 0:
		return slot[K, V]{node: parent.node.withRemovedEntry(parent.pos, parent.bit)}
	case len(n.entries) == 1 && (n.entries[0].child == nil || n.entries[0].child.collision):
		tracer().Debugf("hoisting %v", n.entries[0])
		return slot[K, V]{node: parent.node.withReplacedEntry(parent.pos, n.entries[0])}
	}
	return cloneSeam(parent, child)
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path from the root to a node.
type slotPath[K, V any] []slot[K, V]

func (path slotPath[K, V]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

// foldR applies function f on pairs (parent,child) of slots of path, starting
// from the bottom-most slot. zero is applied as `child` in the first call of f.
// If path is empty, zero will be returned.
func (path slotPath[K, V]) foldR(f func(slot[K, V], slot[K, V]) slot[K, V], zero slot[K, V]) slot[K, V] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

package vector

import (
	"fmt"
	"strings"
)

// slot denotes a position within a node: the child (for inner nodes) or value
// (for leafs) at index inx.
type slot[T any] struct {
	inx  int
	node *vnode[T]
}

func (s slot[T]) String() string {
	return fmt.Sprintf("%d@%s", s.inx, s.node)
}

func (s slot[T]) clone() slot[T] {
	return slot[T]{inx: s.inx, node: s.node.clone()}
}

// cloneSeam links a copy of parent to child, replacing the child at parent's
// slot index.
func cloneSeam[T any](parent, child slot[T]) slot[T] {
	assertThat(parent.node != nil, "inconsistency: parent of a child is never nil")
	assertThat(!parent.node.isLeaf(), "inconsistency: parent of a child is never a leaf")
	newp := parent.clone()
	newp.node.children[parent.inx] = child.node
	return newp
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path to a leaf slot.
type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[T]) dropLast() slotPath[T] {
	assertThat(!path.empty(), "attempt to drop last slot from empty slot-path")
	return path[:len(path)-1]
}

func (path slotPath[T]) empty() bool {
	return len(path) == 0
}

// foldR applies function f on pairs (parent,child) of slots of path.
// Application starts from the right ('R'), which corresponds to the bottom-most item of the path
// (often a leaf of the tree). zero is an element to apply as `child` in the rightmost call
// of f(parent,child). If path is empty, zero will be returned, otherwise the value returned from
// the final call to f will be returned.
func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

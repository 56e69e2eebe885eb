package vector

import (
	"fmt"
	"strings"
)

const (
	defaultBits uint32 = 5 // will produce nodes with degree  2 ^ 5 = 32
	maxBits     uint32 = 5
)

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  uint32 // we do not store h(v), but rather bits*h(v)
}

func makeProps(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	p.shift = p.bits
	return p
}

// init makes the zero value of props usable.
func (p props) init() props {
	if p.bits == 0 {
		return makeProps(defaultBits)
	}
	return p
}

func (p props) withShift(shift uint32) props {
	p.shift = shift
	return p
}

// vnode represents a node in the tree a vector is made of. Inner nodes hold a slice of
// `degree` children, leaf nodes hold a slice of `degree` values. Nodes are never
// modified after they have become part of a vector.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func (node *vnode[T]) isLeaf() bool {
	return node.children == nil
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

// newPath creates a chain of inner nodes of height level/bits on top of leaf.
func newPath[T any](level, bits, k uint32, leaf *vnode[T]) *vnode[T] {
	if level == 0 {
		return leaf
	}
	top := emptyNode[T](k)
	top.children[0] = newPath(level-bits, bits, k, leaf)
	return top
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.isLeaf() {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Tree navigation -------------------------------------------------------

// tailOffset is the index of the first item in the tail. All items before it
// live in the tree.
func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

// arrayFor returns the leaf values containing index i.
func (v Vector[T]) arrayFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

// pathTo collects the slots from the root down to the leaf holding index i.
// i must be an index into the tree, not into the tail.
func (v Vector[T]) pathTo(i uint32, path slotPath[T]) slotPath[T] {
	assertThat(i < v.tailOffset(), "path requested for index %d outside of tree", i)
	path = path[:0]
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		inx := int((i >> level) & v.mask)
		path = append(path, slot[T]{inx: inx, node: node})
		node = node.children[inx]
	}
	return append(path, slot[T]{inx: int(i & v.mask), node: node})
}

// flushTail moves a full tail into the tree and installs newTail as the new tail.
func (v Vector[T]) flushTail(newTail []T) Vector[T] {
	assertThat(len(v.tail) == int(v.degree), "attempt to flush a tail of length %d", len(v.tail))
	assertThat(len(newTail) > 0 && len(newTail) <= int(v.degree), "illegal tail length %d", len(newTail))
	leaf := &vnode[T]{leafs: v.tail}
	var root *vnode[T]
	shift := v.shift
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ grow the tree by one level
		root = emptyNode[T](v.degree)
		root.children[0] = v.root
		root.children[1] = newPath(v.shift, v.bits, v.degree, leaf)
		shift += v.bits
		tracer().Debugf("vector of length %d grows to height %d", v.length, shift/v.bits)
	} else {
		root = v.pushLeaf(v.shift, v.root, leaf)
	}
	return Vector[T]{
		props:  v.props.withShift(shift),
		length: v.length + uint32(len(newTail)),
		root:   root,
		tail:   newTail,
	}
}

// pushLeaf inserts leaf as the rightmost leaf of the sub-tree at parent, which
// lives at level. Returns a copy of parent.
func (v Vector[T]) pushLeaf(level uint32, parent, leaf *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	var node *vnode[T]
	if parent == nil {
		node = emptyNode[T](v.degree)
	} else {
		node = parent.clone()
	}
	if level == v.bits {
		node.children[subidx] = leaf
		return node
	}
	if child := node.children[subidx]; child != nil {
		node.children[subidx] = v.pushLeaf(level-v.bits, child, leaf)
	} else {
		node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, leaf)
	}
	return node
}

// popLeaf removes the rightmost leaf from the sub-tree at node, which lives at
// level. Returns nil if the sub-tree becomes empty.
func (v Vector[T]) popLeaf(level uint32, node *vnode[T]) *vnode[T] {
	subidx := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		child := v.popLeaf(level-v.bits, node.children[subidx])
		if child == nil && subidx == 0 {
			return nil
		}
		n := node.clone()
		n.children[subidx] = child
		return n
	}
	if subidx == 0 {
		return nil
	}
	n := node.clone()
	n.children[subidx] = nil
	return n
}

// appendChunk appends a chunk of values, which becomes the new tail. The vector
// must be empty or have a full tail. chunk is shared, not copied.
func (v Vector[T]) appendChunk(chunk []T) Vector[T] {
	if v.length == 0 {
		return Vector[T]{props: v.props, length: uint32(len(chunk)), tail: chunk}
	}
	return v.flushTail(chunk)
}

// topUp appends values to a non-full tail.
func (v Vector[T]) topUp(values []T) Vector[T] {
	assertThat(len(v.tail)+len(values) <= int(v.degree), "tail overflow")
	newTail := make([]T, len(v.tail)+len(values))
	copy(newTail, v.tail)
	copy(newTail[len(v.tail):], values)
	return Vector[T]{props: v.props, length: v.length + uint32(len(values)), root: v.root, tail: newTail}
}

func (v Vector[T]) tailFull() bool {
	return len(v.tail) == int(v.degree)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

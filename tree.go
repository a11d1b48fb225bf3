package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// node is a single node of a coding tree.  A node is either a branch with
// exactly two children or a terminal leaf; a leaf carries a symbol value or
// the endOfInput marker.
type node struct {
	left  *node // non-nil iff the node is a branch
	right *node // non-nil iff left is
	sym   int   // valid only for leaves: 0..255, or endOfInput
}

func (n *node) isLeaf() bool { return n.left == nil }

// Tree is a Huffman coding tree.  Root-to-leaf paths define a prefix-free
// code: a 0 bit descends left, a 1 bit descends right, and every leaf holds
// either a symbol or the end-of-input marker.  The tree returned by Encode
// is the decode key; Decode must be given the exact same tree.
//
// A Tree is immutable once built and safe for use by concurrent Decode
// calls.
type Tree struct {
	root *node
}

// weighted is a subtree under construction, annotated with its cumulative
// frequency.  seq records insertion order into the priority queue and
// breaks frequency ties, keeping the emitted bits reproducible.
type weighted struct {
	node *node
	freq uint64
	seq  int
}

// mergeHeap is a min-heap of subtrees ordered by ascending cumulative
// frequency, with equal frequencies popping in insertion order.
type mergeHeap []weighted

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(weighted)) }

func (h *mergeHeap) Pop() interface{} {
	last := len(*h) - 1
	x := (*h)[last]
	*h = (*h)[:last]
	return x
}

var _ heap.Interface = (*mergeHeap)(nil)

// buildTree constructs the optimal coding tree for the given frequency
// table.  The queue is seeded with one leaf per occurring symbol, in
// ascending symbol order, plus the end-of-input leaf at frequency 0.  The
// two lowest-frequency subtrees are merged under a new branch until a
// single root remains; the first subtree popped becomes the left child.
//
// At least one symbol must have a non-zero frequency, so the final tree
// always has at least two leaves and its root is always a branch.
func buildTree(freqs *[numSymbols]uint64) *Tree {
	h := make(mergeHeap, 0, numSymbols+1)
	for sym := 0; sym < numSymbols; sym++ {
		if freqs[sym] == 0 {
			continue
		}
		h = append(h, weighted{node: &node{sym: sym}, freq: freqs[sym], seq: len(h)})
	}
	assert.Assertf(len(h) > 0, "no symbols to code")

	seq := len(h)
	h = append(h, weighted{node: &node{sym: endOfInput}, seq: seq})
	seq++
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(weighted)
		b := heap.Pop(&h).(weighted)
		heap.Push(&h, weighted{
			node: &node{left: a.node, right: b.node},
			freq: a.freq + b.freq,
			seq:  seq,
		})
		seq++
	}
	root := heap.Pop(&h).(weighted)
	return &Tree{root: root.node}
}

// walkLeaves visits every leaf in depth-first order, left before right.
func (n *node) walkLeaves(visit func(leaf *node, depth int)) {
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n.isLeaf() {
			visit(n, depth)
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(n, 0)
}

// NumSymbols is the number of distinct symbols coded by this tree, not
// counting the end-of-input marker.
func (t *Tree) NumSymbols() int {
	n := 0
	t.root.walkLeaves(func(leaf *node, depth int) {
		if leaf.sym != endOfInput {
			n++
		}
	})
	return n
}

// Depth is the bit length of the longest code defined by this tree.
func (t *Tree) Depth() int {
	deepest := 0
	t.root.walkLeaves(func(leaf *node, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// String returns a short human-readable description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, depth %d)", t.NumSymbols(), t.Depth())
}

// Dump writes a programmer-readable dump of the code defined by this Tree
// to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	table := t.codes()
	for sym := 0; sym < numSymbols; sym++ {
		if table[sym] == nil {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sym, table[sym])
	}
	fmt.Fprintf(&buf, "\tCode(EOI) = %s\n", table[endOfInput])
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

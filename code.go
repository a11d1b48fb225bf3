package huffman

import (
	"fmt"
	"strconv"
)

// bitstring is an ordered sequence of bits.  As a code it is the
// root-to-leaf path of one terminal: false descends left, true right.
type bitstring []bool

// String returns the quoted binary representation of this bitstring.
func (c bitstring) String() string {
	buf := make([]byte, len(c))
	for i, bit := range c {
		buf[i] = '0'
		if bit {
			buf[i] = '1'
		}
	}
	return strconv.Quote(string(buf))
}

var _ fmt.Stringer = bitstring(nil)

// codeTable maps every terminal of a tree to its code.  Slots 0..255 are
// the symbol alphabet and the last slot is the end-of-input marker.
// Symbols absent from the tree have a nil entry.
type codeTable [numSymbols + 1]bitstring

// codes derives the code table by walking the tree once, depth first.
// Every terminal receives exactly one entry, and since the root is always a
// branch, every entry is at least one bit long.
func (t *Tree) codes() *codeTable {
	var table codeTable
	var walk func(n *node, path bitstring)
	walk = func(n *node, path bitstring) {
		if n.isLeaf() {
			table[n.sym] = path
			return
		}
		// The full slice expressions force fresh backing arrays, so
		// sibling paths never alias.
		walk(n.left, append(path[:len(path):len(path)], false))
		walk(n.right, append(path[:len(path):len(path)], true))
	}
	walk(t.root, nil)
	return &table
}

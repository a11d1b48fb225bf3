package huffman

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// The wire form of a Tree is its preorder walk, bit-packed: a branch is a
// 0 bit followed by both subtrees, a symbol leaf is the bits 10 followed by
// the 8 symbol bits, and the end-of-input leaf is the bits 11.  The final
// partial byte is zero-padded.

// maxWireDepth bounds recursion while reading a tree description.  A valid
// tree over the byte alphabet plus the end-of-input marker has at most 257
// leaves, so no node sits deeper than 256.
const maxWireDepth = numSymbols + 1

// MarshalBinary encodes this Tree so that it can be persisted or
// transmitted alongside the packed bytes it decodes.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeNode(w, t.root)
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(w *bitio.Writer, n *node) {
	if !n.isLeaf() {
		w.TryWriteBool(false)
		writeNode(w, n.left)
		writeNode(w, n.right)
		return
	}
	w.TryWriteBool(true)
	if n.sym == endOfInput {
		w.TryWriteBool(true)
		return
	}
	w.TryWriteBool(false)
	w.TryWriteBits(uint64(n.sym), 8)
}

// UnmarshalBinary reconstructs a Tree written by MarshalBinary.  The data
// must contain a complete tree whose root is a branch; padding bits after
// the description are ignored.
func (t *Tree) UnmarshalBinary(data []byte) error {
	r := bitio.NewReader(bytes.NewReader(data))
	root, err := readNode(r, 0)
	if err != nil {
		return fmt.Errorf("huffman: reading tree description: %w", err)
	}
	if root.isLeaf() {
		return errors.New("huffman: tree description has no branches")
	}
	t.root = root
	return nil
}

func readNode(r *bitio.Reader, depth int) (*node, error) {
	if depth > maxWireDepth {
		return nil, errors.New("tree too deep")
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !leaf {
		left, err := readNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &node{left: left, right: right}, nil
	}
	eoi, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if eoi {
		return &node{sym: endOfInput}, nil
	}
	sym, err := r.ReadBits(8)
	if err != nil {
		return nil, err
	}
	return &node{sym: int(sym)}, nil
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)

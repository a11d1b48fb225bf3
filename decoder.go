package huffman

import (
	"bytes"
	"errors"

	"github.com/icza/bitio"
)

// ErrTruncated is returned by Decode when the bitstream runs out before the
// end-of-input marker is reached.
var ErrTruncated = errors.New("huffman: truncated stream")

// Decode reconstructs the symbol sequence held in the packed bytes, walking
// tree from the root once per symbol: a 0 bit descends left, a 1 bit
// descends right.  Reaching a symbol leaf emits that symbol and resets the
// walk to the root; reaching the end-of-input leaf stops.  Bits after the
// end-of-input code are ignored.
func Decode(tree *Tree, encoded []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(encoded))
	out := make([]byte, 0, len(encoded))
	for {
		n := tree.root
		for !n.isLeaf() {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, ErrTruncated
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		if n.sym == endOfInput {
			return out, nil
		}
		out = append(out, Symbol(n.sym))
	}
}

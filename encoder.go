package huffman

import (
	"bytes"
	"errors"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// ErrEmptyInput is returned by Encode when there is nothing to encode.
// There is no meaningful code for an alphabet with no observed symbols.
var ErrEmptyInput = errors.New("huffman: empty input")

// Encode compresses data, returning the coding tree and the packed bytes.
// The bitstream holds the code of every input symbol in order, followed by
// the end-of-input code; the final partial byte is zero-padded.  The tree
// is required for decoding and is not recoverable from the packed bytes
// alone.
func Encode(data []byte) (*Tree, []byte, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyInput
	}

	tree := buildTree(countFrequencies(data))
	table := tree.codes()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, sym := range data {
		writeCode(w, table, int(sym))
	}
	writeCode(w, table, endOfInput)
	if w.TryError != nil {
		return nil, nil, w.TryError
	}
	// Close flushes the last partial byte, padded with zero bits.  The
	// padding never decodes as data: decoding stops at the end-of-input
	// code before any padding bit is consulted.
	if err := w.Close(); err != nil {
		return nil, nil, err
	}
	return tree, buf.Bytes(), nil
}

func writeCode(w *bitio.Writer, table *codeTable, sym int) {
	code := table[sym]
	// The table covers every symbol counted from the input, so a missing
	// code is a construction defect, not an input error.
	assert.Assertf(code != nil, "symbol %d has no code", sym)
	for _, bit := range code {
		w.TryWriteBool(bit)
	}
}

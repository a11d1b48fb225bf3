package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_EmptyInput(t *testing.T) {
	_, _, err := Encode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, _, err = Encode([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestEncode_KnownBits(t *testing.T) {
	// Codes for "aaab": 'a' = 1, 'b' = 01, end-of-input = 00.  The
	// payload is 1 1 1 01 00, zero-padded to a single byte.
	_, encoded, err := Encode([]byte("aaab"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xe8}, encoded)
}

func TestEncode_SingleSymbol(t *testing.T) {
	tree, encoded, err := Encode([]byte{'x'})
	require.NoError(t, err)
	require.Equal(t, 1, tree.NumSymbols())
	// 'x' = 1 and end-of-input = 0: two bits, one padded byte.
	require.Equal(t, []byte{0x80}, encoded)

	decoded, err := Decode(tree, encoded)
	require.NoError(t, err)
	require.Equal(t, []byte{'x'}, decoded)
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	_, first, err := Encode(data)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, again, err := Encode(data)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEncode_LengthMatchesWeightedPathLength(t *testing.T) {
	data := []byte("abracadabra alakazam")
	tree, encoded, err := Encode(data)
	require.NoError(t, err)

	freqs := countFrequencies(data)
	table := tree.codes()
	bits := len(table[endOfInput])
	for sym := 0; sym < numSymbols; sym++ {
		if freqs[sym] != 0 {
			bits += int(freqs[sym]) * len(table[sym])
		}
	}
	require.Equal(t, (bits+7)/8, len(encoded))
}

func TestCodes_PrefixFree(t *testing.T) {
	tree, _, err := Encode([]byte("mississippi river basin"))
	require.NoError(t, err)

	table := tree.codes()
	var codes []bitstring
	for _, code := range table {
		if code != nil {
			codes = append(codes, code)
		}
	}
	require.Greater(t, len(codes), 2)

	for i, a := range codes {
		for j, b := range codes {
			if i == j {
				continue
			}
			require.False(t, hasBitPrefix(b, a), "code %s is a prefix of %s", a, b)
		}
	}
}

func hasBitPrefix(c, prefix bitstring) bool {
	if len(prefix) > len(c) {
		return false
	}
	for i, bit := range prefix {
		if c[i] != bit {
			return false
		}
	}
	return true
}

package huffman

// Symbol is one unit of input data.  The alphabet is the full byte range.
type Symbol = byte

// numSymbols is the size of the symbol alphabet.
const numSymbols = 256

// endOfInput is the leaf value of the synthetic terminator.  It sits just
// past the byte alphabet, so it can never collide with a real symbol.
const endOfInput = numSymbols

// countFrequencies tabulates the number of occurrences of each symbol in
// data.  The table is indexed by symbol; symbols that never occur stay 0.
func countFrequencies(data []byte) *[numSymbols]uint64 {
	var freqs [numSymbols]uint64
	for _, sym := range data {
		freqs[sym]++
	}
	return &freqs
}

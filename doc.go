// Package huffman implements Huffman coding of byte streams.  Encode builds
// an optimal prefix-free binary code from the observed symbol frequencies
// and packs the input into a bitstream terminated by a synthetic
// end-of-input code; Decode walks the coding tree to reconstruct the exact
// original bytes.  The coding tree is the contract between the two sides:
// it is not recoverable from the packed bytes and must travel with them.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman

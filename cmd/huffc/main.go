// Command huffc compresses and decompresses files with a Huffman code.
//
// Compressed output carries the coding tree in front of the packed bits:
// a uvarint tree description length, the tree description, then the
// payload.  The tree must be kept with the payload, so huffc always writes
// the two together.
//
// Usage:
//
//	huffc [-d] [-o output] [input]
//
// Without an input argument huffc reads stdin; without -o it writes stdout.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/basile-henry/huffman"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffc: ")

	decompress := flag.Bool("d", false, "decompress instead of compress")
	outName := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	in := os.Stdin
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outName != "" {
		f, err := os.Create(*outName)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		log.Fatal(err)
	}

	if *decompress {
		err = expand(data, out)
	} else {
		err = compress(data, out)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compress(data []byte, out io.Writer) error {
	tree, encoded, err := huffman.Encode(data)
	if err != nil {
		return err
	}
	treeBytes, err := tree.MarshalBinary()
	if err != nil {
		return err
	}

	frame := binary.AppendUvarint(nil, uint64(len(treeBytes)))
	frame = append(frame, treeBytes...)
	frame = append(frame, encoded...)
	if _, err := out.Write(frame); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d => %d bytes (%.1f%%)\n",
		len(data), len(frame), 100*float64(len(frame))/float64(len(data)))
	return nil
}

func expand(data []byte, out io.Writer) error {
	treeLen, n := binary.Uvarint(data)
	if n <= 0 || treeLen > uint64(len(data)-n) {
		return errors.New("malformed frame header")
	}
	var tree huffman.Tree
	if err := tree.UnmarshalBinary(data[n : n+int(treeLen)]); err != nil {
		return err
	}
	decoded, err := huffman.Decode(&tree, data[n+int(treeLen):])
	if err != nil {
		return err
	}
	_, err = out.Write(decoded)
	return err
}

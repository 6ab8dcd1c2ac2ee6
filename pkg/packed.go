package pkg

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
)

// Packed wire format, selected with --packed on encode/decode: a
// little-endian uint64 symbol count followed by the codes as real bits,
// MSB-first, padded to a byte boundary at the end. The textual
// '0'/'1' format stays the default.

// EncodePacked writes src's codes to w in the packed format.
func EncodePacked(root *TreeNode, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var count uint64
	var bits []byte
	for _, b := range data {
		code := CodeFor(root, b)
		if len(code) == 0 {
			continue
		}
		count++
		bits = append(bits, code...)
	}

	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return err
	}
	bw := bitio.NewWriter(w)
	for _, c := range bits {
		if err := bw.WriteBool(c == '1'); err != nil {
			return err
		}
	}
	return bw.Close()
}

// DecodePacked reads the symbol count and then replays the tree bit by
// bit until that many symbols have been emitted. Padding bits after the
// last code are never read.
func DecodePacked(root *TreeNode, r io.Reader, w io.Writer) error {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}

	br := bitio.NewReader(bufio.NewReader(r))
	bw := bufio.NewWriter(w)
	for i := uint64(0); i < count; i++ {
		cur := root
		for !cur.IsLeaf() {
			bit, err := br.ReadBool()
			if err != nil {
				return err
			}
			if bit {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}
		if err := bw.WriteByte(cur.Symbol); err != nil {
			return err
		}
	}
	return bw.Flush()
}

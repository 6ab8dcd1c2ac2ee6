package pkg

import (
	"bufio"
	"io"
)

// Streaming transducers between raw bytes and the textual bitstring
// form. Both directions walk the same tree; the decoder consumes
// exactly one code's worth of bits per emitted byte, so no framing is
// written between codes.

// Encode writes each input byte's bit path to w as literal '0'/'1'
// characters with no separators and no trailer. Bytes with no leaf in
// the tree contribute nothing to the output.
func Encode(root *TreeNode, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := bw.Write(CodeFor(root, b)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode walks the tree over the input bit characters: '0' moves to the
// left child when one exists, '1' to the right child when one exists,
// and any other character, or a move toward a missing child, is
// silently skipped. Reaching a leaf emits its symbol and resets the
// walk to the root. The leaf test runs after every consumed character,
// so a root that is itself a leaf emits once per character. Trailing
// bits of an incomplete code are dropped without error.
func Decode(root *TreeNode, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	cur := root
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if c == '0' && cur.Left != nil {
			cur = cur.Left
		} else if c == '1' && cur.Right != nil {
			cur = cur.Right
		}

		if cur.IsLeaf() {
			if err := bw.WriteByte(cur.Symbol); err != nil {
				return err
			}
			cur = root
		}
	}
	return bw.Flush()
}

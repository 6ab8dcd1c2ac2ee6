package pkg

import (
	"bufio"
	"io"
)

// Bit-path derivation: '0' is a descent into the left child, '1' into
// the right. Paths are recomputed by walking the tree on every lookup,
// never cached.

// CodeFor returns target's bit path as ASCII '0'/'1' characters, or nil
// if no leaf carries target. A degenerate tree whose root is the
// matching leaf yields the one-bit code "0" so that single-symbol
// alphabets still round-trip.
func CodeFor(root *TreeNode, target byte) []byte {
	if root.IsLeaf() {
		if root.Symbol == target {
			return []byte{'0'}
		}
		return nil
	}
	var found []byte
	searchCode(root, target, nil, &found)
	return found
}

func searchCode(n *TreeNode, target byte, prefix []byte, found *[]byte) {
	if n.Left != nil {
		next := append([]byte{}, prefix...)
		next = append(next, '0')
		searchCode(n.Left, target, next, found)
	}
	if n.Right != nil {
		next := append([]byte{}, prefix...)
		next = append(next, '1')
		searchCode(n.Right, target, next, found)
	}
	if n.IsLeaf() && n.Symbol == target {
		*found = append([]byte{}, prefix...)
	}
}

// SymbolCode pairs a leaf's symbol with its bit path.
type SymbolCode struct {
	Symbol byte
	Code   []byte
}

// AllCodes enumerates every leaf's code in a single walk, visiting left
// subtrees before right ones.
func AllCodes(root *TreeNode) []SymbolCode {
	var out []SymbolCode
	collectCodes(root, nil, &out)
	return out
}

func collectCodes(n *TreeNode, prefix []byte, out *[]SymbolCode) {
	if n.Left != nil {
		next := append([]byte{}, prefix...)
		next = append(next, '0')
		collectCodes(n.Left, next, out)
	}
	if n.Right != nil {
		next := append([]byte{}, prefix...)
		next = append(next, '1')
		collectCodes(n.Right, next, out)
	}
	if n.IsLeaf() {
		*out = append(*out, SymbolCode{Symbol: n.Symbol, Code: append([]byte{}, prefix...)})
	}
}

// WriteCodeListing writes the diagnostic code table: one line per
// symbol value in ascending order. Printable symbols (32..126) show
// their bit path; every other symbol shows the literal text "No code".
func WriteCodeListing(root *TreeNode, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < AlphabetSize; i++ {
		if i >= 32 && i <= 126 {
			if _, err := bw.Write(CodeFor(root, byte(i))); err != nil {
				return err
			}
		} else {
			if _, err := bw.WriteString("No code"); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package pkg

import (
	"github.com/chronos-tachyon/assert"
)

// Huffman tree construction over a fixed symbol alphabet

// AlphabetSize is the number of symbols in the ASCII alphabet the
// file-level operations work over. The tree builder itself accepts
// alphabets of any size.
const AlphabetSize = 128

// Placeholder is the symbol stored on internal nodes.
const Placeholder byte = '$'

// TreeNode is a node of the Huffman tree: a leaf holds a real symbol
// and its weight, an internal node holds Placeholder and the sum of
// its children's weights.
type TreeNode struct {
	Symbol byte
	Weight float64
	Left   *TreeNode
	Right  *TreeNode
	index  int // for heap
}

// IsLeaf reports whether the node has no children. Internal nodes
// always have exactly two.
func (n *TreeNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree from parallel symbol/weight slices
// using the greedy two-lightest merge. The first node extracted on each
// merge becomes the left child. The returned root is never mutated by
// the encode/decode paths.
func BuildTree(symbols []byte, weights []float64) *TreeNode {
	assert.Assertf(len(symbols) == len(weights), "len(symbols) %d != len(weights) %d", len(symbols), len(weights))
	assert.Assertf(len(symbols) > 0, "empty alphabet")

	h := BuildMinHeap(symbols, weights)
	for !h.IsSingleton() {
		left, _ := h.ExtractMin()
		right, _ := h.ExtractMin()

		parent := &TreeNode{
			Symbol: Placeholder,
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		}
		h.Insert(parent)
	}

	root, _ := h.ExtractMin()
	return root
}

// Alphabet returns the full fixed alphabet, symbol values 0..AlphabetSize-1.
func Alphabet() []byte {
	symbols := make([]byte, AlphabetSize)
	for i := range symbols {
		symbols[i] = byte(i)
	}
	return symbols
}

// BuildASCIITree builds the tree over the full fixed alphabet, one leaf
// per symbol value, weighted by the given table. len(weights) must be
// AlphabetSize.
func BuildASCIITree(weights []float64) *TreeNode {
	assert.Assertf(len(weights) == AlphabetSize, "len(weights) %d != AlphabetSize %d", len(weights), AlphabetSize)
	return BuildTree(Alphabet(), weights)
}

package pkg

import (
	"container/heap"
	"errors"
)

// Min-heap of tree nodes keyed by ascending weight. Ties between equal
// weights resolve by array position, so tree shapes are deterministic
// for a given insertion order.

// ErrEmptyHeap is returned by ExtractMin when the heap holds no nodes.
var ErrEmptyHeap = errors.New("extract from empty heap")

type nodeHeap []*TreeNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].Weight < h[j].Weight }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*TreeNode)
	node.index = n
	*h = append(*h, node)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[0 : n-1]
	return node
}

// MinHeap is a weight-ordered priority queue of tree nodes.
type MinHeap struct {
	nodes nodeHeap
}

// NewMinHeap returns an empty heap with backing storage for capacity nodes.
func NewMinHeap(capacity int) *MinHeap {
	return &MinHeap{nodes: make(nodeHeap, 0, capacity)}
}

// BuildMinHeap bulk-loads one leaf node per (symbol, weight) pair and
// repairs heap order bottom-up, which is O(n) rather than n inserts'
// O(n log n).
func BuildMinHeap(symbols []byte, weights []float64) *MinHeap {
	h := NewMinHeap(len(symbols))
	for i, s := range symbols {
		h.nodes = append(h.nodes, &TreeNode{Symbol: s, Weight: weights[i], index: i})
	}
	heap.Init(&h.nodes)
	return h
}

// Insert adds a node, sifting it up while its weight is strictly less
// than its parent's.
func (h *MinHeap) Insert(n *TreeNode) {
	heap.Push(&h.nodes, n)
}

// ExtractMin removes and returns the minimum-weight node. The last
// element moves to the root and sifts down, the smaller child winning
// and the left child winning ties.
func (h *MinHeap) ExtractMin() (*TreeNode, error) {
	if len(h.nodes) == 0 {
		return nil, ErrEmptyHeap
	}
	return heap.Pop(&h.nodes).(*TreeNode), nil
}

// IsSingleton reports whether exactly one node remains.
func (h *MinHeap) IsSingleton() bool {
	return len(h.nodes) == 1
}

// Len returns the number of nodes currently held.
func (h *MinHeap) Len() int {
	return len(h.nodes)
}

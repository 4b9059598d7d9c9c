package huffile

import "container/heap"

// internalSym is the tie-break key for internal nodes. It ranks above
// every valid byte value, so on equal weight a leaf always sorts
// before a merge node.
const internalSym = 256

// node is one node of the coding tree: a leaf holding a byte value,
// or an internal node owning exactly two children.
type node struct {
	sym         int // 0..255 for leaves, internalSym for internal nodes
	weight      uint64
	left, right *node
	seq         int // creation order, final tie-break between internal nodes
}

func (n *node) leaf() bool { return n.left == nil }

// nodeHeap is a min-heap of tree nodes ordered by (weight, sym, seq).
// The order is total, so the merge sequence, and with it the tree
// shape, is identical for every build from the same frequency table.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	if h[i].sym != h[j].sym {
		return h[i].sym < h[j].sym
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// buildTree constructs the coding tree for freqs. Only byte values
// with a nonzero count become leaves. It fails with ErrEmptyAlphabet
// if every count is zero.
//
// The two smallest nodes are merged repeatedly, first pop becoming
// the left child, until one root remains. A single-leaf alphabet
// terminates immediately with that leaf as root.
func buildTree(freqs *FrequencyTable) (*node, error) {
	h := make(nodeHeap, 0, 256)
	seq := 0
	for sym, count := range freqs {
		if count == 0 {
			continue
		}
		h = append(h, &node{sym: sym, weight: uint64(count), seq: seq})
		seq++
	}
	if len(h) == 0 {
		return nil, ErrEmptyAlphabet
	}
	heap.Init(&h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		merged := &node{
			sym:    internalSym,
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
			seq:    seq,
		}
		seq++
		heap.Push(&h, merged)
	}
	return h[0], nil
}

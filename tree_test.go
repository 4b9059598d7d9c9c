package huffile

import (
	"errors"
	"testing"
)

func TestBuildTreeEmptyAlphabet(t *testing.T) {
	var freqs FrequencyTable
	if _, err := buildTree(&freqs); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("buildTree(all zero) = %v, want ErrEmptyAlphabet", err)
	}
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	var freqs FrequencyTable
	freqs[0x61] = 9
	root, err := buildTree(&freqs)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if !root.leaf() || root.sym != 0x61 || root.weight != 9 {
		t.Errorf("root = {sym %d weight %d leaf %v}, want leaf 0x61 weight 9", root.sym, root.weight, root.leaf())
	}
}

func TestBuildTreeWeightOrder(t *testing.T) {
	// B is lighter than A so it is extracted first and becomes the
	// left child.
	var freqs FrequencyTable
	freqs[0x41] = 2
	freqs[0x42] = 1
	root, err := buildTree(&freqs)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.leaf() || root.weight != 3 {
		t.Fatalf("root weight %d leaf %v, want internal weight 3", root.weight, root.leaf())
	}
	if root.left.sym != 0x42 || root.right.sym != 0x41 {
		t.Errorf("children %#x/%#x, want left 0x42 right 0x41", root.left.sym, root.right.sym)
	}
}

func TestBuildTreeByteValueTieBreak(t *testing.T) {
	// Equal weights: the smaller byte value is extracted first.
	var freqs FrequencyTable
	freqs['x'] = 4
	freqs['m'] = 4
	root, err := buildTree(&freqs)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.left.sym != 'm' || root.right.sym != 'x' {
		t.Errorf("children %q/%q, want left 'm' right 'x'", root.left.sym, root.right.sym)
	}
}

func TestBuildTreeInternalRanksAboveLeaves(t *testing.T) {
	// a and b merge into an internal node of weight 2; c also weighs
	// 2, and as a leaf it must sort before the internal node.
	var freqs FrequencyTable
	freqs['a'] = 1
	freqs['b'] = 1
	freqs['c'] = 2
	root, err := buildTree(&freqs)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if !root.left.leaf() || root.left.sym != 'c' {
		t.Errorf("left child sym %d leaf %v, want leaf 'c'", root.left.sym, root.left.leaf())
	}
	if root.right.leaf() {
		t.Error("right child is a leaf, want the a/b merge node")
	}
}

func TestBuildTreeWeightsSum(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	freqs := countBytes(data)
	root, err := buildTree(&freqs)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.weight != uint64(len(data)) {
		t.Errorf("root weight %d, want %d", root.weight, len(data))
	}
}

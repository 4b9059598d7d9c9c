package huffile

// code is one assigned bit pattern. With 4-byte counts the total tree
// weight stays below 2^40, which bounds code length well under 64
// bits, so a uint64 always holds the pattern.
type code struct {
	bits uint64
	n    uint8 // number of bits; 0 means no code assigned
}

// codeTable maps byte values to their codes. Slots for byte values
// absent from the tree keep n == 0.
type codeTable [256]code

// buildCodes walks the tree depth-first and records the root-to-leaf
// path of every leaf: left appends a 0 bit, right a 1 bit.
//
// A root that is itself a leaf (single distinct byte in the input)
// gets the one-bit code 0, so every occurrence still consumes exactly
// one bit when packed.
func buildCodes(root *node) codeTable {
	var table codeTable
	if root.leaf() {
		table[root.sym] = code{bits: 0, n: 1}
		return table
	}
	var walk func(nd *node, bits uint64, depth uint8)
	walk = func(nd *node, bits uint64, depth uint8) {
		if nd.leaf() {
			table[nd.sym] = code{bits: bits, n: depth}
			return
		}
		walk(nd.left, bits<<1, depth+1)
		walk(nd.right, bits<<1|1, depth+1)
	}
	walk(root, 0, 0)
	return table
}

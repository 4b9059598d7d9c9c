package huffile

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// packBits concatenates the code of every input byte into one bit
// stream, zero-pads it to a whole number of bytes, and returns the
// packed bytes together with the pad length (0..7).
func packBits(data []byte, codes *codeTable) ([]byte, uint8, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, b := range data {
		c := codes[b]
		if err := w.WriteBits(c.bits, c.n); err != nil {
			return nil, 0, fmt.Errorf("pack bits: %w", err)
		}
	}
	padding, err := w.Align()
	if err != nil {
		return nil, 0, fmt.Errorf("pack bits: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("pack bits: %w", err)
	}
	return buf.Bytes(), padding, nil
}

// unpackBits expands payload into bits, drops the final padding bits,
// and walks the tree from the root per bit (0 left, 1 right), emitting
// a byte and resetting to the root at every leaf.
//
// Unless permissive is set, the usable bit sequence must end exactly
// at a code boundary; ending mid-path fails with ErrTruncatedStream.
func unpackBits(payload []byte, padding uint8, root *node, permissive bool) ([]byte, error) {
	totalBits := uint64(len(payload)) * 8
	if uint64(padding) > totalBits {
		return nil, fmt.Errorf("%w: pad length %d exceeds %d payload bits", ErrInvalidContainer, padding, totalBits)
	}
	usable := totalBits - uint64(padding)
	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, len(payload)*2)

	if root.leaf() {
		// Single-symbol alphabet: one bit per occurrence.
		for i := uint64(0); i < usable; i++ {
			if _, err := r.ReadBool(); err != nil {
				return nil, fmt.Errorf("unpack bits: %w", err)
			}
			out = append(out, byte(root.sym))
		}
		return out, nil
	}

	cur := root
	for i := uint64(0); i < usable; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("unpack bits: %w", err)
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur.leaf() {
			out = append(out, byte(cur.sym))
			cur = root
		}
	}
	if cur != root && !permissive {
		return nil, ErrTruncatedStream
	}
	return out, nil
}

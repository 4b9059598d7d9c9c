package huffile

import (
	"bytes"
	"errors"
	"testing"
)

// lcg returns n pseudo-random bytes from a fixed linear congruential
// generator so tests stay deterministic across runs.
func lcg(n int, seed uint64) []byte {
	data := make([]byte, n)
	state := seed
	for i := range data {
		state = state*6364136223846793005 + 1442695040888963407
		data[i] = byte(state >> 56)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"ascii", []byte("hello world")},
		{"two symbols", []byte("AAB")},
		{"single byte", []byte{0x7F}},
		{"repeated byte", bytes.Repeat([]byte{0x41}, 1000)},
		{"all byte values", lcg(4096, 42)},
		{"skewed", append(bytes.Repeat([]byte("a"), 500), []byte("the quick brown fox")...)},
		{"binary", []byte{0x00, 0xFF, 0x00, 0xFF, 0x80}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := Compress(tc.data)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			out, err := Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(out, tc.data) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(out), len(tc.data))
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	data := lcg(2048, 7)
	first, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	second, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("compressing the same input twice produced different containers")
	}
}

func TestSingleSymbolAlphabet(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 17)
	c, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// One bit per occurrence: 17 bits packed into 3 bytes, 7 pad bits.
	if len(c.Payload) != 3 || c.Padding != 7 {
		t.Errorf("payload %d bytes pad %d, want 3 bytes pad 7", len(c.Payload), c.Padding)
	}
	out, err := c.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("got %q, want 17 copies of 0x42", out)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Compress(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Compress(nil) = %v, want ErrEmptyInput", err)
	}
	if _, err := Encode([]byte{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Encode(empty) = %v, want ErrEmptyInput", err)
	}
}

func TestPrefixProperty(t *testing.T) {
	inputs := [][]byte{
		[]byte("abracadabra"),
		lcg(1024, 3),
		[]byte("mississippi"),
	}
	for _, data := range inputs {
		freqs := countBytes(data)
		root, err := buildTree(&freqs)
		if err != nil {
			t.Fatalf("buildTree: %v", err)
		}
		codes := buildCodes(root)
		for x := 0; x < 256; x++ {
			if codes[x].n == 0 {
				continue
			}
			for y := 0; y < 256; y++ {
				if y == x || codes[y].n == 0 || codes[x].n > codes[y].n {
					continue
				}
				if codes[y].bits>>(codes[y].n-codes[x].n) == codes[x].bits {
					t.Errorf("code of %#x is a prefix of code of %#x", x, y)
				}
			}
		}
	}
}

func TestPaddingBound(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("ab"),
		[]byte("hello world"),
		lcg(333, 9),
		bytes.Repeat([]byte{5}, 8),
	}
	for _, data := range inputs {
		freqs := countBytes(data)
		root, err := buildTree(&freqs)
		if err != nil {
			t.Fatalf("buildTree: %v", err)
		}
		codes := buildCodes(root)
		var totalBits uint64
		for _, b := range data {
			totalBits += uint64(codes[b].n)
		}
		want := uint8((8 - totalBits%8) % 8)

		c, err := Encode(data)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if c.Padding > 7 {
			t.Errorf("pad length %d out of range", c.Padding)
		}
		if c.Padding != want {
			t.Errorf("pad length %d, want %d for %d code bits", c.Padding, want, totalBits)
		}
		if uint64(len(c.Payload))*8 != totalBits+uint64(c.Padding) {
			t.Errorf("payload holds %d bits, want %d", len(c.Payload)*8, totalBits+uint64(c.Padding))
		}
	}
}

// Two 'A' and one 'B': 'B' is the lighter node and becomes the left
// child with code 0, 'A' the right child with code 1. The packed
// stream 1,1,0 plus five pad bits is the single byte 0xC0.
func TestConcreteScenario(t *testing.T) {
	data := []byte{0x41, 0x41, 0x42}
	c, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if c.Freqs[0x41] != 2 || c.Freqs[0x42] != 1 {
		t.Errorf("frequencies %d/%d, want 2/1", c.Freqs[0x41], c.Freqs[0x42])
	}
	if c.Padding != 5 {
		t.Errorf("pad length %d, want 5", c.Padding)
	}
	if !bytes.Equal(c.Payload, []byte{0xC0}) {
		t.Errorf("payload %#x, want [0xC0]", c.Payload)
	}
	out, err := c.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip gave %#x, want %#x", out, data)
	}
}

// Package huffile implements byte-oriented Huffman compression with a
// fixed, self-describing container format. The container stores the
// full 256-entry frequency table, so a compressed stream carries
// everything needed to rebuild the coding tree and decode itself.
//
// Tree construction is deterministic: nodes are merged in a total
// order (weight ascending, then byte value, with internal nodes
// ranked above all byte values), so compressing the same input always
// yields byte-identical output and the decoder rebuilds the exact
// tree the encoder used.
package huffile

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput indicates an attempt to compress a zero-length source.
	ErrEmptyInput = errors.New("empty input")
	// ErrEmptyAlphabet indicates a frequency table with no nonzero counts.
	ErrEmptyAlphabet = errors.New("frequency table has no nonzero counts")
	// ErrInvalidContainer indicates a container that is too short or
	// structurally unusable (all-zero counts, pad length out of range).
	ErrInvalidContainer = errors.New("invalid container")
	// ErrTruncatedStream indicates a bit stream that ends in the middle
	// of a code.
	ErrTruncatedStream = errors.New("bit stream ends inside a code")
)

// Config holds configuration for a Codec.
type Config struct {
	PermissivePadding bool // Drop trailing mid-code bits silently instead of failing
}

// Option is a functional option for configuring a Codec.
type Option func(*Config)

// WithPermissivePadding makes decoding tolerate trailing bits that do
// not complete a code. By default the usable bit sequence must end
// exactly on a code boundary; with this option any leftover partial
// path is discarded, matching the stored pad length blindly.
func WithPermissivePadding() Option {
	return func(c *Config) {
		c.PermissivePadding = true
	}
}

// Codec is a reusable configured handle over the stateless
// compress/decompress pipeline. The zero value is ready to use.
type Codec struct {
	config Config
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts ...Option) *Codec {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Codec{config: cfg}
}

// Encode runs the full compression pipeline and returns the resulting
// in-memory Container. It fails with ErrEmptyInput for a zero-length
// source.
func (cd *Codec) Encode(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("input too large for 4-byte counts: %d bytes", len(data))
	}
	freqs := countBytes(data)
	root, err := buildTree(&freqs)
	if err != nil {
		return nil, err
	}
	codes := buildCodes(root)
	payload, padding, err := packBits(data, &codes)
	if err != nil {
		return nil, err
	}
	return &Container{
		Freqs:   freqs,
		Padding: padding,
		Payload: payload,
	}, nil
}

// Decode rebuilds the coding tree from the container's stored
// frequencies and unpacks the payload back into the original bytes.
func (cd *Codec) Decode(c *Container) ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	root, err := buildTree(&c.Freqs)
	if err != nil {
		return nil, err
	}
	return unpackBits(c.Payload, c.Padding, root, cd.config.PermissivePadding)
}

// Compress encodes data and serializes the container to a byte slice.
func (cd *Codec) Compress(data []byte) ([]byte, error) {
	c, err := cd.Encode(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(c.EncodedLen())
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress deserializes a container from data and decodes it.
func (cd *Codec) Decompress(data []byte) ([]byte, error) {
	var c Container
	if _, err := c.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return cd.Decode(&c)
}

// Encode compresses data into a Container using the default Codec.
func Encode(data []byte) (*Container, error) {
	return NewCodec().Encode(data)
}

// Compress compresses data into serialized container bytes using the
// default Codec.
func Compress(data []byte) ([]byte, error) {
	return NewCodec().Compress(data)
}

// Decompress recovers the original bytes from serialized container
// bytes.
func Decompress(data []byte, opts ...Option) ([]byte, error) {
	return NewCodec(opts...).Decompress(data)
}

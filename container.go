package huffile

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	freqSlots     = 256
	freqSlotBytes = 4
	padOffset     = freqSlots * freqSlotBytes
	headerSize    = padOffset + 1
	maxPadding    = 7
)

// Wire format, all integers big-endian, no magic and no version:
//
//	offset 0     1024 bytes  256 × 4-byte counts, byte value 0..255 in order
//	offset 1024  1 byte      pad length, 0..7
//	offset 1025  remainder   packed bit payload
type Container struct {
	Freqs   FrequencyTable
	Padding uint8
	Payload []byte
}

// EncodedLen returns the serialized size of the container in bytes.
func (c *Container) EncodedLen() int {
	return headerSize + len(c.Payload)
}

func (c *Container) validate() error {
	if c.Padding > maxPadding {
		return fmt.Errorf("%w: pad length %d out of range", ErrInvalidContainer, c.Padding)
	}
	if c.Freqs.Total() == 0 {
		return fmt.Errorf("%w: all stored counts are zero", ErrInvalidContainer)
	}
	return nil
}

func writeBytes(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	}
	if n != len(b) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// WriteTo serializes the container. It implements io.WriterTo.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}

	header := make([]byte, headerSize)
	for i, count := range c.Freqs {
		binary.BigEndian.PutUint32(header[i*freqSlotBytes:], count)
	}
	header[padOffset] = c.Padding

	var total int64
	n, err := writeBytes(w, header)
	total += n
	if err != nil {
		return total, fmt.Errorf("write container header: %w", err)
	}

	n, err = writeBytes(w, c.Payload)
	total += n
	if err != nil {
		return total, fmt.Errorf("write container payload at offset %d: %w", headerSize, err)
	}
	return total, nil
}

// ReadFrom deserializes a container, consuming the reader to the end.
// It implements io.ReaderFrom. A stream shorter than the fixed header
// fails with ErrInvalidContainer.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r, header)
	total += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return total, fmt.Errorf("%w: %d header bytes, need %d", ErrInvalidContainer, n, headerSize)
		}
		return total, fmt.Errorf("read container header: %w", err)
	}

	var tmp Container
	for i := range tmp.Freqs {
		tmp.Freqs[i] = binary.BigEndian.Uint32(header[i*freqSlotBytes:])
	}
	tmp.Padding = header[padOffset]

	payload, err := io.ReadAll(r)
	total += int64(len(payload))
	if err != nil {
		return total, fmt.Errorf("read container payload at offset %d: %w", headerSize, err)
	}
	tmp.Payload = payload

	if err := tmp.validate(); err != nil {
		return total, err
	}
	*c = tmp
	return total, nil
}

// Decode recovers the original bytes from the container.
func (c *Container) Decode(opts ...Option) ([]byte, error) {
	return NewCodec(opts...).Decode(c)
}

package huffile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Kind labels decompressed output for user-facing reporting. The
// label is cosmetic: the bytes written to disk are identical either
// way.
type Kind int

const (
	KindBinary Kind = iota
	KindText
)

func (k Kind) String() string {
	if k == KindText {
		return "text"
	}
	return "binary"
}

// CompressFile compresses src into a container file at dst. A failed
// operation never leaves a readable partial destination: the output
// is written to a temporary file and renamed into place on success.
func (cd *Codec) CompressFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	c, err := cd.Encode(data)
	if err != nil {
		return err
	}
	return writeAtomic(dst, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	})
}

// DecompressFile decompresses the container file at src into dst and
// reports whether the recovered bytes form valid UTF-8 text.
func (cd *Codec) DecompressFile(src, dst string) (Kind, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return KindBinary, fmt.Errorf("read %s: %w", src, err)
	}
	out, err := cd.Decompress(data)
	if err != nil {
		return KindBinary, err
	}
	err = writeAtomic(dst, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	})
	if err != nil {
		return KindBinary, err
	}
	if utf8.Valid(out) {
		return KindText, nil
	}
	return KindBinary, nil
}

// CompressFile compresses src into dst using the default Codec.
func CompressFile(src, dst string) error {
	return NewCodec().CompressFile(src, dst)
}

// DecompressFile decompresses src into dst using the default Codec.
func DecompressFile(src, dst string) (Kind, error) {
	return NewCodec().DecompressFile(src, dst)
}

func writeAtomic(dst string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(dst), ".huffile-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	tmp := f.Name()
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// Package zipconv moves compressed containers and plain files into
// and out of zip archives. It never touches archive internals beyond
// the standard reader/writer; deflate is supplied by
// klauspost/compress.
package zipconv

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"

	"github.com/seif/huffile"
)

// ErrNoEntry indicates that no archive entry matched the requested
// name suffix.
var ErrNoEntry = errors.New("no matching entry in archive")

// FileToZip creates a fresh deflate-compressed zip archive at zipPath
// containing the file at src under its base name.
func FileToZip(src, zipPath string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", zipPath, err)
	}
	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	fail := func(err error) error {
		zw.Close()
		f.Close()
		os.Remove(zipPath)
		return fmt.Errorf("write %s: %w", zipPath, err)
	}
	w, err := zw.Create(filepath.Base(src))
	if err != nil {
		return fail(err)
	}
	if _, err := w.Write(data); err != nil {
		return fail(err)
	}
	if err := zw.Close(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(zipPath)
		return fmt.Errorf("write %s: %w", zipPath, err)
	}
	return nil
}

// ExtractSuffix copies the first archive entry whose name ends in
// suffix to dst. It fails with ErrNoEntry if no entry matches.
func ExtractSuffix(zipPath, suffix, dst string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", zipPath, err)
	}
	defer zr.Close()
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	for _, entry := range zr.File {
		if !strings.HasSuffix(entry.Name, suffix) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("open entry %q in %s: %w", entry.Name, zipPath, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("read entry %q in %s: %w", entry.Name, zipPath, err)
		}
		if err := os.WriteFile(dst, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		return nil
	}
	return fmt.Errorf("%w: suffix %q in %s", ErrNoEntry, suffix, zipPath)
}

// HufToTxt decompresses the container file at hufPath into a UTF-8
// text file at txtPath. It fails if the decompressed bytes are not
// valid UTF-8.
func HufToTxt(hufPath, txtPath string) error {
	data, err := os.ReadFile(hufPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", hufPath, err)
	}
	out, err := huffile.Decompress(data)
	if err != nil {
		return err
	}
	if !utf8.Valid(out) {
		return fmt.Errorf("decompressed %s is not valid UTF-8 text", hufPath)
	}
	if err := os.WriteFile(txtPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", txtPath, err)
	}
	return nil
}

// ZipToTxt extracts the first .huf entry from the archive at zipPath
// and decompresses it into a text file at txtPath. The intermediate
// container file is removed on all paths.
func ZipToTxt(zipPath, txtPath string) error {
	tmp, err := os.CreateTemp("", "huffile-*.huf")
	if err != nil {
		return fmt.Errorf("create temp container: %w", err)
	}
	name := tmp.Name()
	tmp.Close()
	defer os.Remove(name)

	if err := ExtractSuffix(zipPath, ".huf", name); err != nil {
		return err
	}
	return HufToTxt(name, txtPath)
}

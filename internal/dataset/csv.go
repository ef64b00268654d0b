package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Load reads a delimited file into a Table. The delimiter is chosen from the
// file name (.tsv → tab, otherwise comma) and compression is transparent for
// .gz and .zst suffixes, so "flags.csv.zst" just works. An empty file yields
// an empty table rather than an error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rc, base, err := wrapReader(f, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delimiterFor(base)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = TrimmedHeader(header)

	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return New(header, rows), nil
}

// Save writes the table back to a delimited file, using the same
// delimiter-and-compression-by-extension rule as Load.
func (t *Table) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir dataset dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	wc, base, err := wrapWriter(f, path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(wc)
	w.Comma = delimiterFor(base)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close dataset writer: %w", err)
	}
	return nil
}

// wrapReader layers a decompressor over f when the path carries a compression
// suffix. It returns the path with that suffix removed so the delimiter can
// still be picked from the inner extension.
func wrapReader(f *os.File, path string) (io.ReadCloser, string, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("gzip reader: %w", err)
		}
		return zr, strings.TrimSuffix(path, ".gz"), nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("zstd reader: %w", err)
		}
		return zr.IOReadCloser(), strings.TrimSuffix(path, ".zst"), nil
	default:
		return io.NopCloser(f), path, nil
	}
}

func wrapWriter(f *os.File, path string) (io.WriteCloser, string, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewWriter(f), strings.TrimSuffix(path, ".gz"), nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return nil, "", fmt.Errorf("zstd writer: %w", err)
		}
		return zw, strings.TrimSuffix(path, ".zst"), nil
	default:
		return nopWriteCloser{f}, path, nil
	}
}

// nopWriteCloser leaves closing the underlying file to the caller.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func delimiterFor(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

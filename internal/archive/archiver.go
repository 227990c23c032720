// Package archive builds single-entry ZIP archives in memory.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Result is the outcome of a compression: the complete archive bytes and a
// suggested output filename (the entry name with a literal ".zip" suffix,
// no extension stripping).
type Result struct {
	Data     []byte
	Filename string
}

// Archiver produces ZIP archives using the deflate method at the default
// compression level.
type Archiver struct{}

func NewArchiver() *Archiver {
	return &Archiver{}
}

// Compress wraps data into a ZIP archive containing exactly one entry named
// entryName whose content is data byte-for-byte. Zero-length data yields a
// valid archive with one empty entry.
func (a *Archiver) Compress(data []byte, entryName string) (*Result, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entryName)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("write entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return &Result{Data: buf.Bytes(), Filename: entryName + ".zip"}, nil
}

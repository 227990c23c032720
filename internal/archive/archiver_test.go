package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// readSingleEntry opens res.Data as a ZIP archive and returns the name and
// content of its only entry.
func readSingleEntry(t *testing.T, res *Result) (string, []byte) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(res.Data), int64(len(res.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)

	f := zr.File[0]
	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	return f.Name, content
}

func TestCompress_RoundTrip(t *testing.T) {
	a := NewArchiver()

	data := []byte("hello world")
	res, err := a.Compress(data, "report.txt")
	require.NoError(t, err)

	name, content := readSingleEntry(t, res)
	require.Equal(t, "report.txt", name)
	require.Equal(t, data, content)
}

func TestCompress_EmptyData(t *testing.T) {
	a := NewArchiver()

	res, err := a.Compress(nil, "empty.txt")
	require.NoError(t, err)

	name, content := readSingleEntry(t, res)
	require.Equal(t, "empty.txt", name)
	require.Empty(t, content)
}

func TestCompress_LargeData(t *testing.T) {
	a := NewArchiver()

	data := bytes.Repeat([]byte("abcdefgh"), 128*1024)
	res, err := a.Compress(data, "big.bin")
	require.NoError(t, err)

	_, content := readSingleEntry(t, res)
	require.Equal(t, data, content)

	// Repetitive input must actually shrink.
	require.Less(t, len(res.Data), len(data))
}

func TestCompress_SuggestedFilename(t *testing.T) {
	a := NewArchiver()

	tests := []struct {
		entryName string
		want      string
	}{
		{"a.txt", "a.txt.zip"},
		{"photo.jpg", "photo.jpg.zip"},
		{"noext", "noext.zip"},
		{"spaces and (chars).md", "spaces and (chars).md.zip"},
	}

	for _, tc := range tests {
		res, err := a.Compress([]byte("x"), tc.entryName)
		require.NoError(t, err)
		require.Equal(t, tc.want, res.Filename)
	}
}

func TestCompress_UsesDeflate(t *testing.T) {
	a := NewArchiver()

	res, err := a.Compress([]byte("hello world"), "report.txt")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(res.Data), int64(len(res.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	require.Equal(t, zip.Deflate, zr.File[0].Method)
}

package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/doppel/internal/types"
)

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func TestSumSHA256(t *testing.T) {
	fs := memFS(t, map[string]string{"/x.txt": "hello world"})

	got, err := New(fs, SHA256, 4096).Sum("/x.txt")
	require.NoError(t, err)

	want := sha256.Sum256([]byte("hello world"))
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestSumMD5(t *testing.T) {
	fs := memFS(t, map[string]string{"/x.txt": "hello world"})

	got, err := New(fs, MD5, 4096).Sum("/x.txt")
	require.NoError(t, err)

	want := md5.Sum([]byte("hello world"))
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestSumXXH64(t *testing.T) {
	fs := memFS(t, map[string]string{"/a": "same", "/b": "same", "/c": "other"})
	d := New(fs, XXH64, 4096)

	a, err := d.Sum("/a")
	require.NoError(t, err)
	b, err := d.Sum("/b")
	require.NoError(t, err)
	c, err := d.Sum("/c")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16) // 64-bit hex
}

func TestSumEmptyFile(t *testing.T) {
	fs := memFS(t, map[string]string{"/empty1": "", "/empty2": ""})
	d := New(fs, SHA256, 4096)

	a, err := d.Sum("/empty1")
	require.NoError(t, err)
	b, err := d.Sum("/empty2")
	require.NoError(t, err)

	want := sha256.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(want[:]), a)
	assert.Equal(t, a, b)
}

func TestSumChunkSmallerThanFile(t *testing.T) {
	content := strings.Repeat("abc123", 1000)
	fs := memFS(t, map[string]string{"/big": content})

	small, err := New(fs, SHA256, 7).Sum("/big")
	require.NoError(t, err)
	large, err := New(fs, SHA256, 1<<20).Sum("/big")
	require.NoError(t, err)

	assert.Equal(t, large, small)
}

func TestSumMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := New(fs, SHA256, 4096).Sum("/gone")
	require.Error(t, err)

	var readErr *types.ReadError
	assert.True(t, errors.As(err, &readErr))
	assert.Equal(t, "/gone", readErr.Path)
}

// failReadFile returns an error partway through a read, as if the file
// vanished mid-hash.
type failReadFile struct {
	afero.File
}

func (f *failReadFile) Read([]byte) (int, error) {
	return 0, errors.New("device error")
}

type failReadFs struct {
	afero.Fs
	failPath string
}

func (f *failReadFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	if name == f.failPath {
		return &failReadFile{File: file}, nil
	}
	return file, nil
}

func TestSumReadFailureMidStream(t *testing.T) {
	mem := memFS(t, map[string]string{"/flaky": "content"})
	fs := &failReadFs{Fs: mem, failPath: "/flaky"}

	_, err := New(fs, SHA256, 4096).Sum("/flaky")

	var readErr *types.ReadError
	require.True(t, errors.As(err, &readErr))
}

func TestUnknownAlgorithm(t *testing.T) {
	fs := memFS(t, map[string]string{"/x": "x"})

	_, err := New(fs, "crc32", 4096).Sum("/x")
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	d := New(afero.NewMemMapFs(), "", 0)
	assert.Equal(t, SHA256, d.Algorithm())
	assert.Equal(t, 4096, d.chunkSize)
}

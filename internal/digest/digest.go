// Package digest computes streamed content digests used as duplicate
// signals. Digest equality means "same content"; nothing here is used
// for security.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/dbsmedya/doppel/internal/types"
)

// Supported algorithm names.
const (
	SHA256 = "sha256"
	MD5    = "md5"
	XXH64  = "xxh64"
)

// Digester hashes file content in fixed-size chunks, so memory use is
// bounded by the chunk size regardless of file size.
type Digester struct {
	fs        afero.Fs
	algorithm string
	chunkSize int
}

// New creates a Digester. An unknown algorithm is reported on first use
// rather than here; config validation normally rejects it earlier.
func New(fs afero.Fs, algorithm string, chunkSize int) *Digester {
	if algorithm == "" {
		algorithm = SHA256
	}
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return &Digester{fs: fs, algorithm: algorithm, chunkSize: chunkSize}
}

// Algorithm returns the configured algorithm name.
func (d *Digester) Algorithm() string { return d.algorithm }

// Sum returns the hex digest of the file's content. A zero-byte file
// yields the digest of the empty byte sequence, a valid equality signal
// shared by all empty files. Failures surface as *types.ReadError so the
// caller can exclude the file without aborting the run.
func (d *Digester) Sum(path string) (string, error) {
	h, err := d.newHash()
	if err != nil {
		return "", err
	}

	f, err := d.fs.Open(path)
	if err != nil {
		return "", &types.ReadError{Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, d.chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", &types.ReadError{Path: path, Err: err}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (d *Digester) newHash() (hash.Hash, error) {
	switch d.algorithm {
	case SHA256:
		return sha256.New(), nil
	case MD5:
		return md5.New(), nil
	case XXH64:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", d.algorithm)
	}
}

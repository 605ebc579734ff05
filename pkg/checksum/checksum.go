// Package checksum verifies downloaded content against SHA-256 digests.
package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

var (
	// ErrDecode is returned when an expected digest is not valid hex.
	ErrDecode = errors.New("invalid hex digest")
	// ErrIO is returned when the file cannot be opened or mapped.
	ErrIO = errors.New("checksum i/o error")
)

// File reports whether the SHA-256 of the file at path equals expectedHex.
// The file is memory-mapped and hashed over its full length.
func File(path, expectedHex string) (bool, error) {
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrDecode, expectedHex, err)
	}

	actual, err := Sum(path)
	if err != nil {
		return false, err
	}

	return bytes.Equal(actual, expected), nil
}

// Sum returns the raw SHA-256 of the file at path.
func Sum(path string) ([]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer r.Close()

	h := sha256.New()
	if _, err := io.Copy(h, io.NewSectionReader(r, 0, int64(r.Len()))); err != nil {
		return nil, fmt.Errorf("%w: hash %s: %w", ErrIO, path, err)
	}
	return h.Sum(nil), nil
}

// Digest returns the standard base64 encoding of the SHA-256 of data.
// It is used to detect changes in scraped content, not for integrity.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Hex returns the lowercase hex SHA-256 of data.
func Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

//go:build !blake3

package lemerk

import (
	"crypto/sha256"
	"hash"
)

// NewHasher returns the default tree hasher.
func NewHasher() hash.Hash {
	return sha256.New()
}

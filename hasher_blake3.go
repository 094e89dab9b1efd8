//go:build blake3

package lemerk

import (
	"hash"

	"github.com/zeebo/blake3"
)

// NewHasher returns the default tree hasher.
func NewHasher() hash.Hash {
	return blake3.New()
}

package lemerk

import "hash"

// Domain separated hashing, so a leaf payload can never be confused
// with an encoded pair of child hashes:
//
//	leaf  = H( 0x00 || data )
//	inner = H( 0x01 || left || right )

// HashLeaf computes the leaf hash for a raw data block.
func HashLeaf(hasher hash.Hash, data []byte) []byte {
	hasher.Reset()
	_, _ = hasher.Write([]byte{0x00})
	_, _ = hasher.Write(data)
	return hasher.Sum(nil)
}

// HashNodes computes the interior hash over two child hashes.
func HashNodes(hasher hash.Hash, left, right []byte) []byte {
	hasher.Reset()
	_, _ = hasher.Write([]byte{0x01})
	_, _ = hasher.Write(left)
	_, _ = hasher.Write(right)
	return hasher.Sum(nil)
}

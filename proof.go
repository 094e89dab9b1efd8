package lemerk

import (
	"bytes"
	"fmt"
	"hash"
)

// InclusionProof collects the sibling hashes needed to recompute the
// root from the hash stored at i. The path runs from i up to index 1;
// slot 0 mirrors index 1 so its proof is empty. Interior indices are
// accepted as well as leaves.
func InclusionProof(t *Tree, i Index) ([][]byte, error) {
	if i > t.MaxIndex() {
		return nil, fmt.Errorf("%w: index %d exceeds max index %d", ErrIndexOverflow, i, t.MaxIndex())
	}
	var proof [][]byte
	for i > 1 {
		sibling, ok, err := SiblingIndex(i, t.maxIndex)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Every slot below index 1 has a sibling in a full tree.
			return nil, fmt.Errorf("%w: index %d", ErrNoSibling, i)
		}
		value, err := t.flat.CipherBlock(sibling)
		if err != nil {
			return nil, err
		}
		proof = append(proof, value)
		i /= 2
	}
	return proof, nil
}

// VerifyInclusion recomputes the path committed by proof and reports
// whether it lands on root. nodeHash is the value claimed for index i;
// odd indices hash as right children and even indices as left ones.
func VerifyInclusion(hasher hash.Hash, root, nodeHash []byte, i Index, proof [][]byte) (bool, error) {
	if hasher == nil {
		return false, ErrNoHasher
	}
	current := append([]byte(nil), nodeHash...)
	for _, sibling := range proof {
		if i <= 1 {
			return false, fmt.Errorf("%w: %d siblings left over at the top", ErrBadProofLength, len(proof))
		}
		if i%2 == 1 {
			current = HashNodes(hasher, sibling, current)
		} else {
			current = HashNodes(hasher, current, sibling)
		}
		i /= 2
	}
	if i > 1 {
		return false, fmt.Errorf("%w: path stops at index %d", ErrBadProofLength, i)
	}
	return bytes.Equal(current, root), nil
}

package lemerk

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

const snapshotVersion = 1

// snapshotV1 is the portable form of a tree: identity, shape and the
// raw slab. The version field gates decoding so a future layout change
// cannot be misread as truncated data.
type snapshotV1 struct {
	Version     uint32 `cbor:"version"`
	TreeID      []byte `cbor:"treeId"`
	DepthLength uint64 `cbor:"depthLength"`
	BlockSize   uint32 `cbor:"blockSize"`
	Flat        []byte `cbor:"flat"`
}

// Snapshot encodes the tree as a versioned CBOR record.
func Snapshot(t *Tree) ([]byte, error) {
	return cbor.Marshal(snapshotV1{
		Version:     snapshotVersion,
		TreeID:      t.id[:],
		DepthLength: t.depthLength,
		BlockSize:   uint32(t.BlockSize()),
		Flat:        append([]byte(nil), t.flat.data...),
	})
}

// OpenSnapshot decodes a record produced by Snapshot and reconstructs
// the tree. Shape mismatches between the declared dimensions and the
// slab payload are rejected rather than truncated or padded.
func OpenSnapshot(data []byte) (*Tree, error) {
	var s snapshotV1
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	id, err := uuid.FromBytes(s.TreeID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad tree id: %v", ErrSnapshotSize, err)
	}
	t, err := NewTree(id, s.DepthLength, int(s.BlockSize))
	if err != nil {
		return nil, err
	}
	if len(s.Flat) != len(t.flat.data) {
		return nil, fmt.Errorf("%w: want %d slab bytes, got %d",
			ErrSnapshotSize, len(t.flat.data), len(s.Flat))
	}
	copy(t.flat.data, s.Flat)
	return t, nil
}

package lemerk

import (
	"fmt"

	"github.com/google/uuid"
)

// Tree owns the flattened slab holding every node of every depth. Its
// shape is fixed at construction: depthLength levels, maxIndex the last
// valid flat position, and exactly maxIndex+1 blocks in the slab.
//
// A Tree is not safe for concurrent use. The Ref lookups hand out
// slices aliasing the slab; at most one should be live at a time and no
// read of the same slot should overlap it.
type Tree struct {
	id          uuid.UUID
	depthLength uint64
	maxIndex    Index
	flat        *Level
}

// NewTree allocates a zero-filled tree of the given shape. A tree with
// depthLength L spans indices [0, 2^L - 1].
func NewTree(id uuid.UUID, depthLength uint64, blockSize int) (*Tree, error) {
	if depthLength == 0 || depthLength > 63 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepthLength, depthLength)
	}
	blocks := uint64(1) << depthLength
	flat, err := NewLevel(blockSize, blocks)
	if err != nil {
		return nil, err
	}
	return &Tree{
		id:          id,
		depthLength: depthLength,
		maxIndex:    Index(blocks - 1),
		flat:        flat,
	}, nil
}

func (t *Tree) ID() uuid.UUID       { return t.id }
func (t *Tree) DepthLength() uint64 { return t.depthLength }
func (t *Tree) MaxIndex() Index     { return t.maxIndex }
func (t *Tree) BlockSize() int      { return t.flat.BlockSize() }

// LeafCount returns the number of slots on the deepest level.
func (t *Tree) LeafCount() uint64 {
	return uint64(1) << (t.depthLength - 1)
}

// FirstLeaf returns the index of the left most slot on the deepest level.
func (t *Tree) FirstLeaf() Index {
	return Index(t.LeafCount())
}

// Root copies out the root hash.
func (t *Tree) Root() []byte {
	root, err := t.flat.CipherBlock(0)
	if err != nil {
		// The root slot exists in every constructible shape.
		panic(fmt.Sprintf("lemerk: root slot unreadable: %v", err))
	}
	return root
}

// NodeByIndex looks up the slot at i and returns a read-only
// VirtualNode whose hash is copied out of the slab.
func (t *Tree) NodeByIndex(i Index) (*VirtualNode, error) {
	return t.node(i, false)
}

// NodeRefByIndex is the mutating variant of NodeByIndex: the returned
// node's hash aliases the slab and SetHash overwrites it in place.
func (t *Tree) NodeRefByIndex(i Index) (*VirtualNode, error) {
	return t.node(i, true)
}

// NodeByDepthOffset converts the coordinate and falls through to
// NodeByIndex.
func (t *Tree) NodeByDepthOffset(do DepthOffset) (*VirtualNode, error) {
	i, err := IndexFromDepthOffset(do)
	if err != nil {
		return nil, err
	}
	return t.node(i, false)
}

// NodeRefByDepthOffset is the mutating variant of NodeByDepthOffset.
func (t *Tree) NodeRefByDepthOffset(do DepthOffset) (*VirtualNode, error) {
	i, err := IndexFromDepthOffset(do)
	if err != nil {
		return nil, err
	}
	return t.node(i, true)
}

func (t *Tree) node(i Index, mutable bool) (*VirtualNode, error) {
	if i > t.maxIndex {
		return nil, fmt.Errorf("%w: index %d exceeds max index %d", ErrIndexOverflow, i, t.maxIndex)
	}
	ancestor, hasAncestor, err := AncestorIndex(i)
	if err != nil {
		return nil, err
	}
	right, hasRight, err := RightChildIndex(i, t.maxIndex)
	if err != nil {
		return nil, err
	}
	left, hasLeft, err := LeftChildIndex(i, t.maxIndex)
	if err != nil {
		return nil, err
	}

	var hash []byte
	if mutable {
		hash, err = t.flat.CipherBlockRef(i)
	} else {
		hash, err = t.flat.CipherBlock(i)
	}
	if err != nil {
		return nil, err
	}

	return &VirtualNode{
		hash:        hash,
		mutable:     mutable,
		index:       i,
		maxIndex:    t.maxIndex,
		ancestor:    ancestor,
		hasAncestor: hasAncestor,
		left:        left,
		hasLeft:     hasLeft,
		right:       right,
		hasRight:    hasRight,
	}, nil
}

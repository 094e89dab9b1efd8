package lemerk

import "fmt"

// VirtualNode is a transient projection of one tree slot: the stored
// hash plus the coordinates of the slot's ancestor and children,
// derived at lookup time. It is a view, not an entity - recompute it
// after any mutation of the tree rather than caching it across calls.
type VirtualNode struct {
	hash    []byte
	mutable bool

	index    Index
	maxIndex Index

	ancestor    Index
	hasAncestor bool
	left        Index
	hasLeft     bool
	right       Index
	hasRight    bool
}

// Index returns the node's own flat position.
func (v *VirtualNode) Index() Index {
	return v.index
}

// Hash copies out the node's stored hash.
func (v *VirtualNode) Hash() []byte {
	return append([]byte(nil), v.hash...)
}

// SetHash overwrites the stored hash in place. It fails on a node
// obtained from a read-only lookup, and on a value whose length is not
// the tree's cipher block size.
func (v *VirtualNode) SetHash(hash []byte) error {
	if !v.mutable {
		return ErrReadOnlyNode
	}
	if len(hash) != len(v.hash) {
		return fmt.Errorf("%w: got %d bytes, block size is %d", ErrBadBlockSize, len(hash), len(v.hash))
	}
	copy(v.hash, hash)
	return nil
}

// Ancestor returns the coordinate cached at lookup time.
func (v *VirtualNode) Ancestor() (Index, bool) {
	return v.ancestor, v.hasAncestor
}

func (v *VirtualNode) Left() (Index, bool) {
	return v.left, v.hasLeft
}

func (v *VirtualNode) Right() (Index, bool) {
	return v.right, v.hasRight
}

// RecomputeAncestor rederives the ancestor from the node's own index
// instead of trusting the value cached at lookup time.
func (v *VirtualNode) RecomputeAncestor() (Index, bool, error) {
	return AncestorIndex(v.index)
}

// PairToAncestor returns the sibling slot hashed together with this
// node to produce their shared ancestor, per SiblingIndex.
func (v *VirtualNode) PairToAncestor() (Index, bool, error) {
	return SiblingIndex(v.index, v.maxIndex)
}

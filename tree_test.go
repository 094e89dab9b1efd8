package lemerk

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newCanonicalTree hand-populates a depthLength 3 tree where the block
// at every slot starts with the slot number. Tests that exercise
// addressing rather than hashing use it so a misdirected lookup is
// immediately visible in the payload.
//
//	depth 0         0
//	                |
//	depth 1         1
//	              /   \
//	depth 2     2       3
//	           / \     / \
//	depth 3   4   5   6   7
func newCanonicalTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(uuid.New(), 3, 32)
	require.NoError(t, err)
	for i := Index(0); i <= tree.MaxIndex(); i++ {
		block := make([]byte, 32)
		block[0] = byte(i)
		node, err := tree.NodeRefByIndex(i)
		require.NoError(t, err)
		require.NoError(t, node.SetHash(block))
	}
	return tree
}

func TestNewTreeValidation(t *testing.T) {
	_, err := NewTree(uuid.New(), 0, 32)
	require.ErrorIs(t, err, ErrBadDepthLength)

	_, err = NewTree(uuid.New(), 64, 32)
	require.ErrorIs(t, err, ErrBadDepthLength)

	_, err = NewTree(uuid.New(), 3, 0)
	require.ErrorIs(t, err, ErrBadBlockSize)

	tree, err := NewTree(uuid.New(), 3, 32)
	require.NoError(t, err)
	require.Equal(t, Index(7), tree.MaxIndex())
	require.Equal(t, uint64(3), tree.DepthLength())
	require.Equal(t, uint64(4), tree.LeafCount())
	require.Equal(t, Index(4), tree.FirstLeaf())
	require.Equal(t, 32, tree.BlockSize())
}

func TestNodeByIndexCoordinates(t *testing.T) {
	tree := newCanonicalTree(t)

	type maybe struct {
		i  Index
		ok bool
	}
	tests := []struct {
		i        Index
		ancestor maybe
		left     maybe
		right    maybe
	}{
		{0, maybe{0, false}, maybe{0, true}, maybe{1, true}},
		{1, maybe{0, true}, maybe{2, true}, maybe{3, true}},
		{2, maybe{1, true}, maybe{4, true}, maybe{5, true}},
		{3, maybe{1, true}, maybe{6, true}, maybe{7, true}},
		{4, maybe{2, true}, maybe{0, false}, maybe{0, false}},
		{5, maybe{2, true}, maybe{0, false}, maybe{0, false}},
		{6, maybe{3, true}, maybe{0, false}, maybe{0, false}},
		{7, maybe{3, true}, maybe{0, false}, maybe{0, false}},
	}
	for _, tt := range tests {
		node, err := tree.NodeByIndex(tt.i)
		require.NoError(t, err)
		require.Equal(t, tt.i, node.Index())
		require.Equal(t, byte(tt.i), node.Hash()[0])

		got, ok := node.Ancestor()
		require.Equal(t, tt.ancestor, maybe{got, ok}, "ancestor of %d", tt.i)
		got, ok = node.Left()
		require.Equal(t, tt.left, maybe{got, ok}, "left of %d", tt.i)
		got, ok = node.Right()
		require.Equal(t, tt.right, maybe{got, ok}, "right of %d", tt.i)

		got, ok, err = node.RecomputeAncestor()
		require.NoError(t, err)
		require.Equal(t, tt.ancestor, maybe{got, ok}, "recomputed ancestor of %d", tt.i)
	}
}

func TestNodePairToAncestor(t *testing.T) {
	tree := newCanonicalTree(t)

	for _, tt := range []struct {
		i       Index
		sibling Index
		ok      bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 3, true},
		{5, 4, true},
		{6, 7, true},
	} {
		node, err := tree.NodeByIndex(tt.i)
		require.NoError(t, err)
		got, ok, err := node.PairToAncestor()
		require.NoError(t, err)
		require.Equal(t, tt.ok, ok, "sibling presence for %d", tt.i)
		if ok {
			require.Equal(t, tt.sibling, got, "sibling of %d", tt.i)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	tree := newCanonicalTree(t)

	_, err := tree.NodeByIndex(8)
	require.ErrorIs(t, err, ErrIndexOverflow)

	_, err = tree.NodeByIndex(1 << 40)
	require.ErrorIs(t, err, ErrIndexOverflow)

	_, err = tree.NodeRefByIndex(8)
	require.ErrorIs(t, err, ErrIndexOverflow)

	// Depth 4 converts cleanly but lands past maxIndex for this shape.
	_, err = tree.NodeByDepthOffset(DepthOffset{Depth: 4, Offset: 0})
	require.ErrorIs(t, err, ErrIndexOverflow)

	_, err = tree.NodeByDepthOffset(DepthOffset{Depth: 2, Offset: 2})
	require.ErrorIs(t, err, ErrBadOffset)
}

func TestNodeByDepthOffset(t *testing.T) {
	tree := newCanonicalTree(t)

	for i := Index(0); i <= tree.MaxIndex(); i++ {
		byIndex, err := tree.NodeByIndex(i)
		require.NoError(t, err)
		byCoord, err := tree.NodeByDepthOffset(DepthOffsetFromIndex(i))
		require.NoError(t, err)
		require.Equal(t, byIndex.Index(), byCoord.Index())
		require.Equal(t, byIndex.Hash(), byCoord.Hash())
	}
}

func TestReadAfterWrite(t *testing.T) {
	tree := newCanonicalTree(t)

	next := make([]byte, 32)
	next[0] = 0xEE

	node, err := tree.NodeRefByIndex(5)
	require.NoError(t, err)
	require.NoError(t, node.SetHash(next))

	got, err := tree.NodeByIndex(5)
	require.NoError(t, err)
	require.Equal(t, next, got.Hash())

	// The neighbouring slots keep their original payloads.
	for _, i := range []Index{4, 6, 2} {
		n, err := tree.NodeByIndex(i)
		require.NoError(t, err)
		require.Equal(t, byte(i), n.Hash()[0])
	}
}

func TestReadOnlyNodeRejectsWrites(t *testing.T) {
	tree := newCanonicalTree(t)

	node, err := tree.NodeByIndex(3)
	require.NoError(t, err)
	err = node.SetHash(make([]byte, 32))
	require.ErrorIs(t, err, ErrReadOnlyNode)

	// A read-only hash is a copy; scribbling on it must not reach the tree.
	h := node.Hash()
	h[0] = 0x99
	again, err := tree.NodeByIndex(3)
	require.NoError(t, err)
	require.Equal(t, byte(3), again.Hash()[0])
}

func TestSetHashLengthChecked(t *testing.T) {
	tree := newCanonicalTree(t)

	node, err := tree.NodeRefByIndex(2)
	require.NoError(t, err)
	err = node.SetHash(make([]byte, 31))
	require.ErrorIs(t, err, ErrBadBlockSize)
}

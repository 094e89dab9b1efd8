package lemerk

/*

# LeMerk flat-array Merkle trees

This package stores a fixed-shape binary hash tree as one contiguous slab
of fixed-size cipher blocks and navigates it with index arithmetic alone.
No node objects, no pointers: a position *is* its address, and the
parent/child/sibling relations are recovered by halving and doubling.

## Addressing algebra

For a flat position i (zero based):

	ancestor = i / 2      present when i / 2 < i (so the root slot 0 has none)
	right    = 2*i + 1    present when 2*i + 1 <= maxIndex
	left     = 2*i        present exactly when the right child is

All derivations use checked arithmetic. Near the top of the uint64 range
a doubled index cannot be represented, and those cases surface as
ErrBadMultiplication or ErrBadAddition rather than wrapping.

Note the asymmetry in the child rule: a node with no right child reports
no left child either. Trees produced by the Builder always have full
levels, so a single-child interior node cannot occur in practice; the
rule is preserved as stated rather than repaired.

## Depth/offset coordinates

The layout consistent with the ancestor relation places the root at slot
0, index 1 directly beneath it, and level d >= 1 on the index range
[2^(d-1), 2^d - 1]. A DepthOffset names a slot as (level, position
within level); conversion to a flat Index and back round-trips exactly,
the inverse being repeated halving while counting depth.

A tree with depthLength L therefore spans indices [0, 2^L - 1] and holds
2^(L-1) leaves on its deepest level.

## Reading and writing

Lookup by Index or DepthOffset yields a VirtualNode: an ephemeral
projection bundling the slot's hash with the derived coordinates of its
ancestor and children. The read-only lookups copy the hash out; the Ref
variants alias the tree's slab so the caller can overwrite a slot in
place. A VirtualNode is a view, not an entity - it must not be retained
across mutations of the tree it was derived from, and the tree is not
safe for concurrent use.

*/

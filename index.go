package lemerk

import (
	"fmt"
	"math"
	"math/bits"
)

// Index identifies one slot in the flattened tree slab.
type Index uint64

// DepthOffset names a slot by tree level and position within that level.
// Depth 0 is the root slot; level d >= 1 holds 2^(d-1) slots.
type DepthOffset struct {
	Depth  uint64
	Offset uint64
}

// The neighbour derivations below are the basis of the whole package.
// Factors and divisors are small constants at every call site but the
// index itself can sit anywhere in the uint64 range, so multiply and
// add are guarded rather than trusted.

func checkedDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrBadDivision
	}
	return a / b, nil
}

func checkedMul(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, fmt.Errorf("%w: %d * %d", ErrBadMultiplication, a, b)
	}
	return a * b, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	if b > math.MaxUint64-a {
		return 0, fmt.Errorf("%w: %d + %d", ErrBadAddition, a, b)
	}
	return a + b, nil
}

// AncestorIndex returns the ancestor of i. Only the root slot 0 has
// none, reported by the second return being false.
func AncestorIndex(i Index) (Index, bool, error) {
	half, err := checkedDiv(uint64(i), 2)
	if err != nil {
		return 0, false, err
	}
	if Index(half) >= i {
		return 0, false, nil
	}
	return Index(half), true, nil
}

// RightChildIndex returns 2i+1 when that position exists in a tree
// bounded by maxIndex.
func RightChildIndex(i Index, maxIndex Index) (Index, bool, error) {
	doubled, err := checkedMul(uint64(i), 2)
	if err != nil {
		return 0, false, err
	}
	right, err := checkedAdd(doubled, 1)
	if err != nil {
		return 0, false, err
	}
	if Index(right) > maxIndex {
		return 0, false, nil
	}
	return Index(right), true, nil
}

// LeftChildIndex returns 2i. A left child is reported present exactly
// when the right child is; see the package doc for the asymmetry.
func LeftChildIndex(i Index, maxIndex Index) (Index, bool, error) {
	_, ok, err := RightChildIndex(i, maxIndex)
	if err != nil || !ok {
		return 0, false, err
	}
	doubled, err := checkedMul(uint64(i), 2)
	if err != nil {
		return 0, false, err
	}
	return Index(doubled), true, nil
}

// SiblingIndex returns the pair-to-ancestor slot for i: the node hashed
// together with i to produce their shared ancestor. Left children sit
// on even indices and right children on odd ones, so the sibling of an
// odd i is i-1 and the sibling of an even i is i+1. Slots 0 and 1 have
// no sibling.
func SiblingIndex(i Index, maxIndex Index) (Index, bool, error) {
	if i < 2 {
		return 0, false, nil
	}
	if i%2 == 1 {
		return i - 1, true, nil
	}
	next, err := checkedAdd(uint64(i), 1)
	if err != nil {
		return 0, false, err
	}
	if Index(next) > maxIndex {
		return 0, false, nil
	}
	return Index(next), true, nil
}

// IndexFromDepthOffset maps a depth/offset pair to its unique flat
// position. Level d >= 1 starts at 2^(d-1) and is 2^(d-1) wide, which
// is the only layout consistent with the halving ancestor relation.
func IndexFromDepthOffset(do DepthOffset) (Index, error) {
	if do.Depth == 0 {
		if do.Offset != 0 {
			return 0, fmt.Errorf("%w: offset %d at the root level", ErrBadOffset, do.Offset)
		}
		return 0, nil
	}
	if do.Depth > 64 {
		return 0, fmt.Errorf("%w: depth %d does not fit a 64 bit index", ErrBadDepth, do.Depth)
	}
	width := uint64(1) << (do.Depth - 1)
	if do.Offset >= width {
		return 0, fmt.Errorf("%w: offset %d at depth %d", ErrBadOffset, do.Offset, do.Depth)
	}
	// width + offset < 2^depth <= 2^64, so this cannot overflow.
	return Index(width + do.Offset), nil
}

// DepthOffsetFromIndex is the inverse of IndexFromDepthOffset: the
// depth is the number of halvings needed to reach slot 0, which is the
// bit length of i.
func DepthOffsetFromIndex(i Index) DepthOffset {
	if i == 0 {
		return DepthOffset{}
	}
	depth := uint64(bits.Len64(uint64(i)))
	base := uint64(1) << (depth - 1)
	return DepthOffset{Depth: depth, Offset: uint64(i) - base}
}

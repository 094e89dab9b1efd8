package lemerk

import "errors"

var (
	ErrIndexOverflow     = errors.New("lemerk: index exceeds addressable range")
	ErrBadDivision       = errors.New("lemerk: checked division failed")
	ErrBadMultiplication = errors.New("lemerk: checked multiplication overflow")
	ErrBadAddition       = errors.New("lemerk: checked addition overflow")
	ErrBadOffset         = errors.New("lemerk: offset out of range for depth")
	ErrBadDepth          = errors.New("lemerk: depth out of range")
	ErrBadDepthLength    = errors.New("lemerk: depth length invalid")
	ErrBadBlockSize      = errors.New("lemerk: cipher block size invalid")
	ErrBadSlabSize       = errors.New("lemerk: level slab size invalid")
	ErrReadOnlyNode      = errors.New("lemerk: virtual node is read only")
	ErrNoHasher          = errors.New("lemerk: hasher must not be nil")
	ErrNoLeaves          = errors.New("lemerk: at least one leaf is required")
	ErrNoSibling         = errors.New("lemerk: node has no sibling")
	ErrBadProofLength    = errors.New("lemerk: proof length does not match node depth")
	ErrSnapshotVersion   = errors.New("lemerk: unsupported snapshot version")
	ErrSnapshotSize      = errors.New("lemerk: snapshot payload size invalid")
)

package lemerk

import (
	"fmt"
	"math"
)

// Level is one contiguous slab of fixed-size cipher blocks. The builder
// stages per-depth levels in one and the finished tree keeps every
// depth flattened into a single Level, addressed by Index.
type Level struct {
	blockSize int
	data      []byte
}

// NewLevel allocates a zero-filled level of the given block count.
func NewLevel(blockSize int, blocks uint64) (*Level, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBlockSize, blockSize)
	}
	if blocks > uint64(math.MaxInt)/uint64(blockSize) {
		return nil, fmt.Errorf("%w: %d blocks of %d bytes", ErrBadSlabSize, blocks, blockSize)
	}
	return &Level{blockSize: blockSize, data: make([]byte, blocks*uint64(blockSize))}, nil
}

// LevelFromSlab wraps an existing slab without copying it. The slab
// length must be a whole number of blocks.
func LevelFromSlab(blockSize int, slab []byte) (*Level, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBlockSize, blockSize)
	}
	if len(slab)%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d byte blocks",
			ErrBadSlabSize, len(slab), blockSize)
	}
	return &Level{blockSize: blockSize, data: slab}, nil
}

// Blocks returns the number of cipher blocks in the level.
func (l *Level) Blocks() uint64 {
	return uint64(len(l.data) / l.blockSize)
}

// BlockSize returns the cipher block size in bytes.
func (l *Level) BlockSize() int {
	return l.blockSize
}

// CipherBlock copies out the block at i.
func (l *Level) CipherBlock(i Index) ([]byte, error) {
	ref, err := l.CipherBlockRef(i)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), ref...), nil
}

// CipherBlockRef returns the block at i as a sub-slice aliasing the
// slab, allowing in-place mutation. Writes through the returned slice
// are visible to every subsequent read of the same index.
func (l *Level) CipherBlockRef(i Index) ([]byte, error) {
	if uint64(i) >= l.Blocks() {
		return nil, fmt.Errorf("%w: block %d of %d", ErrIndexOverflow, i, l.Blocks())
	}
	at := uint64(i) * uint64(l.blockSize)
	return l.data[at : at+uint64(l.blockSize)], nil
}

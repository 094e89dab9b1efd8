package lemerk

import (
	"hash"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger attaches a structured logger to the builder. The default
// is a nop logger.
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.log = log
	}
}

// WithTreeID fixes the identity of the built tree instead of minting a
// fresh one per build.
func WithTreeID(id uuid.UUID) BuilderOption {
	return func(b *Builder) {
		b.id = id
	}
}

// Builder turns an ordered list of leaf blocks into a fully populated
// Tree. The cipher block size of the tree is the hasher's output size.
type Builder struct {
	hasher hash.Hash
	log    *zap.Logger
	id     uuid.UUID
}

func NewBuilder(hasher hash.Hash, opts ...BuilderOption) (*Builder, error) {
	if hasher == nil {
		return nil, ErrNoHasher
	}
	b := &Builder{
		hasher: hasher,
		log:    zap.NewNop(),
		id:     uuid.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build hashes the leaves onto the deepest level and fills every
// interior slot bottom-up. The leaf count is padded to the next power
// of two by duplicating the last leaf, so levels are always full and
// single-child interior nodes never occur. The root slot 0 mirrors
// index 1, the top of the pairwise reduction.
func (b *Builder) Build(leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	padded := NextPow2(uint64(len(leaves)))
	depthLength := Log2(padded) + 1

	t, err := NewTree(b.id, depthLength, b.hasher.Size())
	if err != nil {
		return nil, err
	}

	// The deepest level occupies [padded, 2*padded - 1].
	for i := uint64(0); i < padded; i++ {
		data := leaves[len(leaves)-1]
		if i < uint64(len(leaves)) {
			data = leaves[i]
		}
		slot, err := t.flat.CipherBlockRef(Index(padded + i))
		if err != nil {
			return nil, err
		}
		copy(slot, HashLeaf(b.hasher, data))
	}

	// Interior slots, bottom-up: slot i commits to slots 2i and 2i+1.
	for i := padded - 1; i >= 1; i-- {
		left, err := t.flat.CipherBlockRef(Index(2 * i))
		if err != nil {
			return nil, err
		}
		right, err := t.flat.CipherBlockRef(Index(2*i + 1))
		if err != nil {
			return nil, err
		}
		slot, err := t.flat.CipherBlockRef(Index(i))
		if err != nil {
			return nil, err
		}
		copy(slot, HashNodes(b.hasher, left, right))
	}

	top, err := t.flat.CipherBlockRef(1)
	if err != nil {
		return nil, err
	}
	root, err := t.flat.CipherBlockRef(0)
	if err != nil {
		return nil, err
	}
	copy(root, top)

	b.log.Debug("lemerk tree built",
		zap.String("tree", t.id.String()),
		zap.Int("leaves", len(leaves)),
		zap.Uint64("padded", padded),
		zap.Uint64("depthLength", depthLength),
		zap.Uint64("maxIndex", uint64(t.maxIndex)),
	)
	return t, nil
}

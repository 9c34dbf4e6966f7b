package rawmem

import (
	"fmt"
	"unsafe"

	"github.com/veckit/veckit/internal/assert"
	"github.com/veckit/veckit/internal/checked"
)

// maxBlockBytes caps a single slab at 64 TiB. A request past it is almost
// certainly an arithmetic bug in the caller, and refusing it keeps the
// failure recoverable instead of aborting inside the runtime allocator.
const maxBlockBytes = 1 << 46

// Block owns storage for a fixed number of element slots. Every slot is
// logically uninitialized as far as the block is concerned; element lifetime
// is the owner's business. The zero value is the null block.
type Block[T any] struct {
	slots []T
}

// Alloc obtains storage for capacity slots. A zero capacity yields the null
// block and performs no allocation.
func Alloc[T any](capacity int) (Block[T], error) {
	if capacity < 0 {
		return Block[T]{}, fmt.Errorf("rawmem: capacity %d: %w", capacity, ErrCapacityNegative)
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	bytes, ok := checked.Mul(capacity, elemSize)
	if !ok {
		return Block[T]{}, fmt.Errorf("rawmem: %d slots of %d bytes: %w", capacity, elemSize, ErrSizeOverflow)
	}
	if bytes > maxBlockBytes {
		return Block[T]{}, fmt.Errorf("rawmem: %d bytes: %w", bytes, ErrBlockTooLarge)
	}
	return Block[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of slots the block holds.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// IsNull reports whether the block holds no storage.
func (b *Block[T]) IsNull() bool {
	return b.slots == nil
}

// Ptr returns the address of slot i. The slot may be uninitialized; i must
// be below Cap.
func (b *Block[T]) Ptr(i int) *T {
	assert.That(i >= 0 && i < len(b.slots), "rawmem: slot %d out of %d", i, len(b.slots))
	return &b.slots[i]
}

// Slots returns the slot range [i, j). Both bounds may equal Cap, so the
// one-past-end position is addressable for range-style traversal.
func (b *Block[T]) Slots(i, j int) []T {
	assert.That(0 <= i && i <= j && j <= len(b.slots), "rawmem: range [%d,%d) out of %d", i, j, len(b.slots))
	return b.slots[i:j]
}

// Swap exchanges storage with other in constant time. No slot is touched.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases the receiver's slab and adopts src's without allocating,
// leaving src null. Self-move is a no-op.
func (b *Block[T]) MoveFrom(src *Block[T]) {
	if b == src {
		return
	}
	b.slots = src.slots
	src.slots = nil
}

// Release returns the block's storage and leaves the block null. Callers
// must have destroyed every live element first; Release never runs element
// destructors. No-op on the null block.
func (b *Block[T]) Release() {
	b.slots = nil
}

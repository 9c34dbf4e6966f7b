// Package rawmem provides ownership of raw, element-typed storage blocks.
//
// # Overview
//
// A Block[T] owns a slab of slots for a fixed number of elements. The block
// manages memory only: it never constructs, copies, or destroys elements, and
// it considers every slot it hands out logically uninitialized. The layer
// above (see the vec package) is the sole authority on which slots hold live
// elements.
//
// # Block Lifecycle
//
//	blk, err := rawmem.Alloc[Record](64)
//	if err != nil {
//	    return err
//	}
//	// ... place elements into slots via Ptr/Slots ...
//	// destroy every live element, then:
//	blk.Release()
//
// Alloc(0) yields the null block, which holds no storage. Release is a no-op
// on the null block and is safe to call more than once.
//
// # Addressing
//
// Ptr(i) returns the address of slot i for i below Cap. Slots(i, j) returns
// the half-open slot range [i, j) with j up to and including Cap, so the
// one-past-end position is expressible for range-style traversal:
//
//	tail := blk.Slots(n, blk.Cap()) // the uninitialized suffix
//
// # Ownership
//
// A block exclusively owns its slab. Blocks are not copyable - duplicating
// raw storage without element semantics is meaningless - but they move:
// Swap exchanges two blocks in constant time, and MoveFrom adopts another
// block's slab without allocating, leaving the source null.
//
// # Failure and Contracts
//
// Alloc validates the request and reports allocation-class errors
// (ErrCapacityNegative, ErrSizeOverflow, ErrBlockTooLarge) instead of
// panicking. Out-of-range Ptr/Slots indices and releasing a block that still
// holds live elements are contract violations: they assert under the
// vecdebug build tag and are undefined otherwise.
//
// # Thread Safety
//
// Blocks are not thread-safe. They are designed for single-owner,
// single-threaded use; callers must serialize access externally.
package rawmem

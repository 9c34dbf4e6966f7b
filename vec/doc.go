// Package vec implements a generic dynamic array with explicit element
// lifetimes over raw storage.
//
// # Overview
//
// A Vector[T] owns a rawmem.Block and a live-element count. Slots move
// through exactly one cycle: uninitialized, then live, then back to
// uninitialized. The vector is the sole authority on slot liveness; the
// storage layer below never touches elements. Destroying a slot always
// resets it to the zero value, so vacated slots drop any references they
// held and genuinely return to the uninitialized state.
//
// # Element Capabilities
//
// A vector is bound to an Ops[T] capability set at construction. The zero
// Ops describes a trivial value type (int, small structs of values): copied
// by assignment, relocated by assignment, no destructor. Non-trivial types
// declare what they support - a fallible deep Copy, an ownership-transferring
// Move, a Destroy hook, a New default constructor - and the vector selects
// its algorithms from those capabilities. See Ops for the exact rules.
//
// # Growth and the Relocation Policy
//
// Appending past capacity doubles it (1, 2, 4, ...), so appends are
// amortized O(1). Growth relocates live elements into the new block:
//
//   - by Move when the type declares one - a Move cannot fail, so it cannot
//     leave the vector torn;
//   - by assignment for trivial types;
//   - by Copy, with full rollback, when the type declares Copy but no Move.
//     If a copy fails mid-relocation the new block is discarded and the
//     vector is byte-for-byte as it was.
//
// Every reallocating operation (Reserve, PushBack, EmplaceBack, Insert,
// Emplace, Clone, the reallocating path of CopyFrom) carries that strong
// guarantee: failure leaves the vector in its pre-call state.
//
// # Errors versus Contracts
//
// Two distinct signaling paths, never mixed. Recoverable failures -
// allocation refusals from rawmem, ErrOutOfRange from checked access, an
// element Copy or constructor failing - come back as errors. Contract
// violations - unchecked access past Len, insert or erase at an invalid
// position, Clone of a move-only type - are programmer errors: they assert
// under the vecdebug build tag and are undefined otherwise.
//
// # Traversal
//
// Elems returns the live range as a slice aliasing the vector's storage:
//
//	for i, e := range v.Elems() { ... }
//
// The slice stays valid until the next reallocation; Reserve, Resize, and
// the growing mutators invalidate it, as does Swap.
//
// # Thread Safety
//
// Vectors are not thread-safe. Single-owner, single-threaded use is assumed;
// callers must serialize concurrent access externally.
package vec

package vec

import (
	"fmt"

	"github.com/veckit/veckit/internal/assert"
	"github.com/veckit/veckit/internal/checked"
	"github.com/veckit/veckit/rawmem"
)

// Vector is a resizable array of T with explicit element lifetimes. Elements
// at indices [0, Len) are live; slots [Len, Cap) are uninitialized storage.
// Capacity never shrinks implicitly.
type Vector[T any] struct {
	ops  Ops[T]
	data rawmem.Block[T]
	size int
}

// New returns an empty vector for a trivial element type.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithOps returns an empty vector bound to the given capability set.
func NewWithOps[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewLen returns a vector of n default-constructed elements.
func NewLen[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Move move-constructs a vector from src: the new vector adopts src's
// storage and elements, and src is left empty. O(1), no element is touched.
func Move[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{ops: src.ops, size: src.size}
	dst.data.MoveFrom(&src.data)
	src.size = 0
	return dst
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the current storage holds.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns the element at index i. Unchecked: i must be below Len.
func (v *Vector[T]) Get(i int) T {
	assert.That(i >= 0 && i < v.size, "vec: index %d out of %d", i, v.size)
	return *v.data.Ptr(i)
}

// Ptr returns the address of the element at index i for in-place mutation.
// Unchecked: i must be below Len. The address is valid until the next
// reallocation.
func (v *Vector[T]) Ptr(i int) *T {
	assert.That(i >= 0 && i < v.size, "vec: index %d out of %d", i, v.size)
	return v.data.Ptr(i)
}

// At returns the address of the element at index i, or ErrOutOfRange when i
// is not below Len.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("vec: index %d, len %d: %w", i, v.size, ErrOutOfRange)
	}
	return v.data.Ptr(i), nil
}

// Elems returns the live element range [0, Len) as a slice aliasing the
// vector's storage. Writes through it are writes into the vector; it is
// invalidated by the next reallocation.
func (v *Vector[T]) Elems() []T {
	return v.data.Slots(0, v.size)
}

// Reserve guarantees capacity for at least n elements, relocating live
// elements into fresh storage when growth is needed. A no-op when n is at
// most Cap. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	fresh, err := rawmem.Alloc[T](n)
	if err != nil {
		return err
	}
	// gap == size: no slot is reserved for a new element.
	if err := v.relocateAround(&fresh, v.size); err != nil {
		fresh.Release()
		return err
	}
	v.data.Swap(&fresh)
	fresh.Release()
	return nil
}

// Resize grows the vector to n elements by default-constructing the new
// slots, or shrinks it by destroying the excluded ones. The size updates
// last in both directions.
func (v *Vector[T]) Resize(n int) error {
	assert.That(n >= 0, "vec: resize to %d", n)
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		grown := v.data.Slots(v.size, n)
		for i := range grown {
			grown[i] = v.ops.defaultNew()
		}
	} else {
		doomed := v.data.Slots(n, v.size)
		for i := range doomed {
			v.ops.destroySlot(&doomed[i])
		}
	}
	v.size = n
	return nil
}

// PushBack appends val, taking ownership of it. Amortized O(1). On the
// reallocating path a failure leaves the vector unchanged.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.emplaceAt(v.size, func() (T, error) { return val, nil })
	return err
}

// EmplaceBack constructs a new last element in place from ctor and returns
// its address. A constructor failure leaves the vector unchanged, even when
// growth was required.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return v.emplaceAt(v.size, ctor)
}

// Insert places val at index i, shifting the tail right. i may equal Len,
// which appends. Returns the element's final address.
func (v *Vector[T]) Insert(i int, val T) (*T, error) {
	return v.emplaceAt(i, func() (T, error) { return val, nil })
}

// Emplace constructs an element at index i from ctor. i may equal Len.
// Returns the element's final address.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	return v.emplaceAt(i, ctor)
}

// Erase removes the element at index i, shifting the tail left by one.
// Returns i, which now names the element that followed the erased one.
// The position is a contract: i must be below Len.
func (v *Vector[T]) Erase(i int) int {
	assert.That(i >= 0 && i < v.size, "vec: erase position %d out of %d", i, v.size)
	slots := v.data.Slots(0, v.size)
	v.ops.destroySlot(&slots[i])
	for j := i; j+1 < v.size; j++ {
		slots[j] = v.ops.moveValue(&slots[j+1])
	}
	v.size--
	return i
}

// PopBack destroys the last element. No-op when empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.ops.destroySlot(v.data.Ptr(v.size))
}

// Clear destroys all live elements and resets the size to zero. Capacity is
// unchanged.
func (v *Vector[T]) Clear() {
	live := v.data.Slots(0, v.size)
	for i := range live {
		v.ops.destroySlot(&live[i])
	}
	v.size = 0
}

// Release destroys all live elements and returns the storage. The vector is
// reusable afterwards, starting from zero capacity.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// Clone copy-constructs an independent vector holding equal elements, sized
// to Len. On failure nothing is leaked and the source is untouched. Clone of
// a move-only element type is a programmer error and panics.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.ops.copyable() {
		panic("vec: Clone of a move-only element type")
	}
	fresh, err := rawmem.Alloc[T](v.size)
	if err != nil {
		return nil, err
	}
	src := v.data.Slots(0, v.size)
	out := fresh.Slots(0, v.size)
	for i := range src {
		c, err := v.ops.copyValue(src[i])
		if err != nil {
			for j := 0; j < i; j++ {
				v.ops.destroySlot(&out[j])
			}
			fresh.Release()
			return nil, fmt.Errorf("vec: clone element %d: %w", i, err)
		}
		out[i] = c
	}
	dst := &Vector[T]{ops: v.ops, size: v.size}
	dst.data.MoveFrom(&fresh)
	return dst, nil
}

// CopyFrom copy-assigns src's elements into v. When src does not fit the
// current capacity a full temporary is built and swapped in, which keeps the
// strong guarantee and tolerates overlap. When it fits, the overlapping
// prefix is copy-assigned in place and the tail is either destroyed or
// copy-constructed; a failure on that path may leave a partially updated
// prefix (basic guarantee). Self-assignment is a no-op. Panics when the
// element type is move-only.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if !src.ops.copyable() {
		panic("vec: CopyFrom of a move-only element type")
	}
	if src.size > v.data.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	from := src.data.Slots(0, src.size)
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		c, err := src.ops.copyValue(from[i])
		if err != nil {
			return fmt.Errorf("vec: copy element %d: %w", i, err)
		}
		dst := v.data.Ptr(i)
		v.ops.destroySlot(dst)
		*dst = c
	}
	if src.size < v.size {
		doomed := v.data.Slots(src.size, v.size)
		for i := range doomed {
			v.ops.destroySlot(&doomed[i])
		}
	} else {
		grown := v.data.Slots(v.size, src.size)
		for i := range grown {
			c, err := src.ops.copyValue(from[v.size+i])
			if err != nil {
				for j := 0; j < i; j++ {
					src.ops.destroySlot(&grown[j])
				}
				return fmt.Errorf("vec: copy element %d: %w", v.size+i, err)
			}
			grown[i] = c
		}
	}
	v.size = src.size
	v.ops = src.ops
	return nil
}

// MoveFrom move-assigns src into v by swapping storage, size, and
// capabilities. src stays valid, holding v's previous contents. Self-move is
// a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Swap exchanges contents with other in constant time. No element is
// constructed or destroyed.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// grownCap returns the doubling-strategy capacity for one more element:
// 1 from empty, otherwise twice the current capacity.
func (v *Vector[T]) grownCap() (int, error) {
	cur := v.data.Cap()
	if cur == 0 {
		return 1, nil
	}
	n, ok := checked.Mul(cur, 2)
	if !ok {
		return 0, fmt.Errorf("vec: capacity %d cannot double: %w", cur, rawmem.ErrSizeOverflow)
	}
	return n, nil
}

// emplaceAt constructs an element at index i, 0 <= i <= size, growing and
// relocating around it when at capacity. Returns the element's final
// address. Any failure leaves the vector unchanged.
func (v *Vector[T]) emplaceAt(i int, ctor func() (T, error)) (*T, error) {
	assert.That(i >= 0 && i <= v.size, "vec: insert position %d out of %d", i, v.size)
	if v.size == v.data.Cap() {
		return v.emplaceRealloc(i, ctor)
	}
	if i == v.size {
		val, err := ctor()
		if err != nil {
			return nil, err
		}
		slot := v.data.Ptr(v.size)
		*slot = val
		v.size++
		return slot, nil
	}
	// Materialize first: the value may alias an element of the tail about to
	// be shifted over.
	tmp, err := ctor()
	if err != nil {
		return nil, err
	}
	slots := v.data.Slots(0, v.size+1)
	// Vacate slot i from the far end: the last element moves into the
	// one-past-end slot, then each predecessor into the slot just vacated.
	for j := v.size; j > i; j-- {
		slots[j] = v.ops.moveValue(&slots[j-1])
	}
	slots[i] = tmp
	v.size++
	return &slots[i], nil
}

// emplaceRealloc grows into a fresh block with the new element constructed
// directly at its target index before any relocation, so a constructor or
// relocation failure leaves the old storage completely untouched.
func (v *Vector[T]) emplaceRealloc(i int, ctor func() (T, error)) (*T, error) {
	newCap, err := v.grownCap()
	if err != nil {
		return nil, err
	}
	fresh, err := rawmem.Alloc[T](newCap)
	if err != nil {
		return nil, err
	}
	val, err := ctor()
	if err != nil {
		fresh.Release()
		return nil, err
	}
	*fresh.Ptr(i) = val
	if err := v.relocateAround(&fresh, i); err != nil {
		v.ops.destroySlot(fresh.Ptr(i))
		fresh.Release()
		return nil, err
	}
	v.data.Swap(&fresh)
	fresh.Release()
	v.size++
	return v.data.Ptr(i), nil
}

// relocateAround transfers the live elements into dst, leaving dst's slot
// gap untouched: src[0,gap) lands at dst[0,gap) and src[gap,size) at
// dst[gap+1,size+1). gap == size relocates everything index-for-index.
//
// Copy-relocated types roll back on failure, leaving the vector's own
// storage exactly as it was; move and trivial relocation cannot fail. On
// success the old slots are left uninitialized.
func (v *Vector[T]) relocateAround(dst *rawmem.Block[T], gap int) error {
	src := v.data.Slots(0, v.size)
	dstSlot := func(k int) *T {
		if k >= gap {
			k++
		}
		return dst.Ptr(k)
	}
	if v.ops.relocateByCopy() {
		for k := range src {
			c, err := v.ops.Copy(src[k])
			if err != nil {
				for j := 0; j < k; j++ {
					v.ops.destroySlot(dstSlot(j))
				}
				return fmt.Errorf("vec: relocate element %d: %w", k, err)
			}
			*dstSlot(k) = c
		}
		for k := range src {
			v.ops.destroySlot(&src[k])
		}
		return nil
	}
	for k := range src {
		*dstSlot(k) = v.ops.moveValue(&src[k])
	}
	return nil
}

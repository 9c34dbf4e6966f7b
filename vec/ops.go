package vec

// Ops declares the element capability set a Vector is bound to at
// construction. Every field is optional; the zero Ops describes a trivial
// value type.
//
// The combinations carry meaning:
//
//   - nothing set: trivial type. Copied and relocated by assignment, no
//     destructor.
//   - Copy without Move: the type's values must not be relocated by
//     assignment (self-referential structs, values registered by address
//     elsewhere). Relocation copies them and rolls back on failure.
//   - Move without Copy: a move-only resource type. Relocation moves;
//     Clone and CopyFrom panic.
//   - Copy and Move: relocation moves, Clone and CopyFrom copy.
//   - Destroy without Copy or Move: a resource type safe to relocate by
//     assignment but not copyable.
type Ops[T any] struct {
	// New produces a default-constructed element for Resize growth.
	// nil means the zero value. New must not fail; fallible construction
	// goes through EmplaceBack.
	New func() T

	// Copy produces an independent duplicate of an element. It may fail.
	Copy func(T) (T, error)

	// Move transfers an element out of src, returning the value and leaving
	// *src valid and empty. It cannot fail.
	Move func(src *T) T

	// Destroy releases an element's resources. The vector zeroes the slot
	// afterwards regardless. Destroy must tolerate moved-from values.
	Destroy func(*T)
}

// copyable reports whether elements can be duplicated: either an explicit
// Copy exists, or the type is trivial.
func (o *Ops[T]) copyable() bool {
	return o.Copy != nil || (o.Move == nil && o.Destroy == nil)
}

// relocateByCopy reports whether relocation must go through Copy. Types that
// declare Copy but no Move have opted out of assignment-based relocation.
func (o *Ops[T]) relocateByCopy() bool {
	return o.Copy != nil && o.Move == nil
}

func (o *Ops[T]) defaultNew() T {
	if o.New != nil {
		return o.New()
	}
	var zero T
	return zero
}

func (o *Ops[T]) copyValue(src T) (T, error) {
	if o.Copy != nil {
		return o.Copy(src)
	}
	return src, nil
}

// moveValue transfers the value out of src, returning the slot to the
// uninitialized state.
func (o *Ops[T]) moveValue(src *T) T {
	if o.Move != nil {
		v := o.Move(src)
		var zero T
		*src = zero
		return v
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// destroySlot releases the element at p and zeroes the slot so stale
// references do not pin memory.
func (o *Ops[T]) destroySlot(p *T) {
	if o.Destroy != nil {
		o.Destroy(p)
	}
	var zero T
	*p = zero
}

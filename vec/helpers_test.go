package vec

import "errors"

// errBoom is the failure injected by test element types.
var errBoom = errors.New("boom")

// tracked is a resource-style element whose lifecycle the tests audit.
type tracked struct {
	val  int
	live bool
}

// tracker counts lifecycle events across a test. created is bumped by the
// test whenever it hands a live value to the vector; the vector itself adds
// copies and subtracts destroys. lives() must equal the number of live
// elements the vector holds at any quiescent point.
type tracker struct {
	created  int
	attempts int // copy attempts, successful or not
	copies   int // successful copies only
	moves    int
	destroys int

	// failAt makes the Nth overall copy attempt fail (1-based). Zero disables.
	failAt int
}

func (tr *tracker) lives() int {
	return tr.created + tr.copies - tr.destroys
}

// make returns a live value and records its creation.
func (tr *tracker) make(val int) tracked {
	tr.created++
	return tracked{val: val, live: true}
}

func (tr *tracker) copyFn(src tracked) (tracked, error) {
	tr.attempts++
	if tr.failAt > 0 && tr.attempts >= tr.failAt {
		return tracked{}, errBoom
	}
	tr.copies++
	return tracked{val: src.val, live: true}, nil
}

func (tr *tracker) moveFn(src *tracked) tracked {
	tr.moves++
	v := *src
	src.live = false
	return v
}

func (tr *tracker) destroyFn(p *tracked) {
	if p.live {
		tr.destroys++
		p.live = false
	}
}

// copyOnlyOps declares a type that must be copy-relocated: Copy and Destroy,
// no Move.
func copyOnlyOps(tr *tracker) Ops[tracked] {
	return Ops[tracked]{Copy: tr.copyFn, Destroy: tr.destroyFn}
}

// moveOnlyOps declares a move-only resource type: Move and Destroy, no Copy.
func moveOnlyOps(tr *tracker) Ops[tracked] {
	return Ops[tracked]{Move: tr.moveFn, Destroy: tr.destroyFn}
}

// fullOps declares both Copy and Move; relocation should prefer Move.
func fullOps(tr *tracker) Ops[tracked] {
	return Ops[tracked]{Copy: tr.copyFn, Move: tr.moveFn, Destroy: tr.destroyFn}
}

// vals extracts the payloads of the live range.
func vals(v *Vector[tracked]) []int {
	out := make([]int, 0, v.Len())
	for i := range v.Elems() {
		out = append(out, v.Get(i).val)
	}
	return out
}

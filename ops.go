package splayrope

import "fmt"

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=s0,...,si-1 and R2=si,...,sn.
//
// The nodes of r are handed over to the results, leaving r void.
func Split[S any](r *Rope[S], i int) (*Rope[S], *Rope[S], error) {
	if r == nil {
		return nil, nil, ErrIllegalArguments
	}
	if i < 0 || i > r.Len() {
		return nil, nil, fmt.Errorf("%w: split at %d, length %d", ErrIndexOutOfBounds, i, r.Len())
	}
	store := r.own()
	left, right, err := store.split(r.root, i)
	if err != nil {
		return nil, nil, err
	}
	r.root = none
	return &Rope[S]{store: store, root: left}, &Rope[S]{store: store, root: right}, nil
}

// Concat concatenates two ropes and returns a new rope. Both ropes must
// stem from the same arena, i.e. from splitting a common ancestor, unless one
// of them is void.
//
// The nodes of both arguments are handed over to the result, leaving them void.
func Concat[S any](left, right *Rope[S]) (*Rope[S], error) {
	if left == nil || right == nil || left == right {
		return nil, ErrIllegalArguments
	}
	if left.IsVoid() {
		return right.handOver(), nil
	}
	if right.IsVoid() {
		return left.handOver(), nil
	}
	if left.store != right.store {
		return nil, ErrForeignRope
	}
	store := left.store
	root := store.merge(left.root, right.root)
	left.root, right.root = none, none
	return &Rope[S]{store: store, root: root}, nil
}

// handOver moves r's tree to a new rope.
func (r *Rope[S]) handOver() *Rope[S] {
	h := &Rope[S]{store: r.store, root: r.root}
	r.root = none
	return h
}

// Insert inserts symbols into the rope right before position k.
// If k is greater than the length of the rope, an out-of-bounds error is
// returned.
func (r *Rope[S]) Insert(k int, syms ...S) error {
	if r == nil {
		return ErrIllegalArguments
	}
	if k < 0 || k > r.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, k, r.Len())
	}
	if len(syms) == 0 {
		return nil
	}
	store := r.own()
	sub := store.build(syms)
	left, right, err := store.split(r.root, k)
	if err != nil {
		store.release(sub)
		return err
	}
	r.root = store.merge(store.merge(left, sub), right)
	return nil
}

// Delete removes the symbols [i…i+l) from the rope. Their nodes are returned
// to the arena and re-used by later insertions.
func (r *Rope[S]) Delete(i, l int) error {
	if r == nil {
		return ErrIllegalArguments
	}
	if err := r.checkSpan(i, l); err != nil {
		return err
	}
	if l == 0 {
		return nil
	}
	store := r.store
	before, rest, err := store.split(r.root, i)
	if err != nil {
		return err
	}
	cut, after, err := store.split(rest, l)
	assert(err == nil, "Delete: span validated, split cannot fail")
	store.release(cut)
	r.root = store.merge(before, after)
	tracer().Debugf("rope: deleted %d symbols at %d", l, i)
	return nil
}

// Report outputs a sub-sequence: Report(i,l) => outputs the symbols si,...,si+l-1.
//
// The sequence of r stays unchanged, its tree does not.
func (r *Rope[S]) Report(i, l int) ([]S, error) {
	if r == nil {
		return nil, ErrIllegalArguments
	}
	if err := r.checkSpan(i, l); err != nil {
		return nil, err
	}
	seq := make([]S, 0, l)
	if l == 0 {
		return seq, nil
	}
	store := r.store
	before, rest, err := store.split(r.root, i)
	if err != nil {
		return nil, err
	}
	mid, after, err := store.split(rest, l)
	assert(err == nil, "Report: span validated, split cannot fail")
	store.walk(mid, func(_ int, sym S) bool {
		seq = append(seq, sym)
		return true
	})
	r.root = store.merge(store.merge(before, mid), after)
	return seq, nil
}

// Index returns the symbol at position i. The node holding it becomes the
// root of the tree.
func (r *Rope[S]) Index(i int) (S, error) {
	var zero S
	if r == nil {
		return zero, ErrIllegalArguments
	}
	if i < 0 || i >= r.Len() {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, r.Len())
	}
	r.root = r.store.splay(r.store.seek(r.root, i))
	return r.store.nodes[r.root].payload, nil
}

// checkSpan validates a span [i…i+l) against the length of r.
func (r *Rope[S]) checkSpan(i, l int) error {
	if i < 0 || l < 0 {
		return fmt.Errorf("%w: span (%d,%d)", ErrIllegalArguments, i, l)
	}
	if i+l > r.Len() {
		return fmt.Errorf("%w: span [%d…%d), length %d", ErrIndexOutOfBounds, i, i+l, r.Len())
	}
	return nil
}

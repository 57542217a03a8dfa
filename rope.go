package splayrope

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// Rope is a mutable sequence of symbols, held in a splay tree.
//
// A rope created by
//
//	Rope[rune]{}
//
// is a valid object and behaves like the empty sequence.
//
// Positions are 0-based symbol ranks. Ropes have performance characteristics
// differing from Go slices:
//
//	Operation     |   Rope (amortized) |  Slice
//	--------------+--------------------+--------
//	Index         |   O(log n)         |   O(1)
//	Split         |   O(log n)         |   O(n)
//	Concatenate   |   O(log n)         |   O(n)
//	Cut & Paste   |   O(log n)         |   O(n)
//	Iterate       |   O(n)             |   O(n)
//
// Even read operations like Index re-arrange the tree. Ropes must not be used
// from more than one goroutine at a time.
type Rope[S any] struct {
	store *arena[S]
	root  nodeIndex
}

// Build creates a rope for a sequence of symbols. The resulting tree is
// balanced, with depth O(log n).
func Build[S any](seq []S) *Rope[S] {
	store := newArena[S](len(seq))
	return &Rope[S]{
		store: store,
		root:  store.build(seq),
	}
}

// FromString creates a rope with one symbol for every rune of s.
func FromString(s string) *Rope[rune] {
	return Build([]rune(s))
}

// Len returns the number of symbols in the rope.
func (r *Rope[S]) Len() int {
	if r == nil || r.store == nil {
		return 0
	}
	return r.store.size(r.root)
}

// IsVoid reports whether the rope has no symbols.
func (r *Rope[S]) IsVoid() bool {
	return r.Len() == 0
}

// height returns the height of the rope's tree.
func (r *Rope[S]) height() int {
	if r.IsVoid() {
		return 0
	}
	return r.store.depth(r.root)
}

// Range returns an iterator over all symbols in logical order, together with
// their position. Iterating does not alter the rope.
func (r *Rope[S]) Range() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		if r.IsVoid() {
			return
		}
		r.store.walk(r.root, yield)
	}
}

// Symbols returns the complete sequence of symbols held by the rope.
func (r *Rope[S]) Symbols() []S {
	seq := make([]S, 0, r.Len())
	for _, sym := range r.Range() {
		seq = append(seq, sym)
	}
	return seq
}

// String returns the concatenation of all symbols. Runes and strings are
// written verbatim, other symbol types in their default format.
func (r *Rope[S]) String() string {
	var sb strings.Builder
	sb.Grow(r.Len())
	for _, sym := range r.Range() {
		writeSymbol(&sb, sym)
	}
	return sb.String()
}

func writeSymbol(sb *strings.Builder, sym any) {
	switch s := sym.(type) {
	case rune:
		sb.WriteRune(s)
	case byte:
		sb.WriteByte(s)
	case string:
		sb.WriteString(s)
	case fmt.Stringer:
		sb.WriteString(s.String())
	default:
		fmt.Fprint(sb, s)
	}
}

// own makes sure the rope has an arena, creating one for a void rope.
func (r *Rope[S]) own() *arena[S] {
	if r.store == nil {
		r.store = newArena[S](0)
		r.root = none
	}
	return r.store
}

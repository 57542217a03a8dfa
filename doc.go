/*
Package splayrope implements a rope on top of a splay tree, specialized for
moving ranges of symbols around.

Ropes

A rope is a sequence container organized as a tree. This package stores one
symbol per tree node and keeps the tree ordered by position (rank), so an
in-order walk of the tree yields the sequence. Ranks are never stored; they
are derived from cached subtree sizes while descending.

The central edit operation is cut-and-paste: remove the range [i…j] from the
sequence and re-insert it right after position k of what remains. Every
range edit is built from two primitives,

	split(T, i)  =>  T1 = s0 … s(i-1),  T2 = si … sn
	merge(T1, T2)

and both run in amortized O(log n), as the nodes they touch are splayed to the
root of their tree.

Splay Trees

From Sleator and Tarjan, 1985:

Self-Adjusting Binary Search Trees. The splay tree is a self-adjusting form of
binary search tree. On an n-node splay tree, all the standard search tree
operations have an amortized time bound of O(log n) per operation. […]
The key to the efficiency of splay trees is the restructuring heuristic
called splaying: after an access to a node x, x is moved to the root by a
sequence of rotations along the path from x to the root.

_________________________________________________________________________

Nodes do not live on the Go heap one by one, but in an arena of slots
referenced by integer index. Slot 0 is reserved as the "none" sentinel for
absent children and parents. Parent links are back-references only; owning a
subtree means being the node which holds its index as a child.

Ropes are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package splayrope

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}

// RopeError is an error type for the splayrope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrNegativeIndex is flagged whenever one of the indices of a cut-and-paste
// query is negative.
const ErrNegativeIndex = RopeError("negative index")

// ErrInvalidRange is flagged for a cut range [i…j] with i > j.
const ErrInvalidRange = RopeError("invalid range: start index greater than end index")

// ErrRangeOutOfBounds is flagged whenever the end of a cut range lies beyond
// the end of the sequence.
const ErrRangeOutOfBounds = RopeError("range out of bounds")

// ErrInvalidInsertIndex is flagged whenever an insert position exceeds the
// length of the sequence remaining after the cut.
const ErrInvalidInsertIndex = RopeError("insert index out of bounds")

// ErrInvalidSplitIndex signals a split position outside of [0…size].
// Cut-and-paste validates its arguments before splitting, so seeing this
// error from CutAndPaste means a defect, not a user error.
const ErrInvalidSplitIndex = RopeError("invalid split index")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrForeignRope is flagged when ropes from different arenas are to be
// concatenated.
const ErrForeignRope = RopeError("ropes do not share an arena")

// ErrCorruptTree is reported by Check for a violated structural invariant.
const ErrCorruptTree = RopeError("corrupt rope tree")

// assert panics with msg if cond does not hold. It is reserved for internal
// invariants, never for caller errors.
func assert(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("splayrope: assertion failed: %s", msg))
	}
}

package splayrope

import "fmt"

// Query is a cut-and-paste request: cut the symbols at positions [I…J]
// (inclusive) out of a sequence and re-insert them right after position K of
// the remaining sequence. K = 0 inserts at the front.
type Query struct {
	I, J, K int
}

func (q Query) String() string {
	return fmt.Sprintf("(%d,%d,%d)", q.I, q.J, q.K)
}

// QueryError reports the first query of a list which could not be applied.
type QueryError struct {
	Pos   int   // position of the query within the query list
	Query Query // the offending query
	Err   error // cause, one of the RopeError constants
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query #%d %s: %s", e.Pos, e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// CutAndPaste removes the symbols [i…j] from the rope and re-inserts them
// right after position k of the remaining sequence.
//
// All indices are checked before the tree is touched; if CutAndPaste returns
// an error, r is left exactly as it was.
func (r *Rope[S]) CutAndPaste(i, j, k int) error {
	if r == nil {
		return ErrIllegalArguments
	}
	if i < 0 || j < 0 || k < 0 {
		return fmt.Errorf("%w: (%d,%d,%d)", ErrNegativeIndex, i, j, k)
	}
	if i > j {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, i, j)
	}
	n := r.Len()
	if j >= n {
		return fmt.Errorf("%w: end %d, length %d", ErrRangeOutOfBounds, j, n)
	}
	cutlen := j - i + 1
	if k > n-cutlen {
		return fmt.Errorf("%w: %d, remaining length %d", ErrInvalidInsertIndex, k, n-cutlen)
	}
	store := r.store
	before, rest, err := store.split(r.root, i)
	if err != nil {
		return err
	}
	cut, after, err := store.split(rest, cutlen)
	if err != nil {
		return err
	}
	remaining := store.merge(before, after)
	left, right, err := store.split(remaining, k)
	if err != nil {
		return err
	}
	r.root = store.merge(store.merge(left, cut), right)
	tracer().Debugf("rope: cut [%d…%d], pasted after %d", i, j, k)
	return nil
}

// Apply performs a list of cut-and-paste queries in order. It stops at the
// first query which fails and returns a *QueryError for it; all queries
// before it remain applied.
func (r *Rope[S]) Apply(queries []Query) error {
	for n, q := range queries {
		if err := r.CutAndPaste(q.I, q.J, q.K); err != nil {
			tracer().Errorf("rope: query #%d %s failed: %v", n, q, err)
			return &QueryError{Pos: n, Query: q, Err: err}
		}
	}
	return nil
}

// ApplyQueries builds a rope for seq, applies all queries in order and
// returns the resulting sequence. On error, the returned *QueryError
// identifies the first failing query.
func ApplyQueries[S any](seq []S, queries []Query) ([]S, error) {
	r := Build(seq)
	if err := r.Apply(queries); err != nil {
		return nil, err
	}
	return r.Symbols(), nil
}

package splayrope

import "fmt"

// Check validates structural tree invariants:
//
//   - the root has no parent
//   - every child points back to its parent
//   - size(n) = 1 + size(n.left) + size(n.right) for every node
//   - no node is reachable twice
//
// It is meant to be used in tests.
func (r *Rope[S]) Check() error {
	if r == nil {
		return fmt.Errorf("%w: nil rope", ErrIllegalArguments)
	}
	if r.store == nil {
		if r.root != none {
			return fmt.Errorf("%w: root without arena", ErrCorruptTree)
		}
		return nil
	}
	a := r.store
	if s := a.nodes[none]; s.size != 0 || s.left != none || s.right != none || s.parent != none {
		return fmt.Errorf("%w: sentinel slot has been written to", ErrCorruptTree)
	}
	if r.root == none {
		return nil
	}
	if int(r.root) >= len(a.nodes) {
		return fmt.Errorf("%w: root index %d beyond arena", ErrCorruptTree, r.root)
	}
	if p := a.nodes[r.root].parent; p != none {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorruptTree, r.root, p)
	}
	seen := make([]bool, len(a.nodes))
	stack := []nodeIndex{r.root}
	count := 0
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[x] {
			return fmt.Errorf("%w: node %d reachable twice", ErrCorruptTree, x)
		}
		seen[x] = true
		count++
		n := a.nodes[x]
		for _, c := range [2]nodeIndex{n.left, n.right} {
			if c == none {
				continue
			}
			if int(c) >= len(a.nodes) {
				return fmt.Errorf("%w: child index %d beyond arena", ErrCorruptTree, c)
			}
			if a.nodes[c].parent != x {
				return fmt.Errorf("%w: node %d has parent %d, expected %d",
					ErrCorruptTree, c, a.nodes[c].parent, x)
			}
			stack = append(stack, c)
		}
		if want := 1 + a.nodes[n.left].size + a.nodes[n.right].size; n.size != want {
			return fmt.Errorf("%w: node %d has size %d, expected %d", ErrCorruptTree, x, n.size, want)
		}
	}
	if count != a.size(r.root) {
		return fmt.Errorf("%w: %d nodes reachable, root size %d", ErrCorruptTree, count, a.size(r.root))
	}
	return nil
}

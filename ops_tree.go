package splayrope

import "fmt"

// split partitions the tree rooted at root into (L, R), where L holds the
// first index symbols and R holds the rest. The degenerate cases index = 0 and
// index = size(root) leave the tree untouched.
func (a *arena[S]) split(root nodeIndex, index int) (nodeIndex, nodeIndex, error) {
	n := a.size(root)
	if index < 0 || index > n {
		return none, none, fmt.Errorf("%w: %d not in [0…%d]", ErrInvalidSplitIndex, index, n)
	}
	if index == 0 {
		return none, root, nil
	}
	if index == n {
		return root, none, nil
	}
	// 0 < index < n, thus a node of rank index exists and has a left subtree
	// after being splayed to the root
	root = a.splay(a.seek(root, index))
	left := a.nodes[root].left
	a.nodes[left].parent = none
	a.nodes[root].left = none
	a.update(root)
	return left, root, nil
}

// merge concatenates two trees, all symbols of left preceding all symbols
// of right. Either side may be none.
func (a *arena[S]) merge(left, right nodeIndex) nodeIndex {
	if left == none {
		return right
	}
	if right == none {
		return left
	}
	last := left
	for a.nodes[last].right != none {
		last = a.nodes[last].right
	}
	left = a.splay(last)
	a.nodes[left].right = right
	a.nodes[right].parent = left
	a.update(left)
	return left
}

// build constructs a balanced tree for seq in O(n) and returns its root.
//
// Every subtree covers a contiguous span of seq and is rooted at the span's
// midpoint, hence its size is known before its children are built. Spans
// are kept on an explicit stack instead of the call stack.
func (a *arena[S]) build(seq []S) nodeIndex {
	if len(seq) == 0 {
		return none
	}
	type span struct {
		lo, hi int
		parent nodeIndex
		isLeft bool
	}
	root := none
	stack := make([]span, 1, 64)
	stack[0] = span{lo: 0, hi: len(seq) - 1}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sp.lo > sp.hi {
			continue
		}
		mid := sp.lo + (sp.hi-sp.lo)/2
		x := a.alloc(seq[mid])
		a.nodes[x].size = sp.hi - sp.lo + 1
		a.nodes[x].parent = sp.parent
		switch {
		case sp.parent == none:
			root = x
		case sp.isLeft:
			a.nodes[sp.parent].left = x
		default:
			a.nodes[sp.parent].right = x
		}
		stack = append(stack,
			span{lo: mid + 1, hi: sp.hi, parent: x},
			span{lo: sp.lo, hi: mid - 1, parent: x, isLeft: true})
	}
	return root
}

// walk visits the symbols of the tree rooted at root in order, without
// recursion, as splayed trees may degenerate to depth O(n). It stops early
// if yield returns false. walk does not alter the tree.
func (a *arena[S]) walk(root nodeIndex, yield func(int, S) bool) {
	stack := make([]nodeIndex, 0, 32)
	cur, i := root, 0
	for len(stack) > 0 || cur != none {
		if cur != none {
			stack = append(stack, cur)
			cur = a.nodes[cur].left
			continue
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(i, a.nodes[cur].payload) {
			return
		}
		i++
		cur = a.nodes[cur].right
	}
}

// depth returns the height of the tree rooted at root (0 for none).
func (a *arena[S]) depth(root nodeIndex) int {
	if root == none {
		return 0
	}
	type entry struct {
		x nodeIndex
		d int
	}
	height := 0
	stack := []entry{{root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.d > height {
			height = e.d
		}
		if l := a.nodes[e.x].left; l != none {
			stack = append(stack, entry{l, e.d + 1})
		}
		if r := a.nodes[e.x].right; r != none {
			stack = append(stack, entry{r, e.d + 1})
		}
	}
	return height
}

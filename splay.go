package splayrope

// rotate lifts x one level up, into the position of its parent p.
//
// The child of x facing p changes sides and becomes a child of p; p becomes a
// child of x; the grandparent's link to p is redirected to x. Sizes are
// recomputed for p, then for x. rotate is a no-op for a root node.
func (a *arena[S]) rotate(x nodeIndex) {
	p := a.nodes[x].parent
	if p == none {
		return
	}
	g := a.nodes[p].parent
	xn, pn := &a.nodes[x], &a.nodes[p]
	if pn.left == x {
		pn.left = xn.right
		if xn.right != none {
			a.nodes[xn.right].parent = p
		}
		xn.right = p
	} else {
		pn.right = xn.left
		if xn.left != none {
			a.nodes[xn.left].parent = p
		}
		xn.left = p
	}
	pn.parent = x
	xn.parent = g
	if g != none {
		if gn := &a.nodes[g]; gn.left == p {
			gn.left = x
		} else {
			gn.right = x
		}
	}
	a.update(p)
	a.update(x)
}

// splay moves x to the root of its tree and returns it.
//
//	zig:     parent is the root          => rotate x
//	zig-zig: x and parent on same side   => rotate parent, then x
//	zig-zag: x and parent on other sides => rotate x twice
func (a *arena[S]) splay(x nodeIndex) nodeIndex {
	for a.nodes[x].parent != none {
		p := a.nodes[x].parent
		if g := a.nodes[p].parent; g != none {
			if (a.nodes[g].left == p) == (a.nodes[p].left == x) {
				a.rotate(p)
			} else {
				a.rotate(x)
			}
		}
		a.rotate(x)
	}
	return x
}

// seek descends from root to the node of the given rank, using cached subtree
// sizes. rank must be in [0…size(root)).
func (a *arena[S]) seek(root nodeIndex, rank int) nodeIndex {
	assert(rank >= 0 && rank < a.size(root), "seek rank out of range")
	cur := root
	for {
		n := &a.nodes[cur]
		ls := a.nodes[n.left].size
		switch {
		case rank < ls:
			cur = n.left
		case rank > ls:
			rank -= ls + 1
			cur = n.right
		default:
			return cur
		}
	}
}

package splayrope

// nodeIndex addresses a slot in an arena. The zero value is the sentinel none.
type nodeIndex int32

// none marks an absent child or parent.
const none nodeIndex = 0

// node holds exactly one symbol of a sequence.
//
// left and right own their subtrees, parent is a back-reference only.
// size caches the number of nodes in the subtree rooted here.
// For free slots, right links the free list.
type node[S any] struct {
	payload             S
	left, right, parent nodeIndex
	size                int
}

// arena is a dense store for nodes. Slot 0 is the sentinel with size 0 and
// is never handed out.
type arena[S any] struct {
	nodes []node[S]
	free  nodeIndex // head of the free list
	live  int       // number of slots in use
}

func newArena[S any](capacity int) *arena[S] {
	a := &arena[S]{
		nodes: make([]node[S], 1, capacity+1),
	}
	return a
}

// alloc returns a fresh, unlinked leaf node for sym, re-using a free slot
// if one is available.
func (a *arena[S]) alloc(sym S) nodeIndex {
	a.live++
	if a.free != none {
		x := a.free
		a.free = a.nodes[x].right
		a.nodes[x] = node[S]{payload: sym, size: 1}
		return x
	}
	assert(len(a.nodes) < 1<<31-1, "arena exhausted")
	a.nodes = append(a.nodes, node[S]{payload: sym, size: 1})
	return nodeIndex(len(a.nodes) - 1)
}

// release returns all the nodes of the subtree rooted at x to the free list.
// x must already be detached from its parent.
func (a *arena[S]) release(x nodeIndex) {
	if x == none {
		return
	}
	assert(a.nodes[x].parent == none, "release of attached subtree")
	stack := []nodeIndex{x}
	for len(stack) > 0 {
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := a.nodes[x].left; l != none {
			stack = append(stack, l)
		}
		if r := a.nodes[x].right; r != none {
			stack = append(stack, r)
		}
		a.nodes[x] = node[S]{right: a.free} // drop payload for the GC
		a.free = x
		a.live--
	}
}

// size returns the cached subtree size of x; none contributes 0.
func (a *arena[S]) size(x nodeIndex) int {
	return a.nodes[x].size
}

// update recomputes the cached size of x from its children.
func (a *arena[S]) update(x nodeIndex) {
	if x == none {
		return
	}
	n := &a.nodes[x]
	n.size = 1 + a.nodes[n.left].size + a.nodes[n.right].size
}

package rbtree

import "github.com/bnclabs/colortree/api"

// Walk keys in ascending order, until callb returns false.
func (t *Tree[K]) Walk(callb api.KeyCallb[K]) {
	t.walknodes(func(nd *Node[K], _ int64) bool { return callb(nd.key) })
}

// Keys return all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.n_count)
	t.Walk(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Height return number of nodes on the longest root to leaf path,
// zero for an empty tree.
func (t *Tree[K]) Height() int64 {
	height := int64(0)
	t.walknodes(func(_ *Node[K], depth int64) bool {
		if depth > height {
			height = depth
		}
		return true
	})
	return height
}

// walknodes in-order, along with each node's depth, root being at depth
// 1. Does not recurse, trees built with colorflip fixup can be as deep
// as they are large.
func (t *Tree[K]) walknodes(callb func(nd *Node[K], depth int64) bool) {
	type frame struct {
		nd    *Node[K]
		depth int64
	}
	stack := make([]frame, 0, 32)
	nd, depth := t.root, int64(1)
	for nd != nil || len(stack) > 0 {
		for nd != nil {
			stack = append(stack, frame{nd, depth})
			nd, depth = nd.left, depth+1
		}
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callb(fr.nd, fr.depth) {
			return
		}
		nd, depth = fr.nd.right, fr.depth+1
	}
}

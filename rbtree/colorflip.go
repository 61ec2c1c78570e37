package rbtree

// step is one level of descent, recorded for the unwind.
type step[K any] struct {
	nd   *Node[K]
	left bool
}

// insert key, which must not be in the tree, and return the new root.
func (t *Tree[K]) insert(key K) *Node[K] {
	path := make([]step[K], 0, 32)
	for nd := t.root; nd != nil; {
		if t.compare(key, nd.key) < 0 {
			path, nd = append(path, step[K]{nd, true}), nd.left
		} else {
			path, nd = append(path, step[K]{nd, false}), nd.right
		}
	}
	t.h_insertdepth.Add(int64(len(path) + 1))
	return t.unwind(path, t.newnode(key))
}

// remove key, which must be in the tree, and return the new root.
func (t *Tree[K]) remove(key K) *Node[K] {
	path := make([]step[K], 0, 32)
	nd := t.root
	for {
		c := t.compare(key, nd.key)
		switch {
		case c < 0:
			path, nd = append(path, step[K]{nd, true}), nd.left
			continue
		case c > 0:
			path, nd = append(path, step[K]{nd, false}), nd.right
			continue
		}

		if nd.left != nil && nd.right != nil {
			// nd takes over its successor's key, successor goes away.
			key = minvaluenode(nd.right).key
			nd.key = key
			t.n_keycopies++
			path, nd = append(path, step[K]{nd, false}), nd.right
			continue
		}

		sub := nd.right
		if nd.right == nil {
			sub = nd.left
		}
		t.freenode(nd)
		return t.unwind(path, sub)
	}
}

// unwind re-attach sub at each level of path, bottom up, applying
// colorflip fixup on the way. Return the new root.
func (t *Tree[K]) unwind(path []step[K], sub *Node[K]) *Node[K] {
	for i := len(path) - 1; i >= 0; i-- {
		st := path[i]
		if st.left {
			st.nd.left = sub
		} else {
			st.nd.right = sub
		}
		t.setparent(sub, st.nd)
		sub = t.colorflip(st.nd)
	}
	return sub
}

// colorflip apply the first matching case, if any.
func (t *Tree[K]) colorflip(nd *Node[K]) *Node[K] {
	switch {
	case isred(nd.left) && isred(nd.left.left):
		return t.rotateright(nd)
	case isred(nd.right) && isred(nd.left):
		return t.rotateleft(nd)
	case isred(nd.left) && isred(nd.right):
		t.flipcolors(nd)
	}
	return nd
}

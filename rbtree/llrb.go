package rbtree

// left-leaning red-black balancing, using 2-3 trees.

func (t *Tree[K]) insert23(nd *Node[K], key K, depth int64) *Node[K] {
	if nd == nil {
		t.h_insertdepth.Add(depth)
		return t.newnode(key)
	}

	if t.compare(key, nd.key) < 0 {
		nd.left = t.insert23(nd.left, key, depth+1)
		t.setparent(nd.left, nd)
	} else {
		nd.right = t.insert23(nd.right, key, depth+1)
		t.setparent(nd.right, nd)
	}
	return t.walkuprot23(nd)
}

// delete23 key, which must be present in the sub-tree.
func (t *Tree[K]) delete23(nd *Node[K], key K) *Node[K] {
	if t.compare(key, nd.key) < 0 {
		if !isred(nd.left) && !isred(nd.left.left) {
			nd = t.moveredleft(nd)
		}
		nd.left = t.delete23(nd.left, key)
		t.setparent(nd.left, nd)

	} else {
		if isred(nd.left) {
			nd = t.rotateright(nd)
		}
		// If key equals nd.key and no right children at nd
		if t.compare(key, nd.key) == 0 && nd.right == nil {
			t.freenode(nd)
			return nil
		}
		if !isred(nd.right) && !isred(nd.right.left) {
			nd = t.moveredright(nd)
		}
		// If key equals nd.key, and (from above) nd.right != nil
		if t.compare(key, nd.key) == 0 {
			nd.key = minvaluenode(nd.right).key
			t.n_keycopies++
			nd.right = t.deletemin23(nd.right)
		} else {
			nd.right = t.delete23(nd.right, key)
		}
		t.setparent(nd.right, nd)
	}
	return t.fixup23(nd)
}

func (t *Tree[K]) deletemin23(nd *Node[K]) *Node[K] {
	if nd.left == nil {
		t.freenode(nd)
		return nil
	}
	if !isred(nd.left) && !isred(nd.left.left) {
		nd = t.moveredleft(nd)
	}
	nd.left = t.deletemin23(nd.left)
	t.setparent(nd.left, nd)
	return t.fixup23(nd)
}

func (t *Tree[K]) walkuprot23(nd *Node[K]) *Node[K] {
	if isred(nd.right) && !isred(nd.left) {
		nd = t.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = t.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		t.togglecolors(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (t *Tree[K]) moveredleft(nd *Node[K]) *Node[K] {
	t.togglecolors(nd)
	if isred(nd.right.left) {
		nd.right = t.rotateright(nd.right)
		t.setparent(nd.right, nd)
		nd = t.rotateleft(nd)
		t.togglecolors(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (t *Tree[K]) moveredright(nd *Node[K]) *Node[K] {
	t.togglecolors(nd)
	if isred(nd.left.left) {
		nd = t.rotateright(nd)
		t.togglecolors(nd)
	}
	return nd
}

func (t *Tree[K]) fixup23(nd *Node[K]) *Node[K] {
	if isred(nd.right) {
		nd = t.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = t.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		t.togglecolors(nd)
	}
	return nd
}

package rbtree

// rotateleft promote nd.right, which must be red. New subtree root
// takes nd's color and nd turns red.
func (t *Tree[K]) rotateleft(nd *Node[K]) *Node[K] {
	y := nd.right
	if !isred(y) {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	t.setparent(nd.right, nd)
	y.left = nd
	if t.parentlinks {
		y.parent = nd.parent
	}
	t.setparent(nd, y)
	y.color = nd.color
	nd.setred()
	t.n_rotatelefts++
	return y
}

// rotateright promote nd.left, which must be red. New subtree root
// takes nd's color and nd turns red.
func (t *Tree[K]) rotateright(nd *Node[K]) *Node[K] {
	x := nd.left
	if !isred(x) {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	t.setparent(nd.left, nd)
	x.right = nd
	if t.parentlinks {
		x.parent = nd.parent
	}
	t.setparent(nd, x)
	x.color = nd.color
	nd.setred()
	t.n_rotaterights++
	return x
}

// flipcolors paint nd red and both its children black.
// REQUIRE: Left and Right children must be present
func (t *Tree[K]) flipcolors(nd *Node[K]) {
	if nd.left == nil || nd.right == nil {
		panic("flipcolors(): absent child ? call the programmer")
	}
	nd.setred()
	nd.left.setblack()
	nd.right.setblack()
	t.n_flips++
}

// togglecolors invert the color of nd and both its children.
// REQUIRE: Left and Right children must be present
func (t *Tree[K]) togglecolors(nd *Node[K]) {
	if nd.left == nil || nd.right == nil {
		panic("togglecolors(): absent child ? call the programmer")
	}
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
	t.n_flips++
}

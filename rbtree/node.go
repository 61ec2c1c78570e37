package rbtree

import "fmt"

// Color of a tree node.
type Color uint8

const (
	// Red node, freshly created nodes are red.
	Red Color = iota
	// Black node, root is always black.
	Black
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// Node defines a node in the tree. Nodes are owned by the tree, callers
// holding a Node from Find shall treat it as read-only and valid only
// until the next mutation.
type Node[K any] struct {
	key    K
	color  Color
	left   *Node[K]
	right  *Node[K]
	parent *Node[K] // back-reference, not owned
}

// Key return the node's key. When a node with two children is removed
// its key is replaced by its in-order successor's key.
func (nd *Node[K]) Key() K {
	return nd.key
}

// Color return the node's color, absent nodes are black.
func (nd *Node[K]) Color() Color {
	if nd == nil {
		return Black
	}
	return nd.color
}

// IsBlack return true for black and absent nodes.
func (nd *Node[K]) IsBlack() bool {
	return nd.Color() == Black
}

// IsRed return true for red nodes.
func (nd *Node[K]) IsRed() bool {
	return nd.Color() == Red
}

// Left child, nil if absent.
func (nd *Node[K]) Left() *Node[K] {
	if nd == nil {
		return nil
	}
	return nd.left
}

// Right child, nil if absent.
func (nd *Node[K]) Right() *Node[K] {
	if nd == nil {
		return nil
	}
	return nd.right
}

// Parent of this node, nil for the root, for detached nodes and when
// the tree is not maintaining parent links.
func (nd *Node[K]) Parent() *Node[K] {
	if nd == nil {
		return nil
	}
	return nd.parent
}

func isred[K any](nd *Node[K]) bool {
	return nd != nil && nd.color == Red
}

func (nd *Node[K]) setblack() *Node[K] {
	nd.color = Black
	return nd
}

func (nd *Node[K]) setred() *Node[K] {
	nd.color = Red
	return nd
}

func (nd *Node[K]) togglelink() *Node[K] {
	if nd.color == Black {
		nd.color = Red
	} else {
		nd.color = Black
	}
	return nd
}

func (nd *Node[K]) repr() string {
	return fmt.Sprintf("%v(%v)", nd.key, nd.color)
}

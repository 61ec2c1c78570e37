// Package rbtree implement a self-balancing binary tree of unique
// ordered keys, colouring each node red or black.
//
//   * Keys are unique within the tree, duplicate inserts are rejected.
//   * Keys are ordered by a three-way comparator, builtin ordered
//     types can use NewTree.
//   * Two balancing flavours, selected by the "fixup" setting:
//     "colorflip" applies a single local fixup while unwinding each
//     level, "llrb" applies left-leaning-red-black balancing.
//   * Deleting a node with two children copies the in-order successor's
//     key into it, and splices out the successor's node.
//   * Parent links are kept consistent through every relink and
//     rotation, unless disabled with the "parentlinks" setting.
//
// Trees are not safe for concurrent use, callers must serialize all
// access to a tree.
package rbtree

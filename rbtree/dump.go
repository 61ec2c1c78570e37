package rbtree

import "fmt"
import "io"
import "strings"

import "github.com/OneOfOne/xxhash"

// PrintTree render the tree as indented text, one node per line.
// Root is printed as "Root: key(Color)", children as "L-- key(Color)"
// and "R-- key(Color)", indented under their parent.
func (t *Tree[K]) PrintTree(w io.Writer) {
	if t.root == nil {
		return
	}
	printnode(w, t.root, "", true /*isleft*/, true /*isroot*/)
}

func printnode[K any](w io.Writer, nd *Node[K], prefix string, isleft, isroot bool) {
	if isroot {
		fmt.Fprintf(w, "Root: %v\n", nd.repr())
	} else if isleft {
		fmt.Fprintf(w, "%vL-- %v\n", prefix, nd.repr())
	} else {
		fmt.Fprintf(w, "%vR-- %v\n", prefix, nd.repr())
	}
	if isleft {
		prefix += "|\t"
	} else {
		prefix += "\t"
	}
	if nd.left != nil {
		printnode(w, nd.left, prefix, true, false)
	}
	if nd.right != nil {
		printnode(w, nd.right, prefix, false, false)
	}
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (t *Tree[K]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph rbtree {",
		"  node[shape=record];\n",
		"}\n",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	dotdump(buffer, t.root)
	buffer.Write([]byte(lines[len(lines)-1]))
}

func dotdump[K any](buffer io.Writer, nd *Node[K]) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *Node[K]) string {
		if isred(childnd) {
			return "red"
		}
		return "black"
	}

	key := fmt.Sprintf("%q", fmt.Sprint(nd.key))
	lines := []string{
		fmt.Sprintf("  %v [label=\"{%v|%v}\"];\n", key, nd.key, nd.color),
	}
	fmsg := "  %v -> %q [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, fmt.Sprint(nd.left.key), whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, fmt.Sprint(nd.right.key), whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	dotdump(buffer, nd.left)
	dotdump(buffer, nd.right)
}

// Fingerprint return a hash over the tree's shape, colors and keys.
// Two trees with equal fingerprint are, in all likelihood, identical.
func (t *Tree[K]) Fingerprint() uint64 {
	h := xxhash.New64()
	stack := []*Node[K]{t.root}
	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nd == nil {
			h.WriteString(".")
			continue
		}
		fmt.Fprintf(h, "(%v:%v)", nd.key, nd.color)
		stack = append(stack, nd.right, nd.left)
	}
	return h.Sum64()
}

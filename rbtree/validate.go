package rbtree

import "fmt"

import "github.com/pkg/errors"
import "github.com/bnclabs/colortree/lib"

// Report of a full tree walk by Check.
type Report struct {
	Count      int64 // number of nodes
	Height     int64 // nodes on the longest root to leaf path
	Blacks     int64 // black nodes on the left most path
	RedReds    int64 // red nodes with red parent
	Imbalances int64 // nodes whose sub-trees differ in black height
}

// ErrRedAfterRed LLRB rule, from sedgewick's paper.
var ErrRedAfterRed = errors.New("consecutive red spotted")

// ErrUnbalancedBlacks LLRB rule, from sedgewick's paper.
var ErrUnbalancedBlacks = errors.New("unbalanced blacks")

// Check walk the full tree and report its shape. Broken sort order,
// broken parent links, red root and count mismatch are returned as
// error. Consecutive reds and unbalanced black height are counted in
// the report, and returned as error only for strict trees.
func (t *Tree[K]) Check() (Report, error) {
	var report Report
	if isred(t.root) {
		return report, errors.Errorf("root %v is red", t.root.repr())
	}
	if t.root != nil && t.root.parent != nil {
		return report, errors.Errorf("root %v has parent", t.root.repr())
	}

	var lastnd *Node[K]
	var err error
	t.walknodes(func(nd *Node[K], depth int64) bool {
		report.Count++
		if depth > report.Height {
			report.Height = depth
		}
		if lastnd != nil && t.compare(lastnd.key, nd.key) >= 0 {
			fmsg := "sort order, node %v is >= node %v"
			err = errors.Errorf(fmsg, lastnd.repr(), nd.repr())
			return false
		}
		lastnd = nd
		if t.parentlinks {
			for _, child := range []*Node[K]{nd.left, nd.right} {
				if child != nil && child.parent != nd {
					fmsg := "parent link, node %v is not parent of %v"
					err = errors.Errorf(fmsg, nd.repr(), child.repr())
					return false
				}
			}
		}
		if isred(nd) && isred(nd.left) {
			report.RedReds++
		}
		if isred(nd) && isred(nd.right) {
			report.RedReds++
		}
		return true
	})
	if err != nil {
		return report, err
	}
	if report.Count != t.n_count {
		fmsg := "count %v, but walked %v nodes"
		return report, errors.Errorf(fmsg, t.n_count, report.Count)
	}

	report.Blacks = countblacks(t.root)
	report.Imbalances = t.imbalances()

	if t.strict {
		if report.RedReds > 0 {
			return report, errors.Wrapf(ErrRedAfterRed, "%v times", report.RedReds)
		} else if report.Imbalances > 0 {
			fmsg := "%v nodes"
			return report, errors.Wrapf(ErrUnbalancedBlacks, fmsg, report.Imbalances)
		}
	}
	return report, nil
}

// Validate the tree, panic on the first failure. Apart from Check,
// also confirm the height bound, if configured, and the accounting
// of nodes.
func (t *Tree[K]) Validate() {
	report, err := t.Check()
	if err != nil {
		errorf("%v %v\n", t.logprefix, err)
		panic(fmt.Errorf("Validate(): %v", err))
	}

	if t.maxfactor > 0 {
		limit := float64(t.maxfactor)*lib.Log2(report.Count) + 1
		if float64(report.Height) > limit {
			fmsg := "Validate(): height %v exceeds %v*log2(%v)+1"
			panic(fmt.Errorf(fmsg, report.Height, t.maxfactor, report.Count))
		}
	}
	t.validatestats()
}

func (t *Tree[K]) validatestats() {
	if x, y := t.n_count, t.n_inserts-t.n_deletes; x != y {
		fmsg := "validatestats(): n_count:%v != n_inserts-n_deletes:%v"
		panic(fmt.Errorf(fmsg, x, y))
	}
	if x, y := t.n_nodes-t.n_frees, t.n_count; x != y {
		fmsg := "validatestats(): n_nodes-n_frees:%v != n_count:%v"
		panic(fmt.Errorf(fmsg, x, y))
	}
}

func countblacks[K any](nd *Node[K]) (blacks int64) {
	for ; nd != nil; nd = nd.left {
		if !isred(nd) {
			blacks++
		}
	}
	return blacks
}

// imbalances count nodes whose left and right sub-trees have different
// black height, computed post-order without recursion.
func (t *Tree[K]) imbalances() (n int64) {
	if t.root == nil {
		return 0
	}
	heights := make(map[*Node[K]]int64)
	bh := func(nd *Node[K]) int64 {
		if nd == nil {
			return 1
		}
		return heights[nd]
	}

	stack := []*Node[K]{t.root}
	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		if _, ok := heights[nd.left]; nd.left != nil && !ok {
			stack = append(stack, nd.left)
			continue
		}
		if _, ok := heights[nd.right]; nd.right != nil && !ok {
			stack = append(stack, nd.right)
			continue
		}
		lh, rh := bh(nd.left), bh(nd.right)
		if lh != rh {
			n++
		}
		if rh > lh {
			lh = rh
		}
		if !isred(nd) {
			lh++
		}
		heights[nd] = lh
		stack = stack[:len(stack)-1]
	}
	return n
}

package rbtree

import "cmp"
import "fmt"

import "github.com/bnclabs/colortree/api"
import "github.com/bnclabs/colortree/lib"

var _ api.Set[int] = (*Tree[int])(nil)

// Tree manage a single instance of in-memory set of ordered keys
// using a red-black tree.
type Tree[K any] struct {
	treestats
	h_insertdepth *lib.HistogramInt64

	name    string
	root    *Node[K]
	compare api.Comparator[K]

	// settings
	fixup       string
	parentlinks bool
	strict      bool
	maxfactor   int64
	setts       lib.Settings
	logprefix   string
}

// NewTree a new instance of red-black tree for builtin ordered keys.
func NewTree[K cmp.Ordered](name string, setts lib.Settings) *Tree[K] {
	return NewTreeFunc[K](name, api.OrderedCompare[K], setts)
}

// NewTreeFunc a new instance of red-black tree, ordering keys by
// compare.
func NewTreeFunc[K any](
	name string, compare api.Comparator[K], setts lib.Settings) *Tree[K] {

	if compare == nil {
		panic("NewTreeFunc(): nil comparator")
	}
	t := &Tree[K]{name: name, compare: compare}
	t.logprefix = fmt.Sprintf("RBTREE [%s]", name)

	setts = make(lib.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.h_insertdepth = lib.NewhistorgramInt64(1, 256, 1)

	infof("%v started with %q fixup ...\n", t.logprefix, t.fixup)
	if t.strict && t.fixup == fixupColorflip {
		fmsg := "%v strict validation on %q fixup can fail on valid usage\n"
		warnf(fmsg, t.logprefix, t.fixup)
	}
	return t
}

// ID return the name of this tree.
func (t *Tree[K]) ID() string {
	return t.name
}

// Count return number of keys in the tree.
func (t *Tree[K]) Count() int64 {
	return t.n_count
}

// Root node of the tree, nil if tree is empty.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Contains return whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find return the node holding key, nil if key is missing.
func (t *Tree[K]) Find(key K) *Node[K] {
	t.n_lookups++
	return t.get(key)
}

// Insert key into the tree. Return false, without mutating the tree,
// if key is already present.
func (t *Tree[K]) Insert(key K) bool {
	if t.get(key) != nil {
		t.n_dupinserts++
		return false
	}

	switch t.fixup {
	case fixupLLRB:
		t.setroot(t.insert23(t.root, key, 1 /*depth*/))
	default:
		t.setroot(t.insert(key))
	}
	t.root.setblack()
	t.n_count++
	t.n_inserts++
	return true
}

// InsertE is Insert, returning api.ErrorDuplicateKey if key is
// already present.
func (t *Tree[K]) InsertE(key K) error {
	if !t.Insert(key) {
		return api.ErrorDuplicateKey
	}
	return nil
}

// Remove key from the tree. Return false, without mutating the tree,
// if key is missing.
func (t *Tree[K]) Remove(key K) bool {
	if t.get(key) == nil {
		t.n_missdeletes++
		return false
	}

	switch t.fixup {
	case fixupLLRB:
		t.setroot(t.delete23(t.root, key))
	default:
		t.setroot(t.remove(key))
	}
	if t.root != nil {
		t.root.setblack()
	}
	t.n_count--
	t.n_deletes++
	return true
}

// RemoveE is Remove, returning api.ErrorKeyMissing if key is missing.
func (t *Tree[K]) RemoveE(key K) error {
	if !t.Remove(key) {
		return api.ErrorKeyMissing
	}
	return nil
}

// Clear remove all keys from the tree.
func (t *Tree[K]) Clear() {
	n := t.n_count
	t.root = nil
	t.n_count = 0
	t.n_deletes += n
	t.n_frees += n
	debugf("%v cleared %v keys\n", t.logprefix, n)
}

// Clone return a deep copy of this tree, with same shape and colors,
// named as name.
func (t *Tree[K]) Clone(name string) *Tree[K] {
	newt := NewTreeFunc[K](name, t.compare, t.setts)
	newt.setroot(newt.clonetree(t.root))
	newt.n_count = t.n_count
	newt.n_inserts = t.n_count
	debugf("%v cloned from %v with %v keys\n", newt.logprefix, t.name, t.n_count)
	return newt
}

//---- local functions

// get is Find without accounting.
func (t *Tree[K]) get(key K) *Node[K] {
	nd := t.root
	for nd != nil {
		switch c := t.compare(key, nd.key); {
		case c < 0:
			nd = nd.left
		case c > 0:
			nd = nd.right
		default:
			return nd
		}
	}
	return nil
}

func (t *Tree[K]) setroot(root *Node[K]) {
	if root != nil {
		root.parent = nil
	}
	t.root = root
}

// setparent is no-op if child is nil or tree is not maintaining
// parent links.
func (t *Tree[K]) setparent(child, parent *Node[K]) {
	if t.parentlinks && child != nil {
		child.parent = parent
	}
}

func (t *Tree[K]) newnode(key K) *Node[K] {
	t.n_nodes++
	return &Node[K]{key: key, color: Red}
}

// freenode detach nd, handles held by callers stay readable.
func (t *Tree[K]) freenode(nd *Node[K]) {
	nd.left, nd.right, nd.parent = nil, nil, nil
	t.n_frees++
}

func (t *Tree[K]) clonetree(nd *Node[K]) *Node[K] {
	if nd == nil {
		return nil
	}
	newnd := t.newnode(nd.key)
	newnd.color = nd.color
	newnd.left = t.clonetree(nd.left)
	t.setparent(newnd.left, newnd)
	newnd.right = t.clonetree(nd.right)
	t.setparent(newnd.right, newnd)
	return newnd
}

func minvaluenode[K any](nd *Node[K]) *Node[K] {
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

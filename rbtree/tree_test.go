package rbtree

import "strings"
import "testing"

import "github.com/stretchr/testify/require"
import "github.com/bnclabs/colortree/api"

func TestTreeEmpty(t *testing.T) {
	tree := NewTree[int]("empty", Defaultsettings())
	if tree.ID() != "empty" {
		t.Errorf("unexpected %v", tree.ID())
	} else if tree.Count() != 0 {
		t.Errorf("unexpected %v", tree.Count())
	} else if tree.Root() != nil {
		t.Errorf("unexpected %v", tree.Root())
	} else if tree.Height() != 0 {
		t.Errorf("unexpected %v", tree.Height())
	} else if tree.Contains(10) {
		t.Errorf("unexpected key in empty tree")
	} else if tree.Remove(10) {
		t.Errorf("unexpected remove in empty tree")
	} else if x := tree.Keys(); len(x) != 0 {
		t.Errorf("unexpected %v", x)
	}
	tree.Validate()
	tree.Log(true)
}

func TestTreeScenario(t *testing.T) {
	tree := NewTree[int]("scenario", nil)
	for _, key := range []int{10, 20, 5, 4} {
		if !tree.Insert(key) {
			t.Errorf("unexpected duplicate %v", key)
		}
	}
	if tree.Insert(4) {
		t.Errorf("expected duplicate 4")
	}
	for _, key := range []int{3, 18, 24, 35} {
		if !tree.Insert(key) {
			t.Errorf("unexpected duplicate %v", key)
		}
	}
	tree.Validate()

	if !tree.Contains(18) {
		t.Errorf("expected 18")
	} else if tree.Contains(30) {
		t.Errorf("unexpected 30")
	}
	require.Equal(t, []int{3, 4, 5, 10, 18, 20, 24, 35}, tree.Keys())

	if !tree.Remove(24) {
		t.Errorf("expected 24 to be removed")
	}
	tree.Validate()
	require.Equal(t, []int{3, 4, 5, 10, 18, 20, 35}, tree.Keys())
	if tree.Contains(24) {
		t.Errorf("unexpected 24")
	} else if tree.Count() != 7 {
		t.Errorf("unexpected %v", tree.Count())
	}
}

func TestTreeSetSemantics(t *testing.T) {
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		tree := NewTree[int]("set", setts)
		for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
			tree.Insert(key)
		}
		fp, count := tree.Fingerprint(), tree.Count()

		if tree.Insert(40) {
			t.Errorf("expected duplicate")
		} else if tree.Remove(45) {
			t.Errorf("unexpected remove")
		} else if x := tree.Fingerprint(); x != fp {
			t.Errorf("expected %v, got %v", fp, x)
		} else if x := tree.Count(); x != count {
			t.Errorf("expected %v, got %v", count, x)
		}

		if err := tree.InsertE(40); err != api.ErrorDuplicateKey {
			t.Errorf("unexpected %v", err)
		} else if err := tree.RemoveE(45); err != api.ErrorKeyMissing {
			t.Errorf("unexpected %v", err)
		} else if err := tree.InsertE(45); err != nil {
			t.Errorf("unexpected %v", err)
		} else if err := tree.RemoveE(45); err != nil {
			t.Errorf("unexpected %v", err)
		}

		stats := tree.Stats()
		if x := stats["n_dupinserts"].(int64); x != 2 {
			t.Errorf("unexpected %v", x)
		} else if x := stats["n_missdeletes"].(int64); x != 2 {
			t.Errorf("unexpected %v", x)
		}
		tree.Validate()
	}
}

func TestTreeRoundTrip(t *testing.T) {
	keys := []int{41, 7, 93, 15, 62, 3, 88, 29, 54, 71}
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		tree := NewTree[int]("roundtrip", setts)
		for _, key := range keys[:5] {
			tree.Insert(key)
		}
		before := tree.Keys()
		for _, key := range keys[5:] {
			tree.Insert(key)
			tree.Validate()
		}
		for _, key := range keys[5:] {
			if !tree.Remove(key) {
				t.Errorf("expected %v to be removed", key)
			}
			tree.Validate()
		}
		require.Equal(t, before, tree.Keys())

		for _, key := range keys[:5] {
			tree.Remove(key)
			tree.Validate()
		}
		if tree.Root() != nil {
			t.Errorf("unexpected %v", preorder(tree.Root()))
		} else if tree.Count() != 0 {
			t.Errorf("unexpected %v", tree.Count())
		}
	}
}

func TestTreeKeySubstitution(t *testing.T) {
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		tree := NewTree[int]("keysubst", setts)
		for _, key := range []int{10, 20, 5, 4, 3, 18, 24, 35} {
			tree.Insert(key)
		}

		// pick a node with two children, its successor's node goes away.
		var matched *Node[int]
		tree.walknodes(func(nd *Node[int], _ int64) bool {
			if nd.left != nil && nd.right != nil {
				matched = nd
				return false
			}
			return true
		})
		if matched == nil {
			t.Fatalf("no node with two children in %v", preorder(tree.Root()))
		}
		key := matched.Key()
		succkey := minvaluenode(matched.right).Key()

		keycopies := tree.Stats()["n_keycopies"].(int64)
		if !tree.Remove(key) {
			t.Fatalf("expected %v to be removed", key)
		}
		tree.Validate()

		if x := tree.Stats()["n_keycopies"].(int64); x != keycopies+1 {
			t.Errorf("expected %v, got %v", keycopies+1, x)
		}
		if tree.Contains(key) {
			t.Errorf("unexpected %v", key)
		}
		// matched survives, in llrb mode it can move within the tree.
		if x := matched.Key(); x != succkey {
			t.Errorf("expected %v, got %v", succkey, x)
		} else if x := tree.Find(succkey); x != matched {
			t.Errorf("expected %v, got %v", matched.repr(), x.repr())
		}
	}
}

func TestTreeKeySubstitutionFree(t *testing.T) {
	tree := NewTree[int]("keysubst", nil)
	for _, key := range []int{10, 20, 5, 4, 3, 18, 24, 35} {
		tree.Insert(key)
	}
	// 5B(4R(3R . .) 20R(10R(. 18R) 24R(. 35R)))
	nd20, nd24 := tree.Find(20), tree.Find(24)
	if !tree.Remove(20) {
		t.Fatalf("expected 20 to be removed")
	}
	if x := nd20.Key(); x != 24 {
		t.Errorf("unexpected %v", x)
	} else if x := tree.Find(24); x != nd20 {
		t.Errorf("unexpected %v", x.repr())
	} else if nd24.Left() != nil || nd24.Right() != nil || nd24.Parent() != nil {
		t.Errorf("expected detached node, got %v", nd24.repr())
	}
	require.Equal(t, []int{3, 4, 5, 10, 18, 24, 35}, tree.Keys())
	tree.Validate()
}

func TestTreeParentLinks(t *testing.T) {
	setts := Defaultsettings()
	setts["parentlinks"] = false
	tree := NewTree[int]("noparent", setts)
	for key := 0; key < 100; key++ {
		tree.Insert((key * 37) % 100)
	}
	for key := 0; key < 100; key += 3 {
		tree.Remove(key)
	}
	tree.Validate()
	tree.walknodes(func(nd *Node[int], _ int64) bool {
		if nd.Parent() != nil {
			t.Errorf("unexpected parent for %v", nd.repr())
			return false
		}
		return true
	})

	tree = NewTree[int]("parent", nil)
	for key := 0; key < 100; key++ {
		tree.Insert((key * 37) % 100)
	}
	for key := 0; key < 100; key += 3 {
		tree.Remove(key)
	}
	tree.walknodes(func(nd *Node[int], depth int64) bool {
		if depth == 1 && nd.Parent() != nil {
			t.Errorf("unexpected parent for root %v", nd.repr())
		} else if depth > 1 && nd.Parent() == nil {
			t.Errorf("missing parent for %v", nd.repr())
		} else if p := nd.Parent(); p != nil && p.Left() != nd && p.Right() != nd {
			t.Errorf("%v is not a child of %v", nd.repr(), p.repr())
		}
		return true
	})
}

func TestTreeComparator(t *testing.T) {
	reverse := func(a, b string) int {
		return -strings.Compare(a, b)
	}
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		tree := NewTreeFunc[string]("reverse", reverse, setts)
		for _, key := range []string{"banana", "apple", "cherry", "date"} {
			tree.Insert(key)
		}
		require.Equal(t, []string{"date", "cherry", "banana", "apple"}, tree.Keys())
		if tree.Insert("apple") {
			t.Errorf("expected duplicate")
		}
		tree.Validate()
	}

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		NewTreeFunc[string]("nilcompare", nil, nil)
	}()
}

func TestTreeSettings(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	setts := Defaultsettings()
	setts["fixup"] = "avl"
	NewTree[int]("badfixup", setts)
}

func TestTreeWalk(t *testing.T) {
	tree := NewTree[int]("walk", nil)
	for key := 100; key > 0; key-- {
		tree.Insert(key)
	}
	keys := []int{}
	tree.Walk(func(key int) bool {
		keys = append(keys, key)
		return len(keys) < 10
	})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, keys)

	var set api.Set[int] = tree
	if set.Count() != 100 {
		t.Errorf("unexpected %v", set.Count())
	}
}

func TestTreeClear(t *testing.T) {
	tree := NewTree[int]("clear", llrbsettings())
	for key := 0; key < 50; key++ {
		tree.Insert(key)
	}
	tree.Clear()
	tree.Validate()
	if tree.Count() != 0 || tree.Root() != nil {
		t.Errorf("unexpected %v", preorder(tree.Root()))
	}
	tree.Insert(10)
	tree.Validate()
	require.Equal(t, []int{10}, tree.Keys())
}

func TestTreeClone(t *testing.T) {
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		tree := NewTree[int]("orig", setts)
		for _, key := range []int{10, 20, 5, 4, 3, 18, 24, 35} {
			tree.Insert(key)
		}
		clone := tree.Clone("clone")
		if clone.ID() != "clone" {
			t.Errorf("unexpected %v", clone.ID())
		} else if x, y := tree.Fingerprint(), clone.Fingerprint(); x != y {
			t.Errorf("expected %v, got %v", x, y)
		} else if x, y := preorder(tree.Root()), preorder(clone.Root()); x != y {
			t.Errorf("expected %v, got %v", x, y)
		}
		clone.Validate()

		clone.Remove(10)
		clone.Insert(99)
		clone.Validate()
		require.Equal(t, []int{3, 4, 5, 10, 18, 20, 24, 35}, tree.Keys())
		require.Equal(t, []int{3, 4, 5, 18, 20, 24, 35, 99}, clone.Keys())
	}
}

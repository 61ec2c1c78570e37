package rbtree

import "testing"
import "math/rand"

import "github.com/stretchr/testify/require"
import "github.com/bnclabs/colortree/dict"

func TestPropertyAgainstDict(t *testing.T) {
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		rnd := rand.New(rand.NewSource(42))
		for trial := 0; trial < 20; trial++ {
			tree, ref := NewTree[int]("property", setts), dict.NewDict[int]("ref")
			for op := 0; op < 500; op++ {
				key := rnd.Intn(250)
				switch rnd.Intn(10) {
				case 0, 1, 2, 3, 4, 5:
					fp := tree.Fingerprint()
					if x, y := tree.Insert(key), ref.Insert(key); x != y {
						t.Fatalf("insert %v: expected %v, got %v", key, y, x)
					} else if !x && tree.Fingerprint() != fp {
						t.Fatalf("rejected insert %v mutated the tree", key)
					}
				case 6, 7, 8:
					fp := tree.Fingerprint()
					if x, y := tree.Remove(key), ref.Remove(key); x != y {
						t.Fatalf("remove %v: expected %v, got %v", key, y, x)
					} else if !x && tree.Fingerprint() != fp {
						t.Fatalf("rejected remove %v mutated the tree", key)
					}
				default:
					if x, y := tree.Contains(key), ref.Contains(key); x != y {
						t.Fatalf("contains %v: expected %v, got %v", key, y, x)
					}
				}
				if tree.Root().IsRed() {
					t.Fatalf("red root %v", preorder(tree.Root()))
				}
			}
			tree.Validate()
			require.Equal(t, ref.Count(), tree.Count())
			require.Equal(t, ref.Keys(), tree.Keys())
			ref.Walk(func(key int) bool {
				if !tree.Contains(key) {
					t.Errorf("missing %v", key)
				}
				return true
			})
		}
	}
}

func TestPropertyBlackHeight(t *testing.T) {
	// black height holds for both fixups, consecutive reds only for llrb.
	for _, setts := range []map[string]interface{}{nil, llrbsettings()} {
		rnd := rand.New(rand.NewSource(3))
		tree := NewTree[int]("blackheight", setts)
		redreds := int64(0)
		for op := 0; op < 2000; op++ {
			key := rnd.Intn(500)
			if rnd.Intn(3) > 0 {
				tree.Insert(key)
			} else {
				tree.Remove(key)
			}
			report, err := tree.Check()
			require.NoError(t, err)
			require.Equal(t, int64(0), report.Imbalances)
			redreds += report.RedReds
		}
		if tree.fixup == fixupLLRB && redreds != 0 {
			t.Errorf("unexpected %v", redreds)
		} else if tree.fixup == fixupColorflip && redreds == 0 {
			t.Errorf("expected consecutive reds")
		}
	}
}

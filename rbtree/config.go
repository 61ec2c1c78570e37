package rbtree

import "fmt"

import "github.com/bnclabs/colortree/lib"

// Defaultsettings for a tree instance.
//
// "fixup" (string, default: "colorflip")
//		Balancing applied while unwinding a mutation. "colorflip"
//		checks, at each level and in this order, left-left reds for a
//		right rotation, left and right reds for a left rotation and
//		both children red for a colour flip, applying only the first
//		match. "llrb" balances as left-leaning-red-black tree.
//
// "parentlinks" (bool, default: true)
//		Maintain parent back-references for each node.
//
// "strict" (bool, default: false)
//		Validate shall also fail on consecutive reds and on unequal
//		black height. Only the "llrb" fixup guarantees them.
//
// "height.maxfactor" (int64, default: 0)
//		If > 0, Validate shall fail when tree height exceeds
//		maxfactor * log2(count) + 1.
//
func Defaultsettings() lib.Settings {
	return lib.Settings{
		"fixup":            "colorflip",
		"parentlinks":      true,
		"strict":           false,
		"height.maxfactor": int64(0),
	}
}

const (
	fixupColorflip = "colorflip"
	fixupLLRB      = "llrb"
)

func (t *Tree[K]) readsettings(setts lib.Settings) {
	switch fixup := setts.String("fixup"); fixup {
	case fixupColorflip, fixupLLRB:
		t.fixup = fixup
	default:
		panic(fmt.Errorf("invalid fixup setting %q", fixup))
	}
	t.parentlinks = setts.Bool("parentlinks")
	t.strict = setts.Bool("strict")
	t.maxfactor = setts.Int64("height.maxfactor")
}

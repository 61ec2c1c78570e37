package main

import "fmt"
import "flag"
import "time"
import "math/rand"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/colortree/dict"
import "github.com/bnclabs/colortree/rbtree"

var verifyopts struct {
	ops      int
	keymax   int
	seed     int64
	validate int
	fixup    string
	setts    string
}

func parseVerifyopts(args []string) {
	f := flag.NewFlagSet("verify", flag.ExitOnError)

	f.IntVar(&verifyopts.ops, "ops", 100000,
		"number of random insert/remove/contains operations")
	f.IntVar(&verifyopts.keymax, "keymax", 1000,
		"generate keys between [0,keymax)")
	f.Int64Var(&verifyopts.seed, "seed", time.Now().UnixNano(),
		"seed for random operations")
	f.IntVar(&verifyopts.validate, "validate", 1000,
		"validate tree for every so many operations")
	f.StringVar(&verifyopts.fixup, "fixup", "",
		"colorflip or llrb, override settings file")
	f.StringVar(&verifyopts.setts, "settings", "",
		"toml file with rbtree and log settings")
	f.Parse(args)
}

func doVerify(args []string) {
	parseVerifyopts(args)
	setts := loadsettings(verifyopts.setts, verifyopts.fixup)

	fmt.Printf("Verifying with seed %v\n", verifyopts.seed)
	tree := rbtree.NewTree[int]("verify", setts)
	ref := dict.NewDict[int]("dict")
	if err := verify(tree, ref, verifyopts.ops, verifyopts.keymax); err != nil {
		fmt.Printf("verify failed: %v\n", err)
		tree.Log(true)
		return
	}
	fmsg := "Verified %v operations, %v keys\n"
	fmt.Printf(fmsg, humanize.Comma(int64(verifyopts.ops)), humanize.Comma(tree.Count()))
	tree.Log(true)
}

func verify(tree *rbtree.Tree[int], ref *dict.Dict[int], ops, keymax int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	rnd := rand.New(rand.NewSource(verifyopts.seed))
	for i := 0; i < ops; i++ {
		key := rnd.Intn(keymax)
		switch op := rnd.Intn(3); op {
		case 0:
			if x, y := tree.Insert(key), ref.Insert(key); x != y {
				return fmt.Errorf("op %v insert %v: expected %v, got %v", i, key, y, x)
			}
		case 1:
			if x, y := tree.Remove(key), ref.Remove(key); x != y {
				return fmt.Errorf("op %v remove %v: expected %v, got %v", i, key, y, x)
			}
		default:
			if x, y := tree.Contains(key), ref.Contains(key); x != y {
				return fmt.Errorf("op %v contains %v: expected %v, got %v", i, key, y, x)
			}
		}
		if verifyopts.validate > 0 && i%verifyopts.validate == 0 {
			tree.Validate()
		}
	}
	tree.Validate()

	keys, refkeys := tree.Keys(), ref.Keys()
	if len(keys) != len(refkeys) {
		return fmt.Errorf("expected %v keys, got %v", len(refkeys), len(keys))
	}
	for i, key := range keys {
		if key != refkeys[i] {
			return fmt.Errorf("key at %v: expected %v, got %v", i, refkeys[i], key)
		}
	}
	return nil
}

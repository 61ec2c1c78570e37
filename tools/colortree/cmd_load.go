package main

import "fmt"
import "flag"
import "time"
import "math/rand"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/colortree/rbtree"

var loadopts struct {
	n       int
	keymax  int
	seed    int64
	order   string
	fixup   string
	setts   string
	dotfile string
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	f.IntVar(&loadopts.n, "n", 100000,
		"number of keys to generate and insert")
	f.IntVar(&loadopts.keymax, "keymax", 0,
		"generate keys between [0,keymax), default 10*n")
	f.Int64Var(&loadopts.seed, "seed", time.Now().UnixNano(),
		"seed for random keys")
	f.StringVar(&loadopts.order, "order", "random",
		"random, asc or desc order of keys")
	f.StringVar(&loadopts.fixup, "fixup", "",
		"colorflip or llrb, override settings file")
	f.StringVar(&loadopts.setts, "settings", "",
		"toml file with rbtree and log settings")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump dot file output of the tree")
	f.Parse(args)

	if loadopts.keymax <= 0 {
		loadopts.keymax = 10 * loadopts.n
	}
}

func doLoad(args []string) {
	parseLoadopts(args)
	setts := loadsettings(loadopts.setts, loadopts.fixup)

	printsysmem("before load")
	tree := rbtree.NewTree[int]("load", setts)
	keys := generatekeys(loadopts.n, loadopts.keymax, loadopts.order, loadopts.seed)

	now := time.Now()
	for _, key := range keys {
		tree.Insert(key)
	}
	took := time.Since(now)
	fmsg := "Took %v to insert %v keys, %v unique\n"
	fmt.Printf(fmsg, took, humanize.Comma(int64(len(keys))), humanize.Comma(tree.Count()))

	now = time.Now()
	for _, key := range keys {
		tree.Contains(key)
	}
	fmt.Printf("Took %v to lookup %v keys\n", time.Since(now), len(keys))
	printsysmem("after load")

	tree.Validate()
	tree.Log(true)
	fmt.Println(tree.Logstring())

	dodotfile(tree, loadopts.dotfile)
}

func generatekeys(n, keymax int, order string, seed int64) []int {
	keys := make([]int, n)
	switch order {
	case "asc":
		for i := range keys {
			keys[i] = i
		}
	case "desc":
		for i := range keys {
			keys[i] = n - i - 1
		}
	default:
		rnd := rand.New(rand.NewSource(seed))
		for i := range keys {
			keys[i] = rnd.Intn(keymax)
		}
	}
	return keys
}

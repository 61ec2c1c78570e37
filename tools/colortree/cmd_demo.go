package main

import "os"
import "fmt"
import "flag"

import "github.com/bnclabs/colortree/lib"
import "github.com/bnclabs/colortree/rbtree"

var demoopts struct {
	keys    []int
	remove  int
	fixup   string
	setts   string
	dotfile string
}

func parseDemoopts(args []string) {
	f := flag.NewFlagSet("demo", flag.ExitOnError)

	var keys string
	f.StringVar(&keys, "keys", "10,20,5,4,4,3,18,24,35",
		"comma separated list of integer keys to insert")
	f.IntVar(&demoopts.remove, "remove", 24,
		"key to remove after inserting keys")
	f.StringVar(&demoopts.fixup, "fixup", "",
		"colorflip or llrb, override settings file")
	f.StringVar(&demoopts.setts, "settings", "",
		"toml file with rbtree and log settings")
	f.StringVar(&demoopts.dotfile, "dotfile", "",
		"dump dot file output of the final tree")
	f.Parse(args)

	demoopts.keys = parseints(lib.Parsecsv(keys))
}

func doDemo(args []string) {
	parseDemoopts(args)
	setts := loadsettings(demoopts.setts, demoopts.fixup)

	tree := rbtree.NewTree[int]("demo", setts)
	for _, key := range demoopts.keys {
		if !tree.Insert(key) {
			fmt.Printf("Duplicate key %v\n", key)
		}
	}

	fmt.Println("Red-Black Tree:")
	tree.PrintTree(os.Stdout)

	fmt.Printf("Contains 18: %v\n", tree.Contains(18))
	fmt.Printf("Contains 30: %v\n", tree.Contains(30))

	if tree.Remove(demoopts.remove) {
		fmt.Printf("After removing %v:\n", demoopts.remove)
	} else {
		fmt.Printf("Key %v not found:\n", demoopts.remove)
	}
	tree.PrintTree(os.Stdout)
	fmt.Println(tree.Logstring())

	dodotfile(tree, demoopts.dotfile)
}

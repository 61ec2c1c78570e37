package main

import "fmt"
import "os"
import "bytes"
import "strconv"
import "io/ioutil"

import "github.com/bnclabs/colortree/log"
import "github.com/bnclabs/colortree/rbtree"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("please provide a command: demo | load | verify")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		doDemo(os.Args[2:])
	case "load":
		doLoad(os.Args[2:])
	case "verify":
		doVerify(os.Args[2:])
	default:
		fmt.Println("please provide a valid command !!")
		os.Exit(1)
	}
}

func dodotfile(tree *rbtree.Tree[int], dotfile string) {
	if len(dotfile) == 0 {
		return
	}
	buffer := bytes.NewBuffer(nil)
	tree.Dotdump(buffer)
	if err := ioutil.WriteFile(dotfile, buffer.Bytes(), 0666); err != nil {
		log.Errorf("unable to write %q: %v\n", dotfile, err)
		return
	}
	fmt.Printf("dumped dot file to %v\n", dotfile)
}

func parseints(ss []string) []int {
	ns := make([]int, 0, len(ss))
	for _, s := range ss {
		n, err := strconv.Atoi(s)
		if err != nil {
			panic(fmt.Errorf("invalid integer %q", s))
		}
		ns = append(ns, n)
	}
	return ns
}

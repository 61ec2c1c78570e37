package rbtree

import "fmt"

import "github.com/bnclabs/colortree/lib"
import "github.com/bnclabs/colortree/log"

var _ = fmt.Sprintf("dummy")

func init() {
	setts := map[string]interface{}{
		"log.level": "ignore",
	}
	log.SetLogger(nil, setts)
	LogComponents("self")
}

// preorder render sub-tree as key+color(left right), "." for absent.
func preorder[K any](nd *Node[K]) string {
	if nd == nil {
		return "."
	}
	color := "R"
	if nd.IsBlack() {
		color = "B"
	}
	return fmt.Sprintf("%v%v(%v %v)", nd.key, color, preorder(nd.left), preorder(nd.right))
}

func llrbsettings() lib.Settings {
	setts := Defaultsettings()
	setts["fixup"] = "llrb"
	setts["strict"] = true
	return setts
}

package main

import "fmt"

import "github.com/pelletier/go-toml"
import "github.com/cloudfoundry/gosigar"
import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/colortree/lib"
import "github.com/bnclabs/colortree/log"
import "github.com/bnclabs/colortree/rbtree"

// loadsettings for rbtree and log, in that priority, settings file
// and fixup override the defaults.
//
//	fixup = "llrb"
//	strict = true
//	[height]
//	maxfactor = 2
//	[log]
//	level = "debug"
func loadsettings(setsfile, fixup string) lib.Settings {
	setts := make(lib.Settings).Mixin(
		log.Defaultsettings(), rbtree.Defaultsettings(),
	)
	if setsfile != "" {
		tree, err := toml.LoadFile(setsfile)
		if err != nil {
			panic(fmt.Errorf("loading %q: %v", setsfile, err))
		}
		setts = setts.Mixin(lib.Flatten(tree.ToMap()))
	}
	if fixup != "" {
		setts["fixup"] = fixup
	}
	log.SetLogger(nil, setts.Section("log."))
	if setts.String("log.level") != "ignore" {
		rbtree.LogComponents("rbtree")
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func printsysmem(what string) {
	total, used, free := getsysmem()
	fmsg := "%v system memory total:%v used:%v free:%v\n"
	fmt.Printf(fmsg, what, humanize.Bytes(total), humanize.Bytes(used), humanize.Bytes(free))
}

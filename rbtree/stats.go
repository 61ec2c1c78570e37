package rbtree

import "fmt"
import "strings"

import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/colortree/lib"
import "github.com/bnclabs/colortree/log"

type treestats struct {
	n_count        int64 // number of keys in the tree
	n_inserts      int64
	n_deletes      int64
	n_lookups      int64
	n_dupinserts   int64
	n_missdeletes  int64
	n_nodes        int64
	n_frees        int64
	n_rotatelefts  int64
	n_rotaterights int64
	n_flips        int64
	n_keycopies    int64
}

// Stats return tree counters and the insert depth histogram.
func (t *Tree[K]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":        t.n_count,
		"n_inserts":      t.n_inserts,
		"n_deletes":      t.n_deletes,
		"n_lookups":      t.n_lookups,
		"n_dupinserts":   t.n_dupinserts,
		"n_missdeletes":  t.n_missdeletes,
		"n_nodes":        t.n_nodes,
		"n_frees":        t.n_frees,
		"n_rotatelefts":  t.n_rotatelefts,
		"n_rotaterights": t.n_rotaterights,
		"n_flips":        t.n_flips,
		"n_keycopies":    t.n_keycopies,
		"h_insertdepth":  t.h_insertdepth.Fullstats(),
	}
}

// Fullstats walk the tree and add, to Stats, the height histogram,
// number of black nodes on the left most path and number of red nodes
// with red parent.
func (t *Tree[K]) Fullstats() map[string]interface{} {
	stats := t.Stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	t.walknodes(func(nd *Node[K], depth int64) bool {
		if nd.left == nil && nd.right == nil {
			h_height.Add(depth)
		}
		return true
	})
	report, _ := t.Check()
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = report.Blacks
	stats["n_redreds"] = report.RedReds
	stats["n_imbalances"] = report.Imbalances
	stats["height"] = report.Height
	return stats
}

// Log vital statistics, counts are comma separated when humanize.
func (t *Tree[K]) Log(humanize bool) {
	stats := t.Fullstats()
	if humanize {
		log.Infof("%v count: %v\n", t.logprefix, comma(t.n_count))
		fmsg := "%v inserts: %v  deletes: %v  lookups: %v\n"
		ins, dels := comma(t.n_inserts), comma(t.n_deletes)
		log.Infof(fmsg, t.logprefix, ins, dels, comma(t.n_lookups))
		fmsg = "%v rotations: %v/%v  flips: %v  keycopies: %v\n"
		rl, rr := comma(t.n_rotatelefts), comma(t.n_rotaterights)
		flips, kcs := comma(t.n_flips), comma(t.n_keycopies)
		log.Infof(fmsg, t.logprefix, rl, rr, flips, kcs)
	}

	h_height := stats["h_height"].(map[string]interface{})
	delete(stats, "h_height")
	h_insertdepth := stats["h_insertdepth"].(map[string]interface{})
	delete(stats, "h_insertdepth")

	text := lib.Prettystats(stats, humanize)
	log.Infof("%v stats %v\n", t.logprefix, text)
	log.Infof("%v h_insertdepth %v\n", t.logprefix, lib.Prettystats(h_insertdepth, false))
	log.Infof("%v h_height %v\n", t.logprefix, lib.Prettystats(h_height, false))
}

func comma(n int64) string {
	return humanize.Comma(n)
}

// Logstring return tree shape summary as single line.
func (t *Tree[K]) Logstring() string {
	report, err := t.Check()
	ss := []string{
		fmt.Sprintf("count:%v", report.Count),
		fmt.Sprintf("height:%v", report.Height),
		fmt.Sprintf("blacks:%v", report.Blacks),
		fmt.Sprintf("redreds:%v", report.RedReds),
	}
	if err != nil {
		ss = append(ss, fmt.Sprintf("err:%q", err.Error()))
	}
	return fmt.Sprintf("%v {%v}", t.logprefix, strings.Join(ss, " "))
}

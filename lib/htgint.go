package lib

import "fmt"
import "math"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram over int64 samples, bucketed in
// fixed width between [from, till). Samples below from and at or above
// till are counted in the two overflow buckets.
type HistogramInt64 struct {
	n       int64
	minval  int64
	maxval  int64
	sum     int64
	sumsq   float64
	buckets []int64
	from    int64
	till    int64
	width   int64
}

// NewhistorgramInt64 return a new histogram object.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from, till = (from/width)*width, (till/width)*width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, ((till-from)/width)+2)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	if h.n == 0 || sample < h.minval {
		h.minval = sample
	}
	if h.n == 0 || sample > h.maxval {
		h.maxval = sample
	}
	h.n++
	h.sum += sample
	h.sumsq += float64(sample) * float64(sample)

	switch {
	case sample < h.from:
		h.buckets[0]++
	case sample >= h.till:
		h.buckets[len(h.buckets)-1]++
	default:
		h.buckets[((sample-h.from)/h.width)+1]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return h.sum / h.n
}

// Variance return the squared deviation of a random sample from
// its mean.
func (h *HistogramInt64) Variance() float64 {
	if h.n == 0 {
		return 0
	}
	mean := float64(h.sum) / float64(h.n)
	if v := (h.sumsq / float64(h.n)) - (mean * mean); v > 0 {
		return v
	}
	return 0
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (h *HistogramInt64) SD() float64 {
	return math.Sqrt(h.Variance())
}

// Stats return, for each bucket boundary, the cumulative count of
// samples below that boundary. Overflow bucket is keyed as "+" and
// holds the total count.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	last := len(h.buckets) - 1
	for last >= 0 && h.buckets[last] == 0 {
		last--
	}
	cumm := int64(0)
	for i := 0; i <= last; i++ {
		cumm += h.buckets[i]
		if i == last {
			m["+"] = cumm
			break
		}
		m[strconv.Itoa(int(h.from+int64(i)*h.width))] = cumm
	}
	return m
}

// Fullstats includes mean, variance, stddeviance in the Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Stats() {
		hmap[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   hmap,
	}
}

// Logstring return Fullstats as loggable string, with keys sorted.
func (h *HistogramInt64) Logstring() string {
	fmsg := `{"samples": %v,"min": %v,"max": %v,"mean": %v,"histogram": {%v}}`
	stats := h.Stats()
	bounds := make([]int, 0, len(stats))
	for k := range stats {
		if k != "+" {
			n, _ := strconv.Atoi(k)
			bounds = append(bounds, n)
		}
	}
	sort.Ints(bounds)
	ss := make([]string, 0, len(stats))
	for _, n := range bounds {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, n, stats[strconv.Itoa(n)]))
	}
	if total, ok := stats["+"]; ok {
		ss = append(ss, fmt.Sprintf(`"+": %v`, total))
	}
	hs := strings.Join(ss, ",")
	return fmt.Sprintf(fmsg, h.n, h.minval, h.maxval, h.Mean(), hs)
}

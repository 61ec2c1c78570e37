// Package dict implement an ordered set of keys based on golang map.
// Primarily meant as reference for testing more useful ordered-set
// algorithms.
package dict

import "cmp"

import "golang.org/x/exp/maps"
import "golang.org/x/exp/slices"
import "github.com/bnclabs/colortree/api"

var _ api.Set[int] = (*Dict[int])(nil)

// Dict is a reference data structure, for validation purpose.
type Dict[K comparable] struct {
	id       string
	dict     map[K]struct{}
	sortkeys []K // nil when stale
	compare  api.Comparator[K]
}

// NewDict create a new golang map for ordered keys.
func NewDict[K cmp.Ordered](id string) *Dict[K] {
	return NewDictFunc[K](id, api.OrderedCompare[K])
}

// NewDictFunc create a new golang map, ordering keys by compare.
func NewDictFunc[K comparable](id string, compare api.Comparator[K]) *Dict[K] {
	return &Dict[K]{
		id:      id,
		dict:    make(map[K]struct{}),
		compare: compare,
	}
}

// ID implement api.Set{} interface.
func (d *Dict[K]) ID() string {
	return d.id
}

// Count implement api.Set{} interface.
func (d *Dict[K]) Count() int64 {
	return int64(len(d.dict))
}

// Contains implement api.Set{} interface.
func (d *Dict[K]) Contains(key K) bool {
	_, ok := d.dict[key]
	return ok
}

// Insert implement api.Set{} interface.
func (d *Dict[K]) Insert(key K) bool {
	if _, ok := d.dict[key]; ok {
		return false
	}
	d.dict[key] = struct{}{}
	d.sortkeys = nil
	return true
}

// Remove implement api.Set{} interface.
func (d *Dict[K]) Remove(key K) bool {
	if _, ok := d.dict[key]; !ok {
		return false
	}
	delete(d.dict, key)
	d.sortkeys = nil
	return true
}

// Walk implement api.Set{} interface.
func (d *Dict[K]) Walk(callb api.KeyCallb[K]) {
	for _, key := range d.sorted() {
		if !callb(key) {
			return
		}
	}
}

// Keys return a copy of all keys in sort order.
func (d *Dict[K]) Keys() []K {
	return slices.Clone(d.sorted())
}

// Min return the smallest key, false if dict is empty.
func (d *Dict[K]) Min() (key K, ok bool) {
	if keys := d.sorted(); len(keys) > 0 {
		return keys[0], true
	}
	return key, false
}

// Max return the largest key, false if dict is empty.
func (d *Dict[K]) Max() (key K, ok bool) {
	if keys := d.sorted(); len(keys) > 0 {
		return keys[len(keys)-1], true
	}
	return key, false
}

func (d *Dict[K]) sorted() []K {
	if d.sortkeys == nil {
		d.sortkeys = maps.Keys(d.dict)
		slices.SortFunc(d.sortkeys, func(a, b K) bool {
			return d.compare(a, b) < 0
		})
	}
	return d.sortkeys
}

// Package api define types and interfaces common to all ordered-set
// implementations in this module.
package api

// KeyCallb callback from Walk API, return false to stop the walk.
type KeyCallb[K any] func(key K) bool

// Comparator three-way comparison between keys, return a negative
// number if a < b, zero if a == b and a positive number if a > b.
type Comparator[K any] func(a, b K) int

// Set interface for managing a collection of unique keys kept in sort
// order. Implementations are not safe for concurrent mutation.
type Set[K any] interface {
	// ID return set id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of keys in the set.
	Count() int64

	// Insert key into the set. Return false, without mutating the set,
	// if key is already present.
	Insert(key K) bool

	// Remove key from the set. Return false, without mutating the set,
	// if key is missing.
	Remove(key K) bool

	// Contains return whether key is present in the set.
	Contains(key K) bool

	// Walk over all keys in ascending order, until callb returns false.
	Walk(callb KeyCallb[K])
}

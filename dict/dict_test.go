package dict

import "testing"
import "strings"

import "github.com/stretchr/testify/require"

func TestDict(t *testing.T) {
	d := NewDict[int]("dict")
	if d.ID() != "dict" {
		t.Errorf("unexpected %v", d.ID())
	} else if d.Count() != 0 {
		t.Fatalf("expected an empty dict")
	} else if _, ok := d.Min(); ok {
		t.Errorf("unexpected min in empty dict")
	} else if _, ok := d.Max(); ok {
		t.Errorf("unexpected max in empty dict")
	}

	for _, key := range []int{10, 20, 5, 4, 3, 18, 24, 35} {
		if !d.Insert(key) {
			t.Errorf("unexpected duplicate %v", key)
		}
	}
	if d.Insert(4) {
		t.Errorf("expected duplicate")
	} else if d.Count() != 8 {
		t.Errorf("unexpected %v", d.Count())
	} else if !d.Contains(18) || d.Contains(30) {
		t.Errorf("unexpected membership")
	}
	require.Equal(t, []int{3, 4, 5, 10, 18, 20, 24, 35}, d.Keys())

	if x, ok := d.Min(); !ok || x != 3 {
		t.Errorf("unexpected %v", x)
	} else if x, ok := d.Max(); !ok || x != 35 {
		t.Errorf("unexpected %v", x)
	}

	if !d.Remove(24) {
		t.Errorf("expected 24 to be removed")
	} else if d.Remove(24) {
		t.Errorf("unexpected remove")
	}
	require.Equal(t, []int{3, 4, 5, 10, 18, 20, 35}, d.Keys())

	keys := []int{}
	d.Walk(func(key int) bool {
		keys = append(keys, key)
		return len(keys) < 3
	})
	require.Equal(t, []int{3, 4, 5}, keys)
}

func TestDictFunc(t *testing.T) {
	reverse := func(a, b string) int { return -strings.Compare(a, b) }
	d := NewDictFunc[string]("reverse", reverse)
	for _, key := range []string{"banana", "apple", "cherry"} {
		d.Insert(key)
	}
	require.Equal(t, []string{"cherry", "banana", "apple"}, d.Keys())

	// Keys return a copy.
	keys := d.Keys()
	keys[0] = "zebra"
	require.Equal(t, []string{"cherry", "banana", "apple"}, d.Keys())
}

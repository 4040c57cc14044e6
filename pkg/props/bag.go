// Package props implements containers of named variant properties.
package props

import (
	"sort"

	"src.pless.dev/pkg/hash"
	"src.pless.dev/pkg/variant"
)

// Bag is a set of named variant properties. Names are kept in insertion
// order; setting an existing name keeps its position.
//
// The zero value is an empty Bag ready to use. A Bag is not safe for
// concurrent use.
type Bag struct {
	names  []string
	values map[string]variant.Variant
	// byHash maps the hash of a value to the names holding a value with that
	// hash.
	byHash map[uint32][]string
}

// New returns an empty Bag.
func New() *Bag { return &Bag{} }

// Len returns the number of properties.
func (b *Bag) Len() int { return len(b.names) }

// Get returns the value of a property.
func (b *Bag) Get(name string) (variant.Variant, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Has reports whether a property exists.
func (b *Bag) Has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Set sets the value of a property.
func (b *Bag) Set(name string, v variant.Variant) {
	if b.values == nil {
		b.values = make(map[string]variant.Variant)
		b.byHash = make(map[uint32][]string)
	}
	if old, ok := b.values[name]; ok {
		b.unindex(name, old)
	} else {
		b.names = append(b.names, name)
	}
	b.values[name] = v
	h := v.Hash()
	b.byHash[h] = append(b.byHash[h], name)
}

// Delete removes a property and reports whether it existed.
func (b *Bag) Delete(name string) bool {
	old, ok := b.values[name]
	if !ok {
		return false
	}
	b.unindex(name, old)
	delete(b.values, name)
	b.names = remove(b.names, name)
	return true
}

func (b *Bag) unindex(name string, old variant.Variant) {
	h := old.Hash()
	if names := remove(b.byHash[h], name); len(names) > 0 {
		b.byHash[h] = names
	} else {
		delete(b.byHash, h)
	}
}

func remove(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i:i], names[i+1:]...)
		}
	}
	return names
}

// Names returns the property names in insertion order.
func (b *Bag) Names() []string {
	return append([]string(nil), b.names...)
}

// Each calls f for each property in insertion order, stopping when f returns
// false.
func (b *Bag) Each(f func(name string, v variant.Variant) bool) {
	for _, name := range b.names {
		if !f(name, b.values[name]) {
			return
		}
	}
}

// Clone returns a copy of b. String and Object values share their
// references with b.
func (b *Bag) Clone() *Bag {
	c := New()
	b.Each(func(name string, v variant.Variant) bool {
		c.Set(name, v)
		return true
	})
	return c
}

// Equal reports whether b and other hold the same names with equal values,
// regardless of order.
func (b *Bag) Equal(other *Bag) bool {
	if b.Len() != other.Len() {
		return false
	}
	for name, v := range b.values {
		ov, ok := other.values[name]
		if !ok || !variant.Equal(v, ov) {
			return false
		}
	}
	return true
}

// Hash returns a hash that does not depend on insertion order. Bags that are
// Equal have the same hash as long as their values hash consistently.
func (b *Bag) Hash() uint32 {
	var h uint32
	for name, v := range b.values {
		h += hash.DJB(hash.String(name), v.Hash())
	}
	return h
}

// SortedNames returns the property names ordered by their values. Ties keep
// insertion order. It fails if two values cannot be ordered against each
// other.
func (b *Bag) SortedNames() ([]string, error) {
	names := b.Names()
	var err error
	sort.SliceStable(names, func(i, j int) bool {
		if err != nil {
			return false
		}
		var c int
		c, err = variant.Compare(b.values[names[i]], b.values[names[j]])
		return c < 0
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Lookup returns the names of the properties whose value is equal to v, in
// insertion order. Candidates are found by variant.Hash, which only agrees
// within a family, so a property is only found if its value is of the same
// family as v: Lookup(Decimal 1) does not find Int64 1, and Lookup(Boolean
// true) does not find String "True".
func (b *Bag) Lookup(v variant.Variant) []string {
	var found []string
	for _, name := range b.byHash[v.Hash()] {
		if variant.Equal(b.values[name], v) {
			found = append(found, name)
		}
	}
	sort.Slice(found, func(i, j int) bool { return b.index(found[i]) < b.index(found[j]) })
	return found
}

func (b *Bag) index(name string) int {
	for i, n := range b.names {
		if n == name {
			return i
		}
	}
	return -1
}

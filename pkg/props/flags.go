package props

import "src.pless.dev/pkg/variant"

// Flags is a set of variants. Membership is decided by variant.Equal within
// buckets of equal variant.Hash, so Int16 3 and Int64 3 are the same member.
// Hashes only agree within a family, so Decimal 3 and Int64 3 are distinct
// members even though variant.Equal considers them equal.
//
// The zero value is an empty set ready to use.
type Flags struct {
	buckets map[uint32][]variant.Variant
	n       int
}

// NewFlags returns a set holding the given values.
func NewFlags(vs ...variant.Variant) *Flags {
	f := &Flags{}
	for _, v := range vs {
		f.Add(v)
	}
	return f
}

// Len returns the number of members.
func (f *Flags) Len() int { return f.n }

// Add adds v and reports whether it was not already a member.
func (f *Flags) Add(v variant.Variant) bool {
	if f.Contains(v) {
		return false
	}
	if f.buckets == nil {
		f.buckets = make(map[uint32][]variant.Variant)
	}
	h := v.Hash()
	f.buckets[h] = append(f.buckets[h], v)
	f.n++
	return true
}

// Remove removes v and reports whether it was a member.
func (f *Flags) Remove(v variant.Variant) bool {
	h := v.Hash()
	bucket := f.buckets[h]
	for i, m := range bucket {
		if variant.Equal(m, v) {
			if len(bucket) == 1 {
				delete(f.buckets, h)
			} else {
				f.buckets[h] = append(bucket[:i:i], bucket[i+1:]...)
			}
			f.n--
			return true
		}
	}
	return false
}

// Contains reports whether v is a member.
func (f *Flags) Contains(v variant.Variant) bool {
	for _, m := range f.buckets[v.Hash()] {
		if variant.Equal(m, v) {
			return true
		}
	}
	return false
}

// Values returns the members in no particular order.
func (f *Flags) Values() []variant.Variant {
	vs := make([]variant.Variant, 0, f.n)
	for _, bucket := range f.buckets {
		vs = append(vs, bucket...)
	}
	return vs
}

package props

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	. "src.pless.dev/pkg/tt"
	"src.pless.dev/pkg/variant"
)

func sampleBag() *Bag {
	b := New()
	b.Set("c", variant.FromInt64(3))
	b.Set("a", variant.WithTag(variant.Int32, int64(1)))
	b.Set("b", variant.WithTag(variant.Int16, int64(2)))
	return b
}

func TestBag_SetGet(t *testing.T) {
	b := sampleBag()
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
	Test(t, Fn("Get", b.Get),
		Args("a").Rets(variant.FromInt64(1), true),
		Args("x").Rets(variant.Variant{}, false),
	)
	Test(t, Fn("Has", b.Has),
		Args("b").Rets(true),
		Args("x").Rets(false),
	)
	v, _ := b.Get("a")
	variant.TestVariant(t, v).Tag(variant.Int32)
}

func TestBag_InsertionOrder(t *testing.T) {
	b := sampleBag()
	b.Set("c", variant.FromString("replaced"))
	b.Set("d", variant.Zero)
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, b.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}

	var seen []string
	b.Each(func(name string, v variant.Variant) bool {
		seen = append(seen, name)
		return name != "a"
	})
	if diff := cmp.Diff([]string{"c", "a"}, seen); diff != "" {
		t.Errorf("Each stopped at (-want +got):\n%s", diff)
	}
}

func TestBag_Delete(t *testing.T) {
	b := sampleBag()
	if !b.Delete("a") {
		t.Errorf("Delete(a) = false")
	}
	if b.Delete("a") {
		t.Errorf("second Delete(a) = true")
	}
	if diff := cmp.Diff([]string{"c", "b"}, b.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
	if got := b.Lookup(variant.FromInt64(1)); len(got) != 0 {
		t.Errorf("Lookup after Delete = %v", got)
	}
}

func TestBag_ZeroValue(t *testing.T) {
	var b Bag
	if b.Len() != 0 || b.Has("x") || b.Delete("x") {
		t.Errorf("zero Bag is not empty")
	}
	b.Set("x", variant.FromBool(true))
	if !b.Has("x") {
		t.Errorf("zero Bag does not keep values")
	}
}

func TestBag_CloneAndEqual(t *testing.T) {
	b := sampleBag()
	c := b.Clone()
	if !b.Equal(c) || b.Hash() != c.Hash() {
		t.Errorf("clone is not equal")
	}
	c.Set("a", variant.FromInt64(100))
	if b.Equal(c) {
		t.Errorf("changing the clone changed the original")
	}
	if v, _ := b.Get("a"); v.AsInt() != 1 {
		t.Errorf("original a = %v", v)
	}

	// Order does not matter.
	d := New()
	d.Set("b", variant.FromInt64(2))
	d.Set("a", variant.FromInt64(1))
	d.Set("c", variant.FromInt64(3))
	if !b.Equal(d) || b.Hash() != d.Hash() {
		t.Errorf("bags differing only in order are not equal")
	}
	d.Delete("c")
	if b.Equal(d) {
		t.Errorf("bags of different sizes are equal")
	}
}

func TestBag_SortedNames(t *testing.T) {
	b := sampleBag()
	names, err := b.SortedNames()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("SortedNames() (-want +got):\n%s", diff)
	}

	b.Set("s", variant.FromString("x"))
	_, err = b.SortedNames()
	if !errors.Is(err, variant.ErrArgument) {
		t.Errorf("SortedNames() with mixed types: got error %v, want ErrArgument", err)
	}
}

func TestBag_Lookup(t *testing.T) {
	b := New()
	b.Set("one", variant.FromInt64(1))
	b.Set("uno", variant.WithTag(variant.Int32, int64(1)))
	b.Set("str", variant.FromString("1"))
	b.Set("eins", variant.WithTag(variant.SByte, int64(1)))
	b.Set("uno", variant.FromInt64(1))
	b.Set("yes", variant.FromString("True"))

	Test(t, Fn("Lookup", b.Lookup),
		Args(variant.FromInt64(1)).Rets([]string{"one", "uno", "eins"}),
		Args(variant.FromString("1")).Rets([]string{"str"}),
		Args(variant.FromInt64(2)).Rets([]string(nil)),
		// Values equal across families are not found.
		Args(variant.FromDecimal(decimal.NewFromInt(1))).Rets([]string(nil)),
		Args(variant.FromBool(true)).Rets([]string(nil)),
		Args(variant.FromString("True")).Rets([]string{"yes"}),
	)
}

package variant

import (
	"errors"
	"testing"
)

// Tester is a helper for testing properties of a variant.
type Tester struct {
	t *testing.T
	v Variant
}

// TestVariant returns a Tester.
func TestVariant(t *testing.T, v Variant) Tester {
	return Tester{t, v}
}

// Tag tests the tag of the variant.
func (vt Tester) Tag(wantTag Tag) Tester {
	vt.t.Helper()
	if tag := vt.v.Tag(); tag != wantTag {
		vt.t.Errorf("Tag() = %s, want %s", tag, wantTag)
	}
	return vt
}

// Null tests IsNull of the variant.
func (vt Tester) Null(wantNull bool) Tester {
	vt.t.Helper()
	if null := vt.v.IsNull(); null != wantNull {
		vt.t.Errorf("IsNull() = %v, want %v", null, wantNull)
	}
	return vt
}

// String tests the invariant general format of the variant.
func (vt Tester) String(wantString string) Tester {
	vt.t.Helper()
	if s := vt.v.String(); s != wantString {
		vt.t.Errorf("String() = %q, want %q", s, wantString)
	}
	return vt
}

// Hash tests the hash of the variant.
func (vt Tester) Hash(wantHash uint32) Tester {
	vt.t.Helper()
	if h := vt.v.Hash(); h != wantHash {
		vt.t.Errorf("Hash() = %v, want %v", h, wantHash)
	}
	return vt
}

// Equal tests that the variant is Equal to every of the given variants, and
// that their hashes match.
func (vt Tester) Equal(others ...Variant) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %s %q) = false, want true", other.Tag(), other)
		} else if other.ext() == vt.v.ext() && vt.v.Hash() != other.Hash() {
			vt.t.Errorf("Hash(v) = %v, Hash(%s %q) = %v, want equal",
				vt.v.Hash(), other.Tag(), other, other.Hash())
		}
	}
	return vt
}

// NotEqual tests that the variant is not Equal to any of the given variants.
func (vt Tester) NotEqual(others ...Variant) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %s %q) = true, want false", other.Tag(), other)
		}
	}
	return vt
}

// CompareError tests that ordering the variant against each of the given
// variants fails with an error that matches target.
func (vt Tester) CompareError(target error, others ...Variant) Tester {
	vt.t.Helper()
	for _, other := range others {
		_, err := Compare(vt.v, other)
		if !errors.Is(err, target) {
			vt.t.Errorf("Compare(v, %s %q) returns error %v, want %v", other.Tag(), other, err, target)
		}
	}
	return vt
}

package variant

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Equaler is implemented by objects that define their own equality.
type Equaler interface {
	Equal(other any) bool
}

// Hasher is implemented by objects that define their own hash code.
type Hasher interface {
	Hash() uint32
}

// objectExtender converts objects of the Go types that Of maps to a
// primitive tag by delegating to that tag's extender. The null object
// converts like Empty. Objects of other types cannot be converted.
type objectExtender struct{}

func unwrap(v Variant, to Tag) (Variant, error) {
	pv, ok := primitiveOf(v.ref)
	if !ok {
		return Variant{}, invalidCast(Object, to)
	}
	return pv, nil
}

func (objectExtender) ToBoolean(v Variant, p FormatProvider) (bool, error) {
	pv, err := unwrap(v, Boolean)
	if err != nil {
		return false, err
	}
	return pv.ext().ToBoolean(pv, p)
}

func (objectExtender) ToChar(v Variant, p FormatProvider) (rune, error) {
	pv, err := unwrap(v, Char)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToChar(pv, p)
}

func (objectExtender) ToSByte(v Variant, p FormatProvider) (int8, error) {
	pv, err := unwrap(v, SByte)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToSByte(pv, p)
}

func (objectExtender) ToByte(v Variant, p FormatProvider) (uint8, error) {
	pv, err := unwrap(v, Byte)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToByte(pv, p)
}

func (objectExtender) ToInt16(v Variant, p FormatProvider) (int16, error) {
	pv, err := unwrap(v, Int16)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToInt16(pv, p)
}

func (objectExtender) ToUInt16(v Variant, p FormatProvider) (uint16, error) {
	pv, err := unwrap(v, UInt16)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToUInt16(pv, p)
}

func (objectExtender) ToInt32(v Variant, p FormatProvider) (int32, error) {
	pv, err := unwrap(v, Int32)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToInt32(pv, p)
}

func (objectExtender) ToUInt32(v Variant, p FormatProvider) (uint32, error) {
	pv, err := unwrap(v, UInt32)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToUInt32(pv, p)
}

func (objectExtender) ToInt64(v Variant, p FormatProvider) (int64, error) {
	pv, err := unwrap(v, Int64)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToInt64(pv, p)
}

func (objectExtender) ToUInt64(v Variant, p FormatProvider) (uint64, error) {
	pv, err := unwrap(v, UInt64)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToUInt64(pv, p)
}

func (objectExtender) ToSingle(v Variant, p FormatProvider) (float32, error) {
	pv, err := unwrap(v, Single)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToSingle(pv, p)
}

func (objectExtender) ToDouble(v Variant, p FormatProvider) (float64, error) {
	pv, err := unwrap(v, Double)
	if err != nil {
		return 0, err
	}
	return pv.ext().ToDouble(pv, p)
}

func (objectExtender) ToDecimal(v Variant, p FormatProvider) (decimal.Decimal, error) {
	pv, err := unwrap(v, Decimal)
	if err != nil {
		return decimal.Zero, err
	}
	return pv.ext().ToDecimal(pv, p)
}

func (objectExtender) ToDateTime(v Variant, p FormatProvider) (time.Time, error) {
	pv, err := unwrap(v, DateTime)
	if err != nil {
		return time.Time{}, err
	}
	return pv.ext().ToDateTime(pv, p)
}

// Format formats primitive objects like the corresponding variant, and any
// other object with fmt.
func (objectExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	if pv, ok := primitiveOf(v.ref); ok {
		return pv.ext().Format(pv, format, p)
	}
	return fmt.Sprint(v.ref), nil
}

func (objectExtender) Hash(v Variant) uint32 {
	if h, ok := v.ref.(Hasher); ok {
		return h.Hash()
	}
	if pv, ok := primitiveOf(v.ref); ok {
		return pv.Hash()
	}
	return 0
}

func (objectExtender) Equal(a, b Variant) bool {
	if b.tag != Object {
		return false
	}
	x, y := a.ref, b.ref
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if eq, ok := x.(Equaler); ok {
		return eq.Equal(y)
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	// Decimals hold a pointer and times a location, so == is not equality.
	if px, ok := primitiveOf(x); ok {
		if py, ok := primitiveOf(y); ok {
			return Equal(px, py)
		}
	}
	if reflect.TypeOf(x).Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// Compare always fails: objects are not ordered.
func (objectExtender) Compare(a, b Variant) (int, error) {
	return 0, fmt.Errorf("%w: %T", ErrIncomparable, a.ref)
}

func (objectExtender) GetAsObject(v Variant) any { return v.ref }

func (e objectExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

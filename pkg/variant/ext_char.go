package variant

import (
	"cmp"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// charExtender converts a rune by its code point.
type charExtender struct{}

// ToBoolean is true for 'T' and 't' only.
func (charExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	r := v.AsChar()
	return r == 'T' || r == 't', nil
}

func (charExtender) ToChar(v Variant, _ FormatProvider) (rune, error) { return v.AsChar(), nil }

func (charExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return signedFromInt[int8](int64(v.AsChar()), Char, SByte)
}

func (charExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return unsignedFromInt[uint8](int64(v.AsChar()), Char, Byte)
}

func (charExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return signedFromInt[int16](int64(v.AsChar()), Char, Int16)
}

func (charExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return unsignedFromInt[uint16](int64(v.AsChar()), Char, UInt16)
}

func (charExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return v.AsChar(), nil
}

func (charExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return unsignedFromInt[uint32](int64(v.AsChar()), Char, UInt32)
}

func (charExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return int64(v.AsChar()), nil
}

func (charExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return unsignedFromInt[uint64](int64(v.AsChar()), Char, UInt64)
}

func (charExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return 0, invalidCast(Char, Single)
}

func (charExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return 0, invalidCast(Char, Double)
}

func (charExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimal.Zero, invalidCast(Char, Decimal)
}

func (charExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(Char, DateTime)
}

func (charExtender) Format(v Variant, _ string, _ FormatProvider) (string, error) {
	return string(v.AsChar()), nil
}

func (charExtender) Hash(v Variant) uint32 { return hash.UInt32(uint32(v.AsChar())) }

func (charExtender) Equal(a, b Variant) bool {
	return b.tag == Char && a.AsChar() == b.AsChar()
}

func (charExtender) Compare(a, b Variant) (int, error) {
	if b.tag != Char {
		return 0, &CompareError{a.tag, b.tag}
	}
	return cmp.Compare(a.AsChar(), b.AsChar()), nil
}

func (charExtender) GetAsObject(v Variant) any { return v.AsChar() }

func (e charExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

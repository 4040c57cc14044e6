package variant

import (
	"cmp"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// floatExtender serves Single (bits 32) and Double (bits 64). The two are
// distinct families.
//
// Conversions to integers round half to even; NaN, infinities and values
// out of range overflow. NaN equals NaN and sorts before every number, and
// -0 equals +0.
type floatExtender struct{ bits int }

func (e floatExtender) value(v Variant) float64 {
	if e.bits == 32 {
		return float64(v.AsSingle())
	}
	return v.AsDouble()
}

func (e floatExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return e.value(v) != 0, nil
}

func (e floatExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	return 0, invalidCast(v.tag, Char)
}

func (e floatExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return signedFromFloat[int8](e.value(v), v.tag, SByte)
}

func (e floatExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return unsignedFromFloat[uint8](e.value(v), v.tag, Byte)
}

func (e floatExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return signedFromFloat[int16](e.value(v), v.tag, Int16)
}

func (e floatExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return unsignedFromFloat[uint16](e.value(v), v.tag, UInt16)
}

func (e floatExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return signedFromFloat[int32](e.value(v), v.tag, Int32)
}

func (e floatExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return unsignedFromFloat[uint32](e.value(v), v.tag, UInt32)
}

func (e floatExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return signedFromFloat[int64](e.value(v), v.tag, Int64)
}

func (e floatExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return unsignedFromFloat[uint64](e.value(v), v.tag, UInt64)
}

func (e floatExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return float32(e.value(v)), nil
}

func (e floatExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return e.value(v), nil
}

func (e floatExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimalFromFloat(e.value(v), e.bits, v.tag)
}

func (e floatExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(v.tag, DateTime)
}

func (e floatExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	return formatNumber(floatNumber(e.value(v), v.tag), format, p)
}

func (e floatExtender) Hash(v Variant) uint32 {
	if e.bits == 32 {
		return hash.Float32(v.AsSingle())
	}
	return hash.Float64(v.AsDouble())
}

func (e floatExtender) Equal(a, b Variant) bool {
	return sameFamily(a.tag, b.tag) && cmp.Compare(e.value(a), e.value(b)) == 0
}

func (e floatExtender) Compare(a, b Variant) (int, error) {
	if !sameFamily(a.tag, b.tag) {
		return 0, &CompareError{a.tag, b.tag}
	}
	return cmp.Compare(e.value(a), e.value(b)), nil
}

func (e floatExtender) GetAsObject(v Variant) any {
	if e.bits == 32 {
		return v.AsSingle()
	}
	return v.AsDouble()
}

func (e floatExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

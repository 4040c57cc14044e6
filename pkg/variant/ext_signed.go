package variant

import (
	"cmp"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// signedExtender serves SByte, Int16, Int32 and Int64, all stored as an
// int64 read with AsInt.
type signedExtender struct{}

func (signedExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return v.AsInt() != 0, nil
}

func (signedExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	return charFromInt(v.AsInt(), v.tag)
}

func (signedExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return signedFromInt[int8](v.AsInt(), v.tag, SByte)
}

func (signedExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return unsignedFromInt[uint8](v.AsInt(), v.tag, Byte)
}

func (signedExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return signedFromInt[int16](v.AsInt(), v.tag, Int16)
}

func (signedExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return unsignedFromInt[uint16](v.AsInt(), v.tag, UInt16)
}

func (signedExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return signedFromInt[int32](v.AsInt(), v.tag, Int32)
}

func (signedExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return unsignedFromInt[uint32](v.AsInt(), v.tag, UInt32)
}

func (signedExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return v.AsInt(), nil
}

func (signedExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return unsignedFromInt[uint64](v.AsInt(), v.tag, UInt64)
}

func (signedExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return float32(v.AsInt()), nil
}

func (signedExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return float64(v.AsInt()), nil
}

func (signedExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimal.New(v.AsInt(), 0), nil
}

func (signedExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(v.tag, DateTime)
}

func (signedExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	return formatNumber(signedNumber(v.AsInt(), v.tag), format, p)
}

func (signedExtender) Hash(v Variant) uint32 { return hash.Int64(v.AsInt()) }

func (signedExtender) Equal(a, b Variant) bool {
	return sameFamily(a.tag, b.tag) && a.AsInt() == b.AsInt()
}

func (signedExtender) Compare(a, b Variant) (int, error) {
	if !sameFamily(a.tag, b.tag) {
		return 0, &CompareError{a.tag, b.tag}
	}
	return cmp.Compare(a.AsInt(), b.AsInt()), nil
}

// GetAsObject returns a Go integer of the width of the tag.
func (signedExtender) GetAsObject(v Variant) any {
	i := v.AsInt()
	switch v.tag {
	case SByte:
		return int8(i)
	case Int16:
		return int16(i)
	case Int32:
		return int32(i)
	}
	return i
}

func (e signedExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

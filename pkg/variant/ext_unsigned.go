package variant

import (
	"cmp"
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// unsignedExtender serves Byte, UInt16, UInt32 and UInt64, all stored as a
// uint64 read with AsUInt.
type unsignedExtender struct{}

func (unsignedExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return v.AsUInt() != 0, nil
}

func (unsignedExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	return charFromUint(v.AsUInt(), v.tag)
}

func (unsignedExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return signedFromUint[int8](v.AsUInt(), v.tag, SByte)
}

func (unsignedExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return unsignedFromUint[uint8](v.AsUInt(), v.tag, Byte)
}

func (unsignedExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return signedFromUint[int16](v.AsUInt(), v.tag, Int16)
}

func (unsignedExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return unsignedFromUint[uint16](v.AsUInt(), v.tag, UInt16)
}

func (unsignedExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return signedFromUint[int32](v.AsUInt(), v.tag, Int32)
}

func (unsignedExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return unsignedFromUint[uint32](v.AsUInt(), v.tag, UInt32)
}

func (unsignedExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return signedFromUint[int64](v.AsUInt(), v.tag, Int64)
}

func (unsignedExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return v.AsUInt(), nil
}

func (unsignedExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return float32(v.AsUInt()), nil
}

func (unsignedExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return float64(v.AsUInt()), nil
}

func (unsignedExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v.AsUInt()), 0), nil
}

func (unsignedExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(v.tag, DateTime)
}

func (unsignedExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	return formatNumber(unsignedNumber(v.AsUInt(), v.tag), format, p)
}

func (unsignedExtender) Hash(v Variant) uint32 { return hash.UInt64(v.AsUInt()) }

func (unsignedExtender) Equal(a, b Variant) bool {
	return sameFamily(a.tag, b.tag) && a.AsUInt() == b.AsUInt()
}

func (unsignedExtender) Compare(a, b Variant) (int, error) {
	if !sameFamily(a.tag, b.tag) {
		return 0, &CompareError{a.tag, b.tag}
	}
	return cmp.Compare(a.AsUInt(), b.AsUInt()), nil
}

func (unsignedExtender) GetAsObject(v Variant) any {
	u := v.AsUInt()
	switch v.tag {
	case Byte:
		return uint8(u)
	case UInt16:
		return uint16(u)
	case UInt32:
		return uint32(u)
	}
	return u
}

func (e unsignedExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

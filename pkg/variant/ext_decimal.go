package variant

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// decimalExtender converts to integers rounding half to even.
type decimalExtender struct{}

func (decimalExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return !v.AsDecimal().IsZero(), nil
}

func (decimalExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	return 0, invalidCast(Decimal, Char)
}

func (decimalExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return signedFromDecimal[int8](v.AsDecimal(), Decimal, SByte)
}

func (decimalExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return unsignedFromDecimal[uint8](v.AsDecimal(), Decimal, Byte)
}

func (decimalExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return signedFromDecimal[int16](v.AsDecimal(), Decimal, Int16)
}

func (decimalExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return unsignedFromDecimal[uint16](v.AsDecimal(), Decimal, UInt16)
}

func (decimalExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return signedFromDecimal[int32](v.AsDecimal(), Decimal, Int32)
}

func (decimalExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return unsignedFromDecimal[uint32](v.AsDecimal(), Decimal, UInt32)
}

func (decimalExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return signedFromDecimal[int64](v.AsDecimal(), Decimal, Int64)
}

func (decimalExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return unsignedFromDecimal[uint64](v.AsDecimal(), Decimal, UInt64)
}

func (decimalExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	f, _ := v.AsDecimal().Float64()
	return float32(f), nil
}

func (decimalExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	f, _ := v.AsDecimal().Float64()
	return f, nil
}

func (decimalExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return v.AsDecimal(), nil
}

func (decimalExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(Decimal, DateTime)
}

func (decimalExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	return formatNumber(decimalNumber(v.AsDecimal()), format, p)
}

// Hash ignores the scale: 1.5 and 1.50 hash the same.
func (decimalExtender) Hash(v Variant) uint32 { return hash.String(v.AsDecimal().String()) }

// Equal converts b to a decimal when it is not one; b is not equal if the
// conversion fails.
func (decimalExtender) Equal(a, b Variant) bool {
	d, err := b.ToDecimal()
	return err == nil && a.AsDecimal().Equal(d)
}

func (decimalExtender) Compare(a, b Variant) (int, error) {
	if b.tag != Decimal {
		return 0, &CompareError{a.tag, b.tag}
	}
	return a.AsDecimal().Cmp(b.AsDecimal()), nil
}

func (decimalExtender) GetAsObject(v Variant) any { return v.AsDecimal() }

func (e decimalExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

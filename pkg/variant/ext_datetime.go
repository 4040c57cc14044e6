package variant

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// dateTimeExtender only converts to DateTime and String.
type dateTimeExtender struct{}

func (dateTimeExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return false, invalidCast(DateTime, Boolean)
}

func (dateTimeExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	return 0, invalidCast(DateTime, Char)
}

func (dateTimeExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return 0, invalidCast(DateTime, SByte)
}

func (dateTimeExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return 0, invalidCast(DateTime, Byte)
}

func (dateTimeExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return 0, invalidCast(DateTime, Int16)
}

func (dateTimeExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return 0, invalidCast(DateTime, UInt16)
}

func (dateTimeExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return 0, invalidCast(DateTime, Int32)
}

func (dateTimeExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return 0, invalidCast(DateTime, UInt32)
}

func (dateTimeExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return 0, invalidCast(DateTime, Int64)
}

func (dateTimeExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return 0, invalidCast(DateTime, UInt64)
}

func (dateTimeExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return 0, invalidCast(DateTime, Single)
}

func (dateTimeExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return 0, invalidCast(DateTime, Double)
}

func (dateTimeExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimal.Zero, invalidCast(DateTime, Decimal)
}

func (dateTimeExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return v.AsDateTime(), nil
}

func (dateTimeExtender) Format(v Variant, format string, p FormatProvider) (string, error) {
	return formatDateTime(v.AsDateTime(), format, p)
}

// Hash depends on the instant only.
func (dateTimeExtender) Hash(v Variant) uint32 {
	t := v.AsDateTime()
	return hash.DJB(hash.Int64(t.Unix()), hash.UInt32(uint32(t.Nanosecond())))
}

func (dateTimeExtender) Equal(a, b Variant) bool {
	return b.tag == DateTime && a.AsDateTime().Equal(b.AsDateTime())
}

func (dateTimeExtender) Compare(a, b Variant) (int, error) {
	if b.tag != DateTime {
		return 0, &CompareError{a.tag, b.tag}
	}
	return a.AsDateTime().Compare(b.AsDateTime()), nil
}

func (dateTimeExtender) GetAsObject(v Variant) any { return v.AsDateTime() }

func (e dateTimeExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

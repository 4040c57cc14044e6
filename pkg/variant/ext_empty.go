package variant

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// emptyExtender serves Empty and DBNull. Every conversion yields the zero
// value and nothing fails.
type emptyExtender struct{}

func (emptyExtender) ToBoolean(Variant, FormatProvider) (bool, error)   { return false, nil }
func (emptyExtender) ToChar(Variant, FormatProvider) (rune, error)      { return 0, nil }
func (emptyExtender) ToSByte(Variant, FormatProvider) (int8, error)     { return 0, nil }
func (emptyExtender) ToByte(Variant, FormatProvider) (uint8, error)     { return 0, nil }
func (emptyExtender) ToInt16(Variant, FormatProvider) (int16, error)    { return 0, nil }
func (emptyExtender) ToUInt16(Variant, FormatProvider) (uint16, error)  { return 0, nil }
func (emptyExtender) ToInt32(Variant, FormatProvider) (int32, error)    { return 0, nil }
func (emptyExtender) ToUInt32(Variant, FormatProvider) (uint32, error)  { return 0, nil }
func (emptyExtender) ToInt64(Variant, FormatProvider) (int64, error)    { return 0, nil }
func (emptyExtender) ToUInt64(Variant, FormatProvider) (uint64, error)  { return 0, nil }
func (emptyExtender) ToSingle(Variant, FormatProvider) (float32, error) { return 0, nil }
func (emptyExtender) ToDouble(Variant, FormatProvider) (float64, error) { return 0, nil }

func (emptyExtender) ToDecimal(Variant, FormatProvider) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (emptyExtender) ToDateTime(Variant, FormatProvider) (time.Time, error) {
	return time.Time{}, nil
}

func (emptyExtender) Format(Variant, string, FormatProvider) (string, error) { return "", nil }

func (emptyExtender) Hash(v Variant) uint32 { return hash.UInt32(uint32(v.tag)) }

func (emptyExtender) Equal(a, b Variant) bool { return a.tag == b.tag }

// Compare never fails: Empty and DBNull sort before everything else.
func (emptyExtender) Compare(a, b Variant) (int, error) {
	if a.tag == b.tag {
		return 0, nil
	}
	return -1, nil
}

func (emptyExtender) GetAsObject(v Variant) any {
	if v.tag == DBNull {
		return DBNullValue
	}
	return nil
}

func (e emptyExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

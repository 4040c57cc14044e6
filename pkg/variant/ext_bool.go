package variant

import (
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

const (
	trueString  = "True"
	falseString = "False"
)

// booleanExtender converts true to 1 and false to 0.
type booleanExtender struct{}

func (booleanExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	return v.AsBoolean(), nil
}

// ToChar maps to 'T' and 'F', the inverse of the char family's ToBoolean.
func (booleanExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	if v.AsBoolean() {
		return 'T', nil
	}
	return 'F', nil
}

func (booleanExtender) ToSByte(v Variant, _ FormatProvider) (int8, error) {
	return int8(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToByte(v Variant, _ FormatProvider) (uint8, error) {
	return uint8(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToInt16(v Variant, _ FormatProvider) (int16, error) {
	return int16(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToUInt16(v Variant, _ FormatProvider) (uint16, error) {
	return uint16(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToInt32(v Variant, _ FormatProvider) (int32, error) {
	return int32(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToUInt32(v Variant, _ FormatProvider) (uint32, error) {
	return uint32(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToInt64(v Variant, _ FormatProvider) (int64, error) {
	return boolToInt(v.AsBoolean()), nil
}

func (booleanExtender) ToUInt64(v Variant, _ FormatProvider) (uint64, error) {
	return uint64(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToSingle(v Variant, _ FormatProvider) (float32, error) {
	return float32(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToDouble(v Variant, _ FormatProvider) (float64, error) {
	return float64(boolToInt(v.AsBoolean())), nil
}

func (booleanExtender) ToDecimal(v Variant, _ FormatProvider) (decimal.Decimal, error) {
	return decimal.New(boolToInt(v.AsBoolean()), 0), nil
}

func (booleanExtender) ToDateTime(v Variant, _ FormatProvider) (time.Time, error) {
	return time.Time{}, invalidCast(v.tag, DateTime)
}

// Format ignores the format string.
func (booleanExtender) Format(v Variant, _ string, _ FormatProvider) (string, error) {
	return boolString(v.AsBoolean()), nil
}

func boolString(b bool) string {
	if b {
		return trueString
	}
	return falseString
}

func (booleanExtender) Hash(v Variant) uint32 { return hash.Bool(v.AsBoolean()) }

// Equal and Compare fall back to comparing string forms when b is not a
// Boolean, so a Boolean can equal the String "True".
func (booleanExtender) Equal(a, b Variant) bool {
	if b.tag == Boolean {
		return a.AsBoolean() == b.AsBoolean()
	}
	return a.String() == b.String()
}

func (booleanExtender) Compare(a, b Variant) (int, error) {
	if b.tag == Boolean {
		return int(boolToInt(a.AsBoolean()) - boolToInt(b.AsBoolean())), nil
	}
	return strings.Compare(a.String(), b.String()), nil
}

func (booleanExtender) GetAsObject(v Variant) any { return v.AsBoolean() }

func (e booleanExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

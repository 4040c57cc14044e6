package variant

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

func (v Variant) ext() Extender { return extenders[v.tag] }

// Checked conversions dispatch to the extender of the current tag. The plain
// forms use Invariant. Errors from parsing or range checks are returned as is.

func (v Variant) ToBoolean() (bool, error)            { return v.ext().ToBoolean(v, nil) }
func (v Variant) ToChar() (rune, error)               { return v.ext().ToChar(v, nil) }
func (v Variant) ToSByte() (int8, error)              { return v.ext().ToSByte(v, nil) }
func (v Variant) ToByte() (uint8, error)              { return v.ext().ToByte(v, nil) }
func (v Variant) ToInt16() (int16, error)             { return v.ext().ToInt16(v, nil) }
func (v Variant) ToUInt16() (uint16, error)           { return v.ext().ToUInt16(v, nil) }
func (v Variant) ToInt32() (int32, error)             { return v.ext().ToInt32(v, nil) }
func (v Variant) ToUInt32() (uint32, error)           { return v.ext().ToUInt32(v, nil) }
func (v Variant) ToInt64() (int64, error)             { return v.ext().ToInt64(v, nil) }
func (v Variant) ToUInt64() (uint64, error)           { return v.ext().ToUInt64(v, nil) }
func (v Variant) ToSingle() (float32, error)          { return v.ext().ToSingle(v, nil) }
func (v Variant) ToDouble() (float64, error)          { return v.ext().ToDouble(v, nil) }
func (v Variant) ToDecimal() (decimal.Decimal, error) { return v.ext().ToDecimal(v, nil) }
func (v Variant) ToDateTime() (time.Time, error)      { return v.ext().ToDateTime(v, nil) }

// The With forms take a FormatProvider; nil means Invariant.

func (v Variant) ToBooleanWith(p FormatProvider) (bool, error)   { return v.ext().ToBoolean(v, p) }
func (v Variant) ToCharWith(p FormatProvider) (rune, error)      { return v.ext().ToChar(v, p) }
func (v Variant) ToSByteWith(p FormatProvider) (int8, error)     { return v.ext().ToSByte(v, p) }
func (v Variant) ToByteWith(p FormatProvider) (uint8, error)     { return v.ext().ToByte(v, p) }
func (v Variant) ToInt16With(p FormatProvider) (int16, error)    { return v.ext().ToInt16(v, p) }
func (v Variant) ToUInt16With(p FormatProvider) (uint16, error)  { return v.ext().ToUInt16(v, p) }
func (v Variant) ToInt32With(p FormatProvider) (int32, error)    { return v.ext().ToInt32(v, p) }
func (v Variant) ToUInt32With(p FormatProvider) (uint32, error)  { return v.ext().ToUInt32(v, p) }
func (v Variant) ToInt64With(p FormatProvider) (int64, error)    { return v.ext().ToInt64(v, p) }
func (v Variant) ToUInt64With(p FormatProvider) (uint64, error)  { return v.ext().ToUInt64(v, p) }
func (v Variant) ToSingleWith(p FormatProvider) (float32, error) { return v.ext().ToSingle(v, p) }
func (v Variant) ToDoubleWith(p FormatProvider) (float64, error) { return v.ext().ToDouble(v, p) }

func (v Variant) ToDecimalWith(p FormatProvider) (decimal.Decimal, error) {
	return v.ext().ToDecimal(v, p)
}

func (v Variant) ToDateTimeWith(p FormatProvider) (time.Time, error) {
	return v.ext().ToDateTime(v, p)
}

// ToType converts v to a value of type t.
func (v Variant) ToType(t reflect.Type, p FormatProvider) (any, error) {
	return v.ext().ToType(v, t, p)
}

// ConvertTo converts v to a variant with the given tag. Converting to the tag
// v already has returns v. Converting to Object wraps AsObject.
func (v Variant) ConvertTo(tag Tag, p FormatProvider) (Variant, error) {
	if tag == v.tag {
		return v, nil
	}
	e := v.ext()
	switch tag {
	case Empty:
		return Zero, nil
	case DBNull:
		return Null, nil
	case Object:
		return FromObject(v.AsObject()), nil
	case Boolean:
		x, err := e.ToBoolean(v, p)
		return result(FromBool(x), err)
	case Char:
		x, err := e.ToChar(v, p)
		return result(FromChar(x), err)
	case SByte:
		x, err := e.ToSByte(v, p)
		return result(WithTag(SByte, int64(x)), err)
	case Int16:
		x, err := e.ToInt16(v, p)
		return result(WithTag(Int16, int64(x)), err)
	case Int32:
		x, err := e.ToInt32(v, p)
		return result(WithTag(Int32, int64(x)), err)
	case Int64:
		x, err := e.ToInt64(v, p)
		return result(FromInt64(x), err)
	case Byte:
		x, err := e.ToByte(v, p)
		return result(WithTag(Byte, uint64(x)), err)
	case UInt16:
		x, err := e.ToUInt16(v, p)
		return result(WithTag(UInt16, uint64(x)), err)
	case UInt32:
		x, err := e.ToUInt32(v, p)
		return result(WithTag(UInt32, uint64(x)), err)
	case UInt64:
		x, err := e.ToUInt64(v, p)
		return result(FromUint64(x), err)
	case Single:
		x, err := e.ToSingle(v, p)
		return result(FromFloat32(x), err)
	case Double:
		x, err := e.ToDouble(v, p)
		return result(FromFloat64(x), err)
	case Decimal:
		d, err := e.ToDecimal(v, p)
		if err != nil {
			return Variant{}, err
		}
		return TryDecimal(d)
	case DateTime:
		x, err := e.ToDateTime(v, p)
		return result(FromTime(x), err)
	case String:
		if v.tag == Object && v.ref == nil {
			return NullString(), nil
		}
		x, err := e.Format(v, "", p)
		return result(FromString(x), err)
	}
	return Variant{}, &ConvertError{v.tag, tag.String(), ErrInvalidCast}
}

func result(v Variant, err error) (Variant, error) {
	if err != nil {
		return Variant{}, err
	}
	return v, nil
}

// Compare orders a against b with the extender of a. The result is negative
// when a sorts first, zero when they are equal and positive otherwise.
func Compare(a, b Variant) (int, error) { return a.ext().Compare(a, b) }

// Equal reports whether a and b hold equal values of the same family. It
// never fails; operands that cannot be compared are not equal.
func Equal(a, b Variant) bool { return a.ext().Equal(a, b) }

func (v Variant) CompareTo(o Variant) (int, error) { return Compare(v, o) }

func (v Variant) Less(o Variant) (bool, error) {
	c, err := Compare(v, o)
	return err == nil && c < 0, err
}

func (v Variant) LessOrEqual(o Variant) (bool, error) {
	c, err := Compare(v, o)
	return err == nil && c <= 0, err
}

func (v Variant) Greater(o Variant) (bool, error) {
	c, err := Compare(v, o)
	return err == nil && c > 0, err
}

func (v Variant) GreaterOrEqual(o Variant) (bool, error) {
	c, err := Compare(v, o)
	return err == nil && c >= 0, err
}

func (v Variant) Equal(o Variant) bool    { return Equal(v, o) }
func (v Variant) NotEqual(o Variant) bool { return !Equal(v, o) }

// Hash returns a hash code consistent with Equal within a family.
func (v Variant) Hash() uint32 { return v.ext().Hash(v) }

// String formats v with the general format of Invariant.
func (v Variant) String() string {
	s, _ := v.ext().Format(v, "", nil)
	return s
}

// StringWith formats v with the general format of p.
func (v Variant) StringWith(p FormatProvider) string {
	s, _ := v.ext().Format(v, "", p)
	return s
}

// FormatString formats v with Invariant. It fails with ErrFormat for format
// strings that the family of v does not support.
func (v Variant) FormatString(format string) (string, error) {
	return v.ext().Format(v, format, nil)
}

func (v Variant) FormatStringWith(format string, p FormatProvider) (string, error) {
	return v.ext().Format(v, format, p)
}

package variant

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Extender implements the conversions, comparisons and formatting of one
// storage family of tags. Implementations are stateless; the variant passed
// in always carries one of the tags the extender is registered for, except
// for the right operand of Equal and Compare.
//
// A nil FormatProvider means Invariant.
type Extender interface {
	ToBoolean(v Variant, p FormatProvider) (bool, error)
	ToChar(v Variant, p FormatProvider) (rune, error)
	ToSByte(v Variant, p FormatProvider) (int8, error)
	ToByte(v Variant, p FormatProvider) (uint8, error)
	ToInt16(v Variant, p FormatProvider) (int16, error)
	ToUInt16(v Variant, p FormatProvider) (uint16, error)
	ToInt32(v Variant, p FormatProvider) (int32, error)
	ToUInt32(v Variant, p FormatProvider) (uint32, error)
	ToInt64(v Variant, p FormatProvider) (int64, error)
	ToUInt64(v Variant, p FormatProvider) (uint64, error)
	ToSingle(v Variant, p FormatProvider) (float32, error)
	ToDouble(v Variant, p FormatProvider) (float64, error)
	ToDecimal(v Variant, p FormatProvider) (decimal.Decimal, error)
	ToDateTime(v Variant, p FormatProvider) (time.Time, error)

	// Format formats v; the empty format is the general one.
	Format(v Variant, format string, p FormatProvider) (string, error)
	Hash(v Variant) uint32
	Equal(a, b Variant) bool
	// Compare orders a against b. It returns an error when the tag of b
	// cannot be ordered against the tag of a.
	Compare(a, b Variant) (int, error)
	// GetAsObject returns the payload as a Go value.
	GetAsObject(v Variant) any
	// ToType converts v to a value of the given Go type.
	ToType(v Variant, t reflect.Type, p FormatProvider) (any, error)
}

var extenders [tagCount]Extender

func register(e Extender, tags ...Tag) {
	for _, t := range tags {
		extenders[t] = e
	}
}

func init() {
	register(emptyExtender{}, Empty, DBNull)
	register(objectExtender{}, Object)
	register(booleanExtender{}, Boolean)
	register(charExtender{}, Char)
	register(signedExtender{}, SByte, Int16, Int32, Int64)
	register(unsignedExtender{}, Byte, UInt16, UInt32, UInt64)
	register(floatExtender{bits: 32}, Single)
	register(floatExtender{bits: 64}, Double)
	register(decimalExtender{}, Decimal)
	register(dateTimeExtender{}, DateTime)
	register(stringExtender{}, String)

	for t, e := range extenders {
		if e == nil {
			panic(fmt.Sprintf("variant: no extender registered for %s", Tag(t)))
		}
	}
}

// GetExtender returns the extender of a tag. It panics if tag is not valid.
func GetExtender(tag Tag) Extender { return extenders[tag] }

// sameFamily reports whether two tags share an extender.
func sameFamily(a, b Tag) bool { return extenders[a] == extenders[b] }

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	timeType    = reflect.TypeOf(time.Time{})
	variantType = reflect.TypeOf(Variant{})
)

// toType implements Extender.ToType in terms of the other methods of e.
// Named types are converted from the value of their underlying kind.
func toType(e Extender, v Variant, t reflect.Type, p FormatProvider) (any, error) {
	var (
		x   any
		err error
	)
	switch t {
	case decimalType:
		return e.ToDecimal(v, p)
	case timeType:
		return e.ToDateTime(v, p)
	case variantType:
		return v, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		x, err = e.ToBoolean(v, p)
	case reflect.Int8:
		x, err = e.ToSByte(v, p)
	case reflect.Int16:
		x, err = e.ToInt16(v, p)
	case reflect.Int32:
		x, err = e.ToInt32(v, p)
	case reflect.Int, reflect.Int64:
		x, err = e.ToInt64(v, p)
	case reflect.Uint8:
		x, err = e.ToByte(v, p)
	case reflect.Uint16:
		x, err = e.ToUInt16(v, p)
	case reflect.Uint32:
		x, err = e.ToUInt32(v, p)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		x, err = e.ToUInt64(v, p)
	case reflect.Float32:
		x, err = e.ToSingle(v, p)
	case reflect.Float64:
		x, err = e.ToDouble(v, p)
	case reflect.String:
		x, err = e.Format(v, "", p)
	default:
		obj := e.GetAsObject(v)
		if t.Kind() == reflect.Interface && (obj == nil || reflect.TypeOf(obj).Implements(t)) {
			if obj == nil {
				return reflect.Zero(t).Interface(), nil
			}
			return obj, nil
		}
		if obj != nil && reflect.TypeOf(obj).AssignableTo(t) {
			return obj, nil
		}
		return nil, &ConvertError{v.tag, t.String(), ErrInvalidCast}
	}
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(x)
	if !rv.Type().ConvertibleTo(t) {
		return nil, &ConvertError{v.tag, t.String(), ErrInvalidCast}
	}
	if !fits(rv, t) {
		return nil, &ConvertError{v.tag, t.String(), ErrOverflow}
	}
	return rv.Convert(t).Interface(), nil
}

// fits checks that a 64-bit value fits a platform-sized integer type.
func fits(rv reflect.Value, t reflect.Type) bool {
	z := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int:
		return !z.OverflowInt(rv.Int())
	case reflect.Uint, reflect.Uintptr:
		return !z.OverflowUint(rv.Uint())
	}
	return true
}

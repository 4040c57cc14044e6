package variant

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "src.pless.dev/pkg/tt"
)

var (
	numErr    = ErrorAs(new(*strconv.NumError))
	parseErr  = ErrorAs(new(*time.ParseError))
	overflows = ErrorIs(ErrOverflow)
	invalid   = ErrorIs(ErrInvalidCast)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// A culture with the separators swapped relative to Invariant.
var commaCulture = &Culture{
	Name: "comma",
	Number: NumberFormat{
		DecimalSeparator: ",", GroupSeparator: ".",
		NegativeSign: "-", PositiveSign: "+", PercentSymbol: "%",
		CurrencySymbol: "€", NaN: "NaN", PositiveInfinity: "∞", NegativeInfinity: "-∞",
		DecimalDigits: 2,
	},
	DateTime: DateTimeFormat{"02.01.2006", "Monday, 2. January 2006", "15:04", "15:04:05"},
}

func TestEmptyConversions(t *testing.T) {
	Test(t, Variant.ToInt32,
		Args(Zero).Rets(int32(0), nil),
		Args(Null).Rets(int32(0), nil),
	)
	Test(t, Variant.ToDateTime, Args(Null).Rets(time.Time{}, nil))
	Test(t, Variant.ToDecimal, Args(Zero).Rets(decimal.Zero, nil))
	Test(t, Variant.ToBoolean, Args(Zero).Rets(false, nil))
	if Zero.AsObject() != nil || Null.AsObject() != DBNullValue {
		t.Errorf("AsObject of Empty/DBNull = %v/%v", Zero.AsObject(), Null.AsObject())
	}
}

func TestBooleanConversions(t *testing.T) {
	Test(t, Variant.ToChar,
		Args(FromBool(true)).Rets('T', nil),
		Args(FromBool(false)).Rets('F', nil),
	)
	Test(t, Variant.ToInt32,
		Args(FromBool(true)).Rets(int32(1), nil),
		Args(FromBool(false)).Rets(int32(0), nil),
	)
	Test(t, Variant.ToDouble, Args(FromBool(true)).Rets(1.0, nil))
	Test(t, Variant.ToDecimal, Args(FromBool(true)).Rets(decimal.New(1, 0), nil))
	Test(t, Variant.ToDateTime, Args(FromBool(true)).Rets(time.Time{}, invalid))
}

func TestCharConversions(t *testing.T) {
	Test(t, Variant.ToBoolean,
		Args(FromChar('T')).Rets(true, nil),
		Args(FromChar('t')).Rets(true, nil),
		Args(FromChar('x')).Rets(false, nil),
		Args(FromChar('1')).Rets(false, nil),
	)
	Test(t, Variant.ToInt32, Args(FromChar('A')).Rets(int32(65), nil))
	Test(t, Variant.ToByte,
		Args(FromChar('A')).Rets(uint8(65), nil),
		Args(FromChar('Ā')).Rets(uint8(0), overflows),
	)
	Test(t, Variant.ToDouble, Args(FromChar('A')).Rets(0.0, invalid))
	Test(t, Variant.ToDecimal, Args(FromChar('A')).Rets(decimal.Zero, invalid))
}

func TestSignedConversions(t *testing.T) {
	Test(t, Variant.ToSByte,
		Args(FromInt64(-128)).Rets(int8(-128), nil),
		Args(FromInt64(300)).Rets(int8(0), overflows),
	)
	Test(t, Variant.ToByte,
		Args(WithTag(SByte, int64(5))).Rets(uint8(5), nil),
		Args(FromInt64(-1)).Rets(uint8(0), overflows),
	)
	Test(t, Variant.ToUInt64,
		Args(FromInt64(math.MaxInt64)).Rets(uint64(math.MaxInt64), nil),
		Args(FromInt64(-1)).Rets(uint64(0), overflows),
	)
	Test(t, Variant.ToChar,
		Args(FromInt64(65)).Rets('A', nil),
		Args(FromInt64(-1)).Rets(rune(0), overflows),
	)
	Test(t, Variant.ToBoolean,
		Args(FromInt64(0)).Rets(false, nil),
		Args(FromInt64(-3)).Rets(true, nil),
	)
	Test(t, Variant.ToDouble, Args(FromInt64(300)).Rets(300.0, nil))
	Test(t, Variant.ToDateTime, Args(FromInt64(1)).Rets(time.Time{}, invalid))

	var convErr *ConvertError
	_, err := FromInt64(300).ToSByte()
	if !errors.As(err, &convErr) || convErr.From != Int64 || convErr.To != "SByte" {
		t.Errorf("ToSByte error = %#v", err)
	}
}

func TestUnsignedConversions(t *testing.T) {
	Test(t, Variant.ToInt64,
		Args(FromUint64(math.MaxUint64)).Rets(int64(0), overflows),
		Args(FromUint64(7)).Rets(int64(7), nil),
	)
	Test(t, Variant.ToSByte, Args(WithTag(Byte, uint64(200))).Rets(int8(0), overflows))
	Test(t, Variant.ToInt16, Args(WithTag(Byte, uint64(200))).Rets(int16(200), nil))
	Test(t, Variant.ToDecimal,
		Args(FromUint64(math.MaxUint64)).Rets(dec("18446744073709551615"), nil))
	Test(t, Variant.ToChar, Args(FromUint64(0x110000)).Rets(rune(0), overflows))
}

func TestFloatConversions(t *testing.T) {
	Test(t, Variant.ToInt32,
		Args(FromFloat64(2.5)).Rets(int32(2), nil),
		Args(FromFloat64(3.5)).Rets(int32(4), nil),
		Args(FromFloat64(-2.5)).Rets(int32(-2), nil),
		Args(FromFloat64(math.NaN())).Rets(int32(0), overflows),
		Args(FromFloat64(math.Inf(1))).Rets(int32(0), overflows),
		Args(FromFloat64(3e9)).Rets(int32(0), overflows),
	)
	Test(t, Variant.ToUInt64,
		Args(FromFloat64(1e19)).Rets(uint64(10000000000000000000), nil),
		Args(FromFloat64(2e19)).Rets(uint64(0), overflows),
	)
	Test(t, Variant.ToUInt32, Args(FromFloat64(-0.4)).Rets(uint32(0), nil))
	Test(t, Variant.ToInt64, Args(FromFloat64(1e20)).Rets(int64(0), overflows))
	Test(t, Variant.ToDecimal,
		Args(FromFloat64(0.1)).Rets(dec("0.1"), nil),
		Args(FromFloat32(0.1)).Rets(dec("0.1"), nil),
		Args(FromFloat64(math.NaN())).Rets(decimal.Zero, overflows),
		Args(FromFloat64(1e30)).Rets(decimal.Zero, overflows),
	)
	Test(t, Variant.ToBoolean,
		Args(FromFloat64(0)).Rets(false, nil),
		Args(FromFloat64(math.NaN())).Rets(true, nil),
	)
	Test(t, Variant.ToSingle, Args(FromFloat64(1.5)).Rets(float32(1.5), nil))
	Test(t, Variant.ToChar, Args(FromFloat64(65)).Rets(rune(0), invalid))
	Test(t, Variant.ToDateTime, Args(FromFloat32(1)).Rets(time.Time{}, invalid))
}

func TestDecimalConversions(t *testing.T) {
	Test(t, Variant.ToInt32,
		Args(FromDecimal(dec("2.5"))).Rets(int32(2), nil),
		Args(FromDecimal(dec("3.5"))).Rets(int32(4), nil),
		Args(FromDecimal(dec("-7"))).Rets(int32(-7), nil),
	)
	Test(t, Variant.ToByte, Args(FromDecimal(dec("-1"))).Rets(uint8(0), overflows))
	Test(t, Variant.ToInt64,
		Args(FromDecimal(dec("79228162514264337593543950335"))).Rets(int64(0), overflows))
	Test(t, Variant.ToDouble, Args(FromDecimal(dec("1.5"))).Rets(1.5, nil))
	Test(t, Variant.ToBoolean, Args(FromDecimal(dec("0.00"))).Rets(false, nil))
	Test(t, Variant.ToChar, Args(FromDecimal(dec("1"))).Rets(rune(0), invalid))
}

func TestDateTimeConversions(t *testing.T) {
	Test(t, Variant.ToDateTime, Args(FromTime(when)).Rets(when, nil))
	Test(t, Variant.ToInt64, Args(FromTime(when)).Rets(int64(0), invalid))
	Test(t, Variant.ToBoolean, Args(FromTime(when)).Rets(false, invalid))
	Test(t, Variant.ToDouble, Args(FromTime(when)).Rets(0.0, invalid))
}

func TestStringConversions(t *testing.T) {
	Test(t, Variant.ToInt32,
		Args(FromString("42")).Rets(int32(42), nil),
		Args(FromString(" -42 ")).Rets(int32(-42), nil),
		Args(FromString("+7")).Rets(int32(7), nil),
		Args(FromString("4.2")).Rets(int32(0), numErr),
		Args(FromString("1,000")).Rets(int32(0), numErr),
		Args(FromString("0x10")).Rets(int32(0), numErr),
		Args(FromString("")).Rets(int32(0), numErr),
		Args(NullString()).Rets(int32(0), numErr),
	)
	Test(t, Variant.ToInt64, Args(FromString("abc")).Rets(int64(0), numErr))
	Test(t, Variant.ToSByte, Args(FromString("300")).Rets(int8(0), ErrorIs(strconv.ErrRange)))
	Test(t, Variant.ToUInt32,
		Args(FromString("+5")).Rets(uint32(5), nil),
		Args(FromString("-1")).Rets(uint32(0), numErr),
	)
	Test(t, Variant.ToDouble,
		Args(FromString("1,234.5")).Rets(1234.5, nil),
		Args(FromString("1e3")).Rets(1000.0, nil),
		Args(FromString("NaN")).Rets(math.NaN(), nil),
		Args(FromString("-Infinity")).Rets(math.Inf(-1), nil),
		Args(FromString("0x1p4")).Rets(0.0, numErr),
		Args(FromString("1_000")).Rets(0.0, numErr),
		Args(FromString("inf")).Rets(0.0, numErr),
	)
	Test(t, Variant.ToSingle, Args(FromString("0.5")).Rets(float32(0.5), nil))
	Test(t, Variant.ToDecimal,
		Args(FromString("1.50")).Rets(dec("1.5"), nil),
		Args(FromString("abc")).Rets(decimal.Zero, Any),
		Args(FromString("1e40")).Rets(decimal.Zero, overflows),
	)
	Test(t, Variant.ToBoolean,
		Args(FromString("true")).Rets(true, nil),
		Args(FromString(" FALSE ")).Rets(false, nil),
		Args(FromString("yes")).Rets(false, numErr),
		Args(FromString("1")).Rets(false, numErr),
	)
	Test(t, Variant.ToChar,
		Args(FromString("")).Rets(rune(0), nil),
		Args(FromString("  ")).Rets(rune(0), nil),
		Args(FromString("héllo")).Rets('h', nil),
		Args(FromString("世界")).Rets('世', nil),
	)
	Test(t, Variant.ToDateTime,
		Args(FromString("2009-06-15T13:45:30.0000005Z")).Rets(when, nil),
		Args(FromString("2009-06-15")).Rets(time.Date(2009, 6, 15, 0, 0, 0, 0, time.UTC), nil),
		Args(FromString("06/15/2009 13:45:30")).Rets(when.Truncate(time.Second), nil),
		Args(FromString("nope")).Rets(time.Time{}, parseErr),
	)
}

func TestStringConversionsWithCulture(t *testing.T) {
	toDouble := func(s string) (float64, error) { return FromString(s).ToDoubleWith(commaCulture) }
	Test(t, Fn("ToDoubleWith(comma)", toDouble),
		Args("1.234,5").Rets(1234.5, nil),
		Args("-0,25").Rets(-0.25, nil),
		Args("∞").Rets(math.Inf(1), nil),
		Args("1,2,3").Rets(0.0, numErr),
	)
	toDecimal := func(s string) (decimal.Decimal, error) { return FromString(s).ToDecimalWith(commaCulture) }
	Test(t, Fn("ToDecimalWith(comma)", toDecimal),
		Args("1.000,05").Rets(dec("1000.05"), nil),
	)
	toDate := func(s string) (time.Time, error) { return FromString(s).ToDateTimeWith(commaCulture) }
	Test(t, Fn("ToDateTimeWith(comma)", toDate),
		Args("15.06.2009").Rets(time.Date(2009, 6, 15, 0, 0, 0, 0, time.UTC), nil),
	)
}

type point struct{ X, Y int }

func TestObjectConversions(t *testing.T) {
	Test(t, Variant.ToInt64,
		Args(FromObject(5)).Rets(int64(5), nil),
		Args(FromObject("12")).Rets(int64(12), nil),
		Args(NullObject()).Rets(int64(0), nil),
		Args(FromObject(point{1, 2})).Rets(int64(0), invalid),
		Args(FromObject([]int{1})).Rets(int64(0), invalid),
	)
	Test(t, Variant.ToSByte, Args(FromObject(1000)).Rets(int8(0), overflows))
	Test(t, Variant.ToDateTime, Args(FromObject(when)).Rets(when, nil))
	Test(t, Variant.ToInt32, Args(FromObject("x")).Rets(int32(0), numErr))
}

func TestToType(t *testing.T) {
	var (
		intType    = reflect.TypeOf(0)
		int8Type   = reflect.TypeOf(int8(0))
		colorType  = reflect.TypeOf(color(0))
		stringType = reflect.TypeOf("")
		anyType    = reflect.TypeOf((*any)(nil)).Elem()
		sliceType  = reflect.TypeOf([]int(nil))
	)
	obj := &point{1, 2}
	Test(t, Fn("ToType", func(v Variant, t reflect.Type) (any, error) { return v.ToType(t, nil) }),
		Args(FromInt64(5), intType).Rets(5, nil),
		Args(FromInt64(5), colorType).Rets(color(5), nil),
		Args(FromString("5"), intType).Rets(5, nil),
		Args(FromInt64(5), stringType).Rets("5", nil),
		Args(FromFloat64(1.5), decimalType).Rets(dec("1.5"), nil),
		Args(FromTime(when), timeType).Rets(when, nil),
		Args(FromInt64(300), int8Type).Rets(nil, overflows),
		Args(FromInt64(1), sliceType).Rets(nil, invalid),
		Args(FromObject(obj), reflect.TypeOf(obj)).Rets(obj, nil),
		Args(FromInt64(1), anyType).Rets(int64(1), nil),
		Args(FromInt64(1), variantType).Rets(FromInt64(1), nil),
	)
}

func TestConvertTo(t *testing.T) {
	tagOf := func(v Variant, tag Tag) (Tag, string, error) {
		c, err := v.ConvertTo(tag, nil)
		return c.Tag(), c.String(), err
	}
	Test(t, Fn("ConvertTo", tagOf),
		Args(FromString("42"), Int32).Rets(Int32, "42", nil),
		Args(FromInt64(300), Byte).Rets(Empty, "", overflows),
		Args(FromFloat64(3.14), String).Rets(String, "3.14", nil),
		Args(FromBool(true), Single).Rets(Single, "1", nil),
		Args(FromInt64(7), Object).Rets(Object, "7", nil),
		Args(FromInt64(7), DBNull).Rets(DBNull, "", nil),
		Args(FromString("1.5"), Decimal).Rets(Decimal, "1.5", nil),
		Args(NullObject(), String).Rets(String, "", nil),
		Args(FromChar('x'), Char).Rets(Char, "x", nil),
	)
	c, _ := FromInt64(7).ConvertTo(Object, nil)
	if c.AsObject() != int64(7) {
		t.Errorf("ConvertTo(Object).AsObject() = %#v", c.AsObject())
	}
	if c, _ := NullObject().ConvertTo(String, nil); !c.IsNull() {
		t.Errorf("null object should convert to the null string")
	}
}

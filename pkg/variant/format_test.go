package variant

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "src.pless.dev/pkg/tt"
)

var formatString = Fn("FormatString", Variant.FormatString)

func TestFormatFloat(t *testing.T) {
	Test(t, formatString,
		Args(FromFloat64(3.14), "F1").Rets("3.1", nil),
		Args(FromFloat64(3.14), "").Rets("3.14", nil),
		Args(FromFloat64(3.14), "G").Rets("3.14", nil),
		Args(FromFloat64(0.1), "R").Rets("0.1", nil),
		Args(FromFloat64(1e15), "").Rets("1E+15", nil),
		Args(FromFloat64(123456789012345), "").Rets("123456789012345", nil),
		Args(FromFloat64(0.0001), "").Rets("0.0001", nil),
		Args(FromFloat64(0.00001), "").Rets("1E-05", nil),
		Args(FromFloat64(-1.5e-10), "g").Rets("-1.5e-10", nil),
		Args(FromFloat64(1234.5), "G3").Rets("1.23E+03", nil),
		Args(FromFloat64(1234.5), "G10").Rets("1234.5", nil),
		Args(FromFloat64(1234.5678), "N2").Rets("1,234.57", nil),
		Args(FromFloat64(-1234567.891), "N").Rets("-1,234,567.89", nil),
		Args(FromFloat64(1234.5678), "E3").Rets("1.235E+003", nil),
		Args(FromFloat64(1234.5678), "e").Rets("1.234568e+003", nil),
		Args(FromFloat64(0.000123), "E2").Rets("1.23E-004", nil),
		Args(FromFloat64(0.125), "P").Rets("12.50 %", nil),
		Args(FromFloat64(0.5), "P0").Rets("50 %", nil),
		Args(FromFloat64(1234.5), "C").Rets("¤1,234.50", nil),
		Args(FromFloat64(-1234.6), "C0").Rets("-¤1,235", nil),
		Args(FromFloat64(0), "F3").Rets("0.000", nil),
		Args(FromFloat64(math.NaN()), "F2").Rets("NaN", nil),
		Args(FromFloat64(math.Inf(1)), "").Rets("Infinity", nil),
		Args(FromFloat64(math.Inf(-1)), "N").Rets("-Infinity", nil),
		Args(FromFloat64(1.5), "D").Rets("", ErrorIs(ErrFormat)),
		Args(FromFloat64(1.5), "X").Rets("", ErrorIs(ErrFormat)),
		Args(FromFloat64(1.5), "Q").Rets("", ErrorIs(ErrFormat)),

		Args(FromFloat32(1234567), "").Rets("1234567", nil),
		Args(FromFloat32(12345678), "").Rets("1.2345678E+07", nil),
		Args(FromFloat32(0.1), "").Rets("0.1", nil),
		Args(FromFloat32(0.1), "F9").Rets("0.100000001", nil),
	)
}

func TestFormatInteger(t *testing.T) {
	Test(t, formatString,
		Args(FromInt64(42), "").Rets("42", nil),
		Args(FromInt64(-42), "D5").Rets("-00042", nil),
		Args(FromInt64(1234567), "N0").Rets("1,234,567", nil),
		Args(FromInt64(1234567), "N").Rets("1,234,567.00", nil),
		Args(FromInt64(5), "F2").Rets("5.00", nil),
		Args(FromInt64(255), "X").Rets("FF", nil),
		Args(FromInt64(255), "x4").Rets("00ff", nil),
		Args(WithTag(SByte, int64(-1)), "X").Rets("FF", nil),
		Args(WithTag(Int16, int64(-1)), "X").Rets("FFFF", nil),
		Args(WithTag(Int32, int64(-2)), "X").Rets("FFFFFFFE", nil),
		Args(FromInt64(-1), "X").Rets("FFFFFFFFFFFFFFFF", nil),
		Args(FromInt64(123456), "E2").Rets("1.23E+005", nil),
		Args(FromInt64(123456), "G2").Rets("1.2E+05", nil),
		Args(FromInt64(1), "P").Rets("100.00 %", nil),
		Args(FromInt64(math.MinInt64), "").Rets("-9223372036854775808", nil),
		Args(FromUint64(math.MaxUint64), "").Rets("18446744073709551615", nil),
		Args(FromUint64(math.MaxUint64), "X").Rets("FFFFFFFFFFFFFFFF", nil),
		Args(WithTag(Byte, uint64(7)), "D3").Rets("007", nil),
		Args(FromInt64(1), "Z").Rets("", ErrorIs(ErrFormat)),
	)
}

func TestFormatDecimal(t *testing.T) {
	d := func(s string) Variant { return FromDecimal(decimal.RequireFromString(s)) }
	Test(t, formatString,
		Args(d("1.50"), "").Rets("1.50", nil),
		Args(d("-0.001"), "").Rets("-0.001", nil),
		Args(d("2.5"), "F0").Rets("3", nil),
		Args(d("1234.565"), "N2").Rets("1,234.57", nil),
		Args(d("79228162514264337593543950335"), "").Rets("79228162514264337593543950335", nil),
		Args(d("79228162514264337593543950335"), "E5").Rets("7.92282E+028", nil),
		Args(d("0.5"), "P1").Rets("50.0 %", nil),
		Args(d("1.5"), "D").Rets("", ErrorIs(ErrFormat)),
	)
}

func TestFormatCustom(t *testing.T) {
	Test(t, formatString,
		Args(FromFloat64(1234.5), "#,##0.00").Rets("1,234.50", nil),
		Args(FromFloat64(3.14159), "0.##").Rets("3.14", nil),
		Args(FromFloat64(3), "0.##").Rets("3", nil),
		Args(FromFloat64(0.5), "#.##").Rets(".5", nil),
		Args(FromFloat64(5), "000").Rets("005", nil),
		Args(FromFloat64(-2.5), "0.0;(0.0)").Rets("(2.5)", nil),
		Args(FromFloat64(-2.5), "0.0").Rets("-2.5", nil),
		Args(FromFloat64(0), "0;-0;'zero'").Rets("zero", nil),
		Args(FromFloat64(0.25), "0%").Rets("25%", nil),
		Args(FromFloat64(42), "'#'0").Rets("#42", nil),
		Args(FromFloat64(42), `\#0 units`).Rets("#42 units", nil),
		Args(FromInt64(1234567), "#,#").Rets("1,234,567", nil),
		Args(FromInt64(-5), "$0").Rets("-$5", nil),
		Args(FromDecimal(decimal.New(12345, -3)), "0.0").Rets("12.3", nil),
		Args(FromFloat64(-0.001), "0.00").Rets("0.00", nil),
	)
}

func TestFormatNonNumeric(t *testing.T) {
	Test(t, formatString,
		Args(Zero, "N2").Rets("", nil),
		Args(Null, "").Rets("", nil),
		Args(FromBool(true), "").Rets("True", nil),
		Args(FromBool(false), "X").Rets("False", nil),
		Args(FromChar('A'), "").Rets("A", nil),
		Args(FromString("abc"), "N2").Rets("abc", nil),
		Args(NullString(), "").Rets("", nil),
		Args(FromObject(1.5), "F3").Rets("1.500", nil),
		Args(FromObject(point{1, 2}), "").Rets("{1 2}", nil),
		Args(NullObject(), "").Rets("", nil),
	)
}

func TestFormatDateTime(t *testing.T) {
	tm := time.Date(2009, 6, 15, 13, 45, 30, 0, time.UTC)
	v := FromTime(tm)
	Test(t, formatString,
		Args(v, "").Rets("06/15/2009 13:45:30", nil),
		Args(v, "d").Rets("06/15/2009", nil),
		Args(v, "D").Rets("Monday, 15 June 2009", nil),
		Args(v, "t").Rets("13:45", nil),
		Args(v, "T").Rets("13:45:30", nil),
		Args(v, "f").Rets("Monday, 15 June 2009 13:45", nil),
		Args(v, "F").Rets("Monday, 15 June 2009 13:45:30", nil),
		Args(v, "g").Rets("06/15/2009 13:45", nil),
		Args(v, "G").Rets("06/15/2009 13:45:30", nil),
		Args(v, "s").Rets("2009-06-15T13:45:30", nil),
		Args(v, "u").Rets("2009-06-15 13:45:30Z", nil),
		Args(v, "o").Rets("2009-06-15T13:45:30.0000000Z", nil),
		Args(v, "r").Rets("Mon, 15 Jun 2009 13:45:30 GMT", nil),
		Args(FromTime(tm.In(time.FixedZone("", -7*3600))), "o").Rets("2009-06-15T06:45:30.0000000-07:00", nil),
		Args(FromTime(tm.In(time.FixedZone("", -7*3600))), "r").Rets("Mon, 15 Jun 2009 13:45:30 GMT", nil),
		Args(v, "yyyy-MM-dd HH:mm:ss").Rets("2009-06-15 13:45:30", nil),
		Args(v, "dddd, MMMM d").Rets("Monday, June 15", nil),
		Args(v, "hh:mm tt").Rets("01:45 PM", nil),
		Args(v, "'Day' d").Rets("Day 15", nil),
		Args(v, "2006.01.02").Rets("2009.06.15", nil),
		Args(v, "q").Rets("", ErrorIs(ErrFormat)),
	)
}

func TestFormatWithCulture(t *testing.T) {
	formatWith := func(v Variant, f string) (string, error) { return v.FormatStringWith(f, commaCulture) }
	Test(t, Fn("FormatStringWith(comma)", formatWith),
		Args(FromFloat64(1234.5), "N1").Rets("1.234,5", nil),
		Args(FromFloat64(1234.5), "").Rets("1234,5", nil),
		Args(FromFloat64(1234.5), "C").Rets("€1.234,50", nil),
		Args(FromFloat64(math.Inf(1)), "").Rets("∞", nil),
		Args(FromFloat64(1e20), "").Rets("1E+20", nil),
		Args(FromFloat64(0.5), "0.00").Rets("0,50", nil),
		Args(FromDecimal(decimal.New(15, -1)), "").Rets("1,5", nil),
		Args(FromTime(time.Date(2009, 6, 15, 13, 45, 30, 0, time.UTC)), "d").Rets("15.06.2009", nil),
	)
	if s := FromFloat64(2.5).StringWith(commaCulture); s != "2,5" {
		t.Errorf("StringWith = %q", s)
	}

	us, err := CultureByName("en-US")
	if err != nil {
		t.Fatal(err)
	}
	tm := FromTime(time.Date(2009, 6, 15, 13, 45, 30, 0, time.UTC))
	if s, _ := tm.FormatStringWith("d", us); s != "6/15/2009" {
		t.Errorf(`en-US "d" = %q`, s)
	}
	if s, _ := tm.FormatStringWith("t", us); s != "1:45 PM" {
		t.Errorf(`en-US "t" = %q`, s)
	}
}

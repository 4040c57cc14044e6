package variant

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "src.pless.dev/pkg/tt"
)

var codecValues = []Variant{
	Zero,
	Null,
	FromBool(true),
	FromBool(false),
	FromChar('世'),
	WithTag(SByte, int64(-128)),
	WithTag(Byte, uint64(255)),
	WithTag(Int16, int64(-300)),
	WithTag(UInt16, uint64(65535)),
	WithTag(Int32, int64(math.MinInt32)),
	WithTag(UInt32, uint64(math.MaxUint32)),
	FromInt64(math.MinInt64),
	FromUint64(math.MaxUint64),
	FromFloat32(0.1),
	FromFloat32(float32(math.Inf(-1))),
	FromFloat64(math.NaN()),
	FromFloat64(math.Inf(1)),
	FromFloat64(1e-300),
	FromFloat64(math.Copysign(0, -1)),
	FromDecimal(decimal.New(150, -2)),
	FromDecimal(decimal.RequireFromString("-79228162514264337593543950335")),
	FromTime(when),
	FromTime(when.In(time.FixedZone("", 5*3600+1800))),
	FromString(""),
	FromString("héllo\x00world"),
}

func TestTextRoundTrip(t *testing.T) {
	for _, v := range codecValues {
		text, err := v.Text()
		if err != nil {
			t.Errorf("%s %q: Text() error %v", v.Tag(), v, err)
			continue
		}
		got, err := ParseText(v.Tag(), text)
		if err != nil {
			t.Errorf("ParseText(%s, %q) error %v", v.Tag(), text, err)
			continue
		}
		if got.Tag() != v.Tag() || !Equal(got, v) {
			t.Errorf("ParseText(%s, %q) = %s %q, want %q", v.Tag(), text, got.Tag(), got, v)
		}
		if v.Tag() == Decimal && got.data.decimalScale() != v.data.decimalScale() {
			t.Errorf("decimal %q lost its scale: %q", v, got)
		}
	}
}

func TestText(t *testing.T) {
	Test(t, Variant.Text,
		Args(FromDecimal(decimal.New(150, -2))).Rets("1.50", nil),
		Args(FromFloat64(0.1)).Rets("0.1", nil),
		Args(FromFloat64(math.Inf(-1))).Rets("-Inf", nil),
		Args(FromTime(when)).Rets("2009-06-15T13:45:30.0000005Z", nil),
		Args(WithTag(Int16, int64(-3))).Rets("-3", nil),
		Args(FromObject(1)).Rets("", ErrorIs(ErrInvalidCast)),
	)
	Test(t, ParseText,
		Args(Int32, "5").Rets(WithTag(Int32, int64(5)), nil),
		Args(SByte, "200").Rets(Zero, Any),
		Args(Boolean, "yes").Rets(Zero, Any),
		Args(Char, "ab").Rets(Zero, Any),
		Args(Char, "").Rets(Zero, Any),
		Args(Object, "x").Rets(Zero, ErrorIs(ErrInvalidCast)),
		Args(Decimal, "1e40").Rets(Zero, ErrorIs(ErrOverflow)),
	)
}

func TestBinaryRoundTrip(t *testing.T) {
	var buf []byte
	for _, v := range append(codecValues, NullString()) {
		var err error
		buf, err = AppendBinary(buf, v)
		if err != nil {
			t.Fatalf("AppendBinary(%s %q) error %v", v.Tag(), v, err)
		}
	}
	for _, want := range append(codecValues, NullString()) {
		got, n, err := DecodeBinary(buf)
		if err != nil {
			t.Fatalf("DecodeBinary error %v before %s %q", err, want.Tag(), want)
		}
		buf = buf[n:]
		if got.Tag() != want.Tag() || got.data != want.data || got.ref != want.ref {
			t.Errorf("DecodeBinary = %s %q, want %s %q", got.Tag(), got, want.Tag(), want)
		}
	}
	if len(buf) != 0 {
		t.Errorf("%d bytes left over", len(buf))
	}
}

func TestBinaryErrors(t *testing.T) {
	if _, err := AppendBinary(nil, FromObject(1)); !errors.Is(err, ErrInvalidCast) {
		t.Errorf("AppendBinary(Object) error = %v", err)
	}
	full, _ := AppendBinary(nil, FromInt64(1))
	str, _ := AppendBinary(nil, FromString("abc"))
	decode := func(b []byte) error {
		_, _, err := DecodeBinary(b)
		return err
	}
	Test(t, Fn("DecodeBinary", decode),
		Args([]byte{}).Rets(io.ErrUnexpectedEOF),
		Args(full[:10]).Rets(io.ErrUnexpectedEOF),
		Args(str[:len(str)-1]).Rets(io.ErrUnexpectedEOF),
		Args([]byte{byte(String)}).Rets(io.ErrUnexpectedEOF),
		Args([]byte{byte(String), 2}).Rets(ErrBadEncoding),
		Args([]byte{byte(tagCount)}).Rets(ErrBadEncoding),
		Args([]byte{byte(Object)}).Rets(ErrBadEncoding),
	)
}

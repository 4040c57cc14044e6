package variant

import (
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Checked numeric conversions shared by the extenders. Float and decimal
// sources are rounded half to even before the range check.

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signedFromInt[T signed](i int64, from, to Tag) (T, error) {
	t := T(i)
	if int64(t) != i {
		return 0, overflow(from, to)
	}
	return t, nil
}

func signedFromUint[T signed](u uint64, from, to Tag) (T, error) {
	if u > math.MaxInt64 {
		return 0, overflow(from, to)
	}
	return signedFromInt[T](int64(u), from, to)
}

func unsignedFromUint[T unsigned](u uint64, from, to Tag) (T, error) {
	t := T(u)
	if uint64(t) != u {
		return 0, overflow(from, to)
	}
	return t, nil
}

func unsignedFromInt[T unsigned](i int64, from, to Tag) (T, error) {
	if i < 0 {
		return 0, overflow(from, to)
	}
	return unsignedFromUint[T](uint64(i), from, to)
}

// 2^63 and 2^64 as float64; both are exact.
const (
	twoTo63 = 9223372036854775808.0
	twoTo64 = 18446744073709551616.0
)

func signedFromFloat[T signed](f float64, from, to Tag) (T, error) {
	r := math.RoundToEven(f)
	if math.IsNaN(r) || r < -twoTo63 || r >= twoTo63 {
		return 0, overflow(from, to)
	}
	return signedFromInt[T](int64(r), from, to)
}

func unsignedFromFloat[T unsigned](f float64, from, to Tag) (T, error) {
	r := math.RoundToEven(f)
	if math.IsNaN(r) || r < 0 || r >= twoTo64 {
		return 0, overflow(from, to)
	}
	return unsignedFromUint[T](uint64(r), from, to)
}

func signedFromDecimal[T signed](d decimal.Decimal, from, to Tag) (T, error) {
	r := d.RoundBank(0).BigInt()
	if !r.IsInt64() {
		return 0, overflow(from, to)
	}
	return signedFromInt[T](r.Int64(), from, to)
}

func unsignedFromDecimal[T unsigned](d decimal.Decimal, from, to Tag) (T, error) {
	r := d.RoundBank(0).BigInt()
	if !r.IsUint64() {
		return 0, overflow(from, to)
	}
	return unsignedFromUint[T](r.Uint64(), from, to)
}

func charFromInt(i int64, from Tag) (rune, error) {
	if i < 0 || i > utf8.MaxRune {
		return 0, overflow(from, Char)
	}
	return rune(i), nil
}

func charFromUint(u uint64, from Tag) (rune, error) {
	if u > utf8.MaxRune {
		return 0, overflow(from, Char)
	}
	return rune(u), nil
}

// decimalFromFloat converts f with the shortest decimal representation that
// round-trips, failing for NaN, infinities and values out of the 96-bit range.
func decimalFromFloat(f float64, bits int, from Tag) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, overflow(from, Decimal)
	}
	var d decimal.Decimal
	if bits == 32 {
		d = decimal.NewFromFloat32(float32(f))
	} else {
		d = decimal.NewFromFloat(f)
	}
	p, err := decimalPayload(d)
	if err != nil {
		return decimal.Decimal{}, overflow(from, Decimal)
	}
	return p.decimal(), nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

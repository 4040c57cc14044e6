package variant

import (
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// payload is the storage shared by every simple family. Only one
// interpretation is meaningful at a time; every writer replaces both words.
//
// Layout of word 1 by family:
//
//	decimal:  bits 0-31 high coefficient bits, 32-39 scale, 63 sign
//	datetime: bits 0-31 nanoseconds, 32-33 zone kind, 40-63 offset seconds
//
// All other families use word 0 only and leave word 1 zero.
type payload [2]uint64

// Maximum number of fractional digits a decimal payload keeps.
const maxDecimalScale = 28

const decimalCoefficientBits = 96

const (
	zoneUTC uint64 = iota
	zoneLocal
	zoneFixed
)

func boolPayload(b bool) payload {
	if b {
		return payload{1, 0}
	}
	return payload{}
}

func charPayload(r rune) payload      { return payload{uint64(uint32(r)), 0} }
func intPayload(i int64) payload      { return payload{uint64(i), 0} }
func uintPayload(u uint64) payload    { return payload{u, 0} }
func singlePayload(f float32) payload { return payload{uint64(math.Float32bits(f)), 0} }
func doublePayload(f float64) payload { return payload{math.Float64bits(f), 0} }

func (p payload) bool() bool        { return byte(p[0]) != 0 }
func (p payload) char() rune        { return rune(int32(uint32(p[0]))) }
func (p payload) int() int64        { return int64(p[0]) }
func (p payload) uint() uint64      { return p[0] }
func (p payload) single() float32   { return math.Float32frombits(uint32(p[0])) }
func (p payload) double() float64   { return math.Float64frombits(p[0]) }
func (p payload) hiWordLow() uint64 { return p[1] & 0xffffffff }

// decimalPayload packs d into a 96-bit coefficient and a scale. Digits beyond
// maxDecimalScale fractional places are rounded half away from zero; so are
// low-order fractional digits when the coefficient would not fit. A value
// whose integer part needs more than 96 bits overflows.
func decimalPayload(d decimal.Decimal) (payload, error) {
	if d.Exponent() < -maxDecimalScale {
		d = d.Round(maxDecimalScale)
	}
	for {
		coef, scale, neg := decimalParts(d)
		if coef.BitLen() <= decimalCoefficientBits {
			lo := new(big.Int).And(coef, maxUint64Big).Uint64()
			hi := new(big.Int).Rsh(coef, 64).Uint64()
			w1 := hi | uint64(scale)<<32
			if neg {
				w1 |= 1 << 63
			}
			return payload{lo, w1}, nil
		}
		if scale == 0 {
			return payload{}, ErrOverflow
		}
		d = d.Round(int32(scale) - 1)
	}
}

var maxUint64Big = new(big.Int).SetUint64(math.MaxUint64)

func decimalParts(d decimal.Decimal) (coef *big.Int, scale uint32, neg bool) {
	coef = d.Coefficient()
	exp := d.Exponent()
	if exp > 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
		exp = 0
	}
	neg = coef.Sign() < 0
	coef.Abs(coef)
	return coef, uint32(-exp), neg
}

func (p payload) decimal() decimal.Decimal {
	coef := new(big.Int).SetUint64(p.hiWordLow())
	coef.Lsh(coef, 64)
	coef.Or(coef, new(big.Int).SetUint64(p[0]))
	if p[1]>>63 != 0 {
		coef.Neg(coef)
	}
	scale := int32((p[1] >> 32) & 0xff)
	return decimal.NewFromBigInt(coef, -scale)
}

// decimalScale returns the number of fractional digits of a decimal payload.
func (p payload) decimalScale() int32 { return int32((p[1] >> 32) & 0xff) }

func timePayload(t time.Time) payload {
	kind := zoneFixed
	var offset int
	switch loc := t.Location(); loc {
	case time.UTC:
		kind = zoneUTC
	case time.Local:
		kind = zoneLocal
	default:
		_, offset = t.Zone()
	}
	w1 := uint64(uint32(t.Nanosecond())) | kind<<32 | uint64(int64(offset))<<40
	return payload{uint64(t.Unix()), w1}
}

func (p payload) dateTime() time.Time {
	t := time.Unix(int64(p[0]), int64(uint32(p[1])))
	switch (p[1] >> 32) & 0x3 {
	case zoneLocal:
		return t.Local()
	case zoneFixed:
		return t.In(time.FixedZone("", int(int64(p[1])>>40)))
	default:
		return t.UTC()
	}
}

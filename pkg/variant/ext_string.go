package variant

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"src.pless.dev/pkg/hash"
)

// stringExtender parses strings strictly. Parse failures are the errors of
// strconv, time or decimal; the null string parses like "".
type stringExtender struct{}

func str(v Variant) (s string, null bool) {
	s, ok := v.ref.(string)
	return s, !ok
}

func (stringExtender) ToBoolean(v Variant, _ FormatProvider) (bool, error) {
	s, _ := str(v)
	return parseBool(s)
}

// parseBool accepts "True" and "False" in any case with surrounding space.
func parseBool(s string) (bool, error) {
	switch t := strings.TrimSpace(s); {
	case strings.EqualFold(t, trueString):
		return true, nil
	case strings.EqualFold(t, falseString):
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax}
}

// ToChar returns the first rune, or 0 when s is empty or blank.
func (stringExtender) ToChar(v Variant, _ FormatProvider) (rune, error) {
	s, _ := str(v)
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (stringExtender) ToSByte(v Variant, p FormatProvider) (int8, error) {
	return parseSigned[int8](v, p)
}

func (stringExtender) ToByte(v Variant, p FormatProvider) (uint8, error) {
	return parseUnsigned[uint8](v, p)
}

func (stringExtender) ToInt16(v Variant, p FormatProvider) (int16, error) {
	return parseSigned[int16](v, p)
}

func (stringExtender) ToUInt16(v Variant, p FormatProvider) (uint16, error) {
	return parseUnsigned[uint16](v, p)
}

func (stringExtender) ToInt32(v Variant, p FormatProvider) (int32, error) {
	return parseSigned[int32](v, p)
}

func (stringExtender) ToUInt32(v Variant, p FormatProvider) (uint32, error) {
	return parseUnsigned[uint32](v, p)
}

func (stringExtender) ToInt64(v Variant, p FormatProvider) (int64, error) {
	return parseSigned[int64](v, p)
}

func (stringExtender) ToUInt64(v Variant, p FormatProvider) (uint64, error) {
	return parseUnsigned[uint64](v, p)
}

func (stringExtender) ToSingle(v Variant, p FormatProvider) (float32, error) {
	s, _ := str(v)
	f, err := parseFloat(s, 32, numberFormat(p))
	return float32(f), err
}

func (stringExtender) ToDouble(v Variant, p FormatProvider) (float64, error) {
	s, _ := str(v)
	return parseFloat(s, 64, numberFormat(p))
}

func (stringExtender) ToDecimal(v Variant, p FormatProvider) (decimal.Decimal, error) {
	s, _ := str(v)
	t, err := normalizeReal(s, numberFormat(p))
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, err
	}
	pl, err := decimalPayload(d)
	if err != nil {
		return decimal.Zero, overflow(String, Decimal)
	}
	return pl.decimal(), nil
}

func (stringExtender) ToDateTime(v Variant, p FormatProvider) (time.Time, error) {
	s, _ := str(v)
	return parseDateTime(s, p)
}

// Format returns the string itself and ignores the format.
func (stringExtender) Format(v Variant, _ string, _ FormatProvider) (string, error) {
	s, _ := str(v)
	return s, nil
}

func (stringExtender) Hash(v Variant) uint32 {
	s, null := str(v)
	if null {
		return 0
	}
	return hash.String(s)
}

func (stringExtender) Equal(a, b Variant) bool {
	if b.tag != String {
		return false
	}
	sa, nullA := str(a)
	sb, nullB := str(b)
	return nullA == nullB && sa == sb
}

// Compare orders strings bytewise, with the null string first.
func (stringExtender) Compare(a, b Variant) (int, error) {
	if b.tag != String {
		return 0, &CompareError{a.tag, b.tag}
	}
	sa, nullA := str(a)
	sb, nullB := str(b)
	switch {
	case nullA && nullB:
		return 0, nil
	case nullA:
		return -1, nil
	case nullB:
		return 1, nil
	}
	return strings.Compare(sa, sb), nil
}

func (stringExtender) GetAsObject(v Variant) any { return v.ref }

func (e stringExtender) ToType(v Variant, t reflect.Type, p FormatProvider) (any, error) {
	return toType(e, v, t, p)
}

// normalizeInteger trims surrounding space and replaces the culture's signs
// with ASCII ones.
func normalizeInteger(s string, nf *NumberFormat) string {
	s = strings.TrimSpace(s)
	if nf.NegativeSign != "-" && strings.HasPrefix(s, nf.NegativeSign) {
		s = "-" + s[len(nf.NegativeSign):]
	} else if nf.PositiveSign != "+" && strings.HasPrefix(s, nf.PositiveSign) {
		s = "+" + s[len(nf.PositiveSign):]
	}
	return s
}

func parseSigned[T signed](v Variant, p FormatProvider) (T, error) {
	s, _ := str(v)
	var zero T
	i, err := strconv.ParseInt(normalizeInteger(s, numberFormat(p)), 10, int(reflect.TypeOf(zero).Size())*8)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func parseUnsigned[T unsigned](v Variant, p FormatProvider) (T, error) {
	s, _ := str(v)
	var zero T
	t := normalizeInteger(s, numberFormat(p))
	// ParseUint rejects an explicit plus sign.
	t = strings.TrimPrefix(t, "+")
	u, err := strconv.ParseUint(t, 10, int(reflect.TypeOf(zero).Size())*8)
	if err != nil {
		return 0, err
	}
	return T(u), nil
}

// normalizeReal turns a culture-formatted real number into the syntax of
// strconv.ParseFloat and decimal.NewFromString. Only digits, one decimal
// separator, group separators, a leading sign and an exponent are allowed.
func normalizeReal(s string, nf *NumberFormat) (string, error) {
	t := normalizeInteger(s, nf)
	if nf.GroupSeparator != "" {
		t = strings.ReplaceAll(t, nf.GroupSeparator, "")
	}
	if nf.DecimalSeparator != "." {
		t = strings.Replace(t, nf.DecimalSeparator, ".", 1)
	}
	if t == "" || strings.Trim(t, "0123456789+-.eE") != "" {
		return "", &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return t, nil
}

func parseFloat(s string, bits int, nf *NumberFormat) (float64, error) {
	switch strings.TrimSpace(s) {
	case nf.NaN:
		return math.NaN(), nil
	case nf.PositiveInfinity:
		return math.Inf(1), nil
	case nf.NegativeInfinity:
		return math.Inf(-1), nil
	}
	t, err := normalizeReal(s, nf)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(t, bits)
}

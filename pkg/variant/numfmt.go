package variant

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number formatting for the integer, float and decimal families.
//
// Standard format strings are a letter optionally followed by a precision:
//
//	G R F N E D X P C
//
// Any other format string is a custom pattern built from 0 # . , % and
// literal text, with up to three ';'-separated sections (positive, negative,
// zero).

type numKind uint8

const (
	numSigned numKind = iota
	numUnsigned
	numFloat
	numDecimal
)

// number is a numeric value being formatted.
type number struct {
	kind numKind
	tag  Tag
	i    int64
	u    uint64
	f    float64
	d    decimal.Decimal
}

func signedNumber(i int64, tag Tag) number    { return number{kind: numSigned, tag: tag, i: i} }
func unsignedNumber(u uint64, tag Tag) number { return number{kind: numUnsigned, tag: tag, u: u} }
func floatNumber(f float64, tag Tag) number   { return number{kind: numFloat, tag: tag, f: f} }
func decimalNumber(d decimal.Decimal) number  { return number{kind: numDecimal, tag: Decimal, d: d} }

func (n number) isInteger() bool { return n.kind == numSigned || n.kind == numUnsigned }

func (n number) floatBits() int {
	if n.tag == Single {
		return 32
	}
	return 64
}

func zeros(n int) string { return strings.Repeat("0", n) }

func (n number) special(nf *NumberFormat) (string, bool) {
	if n.kind != numFloat {
		return "", false
	}
	switch {
	case math.IsNaN(n.f):
		return nf.NaN, true
	case math.IsInf(n.f, 1):
		return nf.PositiveInfinity, true
	case math.IsInf(n.f, -1):
		return nf.NegativeInfinity, true
	}
	return "", false
}

func (n number) isNegative() bool {
	switch n.kind {
	case numSigned:
		return n.i < 0
	case numFloat:
		return n.f < 0
	case numDecimal:
		return n.d.Sign() < 0
	}
	return false
}

func (n number) isZero() bool {
	switch n.kind {
	case numSigned:
		return n.i == 0
	case numUnsigned:
		return n.u == 0
	case numFloat:
		return n.f == 0
	}
	return n.d.IsZero()
}

func (n number) abs() number {
	switch n.kind {
	case numSigned:
		if n.i < 0 {
			return unsignedNumber(uint64(-n.i), n.tag)
		}
	case numFloat:
		n.f = math.Abs(n.f)
	case numDecimal:
		n.d = n.d.Abs()
	}
	return n
}

func (n number) percent() number {
	switch n.kind {
	case numFloat:
		return floatNumber(n.f*100, n.tag)
	case numDecimal:
		return decimalNumber(n.d.Mul(decimal.New(100, 0)))
	case numSigned:
		return decimalNumber(decimal.New(n.i, 2))
	}
	return decimalNumber(decimal.NewFromBigInt(new(big.Int).SetUint64(n.u), 2))
}

// intAbs returns the sign and the decimal digits of an integer.
func (n number) intAbs() (bool, string) {
	if n.kind == numUnsigned {
		return false, strconv.FormatUint(n.u, 10)
	}
	if n.i < 0 {
		return true, strconv.FormatUint(uint64(-n.i), 10)
	}
	return false, strconv.FormatInt(n.i, 10)
}

// plain returns the exact rendering used by G without precision for integers
// and decimals. Decimals keep their scale.
func (n number) plain() (bool, string) {
	if n.kind == numDecimal {
		scale := int32(0)
		if e := n.d.Exponent(); e < 0 {
			scale = -e
		}
		return splitSign(n.d.StringFixed(scale))
	}
	return n.intAbs()
}

// fixed returns the sign and the ASCII rendering of |n| rounded to prec
// fractional digits.
func (n number) fixed(prec int) (bool, string) {
	switch n.kind {
	case numFloat:
		return splitSign(strconv.FormatFloat(n.f, 'f', prec, n.floatBits()))
	case numDecimal:
		return splitSign(n.d.StringFixed(int32(prec)))
	}
	neg, s := n.intAbs()
	if prec > 0 {
		s += "." + zeros(prec)
	}
	return neg, s
}

// scientific returns the sign, the significant digits of |n| and the decimal
// exponent of the first digit. With prec >= 0 the digits are rounded to
// prec+1 places; otherwise floats yield their shortest round-trip digits and
// other numbers all their digits.
func (n number) scientific(prec int) (neg bool, digits string, exp int) {
	if n.kind == numFloat {
		neg, s := splitSign(strconv.FormatFloat(n.f, 'e', prec, n.floatBits()))
		mant, ex, _ := strings.Cut(s, "e")
		exp, _ = strconv.Atoi(ex)
		return neg, strings.Replace(mant, ".", "", 1), exp
	}
	var coef string
	var shift int
	if n.kind == numDecimal {
		c := n.d.Coefficient()
		neg = c.Sign() < 0
		coef = c.Abs(c).String()
		shift = int(n.d.Exponent())
	} else {
		neg, coef = n.intAbs()
	}
	coef = strings.TrimLeft(coef, "0")
	if coef == "" {
		digits, exp = "0", 0
	} else {
		digits, exp = coef, len(coef)-1+shift
	}
	if prec >= 0 {
		var carry bool
		digits, carry = roundDigits(digits, prec+1)
		if carry {
			exp++
		}
		if len(digits) < prec+1 {
			digits += zeros(prec + 1 - len(digits))
		}
	}
	return neg, digits, exp
}

// roundDigits rounds a digit string to n digits, half away from zero. The
// carry result reports that rounding added a digit in front, in which case
// the result is "1" followed by zeros.
func roundDigits(digits string, n int) (string, bool) {
	if len(digits) <= n {
		return digits, false
	}
	up := digits[n] >= '5'
	b := []byte(digits[:n])
	if !up {
		return string(b), false
	}
	for i := n - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return "1" + string(b[:len(b)-1]), true
}

func splitSign(s string) (bool, string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

func localize(neg bool, s string, group bool, nf *NumberFormat) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if group {
		intPart = groupDigits(intPart, nf.GroupSeparator)
	}
	var sb strings.Builder
	if neg {
		sb.WriteString(nf.NegativeSign)
	}
	sb.WriteString(intPart)
	if hasFrac {
		sb.WriteString(nf.DecimalSeparator)
		sb.WriteString(frac)
	}
	return sb.String()
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var sb strings.Builder
	first := len(digits) % 3
	if first > 0 {
		sb.WriteString(digits[:first])
	}
	for i := first; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

type standardFormat struct {
	letter byte
	upper  bool
	// prec is -1 when the format has no precision.
	prec int
}

func (sf standardFormat) precOr(def int) int {
	if sf.prec < 0 {
		return def
	}
	return sf.prec
}

// parseStandardFormat returns ok == false for custom patterns and an error
// for letter formats that are not supported.
func parseStandardFormat(format string) (sf standardFormat, ok bool, err error) {
	if format == "" {
		return standardFormat{'G', true, -1}, true, nil
	}
	c := format[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return sf, false, nil
	}
	rest := format[1:]
	prec := -1
	if rest != "" {
		if len(rest) > 9 || strings.Trim(rest, "0123456789") != "" {
			return sf, false, nil
		}
		prec, _ = strconv.Atoi(rest)
	}
	upper := c >= 'A' && c <= 'Z'
	letter := c &^ 0x20
	if !strings.ContainsRune("GRFNEDXPC", rune(letter)) {
		return sf, false, formatError(format)
	}
	return standardFormat{letter, upper, prec}, true, nil
}

func formatNumber(n number, format string, p FormatProvider) (string, error) {
	nf := numberFormat(p)
	sf, ok, err := parseStandardFormat(format)
	if err != nil {
		return "", err
	}
	if !ok {
		return formatCustom(n, format, nf), nil
	}
	if s, ok := n.special(nf); ok {
		return s, nil
	}
	switch sf.letter {
	case 'G':
		return formatGeneral(n, sf.prec, sf.upper, nf), nil
	case 'R':
		return formatGeneral(n, -1, sf.upper, nf), nil
	case 'F':
		neg, s := n.fixed(sf.precOr(nf.DecimalDigits))
		return localize(neg, s, false, nf), nil
	case 'N':
		neg, s := n.fixed(sf.precOr(nf.DecimalDigits))
		return localize(neg, s, true, nf), nil
	case 'E':
		return formatExponent(n, sf.precOr(6), sf.upper, nf), nil
	case 'D':
		if !n.isInteger() {
			return "", formatError(format)
		}
		neg, s := n.intAbs()
		if len(s) < sf.prec {
			s = zeros(sf.prec-len(s)) + s
		}
		return localize(neg, s, false, nf), nil
	case 'X':
		if !n.isInteger() {
			return "", formatError(format)
		}
		return formatHex(n, sf.prec, sf.upper), nil
	case 'P':
		neg, s := n.percent().fixed(sf.precOr(nf.DecimalDigits))
		return localize(neg, s, true, nf) + " " + nf.PercentSymbol, nil
	default: // 'C'
		neg, s := n.fixed(sf.precOr(nf.DecimalDigits))
		sign := ""
		if neg {
			sign = nf.NegativeSign
		}
		return sign + nf.CurrencySymbol + localize(false, s, true, nf), nil
	}
}

func formatGeneral(n number, prec int, upper bool, nf *NumberFormat) string {
	if prec <= 0 && n.kind != numFloat {
		neg, s := n.plain()
		return localize(neg, s, false, nf)
	}
	var (
		neg    bool
		digits string
		exp    int
		maxExp = prec
	)
	if prec <= 0 {
		neg, digits, exp = n.scientific(-1)
		maxExp = 15
		if n.tag == Single {
			maxExp = 7
		}
	} else {
		neg, digits, exp = n.scientific(prec - 1)
	}
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}
	if exp >= maxExp || exp < -4 {
		mant := digits[:1]
		if len(digits) > 1 {
			mant += nf.DecimalSeparator + digits[1:]
		}
		return signPrefix(neg, nf) + mant + exponent(exp, upper, 2, nf)
	}
	var s string
	switch {
	case exp < 0:
		s = "0." + zeros(-exp-1) + digits
	case len(digits) <= exp+1:
		s = digits + zeros(exp+1-len(digits))
	default:
		s = digits[:exp+1] + "." + digits[exp+1:]
	}
	return localize(neg, s, false, nf)
}

func formatExponent(n number, prec int, upper bool, nf *NumberFormat) string {
	neg, digits, exp := n.scientific(prec)
	mant := digits[:1]
	if prec > 0 {
		mant += nf.DecimalSeparator + digits[1:]
	}
	return signPrefix(neg, nf) + mant + exponent(exp, upper, 3, nf)
}

func signPrefix(neg bool, nf *NumberFormat) string {
	if neg {
		return nf.NegativeSign
	}
	return ""
}

func exponent(exp int, upper bool, minDigits int, nf *NumberFormat) string {
	e := "E"
	if !upper {
		e = "e"
	}
	sign := nf.PositiveSign
	if exp < 0 {
		sign = nf.NegativeSign
		exp = -exp
	}
	s := strconv.Itoa(exp)
	if len(s) < minDigits {
		s = zeros(minDigits-len(s)) + s
	}
	return e + sign + s
}

// formatHex formats integers in hexadecimal; negative values are shown in
// two's complement at the width of their tag.
func formatHex(n number, prec int, upper bool) string {
	u := n.u
	if n.kind == numSigned {
		u = uint64(n.i)
		if bits := n.tag.bits(); bits < 64 {
			u &= 1<<bits - 1
		}
	}
	s := strconv.FormatUint(u, 16)
	if upper {
		s = strings.ToUpper(s)
	}
	if len(s) < prec {
		s = zeros(prec-len(s)) + s
	}
	return s
}

type customPattern struct {
	prefix, suffix   string
	placeholders     int
	intMin           int
	fracMin, fracMax int
	group, percent   bool
}

func parseCustomPattern(section string, nf *NumberFormat) customPattern {
	var (
		pat        customPattern
		seenPoint  bool
		pendingSep bool
		lit        strings.Builder
	)
	flushLiteral := func() {
		if pat.placeholders == 0 {
			pat.prefix += lit.String()
		} else {
			pat.suffix += lit.String()
		}
		lit.Reset()
	}
	for i := 0; i < len(section); i++ {
		c := section[i]
		switch c {
		case '0', '#':
			flushLiteral()
			pat.suffix = ""
			if pendingSep {
				pat.group = true
				pendingSep = false
			}
			pat.placeholders++
			if seenPoint {
				pat.fracMax++
				if c == '0' {
					pat.fracMin++
				}
			} else if c == '0' {
				pat.intMin++
			}
		case '.':
			seenPoint = true
		case ',':
			if !seenPoint && pat.placeholders > 0 {
				pendingSep = true
			}
		case '%':
			pat.percent = true
			lit.WriteString(nf.PercentSymbol)
		case '\\':
			if i+1 < len(section) {
				i++
				lit.WriteByte(section[i])
			}
		case '\'', '"':
			end := strings.IndexByte(section[i+1:], c)
			if end < 0 {
				end = len(section) - i - 1
			}
			lit.WriteString(section[i+1 : i+1+end])
			i += end + 1
		default:
			lit.WriteByte(c)
		}
	}
	flushLiteral()
	return pat
}

func splitSections(format string) []string {
	var sections []string
	start := 0
	var quote byte
	for i := 0; i < len(format); i++ {
		switch c := format[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '\\':
			i++
		case c == ';':
			sections = append(sections, format[start:i])
			start = i + 1
		}
	}
	return append(sections, format[start:])
}

func formatCustom(n number, format string, nf *NumberFormat) string {
	sections := splitSections(format)
	section := sections[0]
	ownSign := false
	if len(sections) > 1 && n.isNegative() && sections[1] != "" {
		section, ownSign = sections[1], true
	} else if len(sections) > 2 && n.isZero() && sections[2] != "" {
		section = sections[2]
	}
	pat := parseCustomPattern(section, nf)
	if pat.percent {
		n = n.percent()
	}
	if s, ok := n.special(nf); ok {
		return s
	}
	if pat.placeholders == 0 {
		return pat.prefix + pat.suffix
	}
	neg, s := n.fixed(pat.fracMax)
	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) > pat.fracMin && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}
	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart) < pat.intMin {
		intPart = zeros(pat.intMin-len(intPart)) + intPart
	}
	if pat.group {
		intPart = groupDigits(intPart, nf.GroupSeparator)
	}
	var sb strings.Builder
	if neg && !ownSign && strings.Trim(intPart+frac, "0") != "" {
		sb.WriteString(nf.NegativeSign)
	}
	sb.WriteString(pat.prefix)
	sb.WriteString(intPart)
	if frac != "" {
		sb.WriteString(nf.DecimalSeparator)
		sb.WriteString(frac)
	}
	sb.WriteString(pat.suffix)
	return sb.String()
}

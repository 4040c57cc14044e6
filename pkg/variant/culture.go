package variant

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatProvider supplies culture-specific data to conversions and
// formatting. A nil FormatProvider means [Invariant].
type FormatProvider interface {
	NumberFormat() *NumberFormat
	DateTimeFormat() *DateTimeFormat
}

// NumberFormat holds the symbols used to format and parse numbers.
type NumberFormat struct {
	DecimalSeparator string
	GroupSeparator   string
	NegativeSign     string
	PositiveSign     string
	PercentSymbol    string
	CurrencySymbol   string
	NaN              string
	PositiveInfinity string
	NegativeInfinity string
	// DecimalDigits is the default precision of the F, N, P and C formats.
	DecimalDigits int
}

// DateTimeFormat holds the Go layouts used for the standard date and time
// formats.
type DateTimeFormat struct {
	ShortDate string
	LongDate  string
	ShortTime string
	LongTime  string
}

// Culture is a FormatProvider with a name.
type Culture struct {
	Name     string
	Number   NumberFormat
	DateTime DateTimeFormat
}

func (c *Culture) NumberFormat() *NumberFormat     { return &c.Number }
func (c *Culture) DateTimeFormat() *DateTimeFormat { return &c.DateTime }

// Invariant is the culture-independent FormatProvider.
var Invariant = &Culture{
	Name:   "",
	Number: invariantNumber,
	DateTime: DateTimeFormat{
		ShortDate: "01/02/2006",
		LongDate:  "Monday, 02 January 2006",
		ShortTime: "15:04",
		LongTime:  "15:04:05",
	},
}

var invariantNumber = NumberFormat{
	DecimalSeparator: ".",
	GroupSeparator:   ",",
	NegativeSign:     "-",
	PositiveSign:     "+",
	PercentSymbol:    "%",
	CurrencySymbol:   "¤",
	NaN:              "NaN",
	PositiveInfinity: "Infinity",
	NegativeInfinity: "-Infinity",
	DecimalDigits:    2,
}

// Date layouts that differ from the invariant ones, keyed by "lang-REGION"
// and then by "lang".
var dateTimeFormats = map[string]DateTimeFormat{
	"en-US": {"1/2/2006", "Monday, January 2, 2006", "3:04 PM", "3:04:05 PM"},
	"en":    {"02/01/2006", "2 January 2006", "15:04", "15:04:05"},
	"de":    {"02.01.2006", "Monday, 2. January 2006", "15:04", "15:04:05"},
	"fr":    {"02/01/2006", "Monday 2 January 2006", "15:04", "15:04:05"},
	"it":    {"02/01/2006", "Monday 2 January 2006", "15:04", "15:04:05"},
	"es":    {"02/01/2006", "Monday, 2 January 2006", "15:04", "15:04:05"},
	"ru":    {"02.01.2006", "2 January 2006", "15:04", "15:04:05"},
	"pl":    {"02.01.2006", "Monday, 2 January 2006", "15:04", "15:04:05"},
	"nl":    {"2-1-2006", "Monday 2 January 2006", "15:04", "15:04:05"},
	"ja":    {"2006/01/02", "2006年1月2日", "15:04", "15:04:05"},
	"zh":    {"2006/1/2", "2006年1月2日", "15:04", "15:04:05"},
}

// NewCulture derives a Culture for the given language. The number symbols are
// taken from the output of golang.org/x/text/message; the date layouts come
// from a small built-in table and default to the invariant ones.
func NewCulture(tag language.Tag) *Culture {
	if tag == language.Und {
		c := *Invariant
		return &c
	}
	c := &Culture{Name: tag.String(), Number: invariantNumber, DateTime: Invariant.DateTime}
	decimalSep, groupSep := separators(message.NewPrinter(tag).Sprintf("%.1f", 1234.5))
	if decimalSep != "" {
		c.Number.DecimalSeparator = decimalSep
	}
	c.Number.GroupSeparator = groupSep

	base, _ := tag.Base()
	region, _ := tag.Region()
	if dt, ok := dateTimeFormats[base.String()+"-"+region.String()]; ok {
		c.DateTime = dt
	} else if dt, ok := dateTimeFormats[base.String()]; ok {
		c.DateTime = dt
	}
	return c
}

// CultureByName parses a BCP 47 language tag and calls NewCulture. The empty
// name denotes Invariant.
func CultureByName(name string) (*Culture, error) {
	if name == "" {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}
	return NewCulture(tag), nil
}

// separators extracts the separators from a localized rendering of 1234.5:
// the group separator is whatever sits between the first and second digit,
// the decimal separator whatever sits before the last digit.
func separators(s string) (decimalSep, groupSep string) {
	rs := []rune(s)
	var digits []int
	for i, r := range rs {
		if unicode.IsDigit(r) {
			digits = append(digits, i)
		}
	}
	if len(digits) != 5 {
		return "", ""
	}
	groupSep = string(rs[digits[0]+1 : digits[1]])
	decimalSep = string(rs[digits[3]+1 : digits[4]])
	return decimalSep, groupSep
}

func numberFormat(p FormatProvider) *NumberFormat {
	if p != nil {
		if nf := p.NumberFormat(); nf != nil {
			return nf
		}
	}
	return &invariantNumber
}

func dateTimeFormat(p FormatProvider) *DateTimeFormat {
	if p != nil {
		if df := p.DateTimeFormat(); df != nil {
			return df
		}
	}
	return &Invariant.DateTime
}

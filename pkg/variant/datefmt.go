package variant

import (
	"strings"
	"time"
)

// DateTime formatting. The single letters d D t T g G f F s u o r are the
// standard formats; format strings containing a digit are used as Go
// layouts, and anything else is read as a custom pattern (yyyy-MM-dd HH:mm).

const (
	sortableLayout  = "2006-01-02T15:04:05"
	universalLayout = "2006-01-02 15:04:05Z"
	roundTripLayout = "2006-01-02T15:04:05.0000000Z07:00"
	rfc1123Layout   = "Mon, 02 Jan 2006 15:04:05 GMT"
)

func dateTimeLayout(format string, df *DateTimeFormat) (layout string, utc bool, err error) {
	switch format {
	case "", "G":
		return df.ShortDate + " " + df.LongTime, false, nil
	case "d":
		return df.ShortDate, false, nil
	case "D":
		return df.LongDate, false, nil
	case "t":
		return df.ShortTime, false, nil
	case "T":
		return df.LongTime, false, nil
	case "g":
		return df.ShortDate + " " + df.ShortTime, false, nil
	case "f":
		return df.LongDate + " " + df.ShortTime, false, nil
	case "F":
		return df.LongDate + " " + df.LongTime, false, nil
	case "s":
		return sortableLayout, false, nil
	case "u":
		return universalLayout, true, nil
	case "o", "O":
		return roundTripLayout, false, nil
	case "r", "R":
		return rfc1123Layout, true, nil
	}
	if len(format) == 1 {
		return "", false, formatError(format)
	}
	if strings.ContainsAny(format, "0123456789") {
		return format, false, nil
	}
	return customDateLayout(format), false, nil
}

func formatDateTime(t time.Time, format string, p FormatProvider) (string, error) {
	layout, utc, err := dateTimeLayout(format, dateTimeFormat(p))
	if err != nil {
		return "", err
	}
	if utc {
		t = t.UTC()
	}
	return t.Format(layout), nil
}

// Custom pattern tokens, longest first.
var dateTokens = []struct{ pattern, layout string }{
	{"yyyy", "2006"}, {"yy", "06"},
	{"MMMM", "January"}, {"MMM", "Jan"}, {"MM", "01"}, {"M", "1"},
	{"dddd", "Monday"}, {"ddd", "Mon"}, {"dd", "02"}, {"d", "2"},
	{"HH", "15"}, {"H", "15"}, {"hh", "03"}, {"h", "3"},
	{"mm", "04"}, {"m", "4"}, {"ss", "05"}, {"s", "5"},
	{"fffffff", "0000000"}, {"ffffff", "000000"}, {"fffff", "00000"},
	{"ffff", "0000"}, {"fff", "000"}, {"ff", "00"}, {"f", "0"},
	{"tt", "PM"}, {"zzz", "-07:00"}, {"zz", "-07"}, {"z", "-07"},
	{"K", "Z07:00"},
}

// customDateLayout translates a yyyy-MM-dd style pattern into a Go layout.
// Text in single or double quotes and characters after a backslash are kept
// literally.
func customDateLayout(pattern string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '\'', '"':
			end := strings.IndexByte(pattern[i+1:], c)
			if end < 0 {
				end = len(pattern) - i - 1
			}
			sb.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		case '\\':
			if i+1 < len(pattern) {
				sb.WriteByte(pattern[i+1])
			}
			i += 2
			continue
		}
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(pattern[i:], tok.pattern) {
				sb.WriteString(tok.layout)
				i += len(tok.pattern)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// parseDateTime tries RFC 3339 and the culture's layouts in turn. Values
// without a zone are read as UTC. When nothing matches, the error from the
// RFC 3339 attempt is returned.
func parseDateTime(s string, p FormatProvider) (time.Time, error) {
	s = strings.TrimSpace(s)
	df := dateTimeFormat(p)
	t, firstErr := time.Parse(time.RFC3339Nano, s)
	if firstErr == nil {
		return t, nil
	}
	layouts := []string{
		sortableLayout + ".999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
		df.ShortDate + " " + df.LongTime,
		df.ShortDate + " " + df.ShortTime,
		df.ShortDate,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, firstErr
}

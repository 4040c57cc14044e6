package variant

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Text returns a culture-independent text form of v from which ParseText
// recovers an equal variant of the same tag. Floats use the shortest form
// that round-trips, decimals keep their scale and times use RFC 3339 with
// nanoseconds. The null string encodes like "". Object variants cannot be
// encoded.
func (v Variant) Text() (string, error) {
	switch v.tag {
	case Empty, DBNull:
		return "", nil
	case Object:
		return "", invalidCast(Object, String)
	case Boolean:
		return boolString(v.AsBoolean()), nil
	case Char:
		return string(v.AsChar()), nil
	case Single:
		return strconv.FormatFloat(float64(v.AsSingle()), 'g', -1, 32), nil
	case Double:
		return strconv.FormatFloat(v.AsDouble(), 'g', -1, 64), nil
	case Decimal:
		return v.AsDecimal().StringFixed(v.data.decimalScale()), nil
	case DateTime:
		return v.AsDateTime().Format(time.RFC3339Nano), nil
	case String:
		s, _ := str(v)
		return s, nil
	}
	if v.tag.IsSigned() {
		return strconv.FormatInt(v.AsInt(), 10), nil
	}
	return strconv.FormatUint(v.AsUInt(), 10), nil
}

// ParseText parses the output of Text for the given tag.
func ParseText(tag Tag, s string) (Variant, error) {
	switch tag {
	case Empty:
		return Zero, nil
	case DBNull:
		return Null, nil
	case Object:
		return Variant{}, invalidCast(String, Object)
	case Boolean:
		b, err := parseBool(s)
		return result(FromBool(b), err)
	case Char:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return Variant{}, fmt.Errorf("want exactly one character, got %q", s)
		}
		return FromChar(r), nil
	case Single:
		f, err := strconv.ParseFloat(s, 32)
		return result(FromFloat32(float32(f)), err)
	case Double:
		f, err := strconv.ParseFloat(s, 64)
		return result(FromFloat64(f), err)
	case Decimal:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Variant{}, err
		}
		return TryDecimal(d)
	case DateTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		return result(FromTime(t), err)
	case String:
		return FromString(s), nil
	}
	if tag.IsSigned() {
		i, err := strconv.ParseInt(s, 10, tag.bits())
		return result(WithTag(tag, i), err)
	}
	if tag.IsUnsigned() {
		u, err := strconv.ParseUint(s, 10, tag.bits())
		return result(WithTag(tag, u), err)
	}
	return Variant{}, fmt.Errorf("unknown variant type %s", tag)
}

// Binary encoding: a tag byte, followed by
//
//	Empty, DBNull: nothing
//	String: 0 for the null string, or 1, a uvarint length and the bytes
//	other simple tags: the two payload words, little endian
//
// Object variants cannot be encoded.

// ErrBadEncoding is returned by DecodeBinary for malformed input.
var ErrBadEncoding = errors.New("bad variant encoding")

// AppendBinary appends the binary encoding of v to buf.
func AppendBinary(buf []byte, v Variant) ([]byte, error) {
	switch v.tag {
	case Object:
		return buf, invalidCast(Object, String)
	case Empty, DBNull:
		return append(buf, byte(v.tag)), nil
	case String:
		s, null := str(v)
		if null {
			return append(buf, byte(v.tag), 0), nil
		}
		buf = append(buf, byte(v.tag), 1)
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		return append(buf, s...), nil
	}
	buf = append(buf, byte(v.tag))
	buf = binary.LittleEndian.AppendUint64(buf, v.data[0])
	return binary.LittleEndian.AppendUint64(buf, v.data[1]), nil
}

// DecodeBinary decodes a variant from the start of b and returns it with the
// number of bytes read.
func DecodeBinary(b []byte) (Variant, int, error) {
	if len(b) == 0 {
		return Variant{}, 0, io.ErrUnexpectedEOF
	}
	tag := Tag(b[0])
	switch {
	case !tag.Valid() || tag == Object:
		return Variant{}, 0, fmt.Errorf("%w: tag byte %d", ErrBadEncoding, b[0])
	case tag == Empty || tag == DBNull:
		return Variant{tag: tag}, 1, nil
	case tag == String:
		if len(b) < 2 {
			return Variant{}, 0, io.ErrUnexpectedEOF
		}
		switch b[1] {
		case 0:
			return NullString(), 2, nil
		case 1:
		default:
			return Variant{}, 0, fmt.Errorf("%w: string flag %d", ErrBadEncoding, b[1])
		}
		n, size := binary.Uvarint(b[2:])
		if size <= 0 {
			return Variant{}, 0, fmt.Errorf("%w: string length", ErrBadEncoding)
		}
		start := 2 + size
		if n > math.MaxInt32 || uint64(len(b)-start) < n {
			return Variant{}, 0, io.ErrUnexpectedEOF
		}
		end := start + int(n)
		return FromString(string(b[start:end])), end, nil
	}
	if len(b) < 17 {
		return Variant{}, 0, io.ErrUnexpectedEOF
	}
	p := payload{binary.LittleEndian.Uint64(b[1:]), binary.LittleEndian.Uint64(b[9:])}
	return Variant{tag: tag, data: p}, 17, nil
}

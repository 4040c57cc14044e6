// Package variant implements a tagged value type that holds one of a closed
// set of primitive types, a string or an arbitrary Go value.
//
// A Variant is a small value type: it is copied on assignment and needs no
// synchronization. The operations on a Variant dispatch on its Tag to one of
// a fixed set of stateless extenders (see Extender); several tags share an
// extender when they share a storage family, for example all the signed
// integer widths are stored as an int64.
//
// The As* accessors of the simple families are unchecked: they reinterpret
// the payload regardless of the tag. Use the To* methods for checked
// conversions.
package variant

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a tagged union of primitive values. The zero value is Empty.
type Variant struct {
	tag  Tag
	data payload
	// ref holds the payload of String and Object. nil is the null reference.
	ref any
}

var (
	// Zero is the Empty variant.
	Zero = Variant{}
	// Null is the DBNull variant.
	Null = Variant{tag: DBNull}
)

// DBNullObject is the type of DBNullValue.
type DBNullObject struct{}

func (DBNullObject) String() string { return "" }

// DBNullValue is what AsObject returns for DBNull variants.
var DBNullValue = DBNullObject{}

// Constructors for each family. NullString and NullObject hold the null
// reference, so IsNull reports true for them.

func FromBool(b bool) Variant       { return Variant{tag: Boolean, data: boolPayload(b)} }
func FromChar(r rune) Variant       { return Variant{tag: Char, data: charPayload(r)} }
func FromInt64(i int64) Variant     { return Variant{tag: Int64, data: intPayload(i)} }
func FromUint64(u uint64) Variant   { return Variant{tag: UInt64, data: uintPayload(u)} }
func FromFloat32(f float32) Variant { return Variant{tag: Single, data: singlePayload(f)} }
func FromFloat64(f float64) Variant { return Variant{tag: Double, data: doublePayload(f)} }
func FromTime(t time.Time) Variant  { return Variant{tag: DateTime, data: timePayload(t)} }
func FromString(s string) Variant   { return Variant{tag: String, ref: s} }
func FromObject(x any) Variant      { return Variant{tag: Object, ref: x} }
func NullString() Variant           { return Variant{tag: String} }
func NullObject() Variant           { return Variant{tag: Object} }

// FromDecimal returns a Decimal variant. It panics if the integer part of d
// does not fit in 96 bits; use TryDecimal to get an error instead.
func FromDecimal(d decimal.Decimal) Variant {
	v, err := TryDecimal(d)
	if err != nil {
		panic(err)
	}
	return v
}

// TryDecimal returns a Decimal variant. Fractional digits beyond 28 places
// are rounded away.
func TryDecimal(d decimal.Decimal) (Variant, error) {
	p, err := decimalPayload(d)
	if err != nil {
		return Variant{}, overflow(Decimal, Decimal)
	}
	return Variant{tag: Decimal, data: p}, nil
}

// WithTag returns a variant of an integer tag. The payload is stored as is,
// so a value that does not fit the width of tag is only detected by the
// narrowing conversions. It panics if tag is not an integer tag.
func WithTag[T int64 | uint64](tag Tag, x T) Variant {
	switch {
	case tag.IsSigned():
		return Variant{tag: tag, data: intPayload(int64(x))}
	case tag.IsUnsigned():
		return Variant{tag: tag, data: uintPayload(uint64(x))}
	}
	panic("variant: WithTag with non-integer tag " + tag.String())
}

// Of returns the variant for a Go value. Integer types map to the tag of the
// same width, and named types to the tag of their underlying type. nil maps
// to Empty, a Variant to itself and DBNullValue to DBNull. Everything else,
// including decimals too large to store, is held as an Object.
func Of(x any) Variant {
	v, ok := primitiveOf(x)
	if !ok {
		return FromObject(x)
	}
	return v
}

func primitiveOf(x any) (Variant, bool) {
	switch x := x.(type) {
	case nil:
		return Variant{}, true
	case Variant:
		return x, true
	case DBNullObject:
		return Null, true
	case bool:
		return FromBool(x), true
	case int8:
		return WithTag(SByte, int64(x)), true
	case int16:
		return WithTag(Int16, int64(x)), true
	case int32:
		return WithTag(Int32, int64(x)), true
	case int:
		return FromInt64(int64(x)), true
	case int64:
		return FromInt64(x), true
	case uint8:
		return WithTag(Byte, uint64(x)), true
	case uint16:
		return WithTag(UInt16, uint64(x)), true
	case uint32:
		return WithTag(UInt32, uint64(x)), true
	case uint:
		return FromUint64(uint64(x)), true
	case uint64:
		return FromUint64(x), true
	case uintptr:
		return FromUint64(uint64(x)), true
	case float32:
		return FromFloat32(x), true
	case float64:
		return FromFloat64(x), true
	case decimal.Decimal:
		v, err := TryDecimal(x)
		return v, err == nil
	case time.Time:
		return FromTime(x), true
	case string:
		return FromString(x), true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), true
	case reflect.Int8:
		return WithTag(SByte, rv.Int()), true
	case reflect.Int16:
		return WithTag(Int16, rv.Int()), true
	case reflect.Int32:
		return WithTag(Int32, rv.Int()), true
	case reflect.Int, reflect.Int64:
		return FromInt64(rv.Int()), true
	case reflect.Uint8:
		return WithTag(Byte, rv.Uint()), true
	case reflect.Uint16:
		return WithTag(UInt16, rv.Uint()), true
	case reflect.Uint32:
		return WithTag(UInt32, rv.Uint()), true
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return FromUint64(rv.Uint()), true
	case reflect.Float32:
		return FromFloat32(float32(rv.Float())), true
	case reflect.Float64:
		return FromFloat64(rv.Float()), true
	case reflect.String:
		return FromString(rv.String()), true
	}
	return Variant{}, false
}

// Tag returns the active tag.
func (v Variant) Tag() Tag { return v.tag }

// IsEmpty and IsDBNull report the two sentinel tags. They are never both true.

func (v Variant) IsEmpty() bool  { return v.tag == Empty }
func (v Variant) IsDBNull() bool { return v.tag == DBNull }

// IsNull reports whether v is Empty, DBNull, or a String or Object holding
// the null reference.
func (v Variant) IsNull() bool {
	switch v.tag {
	case Empty, DBNull:
		return true
	case String, Object:
		return v.ref == nil
	}
	return false
}

// Unchecked accessors.

func (v Variant) AsBoolean() bool            { return v.data.bool() }
func (v Variant) AsChar() rune               { return v.data.char() }
func (v Variant) AsInt() int64               { return v.data.int() }
func (v Variant) AsUInt() uint64             { return v.data.uint() }
func (v Variant) AsSingle() float32          { return v.data.single() }
func (v Variant) AsDouble() float64          { return v.data.double() }
func (v Variant) AsDecimal() decimal.Decimal { return v.data.decimal() }
func (v Variant) AsDateTime() time.Time      { return v.data.dateTime() }

// AsString returns the string of a String variant, and the invariant general
// format of any other variant.
func (v Variant) AsString() string {
	if v.tag == String {
		s, _ := v.ref.(string)
		return s
	}
	return v.String()
}

// AsObject returns the object of an Object variant, and the payload as a Go
// value for any other variant.
func (v Variant) AsObject() any {
	if v.tag == Object {
		return v.ref
	}
	return v.ext().GetAsObject(v)
}

// Setters. Each replaces the tag, the whole payload and the reference.

func (v *Variant) SetBoolean(b bool)       { *v = FromBool(b) }
func (v *Variant) SetChar(r rune)          { *v = FromChar(r) }
func (v *Variant) SetInt(i int64)          { *v = FromInt64(i) }
func (v *Variant) SetUInt(u uint64)        { *v = FromUint64(u) }
func (v *Variant) SetSingle(f float32)     { *v = FromFloat32(f) }
func (v *Variant) SetDouble(f float64)     { *v = FromFloat64(f) }
func (v *Variant) SetDateTime(t time.Time) { *v = FromTime(t) }
func (v *Variant) SetString(s string)      { *v = FromString(s) }
func (v *Variant) SetObject(x any)         { *v = FromObject(x) }
func (v *Variant) SetEmpty()               { *v = Variant{} }
func (v *Variant) SetDBNull()              { *v = Null }

// SetDecimal stores d, leaving v unchanged if d is out of range.
func (v *Variant) SetDecimal(d decimal.Decimal) error {
	nv, err := TryDecimal(d)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// SetNull stores the null reference in a String or Object variant and makes
// any other variant Empty.
func (v *Variant) SetNull() {
	if v.tag.IsReference() {
		*v = Variant{tag: v.tag}
		return
	}
	*v = Variant{}
}

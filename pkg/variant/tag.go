package variant

import (
	"fmt"
	"strings"
)

// Tag identifies which interpretation of the payload of a Variant is active.
type Tag uint8

// Possible Tag values.
const (
	// Empty is the tag of an uninitialized variant (the zero value).
	Empty Tag = iota
	// DBNull is the tag of a database-style null value.
	DBNull
	// Object is the tag of an arbitrary Go value held in the reference slot.
	Object
	Boolean
	Char
	SByte
	Byte
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Single
	Double
	Decimal
	DateTime
	// String is the tag of a string held in the reference slot.
	String

	tagCount
)

var tagNames = [tagCount]string{
	Empty:    "Empty",
	DBNull:   "DBNull",
	Object:   "Object",
	Boolean:  "Boolean",
	Char:     "Char",
	SByte:    "SByte",
	Byte:     "Byte",
	Int16:    "Int16",
	UInt16:   "UInt16",
	Int32:    "Int32",
	UInt32:   "UInt32",
	Int64:    "Int64",
	UInt64:   "UInt64",
	Single:   "Single",
	Double:   "Double",
	Decimal:  "Decimal",
	DateTime: "DateTime",
	String:   "String",
}

// Valid reports whether t is one of the defined tags.
func (t Tag) Valid() bool { return t < tagCount }

func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// ParseTag returns the Tag with the given name, ignoring case.
func ParseTag(name string) (Tag, error) {
	for t, n := range tagNames {
		if strings.EqualFold(n, name) {
			return Tag(t), nil
		}
	}
	return Empty, fmt.Errorf("unknown variant type %q", name)
}

// Tags returns all defined tags in ordinal order.
func Tags() []Tag {
	tags := make([]Tag, tagCount)
	for i := range tags {
		tags[i] = Tag(i)
	}
	return tags
}

// IsSigned reports whether t is one of the signed integer tags.
func (t Tag) IsSigned() bool {
	return t == SByte || t == Int16 || t == Int32 || t == Int64
}

// IsUnsigned reports whether t is one of the unsigned integer tags.
func (t Tag) IsUnsigned() bool {
	return t == Byte || t == UInt16 || t == UInt32 || t == UInt64
}

// IsReference reports whether t keeps its payload in the reference slot.
func (t Tag) IsReference() bool { return t == String || t == Object }

// bits returns the logical width of an integer tag.
func (t Tag) bits() int {
	switch t {
	case SByte, Byte:
		return 8
	case Int16, UInt16:
		return 16
	case Int32, UInt32:
		return 32
	default:
		return 64
	}
}

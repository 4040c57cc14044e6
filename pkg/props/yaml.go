package props

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"src.pless.dev/pkg/variant"
)

// The YAML form of a Bag is a mapping from property names to entries:
//
//	answer:
//	  type: Int32
//	  value: "42"
//	missing:
//	  type: String
//	  value: null
//
// Values are in the variant.Text form. The value key is omitted for Empty and
// DBNull, and is null for the null String. Object properties cannot be
// marshaled.

// MarshalBag encodes b as YAML, keeping insertion order.
func MarshalBag(b *Bag) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	var err error
	b.Each(func(name string, v variant.Variant) bool {
		var entry *yaml.Node
		entry, err = entryNode(v)
		if err != nil {
			err = fmt.Errorf("property %s: %w", name, err)
			return false
		}
		root.Content = append(root.Content, scalar("!!str", name), entry)
		return true
	})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func entryNode(v variant.Variant) (*yaml.Node, error) {
	entry := &yaml.Node{Kind: yaml.MappingNode}
	entry.Content = append(entry.Content, scalar("!!str", "type"), scalar("!!str", v.Tag().String()))
	switch {
	case v.IsEmpty() || v.IsDBNull():
		return entry, nil
	case v.Tag() == variant.String && v.IsNull():
		entry.Content = append(entry.Content, scalar("!!str", "value"), scalar("!!null", "null"))
		return entry, nil
	}
	text, err := v.Text()
	if err != nil {
		return nil, err
	}
	value := scalar("!!str", text)
	value.Style = yaml.DoubleQuotedStyle
	entry.Content = append(entry.Content, scalar("!!str", "value"), value)
	return entry, nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// UnmarshalBag decodes the YAML form of a Bag. An empty document gives an
// empty Bag.
func UnmarshalBag(data []byte) (*Bag, error) {
	var doc yaml.Node
	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return New(), nil
	} else if err != nil {
		return nil, err
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: want a mapping of properties", root.Line)
	}
	b := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if b.Has(name) {
			return nil, fmt.Errorf("line %d: duplicate property %s", root.Content[i].Line, name)
		}
		v, err := parseEntry(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		b.Set(name, v)
	}
	return b, nil
}

func parseEntry(entry *yaml.Node) (variant.Variant, error) {
	if entry.Kind != yaml.MappingNode {
		return variant.Variant{}, fmt.Errorf("line %d: want a mapping with type and value", entry.Line)
	}
	var typ, value *yaml.Node
	for i := 0; i+1 < len(entry.Content); i += 2 {
		key, val := entry.Content[i], entry.Content[i+1]
		switch key.Value {
		case "type":
			typ = val
		case "value":
			value = val
		default:
			return variant.Variant{}, fmt.Errorf("line %d: unknown key %s", key.Line, key.Value)
		}
	}
	if typ == nil {
		return variant.Variant{}, fmt.Errorf("line %d: missing type", entry.Line)
	}
	tag, err := variant.ParseTag(typ.Value)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("line %d: %w", typ.Line, err)
	}
	switch {
	case value == nil:
		if tag != variant.Empty && tag != variant.DBNull {
			return variant.Variant{}, fmt.Errorf("line %d: missing value for %s", entry.Line, tag)
		}
		return variant.ParseText(tag, "")
	case value.Tag == "!!null":
		if tag != variant.String {
			return variant.Variant{}, fmt.Errorf("line %d: null value for %s", value.Line, tag)
		}
		return variant.NullString(), nil
	case value.Kind != yaml.ScalarNode:
		return variant.Variant{}, fmt.Errorf("line %d: value must be a scalar", value.Line)
	}
	v, err := variant.ParseText(tag, value.Value)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("line %d: %w", value.Line, err)
	}
	return v, nil
}

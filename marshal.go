package querystring

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"strconv"
)

var (
	_ json.Marshaler   = (*QueryString)(nil)
	_ json.Unmarshaler = (*QueryString)(nil)
	_ yaml.Marshaler   = (*QueryString)(nil)
	_ yaml.Unmarshaler = (*QueryString)(nil)
	_ driver.Valuer    = (*QueryString)(nil)
	_ sql.Scanner      = (*QueryString)(nil)
)

// MarshalJSON encodes as an object in name order - a single value as a string, multiple values as an array
// and bare flags as null
func (q *QueryString) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if q != nil {
		for i, name := range q.names {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(&buf, name)
			buf.WriteByte(':')
			if es := q.entries[name]; len(es) == 1 {
				writeJSONEntry(&buf, es[0])
			} else {
				buf.WriteByte('[')
				for j, e := range es {
					if j > 0 {
						buf.WriteByte(',')
					}
					writeJSONEntry(&buf, e)
				}
				buf.WriteByte(']')
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONEntry(buf *bytes.Buffer, e entry) {
	if e.present {
		writeJSONString(buf, e.value)
	} else {
		buf.WriteString("null")
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	data, _ := json.Marshal(s)
	buf.Write(data)
}

// UnmarshalJSON decodes an object (as produced by MarshalJSON), preserving the order of names
//
// Numbers and booleans are accepted as values and stored in their literal form
func (q *QueryString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("querystring: unmarshal json: %w", err)
	} else if tok == nil {
		q.SetRaw("")
		return nil
	} else if d, ok := tok.(json.Delim); !ok || d != '{' {
		return newArgumentError("UnmarshalJSON", "data", "must be an object")
	}
	result := New()
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return fmt.Errorf("querystring: unmarshal json: %w", err)
		}
		name, _ := tok.(string)
		if name == "" {
			return newArgumentError("UnmarshalJSON", "name", reasonEmpty)
		}
		if tok, err = dec.Token(); err != nil {
			return fmt.Errorf("querystring: unmarshal json: %w", err)
		}
		if d, ok := tok.(json.Delim); ok {
			if d != '[' {
				return newArgumentError("UnmarshalJSON", name, reasonNotString)
			}
			count := 0
			for dec.More() {
				if tok, err = dec.Token(); err != nil {
					return fmt.Errorf("querystring: unmarshal json: %w", err)
				}
				e, ok := jsonEntry(tok)
				if !ok {
					return newArgumentError("UnmarshalJSON", name, reasonNotString)
				}
				result.add(name, e)
				count++
			}
			if _, err = dec.Token(); err != nil {
				return fmt.Errorf("querystring: unmarshal json: %w", err)
			}
			if count == 0 {
				result.add(name, flagEntry)
			}
		} else if e, ok := jsonEntry(tok); ok {
			result.add(name, e)
		} else {
			return newArgumentError("UnmarshalJSON", name, reasonNotString)
		}
	}
	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("querystring: unmarshal json: %w", err)
	}
	*q = *result
	return nil
}

func jsonEntry(tok json.Token) (entry, bool) {
	switch tt := tok.(type) {
	case nil:
		return flagEntry, true
	case string:
		return valueEntry(tt), true
	case json.Number:
		return valueEntry(tt.String()), true
	case bool:
		return valueEntry(strconv.FormatBool(tt)), true
	}
	return flagEntry, false
}

// MarshalYAML encodes as a mapping in name order - a single value as a scalar, multiple values as a sequence
// and bare flags as null
func (q *QueryString) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if q != nil {
		for _, name := range q.names {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
			var value *yaml.Node
			if es := q.entries[name]; len(es) == 1 {
				value = yamlEntryNode(es[0])
			} else {
				value = &yaml.Node{Kind: yaml.SequenceNode}
				for _, e := range es {
					value.Content = append(value.Content, yamlEntryNode(e))
				}
			}
			node.Content = append(node.Content, key, value)
		}
	}
	return node, nil
}

func yamlEntryNode(e entry) *yaml.Node {
	if !e.present {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.value}
}

// UnmarshalYAML decodes a mapping (as produced by MarshalYAML), preserving the order of names
func (q *QueryString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return newArgumentError("UnmarshalYAML", "value", "must be a mapping")
	}
	result := New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		name := k.Value
		if name == "" {
			return newArgumentError("UnmarshalYAML", "name", reasonEmpty)
		}
		switch v.Kind {
		case yaml.ScalarNode:
			result.add(name, yamlEntry(v))
		case yaml.SequenceNode:
			if len(v.Content) == 0 {
				result.add(name, flagEntry)
			}
			for _, item := range v.Content {
				if item.Kind != yaml.ScalarNode {
					return newArgumentError("UnmarshalYAML", name, reasonNotString)
				}
				result.add(name, yamlEntry(item))
			}
		default:
			return newArgumentError("UnmarshalYAML", name, reasonNotString)
		}
	}
	*q = *result
	return nil
}

func yamlEntry(n *yaml.Node) entry {
	if n.ShortTag() == "!!null" {
		return flagEntry
	}
	return valueEntry(n.Value)
}

// Value stores the query string in its encoded form - an empty query string is stored as NULL
func (q *QueryString) Value() (driver.Value, error) {
	if q.IsEmpty() {
		return nil, nil
	}
	return q.String(), nil
}

// Scan reads an encoded query string (string, []byte or NULL)
func (q *QueryString) Scan(src any) error {
	switch st := src.(type) {
	case nil:
		q.SetRaw("")
	case string:
		q.SetRaw(st)
	case []byte:
		q.SetRaw(string(st))
	default:
		return fmt.Errorf("querystring: cannot scan %T into query string", src)
	}
	return nil
}

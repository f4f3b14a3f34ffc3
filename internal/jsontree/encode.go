package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders n as compact JSON. Members keep their document order
// (duplicates included) and numbers keep their literal text, so a decoded
// document encodes back to the same values.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case KindObject:
		buf.WriteByte('{')
		for i, m := range n.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		switch v := n.Scalar.(type) {
		case nil:
			buf.WriteString("null")
		case bool:
			if v {
				buf.WriteString("true")
			} else {
				buf.WriteString("false")
			}
		case json.Number:
			buf.WriteString(v.String())
		case string:
			return encodeString(buf, v)
		default:
			return fmt.Errorf("unsupported scalar %T", v)
		}
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// Literal renders n without treating any value as empty: strings as-is and
// everything else as compact JSON ("0", "false", "null", `{"x":1}`). A
// missing node renders as "".
func (n *Node) Literal() string {
	if n == nil {
		return ""
	}
	if s, ok := n.Scalar.(string); ok && n.Kind == KindScalar {
		return s
	}
	data, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

// LiteralField returns the Literal of the named member, or "" when it is
// absent.
func (n *Node) LiteralField(key string) string {
	value, ok := n.Get(key)
	if !ok {
		return ""
	}
	return value.Literal()
}

package jsontree

import "encoding/json"

// Text renders a scalar node as a string. Values that count as empty render
// as "": missing nodes, null, false, "", numeric zero and any object or
// array. Numbers keep their literal source text.
func (n *Node) Text() string {
	if n == nil || n.Kind != KindScalar {
		return ""
	}
	switch v := n.Scalar.(type) {
	case string:
		return v
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Field returns the Text of the named member, or "" when it is absent.
func (n *Node) Field(key string) string {
	value, _ := n.Get(key)
	return value.Text()
}

// FirstField returns the first non-empty Field among keys, tried in order.
func (n *Node) FirstField(keys ...string) string {
	for _, key := range keys {
		if text := n.Field(key); text != "" {
			return text
		}
	}
	return ""
}

// FieldOr returns the named Field, or fallback when it is empty.
func (n *Node) FieldOr(key, fallback string) string {
	if text := n.Field(key); text != "" {
		return text
	}
	return fallback
}

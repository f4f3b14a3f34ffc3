package jsontree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	// KindScalar covers null, booleans, numbers and strings.
	KindScalar Kind = iota
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "scalar"
	}
}

// Member is a single key/value pair of an object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is a decoded JSON value.
//
// Scalar holds nil, bool, string or json.Number and is only meaningful for
// KindScalar. Members is only populated for objects and Items for arrays.
type Node struct {
	Kind    Kind
	Scalar  any
	Members []Member
	Items   []*Node
}

// Get returns the value of the named member. When an object repeats a key
// the last occurrence wins, matching encoding/json.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

// List returns the items of the named member when it holds an array.
func (n *Node) List(key string) ([]*Node, bool) {
	value, ok := n.Get(key)
	if !ok || value == nil || value.Kind != KindArray {
		return nil, false
	}
	return value.Items, true
}

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return &Node{Kind: KindScalar, Scalar: tok}, nil
	}

	switch delim {
	case '{':
		node := &Node{Kind: KindObject}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			node.Members = append(node.Members, Member{Key: key, Value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	case '[':
		node := &Node{Kind: KindArray}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

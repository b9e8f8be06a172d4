package jsontree

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the JSON kind of a Node.
type Kind string

const (
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindObject, KindArray, KindString, KindNumber, KindBool, KindNull:
		return true
	default:
		return false
	}
}

// Member is a single key/value pair of a JSON object. Members keep the order
// in which they appeared in the source document.
type Member struct {
	Key   string
	Value *Node
}

// Node is one value in a JSON document tree. Exactly one of the payload
// fields is meaningful, selected by the node's kind.
type Node struct {
	kind    Kind
	str     string
	num     json.Number
	boolean bool
	members []Member
	elems   []*Node
}

// NewObject creates an empty object node.
func NewObject() *Node {
	return &Node{kind: KindObject}
}

// NewArray creates an empty array node.
func NewArray() *Node {
	return &Node{kind: KindArray}
}

// NewString creates a string node.
func NewString(s string) *Node {
	return &Node{kind: KindString, str: s}
}

// NewNumber creates a number node from a literal. The literal is emitted
// verbatim on serialization and must be valid JSON number syntax.
func NewNumber(literal json.Number) *Node {
	return &Node{kind: KindNumber, num: literal}
}

// NewNumberInt creates a number node from an int64.
func NewNumberInt(v int64) *Node {
	return &Node{kind: KindNumber, num: json.Number(strconv.FormatInt(v, 10))}
}

// NewNumberFloat creates a number node from a float64. The literal uses the
// shortest representation that round-trips, matching encoding/json.
func NewNumberFloat(v float64) *Node {
	return &Node{kind: KindNumber, num: json.Number(strconv.FormatFloat(v, 'g', -1, 64))}
}

// NewBool creates a boolean node.
func NewBool(v bool) *Node {
	return &Node{kind: KindBool, boolean: v}
}

// NewNull creates a null node.
func NewNull() *Node {
	return &Node{kind: KindNull}
}

// Kind returns the JSON kind of the node. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsNull reports whether the node is JSON null (or nil).
func (n *Node) IsNull() bool {
	return n == nil || n.kind == KindNull
}

// Str returns the string payload of a string node.
func (n *Node) Str() string {
	return n.str
}

// Number returns the numeric literal of a number node.
func (n *Node) Number() json.Number {
	return n.num
}

// Bool returns the boolean payload of a bool node.
func (n *Node) Bool() bool {
	return n.boolean
}

// IsIntegral reports whether a number node's literal has no fraction or
// exponent part.
func (n *Node) IsIntegral() bool {
	if n.kind != KindNumber {
		return false
	}
	return !strings.ContainsAny(string(n.num), ".eE")
}

// Members returns the ordered members of an object node. The returned slice
// is the node's backing storage and must not be modified by callers.
func (n *Node) Members() []Member {
	return n.members
}

// Get returns the value of the named object member and whether it exists.
func (n *Node) Get(key string) (*Node, bool) {
	for _, m := range n.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether the object node has a member with the given key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Set appends an object member, or replaces the value of an existing member
// with the same key while keeping its position.
func (n *Node) Set(key string, value *Node) *Node {
	for i, m := range n.members {
		if m.Key == key {
			n.members[i].Value = value
			return n
		}
	}
	n.members = append(n.members, Member{Key: key, Value: value})
	return n
}

// Len returns the number of members of an object node or elements of an
// array node.
func (n *Node) Len() int {
	if n.kind == KindObject {
		return len(n.members)
	}
	return len(n.elems)
}

// Elems returns the elements of an array node. The returned slice is the
// node's backing storage and must not be modified by callers.
func (n *Node) Elems() []*Node {
	return n.elems
}

// Append adds elements to an array node.
func (n *Node) Append(elems ...*Node) *Node {
	n.elems = append(n.elems, elems...)
	return n
}

package graphson

// Kind identifies the variant of a Value. The set is closed: every variant
// maps to exactly one typed-encoding tag.
type Kind string

const (
	KindString         Kind = "string"
	KindInt            Kind = "int"
	KindFloat          Kind = "float"
	KindBool           Kind = "bool"
	KindNull           Kind = "null"
	KindVertex         Kind = "vertex"
	KindEdge           Kind = "edge"
	KindVertexProperty Kind = "vertex_property"
	KindProperty       Kind = "property"
	KindList           Kind = "list"
	KindMap            Kind = "map"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool, KindNull,
		KindVertex, KindEdge, KindVertexProperty, KindProperty,
		KindList, KindMap:
		return true
	default:
		return false
	}
}

// Value is one node of a decoded graph-exchange document. Implementations
// are the variants declared in this file and nothing else; consumers may
// switch exhaustively on Kind(). Values are treated as immutable once built:
// transformations produce new trees instead of mutating in place.
type Value interface {
	Kind() Kind
}

// String is a text scalar.
type String string

// Int is an integer scalar. The untyped encoding carries no width, so all
// integers are held as int64; width is chosen at encode time.
type Int int64

// Float is a floating-point scalar, held as float64.
type Float float64

// Bool is a boolean scalar.
type Bool bool

// Null is the null scalar.
type Null struct{}

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

// List is an ordered sequence of values.
type List []Value

func (List) Kind() Kind { return KindList }

// MapEntry is one key/value pair of a Map. Keys are Values, not strings:
// graph-exchange maps may be keyed by any value.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an ordered sequence of entries. Graph-exchange maps are conceptually
// unordered, but entry order is preserved for round-trip fidelity.
type Map []MapEntry

func (Map) Kind() Kind { return KindMap }

// Property is a key/value attribute, used for edge properties, vertex
// property meta-properties, and preserved extension fields.
type Property struct {
	Key   string
	Value Value
}

func (*Property) Kind() Kind { return KindProperty }

// VertexProperty is one value attached to a vertex under a property key,
// itself carrying an identity and optional meta-properties.
type VertexProperty struct {
	ID    Value
	Label string
	Value Value

	// Meta holds meta-properties in input order.
	Meta []Property

	// Extensions holds unrecognized fields preserved from the source
	// document, in input order.
	Extensions []Property
}

func (*VertexProperty) Kind() Kind { return KindVertexProperty }

// PropertyEntry groups the vertex properties sharing one key. Entries keep
// the key order of the source document.
type PropertyEntry struct {
	Key    string
	Values []*VertexProperty
}

// Vertex is a graph node.
type Vertex struct {
	ID         Value
	Label      string
	Properties []PropertyEntry
	Extensions []Property
}

func (*Vertex) Kind() Kind { return KindVertex }

// Edge is a directed relationship between two vertices, referenced by id.
type Edge struct {
	ID    Value
	Label string

	// InV and OutV are the ids of the head and tail vertices.
	InV  Value
	OutV Value

	// InVLabel and OutVLabel are optional vertex labels; empty when the
	// source document omits them.
	InVLabel  string
	OutVLabel string

	Properties []Property
	Extensions []Property
}

func (*Edge) Kind() Kind { return KindEdge }

// Equal reports deep equality of two value trees, comparing variant, payload,
// and order of every sequence.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case Bool:
		return av == b.(Bool)
	case Null:
		return true
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv := b.(Map)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i].Key, bv[i].Key) || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case *Property:
		bv := b.(*Property)
		return av.Key == bv.Key && Equal(av.Value, bv.Value)
	case *VertexProperty:
		bv := b.(*VertexProperty)
		return Equal(av.ID, bv.ID) && av.Label == bv.Label &&
			Equal(av.Value, bv.Value) &&
			propertiesEqual(av.Meta, bv.Meta) &&
			propertiesEqual(av.Extensions, bv.Extensions)
	case *Vertex:
		bv := b.(*Vertex)
		if !Equal(av.ID, bv.ID) || av.Label != bv.Label ||
			!propertiesEqual(av.Extensions, bv.Extensions) ||
			len(av.Properties) != len(bv.Properties) {
			return false
		}
		for i := range av.Properties {
			pa, pb := av.Properties[i], bv.Properties[i]
			if pa.Key != pb.Key || len(pa.Values) != len(pb.Values) {
				return false
			}
			for j := range pa.Values {
				if !Equal(pa.Values[j], pb.Values[j]) {
					return false
				}
			}
		}
		return true
	case *Edge:
		bv := b.(*Edge)
		return Equal(av.ID, bv.ID) && av.Label == bv.Label &&
			Equal(av.InV, bv.InV) && Equal(av.OutV, bv.OutV) &&
			av.InVLabel == bv.InVLabel && av.OutVLabel == bv.OutVLabel &&
			propertiesEqual(av.Properties, bv.Properties) &&
			propertiesEqual(av.Extensions, bv.Extensions)
	default:
		return false
	}
}

func propertiesEqual(a, b []Property) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// isScalar reports whether v is one of the scalar variants.
func isScalar(v Value) bool {
	switch v.Kind() {
	case KindString, KindInt, KindFloat, KindBool, KindNull:
		return true
	default:
		return false
	}
}

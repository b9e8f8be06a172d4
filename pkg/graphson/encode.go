package graphson

import (
	"math"

	"github.com/tinkerbridge/tinkerbridge/internal/jsontree"
)

// Typed-encoding tags. This set is an external contract: downstream client
// libraries reject documents whose tags deviate from it.
const (
	TypeVertex         = "g:Vertex"
	TypeEdge           = "g:Edge"
	TypeVertexProperty = "g:VertexProperty"
	TypeProperty       = "g:Property"
	TypeList           = "g:List"
	TypeMap            = "g:Map"
	TypeInt32          = "g:Int32"
	TypeInt64          = "g:Int64"
	TypeFloat          = "g:Float"
	TypeDouble         = "g:Double"
)

// IntWidth selects the tag for integer scalars. The untyped encoding carries
// no width information, so the encoder has to pick one.
type IntWidth string

const (
	IntWidthInt64 IntWidth = "int64"
	IntWidthInt32 IntWidth = "int32"
)

// String returns the string representation of IntWidth.
func (w IntWidth) String() string {
	return string(w)
}

// IsValid checks if the IntWidth is a valid value.
func (w IntWidth) IsValid() bool {
	switch w {
	case IntWidthInt64, IntWidthInt32:
		return true
	default:
		return false
	}
}

// FloatWidth selects the tag for floating-point scalars.
type FloatWidth string

const (
	FloatWidthDouble FloatWidth = "double"
	FloatWidthFloat  FloatWidth = "float"
)

// String returns the string representation of FloatWidth.
func (w FloatWidth) String() string {
	return string(w)
}

// IsValid checks if the FloatWidth is a valid value.
func (w FloatWidth) IsValid() bool {
	switch w {
	case FloatWidthDouble, FloatWidthFloat:
		return true
	default:
		return false
	}
}

// EncodeOptions configures EncodeTyped.
type EncodeOptions struct {
	// IntWidth tags integer scalars. A value outside the 32-bit range is
	// tagged 64-bit regardless of policy: the number is preserved over the
	// preference.
	IntWidth IntWidth

	// FloatWidth tags floating-point scalars. A magnitude beyond 32-bit
	// float range is tagged double regardless of policy.
	FloatWidth FloatWidth

	// CollapseSingleProperties emits a vertex property key holding exactly
	// one value as a single tagged object instead of a one-element list.
	CollapseSingleProperties bool
}

// DefaultEncodeOptions returns EncodeOptions with sensible defaults:
// 64-bit integers, double-precision floats, property lists kept as lists.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		IntWidth:   IntWidthInt64,
		FloatWidth: FloatWidthDouble,
	}
}

// Validate checks if the options are valid.
func (o EncodeOptions) Validate() error {
	if !o.IntWidth.IsValid() {
		return NewEncodeError(ErrCodeUnsupportedWidthPolicy, "unknown integer width policy %q", o.IntWidth)
	}
	if !o.FloatWidth.IsValid() {
		return NewEncodeError(ErrCodeUnsupportedWidthPolicy, "unknown float width policy %q", o.FloatWidth)
	}
	return nil
}

// EncodeTyped serializes a Value tree to the typed graph-exchange encoding.
// Strings, booleans, and null are emitted bare; every other variant is
// wrapped as {"@type": tag, "@value": payload}. The mapping from variant to
// tag is total; an error here means either an invalid options value or a
// tree violating its own invariants.
func EncodeTyped(v Value, opts EncodeOptions) ([]byte, error) {
	node, err := EncodeTypedTree(v, opts)
	if err != nil {
		return nil, err
	}
	return jsontree.Marshal(node)
}

// EncodeTypedTree is EncodeTyped without the final serialization, for callers
// that post-process the document tree.
func EncodeTypedTree(v Value, opts EncodeOptions) (*jsontree.Node, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &typedEncoder{opts: opts}
	return e.value(v)
}

type typedEncoder struct {
	opts EncodeOptions
}

func wrap(tag string, payload *jsontree.Node) *jsontree.Node {
	return jsontree.NewObject().
		Set("@type", jsontree.NewString(tag)).
		Set("@value", payload)
}

func (e *typedEncoder) value(v Value) (*jsontree.Node, error) {
	switch val := v.(type) {
	case nil:
		return nil, NewEncodeError(ErrCodeInternalInvariant, "nil value in tree")
	case String:
		return jsontree.NewString(string(val)), nil
	case Bool:
		return jsontree.NewBool(bool(val)), nil
	case Null:
		return jsontree.NewNull(), nil
	case Int:
		return e.integer(int64(val)), nil
	case Float:
		return e.float(float64(val))
	case List:
		arr := jsontree.NewArray()
		for _, elem := range val {
			n, err := e.value(elem)
			if err != nil {
				return nil, err
			}
			arr.Append(n)
		}
		return wrap(TypeList, arr), nil
	case Map:
		// The typed encoding flattens map payloads into [k1, v1, k2, v2, ...],
		// which also keeps entry order on the wire.
		arr := jsontree.NewArray()
		for _, entry := range val {
			k, err := e.value(entry.Key)
			if err != nil {
				return nil, err
			}
			v, err := e.value(entry.Value)
			if err != nil {
				return nil, err
			}
			arr.Append(k, v)
		}
		return wrap(TypeMap, arr), nil
	case *Property:
		return e.property(val)
	case *VertexProperty:
		return e.vertexProperty(val)
	case *Vertex:
		return e.vertex(val)
	case *Edge:
		return e.edge(val)
	default:
		return nil, NewEncodeError(ErrCodeInternalInvariant, "unknown value variant %q", v.Kind())
	}
}

func (e *typedEncoder) integer(v int64) *jsontree.Node {
	tag := TypeInt64
	if e.opts.IntWidth == IntWidthInt32 && v >= math.MinInt32 && v <= math.MaxInt32 {
		tag = TypeInt32
	}
	return wrap(tag, jsontree.NewNumberInt(v))
}

func (e *typedEncoder) float(v float64) (*jsontree.Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, NewEncodeError(ErrCodeInternalInvariant, "non-finite float in tree")
	}
	tag := TypeDouble
	if e.opts.FloatWidth == FloatWidthFloat && math.Abs(v) <= math.MaxFloat32 {
		tag = TypeFloat
	}
	return wrap(tag, jsontree.NewNumberFloat(v)), nil
}

func (e *typedEncoder) property(p *Property) (*jsontree.Node, error) {
	v, err := e.value(p.Value)
	if err != nil {
		return nil, err
	}
	payload := jsontree.NewObject().
		Set("key", jsontree.NewString(p.Key)).
		Set("value", v)
	return wrap(TypeProperty, payload), nil
}

func (e *typedEncoder) vertexProperty(vp *VertexProperty) (*jsontree.Node, error) {
	if err := e.checkIdentity(vp.ID, vp.Label, "vertex property"); err != nil {
		return nil, err
	}
	id, err := e.value(vp.ID)
	if err != nil {
		return nil, err
	}
	val, err := e.value(vp.Value)
	if err != nil {
		return nil, err
	}
	payload := jsontree.NewObject().
		Set("id", id).
		Set("value", val).
		Set("label", jsontree.NewString(vp.Label))
	if len(vp.Meta) > 0 {
		meta := jsontree.NewObject()
		for _, p := range vp.Meta {
			mv, err := e.value(p.Value)
			if err != nil {
				return nil, err
			}
			meta.Set(p.Key, mv)
		}
		payload.Set("properties", meta)
	}
	if err := e.appendExtensions(payload, vp.Extensions); err != nil {
		return nil, err
	}
	return wrap(TypeVertexProperty, payload), nil
}

func (e *typedEncoder) vertex(v *Vertex) (*jsontree.Node, error) {
	if err := e.checkIdentity(v.ID, v.Label, "vertex"); err != nil {
		return nil, err
	}
	id, err := e.value(v.ID)
	if err != nil {
		return nil, err
	}
	payload := jsontree.NewObject().
		Set("id", id).
		Set("label", jsontree.NewString(v.Label))

	if len(v.Properties) > 0 {
		props := jsontree.NewObject()
		for _, entry := range v.Properties {
			if e.opts.CollapseSingleProperties && len(entry.Values) == 1 {
				vp, err := e.vertexProperty(entry.Values[0])
				if err != nil {
					return nil, err
				}
				props.Set(entry.Key, vp)
				continue
			}
			arr := jsontree.NewArray()
			for _, value := range entry.Values {
				vp, err := e.vertexProperty(value)
				if err != nil {
					return nil, err
				}
				arr.Append(vp)
			}
			props.Set(entry.Key, arr)
		}
		payload.Set("properties", props)
	}

	if err := e.appendExtensions(payload, v.Extensions); err != nil {
		return nil, err
	}
	return wrap(TypeVertex, payload), nil
}

func (e *typedEncoder) edge(edge *Edge) (*jsontree.Node, error) {
	if err := e.checkIdentity(edge.ID, edge.Label, "edge"); err != nil {
		return nil, err
	}
	if edge.InV == nil || edge.OutV == nil {
		return nil, NewEncodeError(ErrCodeInternalInvariant, "edge is missing a vertex reference")
	}
	id, err := e.value(edge.ID)
	if err != nil {
		return nil, err
	}
	inV, err := e.value(edge.InV)
	if err != nil {
		return nil, err
	}
	outV, err := e.value(edge.OutV)
	if err != nil {
		return nil, err
	}

	payload := jsontree.NewObject().
		Set("id", id).
		Set("label", jsontree.NewString(edge.Label))
	if edge.InVLabel != "" {
		payload.Set("inVLabel", jsontree.NewString(edge.InVLabel))
	}
	if edge.OutVLabel != "" {
		payload.Set("outVLabel", jsontree.NewString(edge.OutVLabel))
	}
	payload.Set("inV", inV)
	payload.Set("outV", outV)

	if len(edge.Properties) > 0 {
		props := jsontree.NewObject()
		for _, p := range edge.Properties {
			p := p
			node, err := e.property(&p)
			if err != nil {
				return nil, err
			}
			props.Set(p.Key, node)
		}
		payload.Set("properties", props)
	}

	if err := e.appendExtensions(payload, edge.Extensions); err != nil {
		return nil, err
	}
	return wrap(TypeEdge, payload), nil
}

// checkIdentity enforces the model invariant that every decoded element has
// a scalar non-null id and a non-empty label. A violation here means a bug
// upstream of the encoder, not bad input.
func (e *typedEncoder) checkIdentity(id Value, label, what string) error {
	if id == nil || id.Kind() == KindNull {
		return NewEncodeError(ErrCodeInternalInvariant, "%s has no id", what)
	}
	if !isScalar(id) {
		return NewEncodeError(ErrCodeInternalInvariant, "%s id is not a scalar", what)
	}
	if label == "" {
		return NewEncodeError(ErrCodeInternalInvariant, "%s has an empty label", what)
	}
	return nil
}

func (e *typedEncoder) appendExtensions(payload *jsontree.Node, exts []Property) error {
	for _, ext := range exts {
		v, err := e.value(ext.Value)
		if err != nil {
			return err
		}
		payload.Set(ext.Key, v)
	}
	return nil
}

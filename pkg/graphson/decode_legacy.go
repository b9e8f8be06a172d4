package graphson

import (
	"fmt"

	"github.com/tinkerbridge/tinkerbridge/internal/jsontree"
)

// ExtensionPolicy controls what happens to fields of a vertex, edge, or
// vertex property that are not part of the standard shape. Some managed
// graph providers attach vendor-specific fields to otherwise standard
// elements.
type ExtensionPolicy string

const (
	// ExtensionPreserve keeps unknown fields, in input order, on the decoded
	// element and re-emits them inside the element's "@value" object.
	ExtensionPreserve ExtensionPolicy = "preserve"

	// ExtensionDrop discards unknown fields. Use with strict downstream
	// decoders that reject members they do not know.
	ExtensionDrop ExtensionPolicy = "drop"
)

// String returns the string representation of ExtensionPolicy.
func (p ExtensionPolicy) String() string {
	return string(p)
}

// IsValid checks if the ExtensionPolicy is a valid value.
func (p ExtensionPolicy) IsValid() bool {
	switch p {
	case ExtensionPreserve, ExtensionDrop:
		return true
	default:
		return false
	}
}

// DecodeOptions configures DecodeLegacy.
type DecodeOptions struct {
	// DefaultLabel, when non-empty, is substituted for a missing or empty
	// label on vertices and edges instead of failing the decode.
	DefaultLabel string

	// Extensions selects the handling of unrecognized fields.
	Extensions ExtensionPolicy
}

// DefaultDecodeOptions returns DecodeOptions with sensible defaults:
// no label substitution, extensions preserved.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Extensions: ExtensionPreserve,
	}
}

// Validate checks if the options are valid.
func (o DecodeOptions) Validate() error {
	if !o.Extensions.IsValid() {
		return fmt.Errorf("unknown extension policy %q", o.Extensions)
	}
	return nil
}

// DecodeLegacy parses a document in the untyped graph-exchange encoding into
// a Value tree. The untyped encoding has no "@type" discriminators, so
// composite elements are recognized by field shape, in a fixed precedence
// order. Decoding is strict: a node matching no known shape, or a matched
// element missing its id or label, fails the whole call with a DecodeError
// carrying the path to the node. No partial result is ever returned.
func DecodeLegacy(data []byte, opts DecodeOptions) (Value, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	root, err := jsontree.Parse(data)
	if err != nil {
		return nil, WrapDecodeError(ErrCodeInvalidDocument, RootPath(), "input is not valid JSON", err)
	}
	d := &legacyDecoder{opts: opts}
	return d.value(root, RootPath())
}

type legacyDecoder struct {
	opts DecodeOptions
}

// shapeRule is one entry of the shape classifier: a predicate over an object
// node's field set, and the decoder to run when it matches. Predicates check
// field presence only; the decoder enforces field kinds and reports precise
// errors once a shape is chosen.
type shapeRule struct {
	name    string
	matches func(obj *jsontree.Node) bool
	decode  func(d *legacyDecoder, obj *jsontree.Node, path Path) (Value, error)
}

// legacyShapes is evaluated in order. Edge is checked before vertex, and both
// before the generic map fallback: an edge object carries inV/outV alongside
// id and label, so the more specific shape must win.
//
// The predicates deliberately tolerate a missing id or label: a node that is
// otherwise edge- or vertex-shaped must still classify as that shape so the
// strict decoder can report the missing field at its path, rather than the
// node silently degrading to a generic map.
var legacyShapes []shapeRule

func init() {
	legacyShapes = []shapeRule{
		{
			name: "edge",
			matches: func(obj *jsontree.Node) bool {
				return obj.Has("inV") && obj.Has("outV") &&
					(obj.Has("id") || obj.Has("label"))
			},
			decode: (*legacyDecoder).edge,
		},
		{
			name: "vertex",
			matches: func(obj *jsontree.Node) bool {
				props, ok := obj.Get("properties")
				return ok && props.Kind() == jsontree.KindObject &&
					(obj.Has("id") || obj.Has("label"))
			},
			decode: (*legacyDecoder).vertex,
		},
	}
}

var edgeShapeFields = map[string]bool{
	"id": true, "label": true, "inV": true, "outV": true,
	"inVLabel": true, "outVLabel": true, "properties": true,
}

var vertexShapeFields = map[string]bool{
	"id": true, "label": true, "properties": true,
}

var vertexPropertyShapeFields = map[string]bool{
	"id": true, "label": true, "value": true, "properties": true,
}

func (d *legacyDecoder) value(n *jsontree.Node, path Path) (Value, error) {
	switch n.Kind() {
	case jsontree.KindString:
		return String(n.Str()), nil
	case jsontree.KindNumber:
		return d.number(n, path)
	case jsontree.KindBool:
		return Bool(n.Bool()), nil
	case jsontree.KindNull:
		return Null{}, nil
	case jsontree.KindArray:
		list := make(List, 0, n.Len())
		for i, elem := range n.Elems() {
			v, err := d.value(elem, path.Index(i))
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case jsontree.KindObject:
		return d.object(n, path)
	default:
		return nil, NewDecodeError(ErrCodeUnrecognizedShape, path, "unsupported node kind %q", n.Kind())
	}
}

func (d *legacyDecoder) number(n *jsontree.Node, path Path) (Value, error) {
	if n.IsIntegral() {
		i, err := n.Number().Int64()
		if err != nil {
			return nil, WrapDecodeError(ErrCodeTypeMismatch, path, "integer out of 64-bit range", err)
		}
		return Int(i), nil
	}
	f, err := n.Number().Float64()
	if err != nil {
		return nil, WrapDecodeError(ErrCodeTypeMismatch, path, "invalid number literal", err)
	}
	return Float(f), nil
}

func (d *legacyDecoder) object(n *jsontree.Node, path Path) (Value, error) {
	for _, rule := range legacyShapes {
		if rule.matches(n) {
			return rule.decode(d, n, path)
		}
	}
	return d.mapValue(n, path)
}

func (d *legacyDecoder) mapValue(n *jsontree.Node, path Path) (Value, error) {
	m := make(Map, 0, n.Len())
	for _, member := range n.Members() {
		v, err := d.value(member.Value, path.Key(member.Key))
		if err != nil {
			return nil, err
		}
		m = append(m, MapEntry{Key: String(member.Key), Value: v})
	}
	return m, nil
}

func (d *legacyDecoder) vertex(obj *jsontree.Node, path Path) (Value, error) {
	id, err := d.elementID(obj, path)
	if err != nil {
		return nil, err
	}
	label, err := d.elementLabel(obj, path)
	if err != nil {
		return nil, err
	}

	vertex := &Vertex{ID: id, Label: label}

	propsNode, _ := obj.Get("properties")
	for _, member := range propsNode.Members() {
		entryPath := path.Key("properties").Key(member.Key)
		if member.Value.Kind() != jsontree.KindArray {
			return nil, NewDecodeError(ErrCodeTypeMismatch, entryPath,
				"vertex property %q is not a list", member.Key)
		}
		entry := PropertyEntry{Key: member.Key}
		for i, elem := range member.Value.Elems() {
			vp, err := d.vertexProperty(elem, member.Key, entryPath.Index(i))
			if err != nil {
				return nil, err
			}
			entry.Values = append(entry.Values, vp)
		}
		vertex.Properties = append(vertex.Properties, entry)
	}

	vertex.Extensions, err = d.extensions(obj, vertexShapeFields, path)
	if err != nil {
		return nil, err
	}
	return vertex, nil
}

// vertexProperty decodes one element of a vertex's property list. The
// property-wrapper shape {id, label, value} is only recognized here; the same
// object anywhere else in a document decodes as a generic map.
func (d *legacyDecoder) vertexProperty(n *jsontree.Node, key string, path Path) (*VertexProperty, error) {
	if n.Kind() != jsontree.KindObject {
		return nil, NewDecodeError(ErrCodeUnrecognizedShape, path,
			"vertex property entry is not an object")
	}
	valueNode, ok := n.Get("value")
	if !ok {
		return nil, NewDecodeError(ErrCodeUnrecognizedShape, path,
			"vertex property entry has no value field")
	}

	id, err := d.elementID(n, path)
	if err != nil {
		return nil, err
	}

	// The property key doubles as the label when the wrapper omits one; the
	// untyped encoding treats the two as interchangeable.
	label := key
	if labelNode, ok := n.Get("label"); ok {
		if labelNode.Kind() != jsontree.KindString {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("label"),
				"label is not a string")
		}
		if labelNode.Str() != "" {
			label = labelNode.Str()
		}
	}

	value, err := d.value(valueNode, path.Key("value"))
	if err != nil {
		return nil, err
	}

	vp := &VertexProperty{ID: id, Label: label, Value: value}

	if metaNode, ok := n.Get("properties"); ok {
		if metaNode.Kind() != jsontree.KindObject {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("properties"),
				"meta-properties are not an object")
		}
		for _, member := range metaNode.Members() {
			mv, err := d.value(member.Value, path.Key("properties").Key(member.Key))
			if err != nil {
				return nil, err
			}
			vp.Meta = append(vp.Meta, Property{Key: member.Key, Value: mv})
		}
	}

	vp.Extensions, err = d.extensions(n, vertexPropertyShapeFields, path)
	if err != nil {
		return nil, err
	}
	return vp, nil
}

func (d *legacyDecoder) edge(obj *jsontree.Node, path Path) (Value, error) {
	id, err := d.elementID(obj, path)
	if err != nil {
		return nil, err
	}
	label, err := d.elementLabel(obj, path)
	if err != nil {
		return nil, err
	}
	inV, err := d.scalarField(obj, "inV", path)
	if err != nil {
		return nil, err
	}
	outV, err := d.scalarField(obj, "outV", path)
	if err != nil {
		return nil, err
	}

	edge := &Edge{ID: id, Label: label, InV: inV, OutV: outV}

	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"inVLabel", &edge.InVLabel},
		{"outVLabel", &edge.OutVLabel},
	} {
		node, ok := obj.Get(field.name)
		if !ok {
			continue
		}
		if node.Kind() != jsontree.KindString {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key(field.name),
				"%s is not a string", field.name)
		}
		*field.dst = node.Str()
	}

	if propsNode, ok := obj.Get("properties"); ok {
		if propsNode.Kind() != jsontree.KindObject {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("properties"),
				"edge properties are not an object")
		}
		for _, member := range propsNode.Members() {
			v, err := d.value(member.Value, path.Key("properties").Key(member.Key))
			if err != nil {
				return nil, err
			}
			edge.Properties = append(edge.Properties, Property{Key: member.Key, Value: v})
		}
	}

	edge.Extensions, err = d.extensions(obj, edgeShapeFields, path)
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// elementID decodes the required id field of a vertex, edge, or vertex
// property. A missing or null id fails the decode: silently defaulting an
// identity would corrupt downstream graph semantics.
func (d *legacyDecoder) elementID(obj *jsontree.Node, path Path) (Value, error) {
	return d.scalarField(obj, "id", path)
}

func (d *legacyDecoder) scalarField(obj *jsontree.Node, name string, path Path) (Value, error) {
	node, ok := obj.Get(name)
	if !ok {
		return nil, NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", name)
	}
	if node.IsNull() {
		return nil, NewDecodeError(ErrCodeMissingField, path.Key(name), "field %q is null", name)
	}
	switch node.Kind() {
	case jsontree.KindString:
		return String(node.Str()), nil
	case jsontree.KindNumber:
		return d.number(node, path.Key(name))
	case jsontree.KindBool:
		return Bool(node.Bool()), nil
	default:
		return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key(name),
			"field %q is not a scalar", name)
	}
}

func (d *legacyDecoder) elementLabel(obj *jsontree.Node, path Path) (string, error) {
	node, ok := obj.Get("label")
	if ok && node.Kind() != jsontree.KindString && !node.IsNull() {
		return "", NewDecodeError(ErrCodeTypeMismatch, path.Key("label"), "label is not a string")
	}
	if ok && node.Kind() == jsontree.KindString && node.Str() != "" {
		return node.Str(), nil
	}
	if d.opts.DefaultLabel != "" {
		return d.opts.DefaultLabel, nil
	}
	return "", NewDecodeError(ErrCodeMissingField, path, "required field %q is missing or empty", "label")
}

// extensions collects fields outside the element's standard shape, in input
// order. Values decode generically; nested graph shapes inside an extension
// are decoded like anywhere else.
func (d *legacyDecoder) extensions(obj *jsontree.Node, shape map[string]bool, path Path) ([]Property, error) {
	var exts []Property
	for _, member := range obj.Members() {
		if shape[member.Key] {
			continue
		}
		if d.opts.Extensions == ExtensionDrop {
			continue
		}
		v, err := d.value(member.Value, path.Key(member.Key))
		if err != nil {
			return nil, err
		}
		exts = append(exts, Property{Key: member.Key, Value: v})
	}
	return exts, nil
}

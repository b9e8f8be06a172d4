package graphson

import (
	"github.com/tinkerbridge/tinkerbridge/internal/jsontree"
)

// DecodeTyped parses a document in the typed graph-exchange encoding into a
// Value tree. It accepts everything EncodeTyped emits, including collapsed
// single-value property lists and preserved extension fields, which makes it
// the verification half of the round-trip: decode(encode(v)) equals v.
//
// Width tags are absorbed into the model: g:Int32 and g:Int64 both decode to
// Int, g:Float and g:Double both decode to Float.
func DecodeTyped(data []byte) (Value, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return nil, WrapDecodeError(ErrCodeInvalidDocument, RootPath(), "input is not valid JSON", err)
	}
	d := &typedDecoder{}
	return d.value(root, RootPath())
}

type typedDecoder struct{}

func (d *typedDecoder) value(n *jsontree.Node, path Path) (Value, error) {
	switch n.Kind() {
	case jsontree.KindString:
		return String(n.Str()), nil
	case jsontree.KindBool:
		return Bool(n.Bool()), nil
	case jsontree.KindNull:
		return Null{}, nil
	case jsontree.KindNumber:
		// Bare numbers are technically untyped leftovers; keep them rather
		// than reject, since some servers emit mixed documents.
		return d.number(n, path)
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

func (d *typedDecoder) number(n *jsontree.Node, path Path) (Value, error) {
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

func (d *typedDecoder) object(n *jsontree.Node, path Path) (Value, error) {
	tagNode, hasTag := n.Get("@type")
	valueNode, hasValue := n.Get("@value")
	if !hasTag || !hasValue {
		// An object without the wrapper fields is a plain map payload.
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
	if tagNode.Kind() != jsontree.KindString {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("@type"), "@type is not a string")
	}

	tag := tagNode.Str()
	valuePath := path.Key("@value")
	switch tag {
	case TypeInt32, TypeInt64:
		if valueNode.Kind() != jsontree.KindNumber || !valueNode.IsIntegral() {
			return nil, NewDecodeError(ErrCodeTypeMismatch, valuePath, "%s payload is not an integer", tag)
		}
		return d.number(valueNode, valuePath)
	case TypeFloat, TypeDouble:
		if valueNode.Kind() != jsontree.KindNumber {
			return nil, NewDecodeError(ErrCodeTypeMismatch, valuePath, "%s payload is not a number", tag)
		}
		f, err := valueNode.Number().Float64()
		if err != nil {
			return nil, WrapDecodeError(ErrCodeTypeMismatch, valuePath, "invalid number literal", err)
		}
		return Float(f), nil
	case TypeList:
		if valueNode.Kind() != jsontree.KindArray {
			return nil, NewDecodeError(ErrCodeTypeMismatch, valuePath, "g:List payload is not an array")
		}
		list := make(List, 0, valueNode.Len())
		for i, elem := range valueNode.Elems() {
			v, err := d.value(elem, valuePath.Index(i))
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case TypeMap:
		return d.mapValue(valueNode, valuePath)
	case TypeProperty:
		return d.property(valueNode, valuePath)
	case TypeVertexProperty:
		return d.vertexProperty(valueNode, valuePath)
	case TypeVertex:
		return d.vertex(valueNode, valuePath)
	case TypeEdge:
		return d.edge(valueNode, valuePath)
	default:
		return nil, NewDecodeError(ErrCodeUnrecognizedShape, path, "unknown type tag %q", tag)
	}
}

// mapValue reads the flattened [k1, v1, k2, v2, ...] map payload.
func (d *typedDecoder) mapValue(n *jsontree.Node, path Path) (Value, error) {
	if n.Kind() != jsontree.KindArray {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:Map payload is not an array")
	}
	elems := n.Elems()
	if len(elems)%2 != 0 {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:Map payload has odd length %d", len(elems))
	}
	m := make(Map, 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		k, err := d.value(elems[i], path.Index(i))
		if err != nil {
			return nil, err
		}
		v, err := d.value(elems[i+1], path.Index(i+1))
		if err != nil {
			return nil, err
		}
		m = append(m, MapEntry{Key: k, Value: v})
	}
	return m, nil
}

func (d *typedDecoder) property(n *jsontree.Node, path Path) (Value, error) {
	if n.Kind() != jsontree.KindObject {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:Property payload is not an object")
	}
	key, err := d.stringField(n, "key", path)
	if err != nil {
		return nil, err
	}
	valueNode, ok := n.Get("value")
	if !ok {
		return nil, NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", "value")
	}
	v, err := d.value(valueNode, path.Key("value"))
	if err != nil {
		return nil, err
	}
	return &Property{Key: key, Value: v}, nil
}

func (d *typedDecoder) vertexProperty(n *jsontree.Node, path Path) (*VertexProperty, error) {
	if n.Kind() != jsontree.KindObject {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:VertexProperty payload is not an object")
	}
	id, err := d.idField(n, path)
	if err != nil {
		return nil, err
	}
	label, err := d.stringField(n, "label", path)
	if err != nil {
		return nil, err
	}
	valueNode, ok := n.Get("value")
	if !ok {
		return nil, NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", "value")
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

func (d *typedDecoder) vertex(n *jsontree.Node, path Path) (Value, error) {
	if n.Kind() != jsontree.KindObject {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:Vertex payload is not an object")
	}
	id, err := d.idField(n, path)
	if err != nil {
		return nil, err
	}
	label, err := d.stringField(n, "label", path)
	if err != nil {
		return nil, err
	}

	vertex := &Vertex{ID: id, Label: label}

	if propsNode, ok := n.Get("properties"); ok {
		if propsNode.Kind() != jsontree.KindObject {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("properties"),
				"vertex properties are not an object")
		}
		for _, member := range propsNode.Members() {
			entryPath := path.Key("properties").Key(member.Key)
			entry := PropertyEntry{Key: member.Key}
			switch member.Value.Kind() {
			case jsontree.KindArray:
				for i, elem := range member.Value.Elems() {
					vp, err := d.taggedVertexProperty(elem, entryPath.Index(i))
					if err != nil {
						return nil, err
					}
					entry.Values = append(entry.Values, vp)
				}
			case jsontree.KindObject:
				// Collapsed single-value form.
				vp, err := d.taggedVertexProperty(member.Value, entryPath)
				if err != nil {
					return nil, err
				}
				entry.Values = append(entry.Values, vp)
			default:
				return nil, NewDecodeError(ErrCodeTypeMismatch, entryPath,
					"vertex property %q is neither a list nor an object", member.Key)
			}
			vertex.Properties = append(vertex.Properties, entry)
		}
	}

	vertex.Extensions, err = d.extensions(n, vertexShapeFields, path)
	if err != nil {
		return nil, err
	}
	return vertex, nil
}

// taggedVertexProperty decodes a value that must be a g:VertexProperty
// wrapper.
func (d *typedDecoder) taggedVertexProperty(n *jsontree.Node, path Path) (*VertexProperty, error) {
	v, err := d.value(n, path)
	if err != nil {
		return nil, err
	}
	vp, ok := v.(*VertexProperty)
	if !ok {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path,
			"expected a %s wrapper, got %s", TypeVertexProperty, v.Kind())
	}
	return vp, nil
}

func (d *typedDecoder) edge(n *jsontree.Node, path Path) (Value, error) {
	if n.Kind() != jsontree.KindObject {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path, "g:Edge payload is not an object")
	}
	id, err := d.idField(n, path)
	if err != nil {
		return nil, err
	}
	label, err := d.stringField(n, "label", path)
	if err != nil {
		return nil, err
	}

	edge := &Edge{ID: id, Label: label}

	for _, field := range []struct {
		name string
		dst  *Value
	}{
		{"inV", &edge.InV},
		{"outV", &edge.OutV},
	} {
		node, ok := n.Get(field.name)
		if !ok {
			return nil, NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", field.name)
		}
		v, err := d.value(node, path.Key(field.name))
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}

	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"inVLabel", &edge.InVLabel},
		{"outVLabel", &edge.OutVLabel},
	} {
		node, ok := n.Get(field.name)
		if !ok {
			continue
		}
		if node.Kind() != jsontree.KindString {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key(field.name),
				"%s is not a string", field.name)
		}
		*field.dst = node.Str()
	}

	if propsNode, ok := n.Get("properties"); ok {
		if propsNode.Kind() != jsontree.KindObject {
			return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("properties"),
				"edge properties are not an object")
		}
		for _, member := range propsNode.Members() {
			v, err := d.value(member.Value, path.Key("properties").Key(member.Key))
			if err != nil {
				return nil, err
			}
			p, ok := v.(*Property)
			if !ok {
				return nil, NewDecodeError(ErrCodeTypeMismatch,
					path.Key("properties").Key(member.Key),
					"expected a %s wrapper, got %s", TypeProperty, v.Kind())
			}
			edge.Properties = append(edge.Properties, *p)
		}
	}

	edge.Extensions, err = d.extensions(n, edgeShapeFields, path)
	if err != nil {
		return nil, err
	}
	return edge, nil
}

func (d *typedDecoder) idField(n *jsontree.Node, path Path) (Value, error) {
	node, ok := n.Get("id")
	if !ok {
		return nil, NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", "id")
	}
	v, err := d.value(node, path.Key("id"))
	if err != nil {
		return nil, err
	}
	if v.Kind() == KindNull {
		return nil, NewDecodeError(ErrCodeMissingField, path.Key("id"), "field %q is null", "id")
	}
	if !isScalar(v) {
		return nil, NewDecodeError(ErrCodeTypeMismatch, path.Key("id"), "field %q is not a scalar", "id")
	}
	return v, nil
}

func (d *typedDecoder) stringField(n *jsontree.Node, name string, path Path) (string, error) {
	node, ok := n.Get(name)
	if !ok {
		return "", NewDecodeError(ErrCodeMissingField, path, "required field %q is missing", name)
	}
	if node.Kind() != jsontree.KindString {
		return "", NewDecodeError(ErrCodeTypeMismatch, path.Key(name), "%s is not a string", name)
	}
	return node.Str(), nil
}

func (d *typedDecoder) extensions(n *jsontree.Node, shape map[string]bool, path Path) ([]Property, error) {
	var exts []Property
	for _, member := range n.Members() {
		if shape[member.Key] {
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

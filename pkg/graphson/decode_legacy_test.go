package graphson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLegacy(t *testing.T, input string) Value {
	t.Helper()
	v, err := DecodeLegacy([]byte(input), DefaultDecodeOptions())
	require.NoError(t, err)
	return v
}

func decodeLegacyErr(t *testing.T, input string) *DecodeError {
	t.Helper()
	_, err := DecodeLegacy([]byte(input), DefaultDecodeOptions())
	require.Error(t, err)
	var derr *DecodeError
	require.True(t, errors.As(err, &derr), "expected a DecodeError, got %T", err)
	return derr
}

func TestDecodeLegacy_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "string", input: `"John"`, want: String("John")},
		{name: "integer", input: `42`, want: Int(42)},
		{name: "negative integer", input: `-7`, want: Int(-7)},
		{name: "float", input: `2.5`, want: Float(2.5)},
		{name: "exponent decodes as float", input: `1e3`, want: Float(1000)},
		{name: "bool", input: `true`, want: Bool(true)},
		{name: "null", input: `null`, want: Null{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Equal(tt.want, decodeLegacy(t, tt.input)))
		})
	}
}

func TestDecodeLegacy_ListAndMap(t *testing.T) {
	v := decodeLegacy(t, `[1, "two", {"three": 3}]`)
	want := List{
		Int(1),
		String("two"),
		Map{{Key: String("three"), Value: Int(3)}},
	}
	assert.True(t, Equal(want, v))
}

func TestDecodeLegacy_Vertex(t *testing.T) {
	input := `{
		"id": 3,
		"label": "person",
		"properties": {
			"name": [{"id": 11, "label": "name", "value": "John"}],
			"age":  [{"id": 12, "label": "age", "value": 29}]
		}
	}`
	v := decodeLegacy(t, input)
	require.Equal(t, KindVertex, v.Kind())

	vertex := v.(*Vertex)
	assert.True(t, Equal(Int(3), vertex.ID))
	assert.Equal(t, "person", vertex.Label)
	require.Len(t, vertex.Properties, 2)
	assert.Equal(t, "name", vertex.Properties[0].Key)
	require.Len(t, vertex.Properties[0].Values, 1)
	assert.True(t, Equal(String("John"), vertex.Properties[0].Values[0].Value))
	assert.True(t, Equal(Int(11), vertex.Properties[0].Values[0].ID))
	assert.Equal(t, "age", vertex.Properties[1].Key)
}

func TestDecodeLegacy_VertexPropertyOrderPreserved(t *testing.T) {
	input := `{
		"id": 1,
		"label": "v",
		"properties": {
			"b": [{"id": 1, "value": 1}],
			"a": [{"id": 2, "value": 2}],
			"c": [{"id": 3, "value": 3}]
		}
	}`
	vertex := decodeLegacy(t, input).(*Vertex)

	keys := make([]string, 0, len(vertex.Properties))
	for _, entry := range vertex.Properties {
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, []string{"b", "a", "c"}, keys, "property keys must keep input order")
}

func TestDecodeLegacy_VertexPropertyLabelFallsBackToKey(t *testing.T) {
	input := `{"id": 1, "label": "v", "properties": {"name": [{"id": 2, "value": "x"}]}}`
	vertex := decodeLegacy(t, input).(*Vertex)
	assert.Equal(t, "name", vertex.Properties[0].Values[0].Label)
}

func TestDecodeLegacy_VertexPropertyMeta(t *testing.T) {
	input := `{
		"id": 1,
		"label": "v",
		"properties": {
			"name": [{"id": 2, "label": "name", "value": "x", "properties": {"since": 2020, "source": "import"}}]
		}
	}`
	vertex := decodeLegacy(t, input).(*Vertex)
	vp := vertex.Properties[0].Values[0]
	require.Len(t, vp.Meta, 2)
	assert.Equal(t, "since", vp.Meta[0].Key)
	assert.True(t, Equal(Int(2020), vp.Meta[0].Value))
	assert.Equal(t, "source", vp.Meta[1].Key)
}

func TestDecodeLegacy_Edge(t *testing.T) {
	input := `{
		"id": 13,
		"label": "develops",
		"inVLabel": "software",
		"outVLabel": "person",
		"inV": 10,
		"outV": 1,
		"properties": {"since": 2009}
	}`
	v := decodeLegacy(t, input)
	require.Equal(t, KindEdge, v.Kind())

	edge := v.(*Edge)
	assert.True(t, Equal(Int(13), edge.ID))
	assert.Equal(t, "develops", edge.Label)
	assert.True(t, Equal(Int(10), edge.InV))
	assert.True(t, Equal(Int(1), edge.OutV))
	assert.Equal(t, "software", edge.InVLabel)
	assert.Equal(t, "person", edge.OutVLabel)
	require.Len(t, edge.Properties, 1)
	assert.Equal(t, "since", edge.Properties[0].Key)
	assert.True(t, Equal(Int(2009), edge.Properties[0].Value))
}

func TestDecodeLegacy_EdgeShapeBeatsMap(t *testing.T) {
	// Adversarial input: a map that happens to carry the edge field set with
	// unrelated semantics must still classify as an edge.
	input := `{"id": "row-1", "label": "summary", "inV": "east", "outV": "west"}`
	v := decodeLegacy(t, input)
	assert.Equal(t, KindEdge, v.Kind(), "edge shape must win over the map fallback")
}

func TestDecodeLegacy_StringIDsAccepted(t *testing.T) {
	input := `{"id": "v-17", "label": "person", "properties": {}}`
	vertex := decodeLegacy(t, input).(*Vertex)
	assert.True(t, Equal(String("v-17"), vertex.ID))
	assert.Empty(t, vertex.Properties)
}

func TestDecodeLegacy_MissingID(t *testing.T) {
	derr := decodeLegacyErr(t, `{"label": "person", "properties": {}}`)
	assert.Equal(t, ErrCodeMissingField, derr.Code)
	assert.Equal(t, "$", derr.Path.String())
	assert.Contains(t, derr.Message, "id")
}

func TestDecodeLegacy_NullIDRejected(t *testing.T) {
	derr := decodeLegacyErr(t, `[{"id": null, "label": "person", "properties": {}}]`)
	assert.Equal(t, ErrCodeMissingField, derr.Code)
	assert.Equal(t, "$[0].id", derr.Path.String())
}

func TestDecodeLegacy_MissingLabel(t *testing.T) {
	derr := decodeLegacyErr(t, `{"id": 1, "label": "", "properties": {}}`)
	assert.Equal(t, ErrCodeMissingField, derr.Code)
	assert.Contains(t, derr.Message, "label")
}

func TestDecodeLegacy_DefaultLabelFixup(t *testing.T) {
	opts := DefaultDecodeOptions()
	opts.DefaultLabel = "vertex"

	v, err := DecodeLegacy([]byte(`{"id": 1, "label": "", "properties": {}}`), opts)
	require.NoError(t, err)
	assert.Equal(t, "vertex", v.(*Vertex).Label)
}

func TestDecodeLegacy_ShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     ErrorCode
		pathText string
	}{
		{
			name:     "composite id",
			input:    `{"id": [1], "label": "v", "properties": {}}`,
			code:     ErrCodeTypeMismatch,
			pathText: "$.id",
		},
		{
			name:     "non-string label",
			input:    `{"id": 1, "label": 5, "properties": {}}`,
			code:     ErrCodeTypeMismatch,
			pathText: "$.label",
		},
		{
			name:     "property value not a list",
			input:    `{"id": 1, "label": "v", "properties": {"name": {"id": 2, "value": "x"}}}`,
			code:     ErrCodeTypeMismatch,
			pathText: "$.properties.name",
		},
		{
			name:     "property list element not an object",
			input:    `{"id": 1, "label": "v", "properties": {"name": ["bare"]}}`,
			code:     ErrCodeUnrecognizedShape,
			pathText: "$.properties.name[0]",
		},
		{
			name:     "property wrapper without value field",
			input:    `{"id": 1, "label": "v", "properties": {"name": [{"id": 2, "label": "name"}]}}`,
			code:     ErrCodeUnrecognizedShape,
			pathText: "$.properties.name[0]",
		},
		{
			name:     "property wrapper without id",
			input:    `{"id": 1, "label": "v", "properties": {"name": [{"value": "x"}]}}`,
			code:     ErrCodeMissingField,
			pathText: "$.properties.name[0]",
		},
		{
			name:     "edge with non-scalar inV",
			input:    `{"id": 1, "label": "e", "inV": {"nested": true}, "outV": 2}`,
			code:     ErrCodeTypeMismatch,
			pathText: "$.inV",
		},
		{
			name:     "edge properties not an object",
			input:    `{"id": 1, "label": "e", "inV": 1, "outV": 2, "properties": [1]}`,
			code:     ErrCodeTypeMismatch,
			pathText: "$.properties",
		},
		{
			name:     "invalid JSON",
			input:    `{"id":`,
			code:     ErrCodeInvalidDocument,
			pathText: "$",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derr := decodeLegacyErr(t, tt.input)
			assert.Equal(t, tt.code, derr.Code)
			assert.Equal(t, tt.pathText, derr.Path.String())
		})
	}
}

func TestDecodeLegacy_NoPartialResultOnNestedFailure(t *testing.T) {
	// The second row is malformed; the whole decode must fail even though the
	// first row is fine.
	input := `[
		{"id": 1, "label": "v", "properties": {}},
		{"id": 2, "label": "v", "properties": {"name": [{"value": "x"}]}}
	]`
	v, err := DecodeLegacy([]byte(input), DefaultDecodeOptions())
	assert.Nil(t, v)
	assert.Error(t, err)
}

func TestDecodeLegacy_ExtensionsPreserved(t *testing.T) {
	input := `{"id": 1, "label": "v", "vendorTag": "x-123", "properties": {}, "score": 0.5}`
	vertex := decodeLegacy(t, input).(*Vertex)

	require.Len(t, vertex.Extensions, 2)
	assert.Equal(t, "vendorTag", vertex.Extensions[0].Key)
	assert.True(t, Equal(String("x-123"), vertex.Extensions[0].Value))
	assert.Equal(t, "score", vertex.Extensions[1].Key)
}

func TestDecodeLegacy_ExtensionsDropped(t *testing.T) {
	opts := DefaultDecodeOptions()
	opts.Extensions = ExtensionDrop

	v, err := DecodeLegacy([]byte(`{"id": 1, "label": "v", "vendorTag": "x", "properties": {}}`), opts)
	require.NoError(t, err)
	assert.Empty(t, v.(*Vertex).Extensions)
}

func TestDecodeLegacy_InvalidOptions(t *testing.T) {
	opts := DecodeOptions{Extensions: "mangle"}
	_, err := DecodeLegacy([]byte(`1`), opts)
	assert.Error(t, err)
}

func TestDecodeOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultDecodeOptions().Validate())
	assert.Error(t, DecodeOptions{}.Validate(), "empty extension policy is not valid")
}

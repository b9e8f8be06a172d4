package graphson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTyped_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{name: "bare string", input: `"John"`, want: String("John")},
		{name: "bare bool", input: `false`, want: Bool(false)},
		{name: "bare null", input: `null`, want: Null{}},
		{name: "int32 wrapper", input: `{"@type":"g:Int32","@value":42}`, want: Int(42)},
		{name: "int64 wrapper", input: `{"@type":"g:Int64","@value":42}`, want: Int(42)},
		{name: "float wrapper", input: `{"@type":"g:Float","@value":2.5}`, want: Float(2.5)},
		{name: "double wrapper", input: `{"@type":"g:Double","@value":2.5}`, want: Float(2.5)},
		{name: "integral double payload", input: `{"@type":"g:Double","@value":3}`, want: Float(3)},
		{name: "bare number kept leniently", input: `7`, want: Int(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeTyped([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, Equal(tt.want, v), "got %#v", v)
		})
	}
}

func TestDecodeTyped_MapKeepsEntryOrder(t *testing.T) {
	input := `{"@type":"g:Map","@value":["b",{"@type":"g:Int64","@value":1},"a",{"@type":"g:Int64","@value":2}]}`
	v, err := DecodeTyped([]byte(input))
	require.NoError(t, err)

	m := v.(Map)
	require.Len(t, m, 2)
	assert.True(t, Equal(String("b"), m[0].Key))
	assert.True(t, Equal(String("a"), m[1].Key))
}

func TestDecodeTyped_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{name: "unknown tag", input: `{"@type":"g:Blob","@value":1}`, code: ErrCodeUnrecognizedShape},
		{name: "non-integer int payload", input: `{"@type":"g:Int64","@value":2.5}`, code: ErrCodeTypeMismatch},
		{name: "non-number double payload", input: `{"@type":"g:Double","@value":"x"}`, code: ErrCodeTypeMismatch},
		{name: "odd map payload", input: `{"@type":"g:Map","@value":["a"]}`, code: ErrCodeTypeMismatch},
		{name: "list payload not array", input: `{"@type":"g:List","@value":{}}`, code: ErrCodeTypeMismatch},
		{name: "vertex without label", input: `{"@type":"g:Vertex","@value":{"id":1}}`, code: ErrCodeMissingField},
		{name: "edge without inV", input: `{"@type":"g:Edge","@value":{"id":1,"label":"e","outV":2}}`, code: ErrCodeMissingField},
		{name: "invalid JSON", input: `{"@type":`, code: ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTyped([]byte(tt.input))
			var derr *DecodeError
			require.True(t, errors.As(err, &derr), "expected DecodeError, got %T", err)
			assert.Equal(t, tt.code, derr.Code)
		})
	}
}

// roundTripValues enumerates trees covering every variant of the model
// grammar, including nesting, meta-properties, and extensions.
func roundTripValues() map[string]Value {
	return map[string]Value{
		"string": String("x"),
		"int":    Int(-9000),
		"float":  Float(0.25),
		"bool":   Bool(true),
		"null":   Null{},
		"list":   List{Int(1), String("two"), Null{}},
		"nested list": List{
			List{Int(1)},
			Map{{Key: String("k"), Value: Bool(false)}},
		},
		"map with non-string keys": Map{
			{Key: Int(1), Value: String("one")},
			{Key: List{String("composite")}, Value: Int(2)},
		},
		"property": &Property{Key: "since", Value: Int(2009)},
		"vertex property with meta": &VertexProperty{
			ID:    Int(11),
			Label: "name",
			Value: String("John"),
			Meta:  []Property{{Key: "source", Value: String("import")}},
		},
		"vertex": &Vertex{
			ID:    Int(3),
			Label: "person",
			Properties: []PropertyEntry{
				{Key: "name", Values: []*VertexProperty{
					{ID: Int(11), Label: "name", Value: String("John")},
				}},
				{Key: "age", Values: []*VertexProperty{
					{ID: Int(12), Label: "age", Value: Int(29)},
					{ID: Int(13), Label: "age", Value: Int(30)},
				}},
			},
		},
		"vertex with extensions": &Vertex{
			ID:         String("v-1"),
			Label:      "person",
			Extensions: []Property{{Key: "vendorTag", Value: String("x")}},
		},
		"edge": &Edge{
			ID:         Int(13),
			Label:      "develops",
			InV:        Int(10),
			OutV:       Int(1),
			InVLabel:   "software",
			OutVLabel:  "person",
			Properties: []Property{{Key: "since", Value: Int(2009)}},
		},
		"rows of mixed elements": List{
			&Vertex{ID: Int(1), Label: "a"},
			&Edge{ID: Int(2), Label: "e", InV: Int(1), OutV: Int(3)},
			Map{{Key: String("count"), Value: Int(2)}},
		},
	}
}

func TestRoundTrip_TypedEncodingIsLossless(t *testing.T) {
	for name, value := range roundTripValues() {
		t.Run(name, func(t *testing.T) {
			encoded, err := EncodeTyped(value, DefaultEncodeOptions())
			require.NoError(t, err)

			decoded, err := DecodeTyped(encoded)
			require.NoError(t, err)
			assert.True(t, Equal(value, decoded), "round trip changed the tree:\n%s", encoded)
		})
	}
}

func TestRoundTrip_SurvivesWidthAndCollapseOptions(t *testing.T) {
	opts := EncodeOptions{
		IntWidth:                 IntWidthInt32,
		FloatWidth:               FloatWidthFloat,
		CollapseSingleProperties: true,
	}
	for name, value := range roundTripValues() {
		t.Run(name, func(t *testing.T) {
			encoded, err := EncodeTyped(value, opts)
			require.NoError(t, err)

			decoded, err := DecodeTyped(encoded)
			require.NoError(t, err)
			assert.True(t, Equal(value, decoded), "round trip changed the tree:\n%s", encoded)
		})
	}
}

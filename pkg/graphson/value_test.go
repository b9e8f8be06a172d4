package graphson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	valid := []Kind{
		KindString, KindInt, KindFloat, KindBool, KindNull,
		KindVertex, KindEdge, KindVertexProperty, KindProperty,
		KindList, KindMap,
	}
	for _, k := range valid {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}
	assert.False(t, Kind("record").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
	}{
		{String("x"), KindString},
		{Int(1), KindInt},
		{Float(1.5), KindFloat},
		{Bool(true), KindBool},
		{Null{}, KindNull},
		{List{Int(1)}, KindList},
		{Map{{Key: String("k"), Value: Int(1)}}, KindMap},
		{&Property{Key: "k", Value: Int(1)}, KindProperty},
		{&VertexProperty{ID: Int(1), Label: "l", Value: String("v")}, KindVertexProperty},
		{&Vertex{ID: Int(1), Label: "l"}, KindVertex},
		{&Edge{ID: Int(1), Label: "l", InV: Int(2), OutV: Int(3)}, KindEdge},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.value.Kind())
	}
}

func TestEqual(t *testing.T) {
	person := func() Value {
		return &Vertex{
			ID:    Int(3),
			Label: "person",
			Properties: []PropertyEntry{
				{Key: "name", Values: []*VertexProperty{
					{ID: Int(11), Label: "name", Value: String("John")},
				}},
			},
		}
	}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "equal scalars", a: Int(42), b: Int(42), want: true},
		{name: "different scalars", a: Int(42), b: Int(43), want: false},
		{name: "different kinds", a: Int(42), b: Float(42), want: false},
		{name: "nil vs nil", a: nil, b: nil, want: true},
		{name: "nil vs value", a: nil, b: Int(1), want: false},
		{name: "equal vertices", a: person(), b: person(), want: true},
		{
			name: "vertex property order matters",
			a: &Vertex{ID: Int(1), Label: "l", Properties: []PropertyEntry{
				{Key: "a"}, {Key: "b"},
			}},
			b: &Vertex{ID: Int(1), Label: "l", Properties: []PropertyEntry{
				{Key: "b"}, {Key: "a"},
			}},
			want: false,
		},
		{
			name: "map entry order matters",
			a:    Map{{Key: String("a"), Value: Int(1)}, {Key: String("b"), Value: Int(2)}},
			b:    Map{{Key: String("b"), Value: Int(2)}, {Key: String("a"), Value: Int(1)}},
			want: false,
		},
		{
			name: "equal edges",
			a:    &Edge{ID: Int(7), Label: "knows", InV: Int(1), OutV: Int(2), InVLabel: "person"},
			b:    &Edge{ID: Int(7), Label: "knows", InV: Int(1), OutV: Int(2), InVLabel: "person"},
			want: true,
		},
		{
			name: "edge label mismatch",
			a:    &Edge{ID: Int(7), Label: "knows", InV: Int(1), OutV: Int(2)},
			b:    &Edge{ID: Int(7), Label: "likes", InV: Int(1), OutV: Int(2)},
			want: false,
		},
		{
			name: "extensions compared",
			a:    &Vertex{ID: Int(1), Label: "l", Extensions: []Property{{Key: "x", Value: Int(1)}}},
			b:    &Vertex{ID: Int(1), Label: "l"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "$", RootPath().String())
	assert.True(t, RootPath().IsRoot())

	p := RootPath().Index(0).Key("properties").Key("name").Index(1).Key("id")
	assert.Equal(t, "$[0].properties.name[1].id", p.String())
	assert.False(t, p.IsRoot())
}

func TestPath_ExtendDoesNotAliasParent(t *testing.T) {
	base := RootPath().Key("a")
	p1 := base.Key("b")
	p2 := base.Key("c")
	assert.Equal(t, "$.a.b", p1.String())
	assert.Equal(t, "$.a.c", p2.String())
	assert.Equal(t, "$.a", base.String())
}

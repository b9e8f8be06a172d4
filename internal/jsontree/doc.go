// Package jsontree provides an order-preserving JSON document tree.
//
// The standard library unmarshals JSON objects into Go maps, which lose the
// order of object members. Graph-exchange documents require order fidelity:
// property keys must round-trip in the order the server emitted them, and
// translated output must be byte-identical across runs. This package parses
// JSON with the encoding/json tokenizer into Node values that keep object
// members as an ordered slice, and serializes them back deterministically.
//
// Numbers are kept as their original literals (json.Number), so integer and
// floating-point inputs stay distinguishable and re-serialize exactly as
// written.
//
// Nodes are built either by Parse or with the New* constructors:
//
//	obj := jsontree.NewObject()
//	obj.Set("@type", jsontree.NewString("g:Int64"))
//	obj.Set("@value", jsontree.NewNumberInt(42))
//	data, err := jsontree.Marshal(obj)
//
// A Node is not safe for concurrent mutation; callers that share trees across
// goroutines must treat them as read-only.
package jsontree

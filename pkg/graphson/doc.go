// Package graphson translates graph-exchange documents between the untyped
// GraphSON encoding and the typed GraphSON 3.0 encoding.
//
// Some graph database servers still emit the older untyped encoding, in which
// vertices, edges, and properties carry no "@type" discriminator and must be
// recognized by their field shape. Modern client libraries expect the typed
// encoding, where every composite value and width-sensitive number is wrapped
// as {"@type": "g:...", "@value": ...}. This package bridges the two, so a
// response produced by an old server can be handed to a new client unchanged.
//
// # Architecture
//
// The package has three layers sharing one in-memory model:
//
//   - Value: a closed tagged union of everything a graph-exchange document
//     can contain (scalars, Vertex, Edge, VertexProperty, Property, List,
//     ordered Map)
//   - DecodeLegacy: untyped encoding -> Value, using an ordered table of
//     shape classifiers (edge before vertex before generic map)
//   - EncodeTyped / DecodeTyped: Value <-> typed 3.0 encoding
//
// Translator ties the layers together behind a single call.
//
// # Usage
//
//	tr, err := graphson.NewTranslator(graphson.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := tr.Translate(legacyResponse)
//	if err != nil {
//	    var terr *graphson.TranslationError
//	    if errors.As(err, &terr) {
//	        log.Printf("translation failed at stage %s: %v", terr.Stage, terr)
//	    }
//	    return err
//	}
//	// out is a typed GraphSON 3.0 document.
//
// # Determinism
//
// Translate is a pure function of its input and options: object member order
// is preserved end to end, numbers are re-rendered by a fixed rule, and no
// timestamps or generated identifiers are introduced, so repeated runs
// produce byte-identical output.
//
// # Error Handling
//
// Failures are structured errors with stable codes. Decode errors carry the
// path from the document root to the offending node:
//
//   - ErrCodeUnrecognizedShape: node matches no known vertex/edge/property shape
//   - ErrCodeMissingField: required id/label/value absent or null
//   - ErrCodeTypeMismatch: field present with the wrong JSON kind
//   - ErrCodeUnsupportedWidthPolicy: encoder options name an unknown width
//   - ErrCodeInternalInvariant: a malformed Value reached the encoder
//
// No partial output is ever returned; a malformed subtree fails the whole
// call rather than silently dropping graph elements.
//
// # Concurrency
//
// A Translator holds only its options and is safe for concurrent use. Each
// call builds and discards its own tree; nothing is shared between calls.
package graphson

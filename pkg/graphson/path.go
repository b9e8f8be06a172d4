package graphson

import (
	"fmt"
	"strings"
)

// Path locates a node in a document, as the sequence of object keys and
// array indices from the root. Paths are value types: Key and Index return
// extended copies and never alias the receiver's storage.
type Path struct {
	segments []string
}

// RootPath returns the path of the document root.
func RootPath() Path {
	return Path{}
}

// Key returns the path extended by an object member key.
func (p Path) Key(key string) Path {
	return p.extend("." + key)
}

// Index returns the path extended by an array index.
func (p Path) Index(i int) Path {
	return p.extend(fmt.Sprintf("[%d]", i))
}

func (p Path) extend(segment string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	return Path{segments: append(segments, segment)}
}

// IsRoot reports whether the path points at the document root.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the path in dotted form, with "$" for the root, for example
// "$[0].properties.name[1].id".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range p.segments {
		sb.WriteString(s)
	}
	return sb.String()
}

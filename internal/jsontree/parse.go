package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse reads one JSON value from data into an order-preserving tree.
// Trailing content after the value is rejected.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after top-level value")
	}
	return node, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of document")
		}
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		// Duplicate keys are kept as-is; Get sees the first occurrence but the
		// document re-serializes with every occurrence preserved.
		obj.members = append(obj.members, Member{Key: key, Value: value})
	}
}

func parseArray(dec *json.Decoder) (*Node, error) {
	arr := NewArray()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		elem, err := parseToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, elem)
	}
}

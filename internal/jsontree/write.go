package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal serializes the tree to compact JSON. Object members are written in
// their stored order, so output is deterministic for a given tree.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.kind {
	case KindObject:
		buf.WriteByte('{')
		for i, m := range n.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := write(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, e := range n.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := write(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindString:
		return writeString(buf, n.str)
	case KindNumber:
		if n.num == "" {
			return fmt.Errorf("number node has empty literal")
		}
		buf.WriteString(string(n.num))
	case KindBool:
		if n.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNull:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unknown node kind %q", n.kind)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	// encoding/json handles escaping; strings never fail to marshal.
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

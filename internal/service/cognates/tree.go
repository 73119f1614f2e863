package cognates

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// object is a JSON object that serializes its members in insertion order.
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: make(map[string]any)}
}

// set adds or replaces a member. A replaced member keeps its position.
func (o *object) set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// child returns the nested object under key, creating it when absent.
// created reports whether it was just created.
func (o *object) child(key string) (node *object, created bool) {
	if v, ok := o.values[key]; ok {
		if node, ok := v.(*object); ok {
			return node, false
		}
	}
	node = newObject()
	o.set(key, node)
	return node, true
}

func (o *object) len() int { return len(o.keys) }

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

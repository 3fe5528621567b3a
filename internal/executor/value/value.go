// Package value defines the language-agnostic datum used for test inputs
// and expected outputs, with a JSON codec that preserves the int/float
// distinction.
package value

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	appErr "codelab/pkg/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// Value is a tagged union over JSON-like primitives, lists and maps.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

// TestCase pairs one input with its expected output. When Input is a list
// its elements are positional arguments; otherwise it is a single argument.
type TestCase struct {
	Input    Value `json:"input"`
	Expected Value `json:"expected"`
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list value holding the given elements.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Map returns a map value holding the given entries.
func Map(entries map[string]Value) Value {
	return Value{kind: KindMap, m: entries}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload. Valid only for KindBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload. Valid only for KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload. For KindInt the widened integer is
// returned so numeric code can treat both uniformly.
func (v Value) AsFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// AsString returns the string payload. Valid only for KindString.
func (v Value) AsString() string { return v.s }

// Items returns the list elements. Valid only for KindList.
func (v Value) Items() []Value { return v.list }

// Len returns the element count for lists and maps, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// MapKeys returns the map keys in sorted order. Valid only for KindMap.
func (v Value) MapKeys() []string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MapGet returns the value stored under key. Valid only for KindMap.
func (v Value) MapGet(key string) (Value, bool) {
	item, ok := v.m[key]
	return item, ok
}

// IsNumeric reports whether v holds an int or a float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// HomogeneousKind reports the shared kind of all list elements, or false
// when the list is empty, mixed, or contains nested containers.
func (v Value) HomogeneousKind() (Kind, bool) {
	if v.kind != KindList || len(v.list) == 0 {
		return KindNull, false
	}
	first := v.list[0].kind
	if first == KindList || first == KindMap || first == KindNull {
		return KindNull, false
	}
	for _, item := range v.list[1:] {
		if item.kind != first {
			return KindNull, false
		}
	}
	return first, true
}

// MarshalJSON renders v as standard JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	default:
		return nil, appErr.Newf(appErr.InvalidValue, "unknown value kind: %d", v.kind)
	}
}

// UnmarshalJSON parses standard JSON, keeping integers distinct from floats.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return appErr.Wrapf(err, appErr.InvalidFormat, "parse value failed")
	}
	parsed, err := fromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func fromInterface(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		text := t.String()
		if !strings.ContainsAny(text, ".eE") {
			if i, err := t.Int64(); err == nil {
				return Int(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, appErr.Wrapf(err, appErr.InvalidFormat, "parse number %q failed", text)
		}
		return Float(f), nil
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, e := range t {
			item, err := fromInterface(e)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case map[string]interface{}:
		entries := make(map[string]Value, len(t))
		for k, e := range t {
			item, err := fromInterface(e)
			if err != nil {
				return Value{}, err
			}
			entries[k] = item
		}
		return Map(entries), nil
	default:
		return Value{}, appErr.Newf(appErr.InvalidFormat, "unsupported JSON value: %T", raw)
	}
}

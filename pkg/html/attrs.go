package html

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is one attribute entry.
type Attr struct {
	Key   string
	Value Value
}

// Attrs is an insertion-ordered attribute map. Builders and renderers walk
// it in order, which is what makes their output reproducible.
//
// Keys that are canonical non-negative integers ("0", "12") are positional,
// like the auto-indexed entries of a list; all other keys are group keys.
type Attrs []Attr

// NewAttrs builds Attrs from alternating keys and values, converting each
// value with V. An Attr argument is taken as a whole entry.
//
//	html.NewAttrs("id", "main", "class", []string{"a", "b"}, "hidden", false)
func NewAttrs(args ...any) Attrs {
	out := make(Attrs, 0, len(args)/2)
	for len(args) > 0 {
		switch x := args[0].(type) {
		case Attr:
			out.Set(x.Key, x.Value)
			args = args[1:]
			continue
		case string:
			if len(args) == 1 {
				out.Set(x, Value{})
				return out
			}
			out.Set(x, V(args[1]))
		default:
			if len(args) == 1 {
				out.Set(fmt.Sprint(x), Value{})
				return out
			}
			out.Set(fmt.Sprint(x), V(args[1]))
		}
		args = args[2:]
	}
	return out
}

func (a Attrs) index(key string) int {
	for i := range a {
		if a[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (a Attrs) Get(key string) (Value, bool) {
	if i := a.index(key); i >= 0 {
		return a[i].Value, true
	}
	return Value{}, false
}

// Value returns the value stored under key, or null.
func (a Attrs) Value(key string) Value {
	v, _ := a.Get(key)
	return v
}

// Has reports whether key is present, even with a null value.
func (a Attrs) Has(key string) bool {
	return a.index(key) >= 0
}

// Set stores v under key, in place when the key exists and at the end
// otherwise.
func (a *Attrs) Set(key string, v Value) *Attrs {
	if i := a.index(key); i >= 0 {
		(*a)[i].Value = v
		return a
	}
	*a = append(*a, Attr{Key: key, Value: v})
	return a
}

// SetDefault stores v under key unless the key is present.
func (a *Attrs) SetDefault(key string, v Value) *Attrs {
	if !a.Has(key) {
		*a = append(*a, Attr{Key: key, Value: v})
	}
	return a
}

// Delete removes key.
func (a *Attrs) Delete(key string) *Attrs {
	if i := a.index(key); i >= 0 {
		*a = append((*a)[:i:i], (*a)[i+1:]...)
	}
	return a
}

// Remove deletes key and returns the value it held.
func (a *Attrs) Remove(key string) (Value, bool) {
	i := a.index(key)
	if i < 0 {
		return Value{}, false
	}
	v := (*a)[i].Value
	*a = append((*a)[:i:i], (*a)[i+1:]...)
	return v, true
}

// Append stores v under the next positional key: one past the largest
// positional key present, or "0".
func (a *Attrs) Append(v Value) *Attrs {
	next := 0
	for _, e := range *a {
		if n, ok := positional(e.Key); ok && n >= next {
			next = n + 1
		}
	}
	*a = append(*a, Attr{Key: strconv.Itoa(next), Value: v})
	return a
}

// Keys returns the keys in order.
func (a Attrs) Keys() []string {
	keys := make([]string, len(a))
	for i, e := range a {
		keys[i] = e.Key
	}
	return keys
}

// Clone returns a deep copy of a.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for i, e := range a {
		out[i] = Attr{Key: e.Key, Value: e.Value.clone()}
	}
	return out
}

func (v Value) clone() Value {
	switch v.kind {
	case KindList:
		list := make([]Value, len(v.list))
		for i, item := range v.list {
			list[i] = item.clone()
		}
		v.list = list
	case KindMap:
		v.m = v.m.Clone()
	}
	return v
}

// Merge copies every entry of b into a, replacing existing keys in place.
func (a *Attrs) Merge(b Attrs) *Attrs {
	for _, e := range b {
		a.Set(e.Key, e.Value)
	}
	return a
}

// Equal reports whether a and b hold the same entries in the same order.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// String returns a debug form such as {class: [a b], hidden: false}.
func (a Attrs) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key)
		b.WriteString(": ")
		b.WriteString(debugString(e.Value))
	}
	b.WriteByte('}')
	return b.String()
}

func debugString(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = debugString(item)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindMap:
		return v.m.String()
	}
	return v.String()
}

// MarshalJSON encodes a as a JSON object in insertion order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes a JSON object, keeping document order.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	switch v.kind {
	case KindMap:
		*a = v.m
	case KindNull:
		*a = nil
	default:
		return fmt.Errorf("html: cannot decode JSON %s into Attrs", v.kind)
	}
	return nil
}

// positional reports whether key is a canonical non-negative integer.
func positional(key string) (int, bool) {
	if key == "" || !isDigit(key[0]) || len(key) > 1 && key[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

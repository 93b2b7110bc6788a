package html

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindInt
	KindFloat
	KindList
	KindMap
)

var kindNames = [...]string{"null", "bool", "string", "int", "float", "list", "map"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an attribute value. The zero Value is null, which renderers and
// mergers treat as "omit"; a key missing from Attrs is "absent".
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	f    float64
	list []Value
	m    Attrs
}

// Null returns the explicit null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// List returns an ordered sequence value.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Strings returns a list of string values.
func Strings(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = String(s)
	}
	return List(list...)
}

// Map returns a keyed mapping value. The Attrs are not copied.
func Map(m Attrs) Value {
	if m == nil {
		m = Attrs{}
	}
	return Value{kind: KindMap, m: m}
}

// V converts a Go value into a Value. It is the boundary where dynamic types
// are inspected; everything past it switches on Kind.
//
// Go maps have no order, so their keys are sorted (numerically for integer
// keys). Use Attrs for ordered mappings.
func V(x any) Value {
	switch x := x.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case Attrs:
		return Map(x)
	case []Value:
		return List(x...)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case int32:
		return Int(int64(x))
	case float64:
		return Float(x)
	case []string:
		return Strings(x...)
	case []any:
		list := make([]Value, len(x))
		for i, item := range x {
			list[i] = V(item)
		}
		return List(list...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := make(Attrs, 0, len(keys))
		for _, k := range keys {
			m = append(m, Attr{Key: k, Value: V(x[k])})
		}
		return Map(m)
	case fmt.Stringer:
		return String(x.String())
	}
	return reflectValue(reflect.ValueOf(x))
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return V(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return String(strconv.FormatUint(u, 10))
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List()
		}
		list := make([]Value, rv.Len())
		for i := range list {
			list[i] = V(rv.Index(i).Interface())
		}
		return List(list...)
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })
		m := make(Attrs, 0, len(keys))
		for _, k := range keys {
			m = append(m, Attr{Key: V(k.Interface()).String(), Value: V(rv.MapIndex(k).Interface())})
		}
		return Map(m)
	case reflect.Struct:
		// structs go through their JSON form, which keeps field order
		if data, err := json.Marshal(rv.Interface()); err == nil {
			var v Value
			if v.UnmarshalJSON(data) == nil {
				return v
			}
		}
	}
	return String(fmt.Sprint(rv.Interface()))
}

func lessKey(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsStructured reports whether v is a list or a map.
func (v Value) IsStructured() bool { return v.kind == KindList || v.kind == KindMap }

// Bool returns the boolean held by v, false for other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Int returns the integer held by v, or the truncated float.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return int64(v.f)
	case KindString:
		i, _ := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		return i
	case KindBool:
		if v.b {
			return 1
		}
	}
	return 0
}

// List returns the items of a list value.
func (v Value) List() []Value {
	if v.kind == KindList {
		return v.list
	}
	return nil
}

// Map returns the entries of a map value.
func (v Value) Map() Attrs {
	if v.kind == KindMap {
		return v.m
	}
	return nil
}

// Len returns the number of items of a list or map, or the byte length of a
// string.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	case KindString:
		return len(v.s)
	}
	return 0
}

// Entries returns the items of a list or map as key/value pairs. List items
// get their index as key.
func (v Value) Entries() Attrs {
	switch v.kind {
	case KindMap:
		return v.m
	case KindList:
		out := make(Attrs, len(v.list))
		for i, item := range v.list {
			out[i] = Attr{Key: strconv.Itoa(i), Value: item}
		}
		return out
	}
	return nil
}

// String converts v to text: true is "1", false and null are empty, numbers
// use their shortest decimal form and structured values their JSON form.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindList, KindMap:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
	return ""
}

// Truthy reports whether v counts as set: null, false, "", "0", zero numbers
// and empty structures do not.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s != "" && v.s != "0"
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return len(v.m) > 0
	}
	return false
}

// Interface returns v as plain Go data: nil, bool, string, int64, float64,
// []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for _, a := range v.m {
			out[a.Key] = a.Value.Interface()
		}
		return out
	}
	return nil
}

// Equal reports whether v and w hold the same kind and data.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindString:
		return v.s == w.s
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	case KindList:
		if len(v.list) != len(w.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(w.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(w.m)
	}
	return false
}

// MarshalJSON encodes v, keeping map entries in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindList:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteByte(',')
			}
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(data)
		}
		b.WriteByte(']')
		return []byte(b.String()), nil
	case KindMap:
		return v.m.MarshalJSON()
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return []byte("null"), nil
		}
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes JSON into v, keeping object keys in document order.
func (v *Value) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(json, data)
	*v = readJSON(iter)
	return iter.Error
}

func readJSON(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Value{}
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.NumberValue:
		n := iter.ReadNumber()
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return Int(i)
		}
		f, _ := strconv.ParseFloat(string(n), 64)
		return Float(f)
	case jsoniter.ArrayValue:
		list := []Value{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			list = append(list, readJSON(it))
			return true
		})
		return List(list...)
	case jsoniter.ObjectValue:
		m := Attrs{}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			m = append(m, Attr{Key: key, Value: readJSON(it)})
			return true
		})
		return Map(m)
	}
	iter.Skip()
	return Value{}
}

package attrpath

import (
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Getter exposes named attributes.
type Getter interface {
	Get(name string) (any, bool)
}

// Record is a form model: named attributes under a form namespace.
type Record interface {
	Getter
	FormName() string
}

// Identifier is implemented by values that stand for a referenced record.
// Value substitutes their primary key for them.
type Identifier interface {
	PrimaryKey() any
}

// Value resolves expr against r. Dotted names walk nested getters, maps and
// structs; suffix indices walk into slices and maps, yielding nil when an
// index is missing. Identifiers are replaced by their primary key, element
// by element for slices; composite keys are JSON encoded.
func Value(r Getter, expr string) (any, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, ErrInvalidAttribute.WithInput(expr).Wrap(err)
	}

	value, ok := lookup(r, p.Name)
	if !ok {
		return nil, ErrInvalidAttribute.WithInput(expr)
	}

	for _, index := range p.Indices() {
		value, ok = Index(value, index)
		if !ok {
			return nil, nil
		}
	}

	return identity(value), nil
}

// lookup resolves a dotted name. The full name is tried first so getters
// can serve dotted names themselves.
func lookup(r Getter, name string) (any, bool) {
	if v, ok := r.Get(name); ok {
		return v, true
	}
	head, rest, found := strings.Cut(name, ".")
	if !found || head == "" {
		return nil, false
	}
	v, ok := r.Get(head)
	if !ok {
		return nil, false
	}
	for _, part := range strings.Split(rest, ".") {
		if part == "" {
			return nil, false
		}
		if v, ok = Field(v, part); !ok {
			return nil, false
		}
	}
	return v, true
}

// Field returns the attribute name of v, which may be a Getter, a map with
// string keys or a struct (matched by form tag, then case-insensitively by
// field name).
func Field(v any, name string) (any, bool) {
	if g, ok := v.(Getter); ok {
		return g.Get(name)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		fv, ok := StructField(rv, name)
		if !ok || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

// StructField finds the exported field of v whose form tag is name, or
// whose Go name matches name case-insensitively.
func StructField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if tag == "-" {
			continue
		}
		if tag == name || tag == "" && strings.EqualFold(f.Name, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// Index returns v[key] for slices, arrays and maps.
func Index(v any, key string) (any, bool) {
	if g, ok := v.(Getter); ok {
		return g.Get(key)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Map:
		kt := rv.Type().Key()
		var k reflect.Value
		switch kt.Kind() {
		case reflect.String:
			k = reflect.ValueOf(key).Convert(kt)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, false
			}
			k = reflect.ValueOf(n).Convert(kt)
		default:
			return nil, false
		}
		mv := rv.MapIndex(k)
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}
	return nil, false
}

// identity substitutes primary keys for identifiers.
func identity(v any) any {
	if id, ok := v.(Identifier); ok {
		return primaryKey(id)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return v
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return v
	}
	substituted := false
	out := make([]any, rv.Len())
	for i := range out {
		item := rv.Index(i).Interface()
		if id, ok := item.(Identifier); ok {
			out[i] = primaryKey(id)
			substituted = true
		} else {
			out[i] = item
		}
	}
	if !substituted {
		return v
	}
	return out
}

func primaryKey(id Identifier) any {
	key := id.PrimaryKey()
	switch reflect.ValueOf(key).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(key)
		if err != nil {
			return key
		}
		return string(data)
	}
	return key
}

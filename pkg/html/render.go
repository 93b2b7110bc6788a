package html

import (
	"strings"
)

// booleanAttributes are attributes whose presence alone means true.
// A true value renders them as a bare name.
var booleanAttributes = []string{
	"allowfullscreen",
	"async",
	"autofocus",
	"autoplay",
	"checked",
	"controls",
	"default",
	"defer",
	"disabled",
	"formnovalidate",
	"hidden",
	"inert",
	"ismap",
	"itemscope",
	"loop",
	"multiple",
	"muted",
	"nomodule",
	"novalidate",
	"open",
	"playsinline",
	"readonly",
	"required",
	"reversed",
	"selected",
	"typemustmatch",
}

// dataAttributes are the names whose mapping values expand into one
// name-subkey attribute per entry.
var dataAttributes = []string{"aria", "data", "data-ng", "ng"}

// RendererConfig configures attribute rendering.
type RendererConfig struct {
	// BooleanAttributes extends the built-in boolean attribute set.
	BooleanAttributes []string

	// DataAttributes extends the built-in nesting prefixes (data, aria,
	// data-ng, ng).
	DataAttributes []string
}

// Renderer turns Attrs into attribute strings. A Renderer is immutable once
// built and safe for concurrent use.
type Renderer struct {
	boolean map[string]bool
	data    map[string]bool
}

// NewRenderer creates a Renderer with the built-in sets plus the extensions
// in config.
func NewRenderer(config RendererConfig) *Renderer {
	r := &Renderer{
		boolean: make(map[string]bool, len(booleanAttributes)+len(config.BooleanAttributes)),
		data:    make(map[string]bool, len(dataAttributes)+len(config.DataAttributes)),
	}
	for _, name := range booleanAttributes {
		r.boolean[name] = true
	}
	for _, name := range config.BooleanAttributes {
		r.boolean[strings.ToLower(strings.TrimSpace(name))] = true
	}
	for _, name := range dataAttributes {
		r.data[name] = true
	}
	for _, name := range config.DataAttributes {
		r.data[strings.TrimSpace(name)] = true
	}
	return r
}

var defaultRenderer = NewRenderer(RendererConfig{})

// DefaultRenderer returns the renderer used by the package level builders.
func DefaultRenderer() *Renderer { return defaultRenderer }

// IsBooleanAttribute reports whether name renders bare when true.
func (r *Renderer) IsBooleanAttribute(name string) bool {
	return r.boolean[name]
}

// IsDataAttribute reports whether name is a nesting prefix.
func (r *Renderer) IsDataAttribute(name string) bool {
	return r.data[name]
}

// RenderTagAttributes renders attrs with the default renderer.
func RenderTagAttributes(attrs Attrs) string {
	return defaultRenderer.Attributes(attrs)
}

// Attributes renders attrs as ` name="value"` pairs in insertion order. The
// result is empty when nothing renders.
//
// Null and false omit the attribute. True renders a bare name for boolean
// attributes and name="true" otherwise. class and style are normalised and
// omitted when empty. Mappings under a nesting prefix expand to one
// attribute per entry, where true renders a bare name and false is omitted.
// Lists of scalars join with spaces. Other structured values render as
// single-quoted JSON.
func (r *Renderer) Attributes(attrs Attrs) string {
	var b strings.Builder
	for _, a := range attrs {
		r.writeAttribute(&b, a.Key, a.Value)
	}
	return b.String()
}

func (r *Renderer) writeAttribute(b *strings.Builder, name string, v Value) {
	switch name {
	case "class":
		if s := ClassString(v); s != "" {
			writePair(b, name, s)
		}
		return
	case "style":
		if s := StyleString(v); s != "" {
			writePair(b, name, s)
		}
		return
	}

	switch v.kind {
	case KindNull:
	case KindBool:
		switch {
		case !v.b:
		case r.boolean[name]:
			b.WriteByte(' ')
			b.WriteString(name)
		default:
			writePair(b, name, "true")
		}
	case KindList, KindMap:
		if r.data[name] {
			r.writeNested(b, name, v)
			return
		}
		if v.kind == KindList && scalarList(v.list) {
			tokens := make([]string, len(v.list))
			for i, item := range v.list {
				tokens[i] = item.String()
			}
			writePair(b, name, strings.Join(tokens, " "))
			return
		}
		writeJSON(b, name, v)
	default:
		writePair(b, name, v.String())
	}
}

// writeNested expands a mapping under a nesting prefix.
func (r *Renderer) writeNested(b *strings.Builder, prefix string, v Value) {
	for _, e := range v.Entries() {
		name := prefix + "-" + e.Key
		switch e.Value.kind {
		case KindNull:
		case KindBool:
			if e.Value.b {
				b.WriteByte(' ')
				b.WriteString(name)
			}
		case KindList, KindMap:
			writeJSON(b, name, e.Value)
		default:
			writePair(b, name, e.Value.String())
		}
	}
}

func writePair(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(Encode(value))
	b.WriteByte('"')
}

func writeJSON(b *strings.Builder, name string, v Value) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`='`)
	b.WriteString(JSONAttribute(v))
	b.WriteByte('\'')
}

// JSONAttribute encodes v as compact JSON safe inside a single-quoted
// attribute: apostrophes become \u0027 and <, > and & are escaped as well.
func JSONAttribute(v Value) string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "null"
	}
	return strings.ReplaceAll(string(data), "'", `\u0027`)
}

func scalarList(items []Value) bool {
	for _, item := range items {
		if item.IsStructured() {
			return false
		}
	}
	return true
}

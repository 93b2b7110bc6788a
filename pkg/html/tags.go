package html

import "strings"

// voidElements are elements that have no content and no closing tag.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsVoidElement reports whether name is a void element.
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// attributeOrder is the order tag builders put well-known attributes in.
// Attributes not listed follow in insertion order.
var attributeOrder = []string{
	"type",
	"id",
	"class",
	"name",
	"value",

	"href",
	"src",
	"srcset",
	"form",
	"action",
	"method",

	"selected",
	"checked",
	"readonly",
	"disabled",
	"multiple",

	"size",
	"maxlength",
	"width",
	"height",
	"rows",
	"cols",

	"alt",
	"title",
	"rel",
	"media",
}

// SortAttributes returns a copy of attrs with the well-known attributes
// moved to the front in canonical order. Null entries are not moved.
func SortAttributes(attrs Attrs) Attrs {
	if len(attrs) < 2 {
		return attrs
	}
	out := make(Attrs, 0, len(attrs))
	moved := make(map[string]bool, len(attributeOrder))
	for _, name := range attributeOrder {
		if v, ok := attrs.Get(name); ok && !v.IsNull() {
			out = append(out, Attr{Key: name, Value: v})
			moved[name] = true
		}
	}
	for _, a := range attrs {
		if !moved[a.Key] {
			out = append(out, a)
		}
	}
	return out
}

// Tag renders a complete element with the default renderer. content is
// inserted verbatim; encode it first when it is text. An empty name returns
// content alone.
func Tag(name, content string, attrs Attrs) string {
	return defaultRenderer.Tag(name, content, attrs)
}

// BeginTag renders an opening tag. An empty name renders nothing.
func BeginTag(name string, attrs Attrs) string {
	return defaultRenderer.BeginTag(name, attrs)
}

// EndTag renders a closing tag. An empty name renders nothing.
func EndTag(name string) string {
	if name == "" {
		return ""
	}
	return "</" + name + ">"
}

// Tag renders a complete element.
func (r *Renderer) Tag(name, content string, attrs Attrs) string {
	if name == "" {
		return content
	}
	open := r.BeginTag(name, attrs)
	if IsVoidElement(name) {
		return open
	}
	return open + content + "</" + name + ">"
}

// BeginTag renders an opening tag with attributes in canonical order.
func (r *Renderer) BeginTag(name string, attrs Attrs) string {
	if name == "" {
		return ""
	}
	return "<" + name + r.Attributes(SortAttributes(attrs)) + ">"
}

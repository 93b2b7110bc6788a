package html

import "strings"

// CSSStyleToMap parses a CSS declaration list such as
// "width: 100px; height: 200px;" into an ordered property map. Segments
// without a colon are skipped; blank input yields an empty map.
func CSSStyleToMap(style string) Attrs {
	m := Attrs{}
	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		m.Set(strings.TrimSpace(prop), String(strings.TrimSpace(value)))
	}
	return m
}

// CSSStyleFromMap serialises a property map as "prop: value;" declarations
// separated by one space. ok is false for an empty map, which means no style
// attribute at all.
func CSSStyleFromMap(m Attrs) (style string, ok bool) {
	parts := make([]string, 0, len(m))
	for _, e := range m {
		if e.Value.IsNull() {
			continue
		}
		parts = append(parts, e.Key+": "+e.Value.String()+";")
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// styleMap returns the property map of a style value in either form.
func styleMap(v Value) Attrs {
	switch v.kind {
	case KindNull:
		return Attrs{}
	case KindMap:
		return v.m.Clone()
	case KindList:
		m := Attrs{}
		for _, item := range v.list {
			m.Merge(styleMap(item))
		}
		return m
	}
	return CSSStyleToMap(v.String())
}

// StyleString returns the declaration string a style value renders as.
func StyleString(v Value) string {
	switch v.kind {
	case KindNull, KindBool:
		return ""
	case KindString:
		return strings.TrimSpace(v.s)
	}
	s, _ := CSSStyleFromMap(styleMap(v))
	return s
}

// AddCSSStyle merges style (a declaration string, Attrs or map) into
// attrs["style"] and returns attrs. Existing properties are replaced in
// place when overwrite is true and kept otherwise. The result is always
// stored in string form, or as null when no declaration is left.
func AddCSSStyle(attrs *Attrs, style any, overwrite bool) *Attrs {
	merged := styleMap(attrs.Value("style"))
	for _, e := range styleMap(V(style)) {
		if !overwrite && merged.Has(e.Key) {
			continue
		}
		merged.Set(e.Key, e.Value)
	}
	if s, ok := CSSStyleFromMap(merged); ok {
		attrs.Set("style", String(s))
	} else {
		attrs.Set("style", Null())
	}
	return attrs
}

// RemoveCSSStyle deletes the named properties from attrs["style"] and
// returns attrs. A missing or empty style is left alone. Removing the last
// property stores an explicit null, so a cleared style can be told apart
// from one that was never set.
func RemoveCSSStyle(attrs *Attrs, properties ...string) *Attrs {
	current, ok := attrs.Get("style")
	if !ok || !current.Truthy() {
		return attrs
	}
	m := styleMap(current)
	for _, p := range properties {
		m.Delete(p)
	}
	if s, ok := CSSStyleFromMap(m); ok {
		attrs.Set("style", String(s))
	} else {
		attrs.Set("style", Null())
	}
	return attrs
}

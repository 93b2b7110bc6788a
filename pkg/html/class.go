package html

import (
	"strconv"
	"strings"
)

// classToken is one normalised class entry. Keyed entries come from group
// keys of a mapping and are never overwritten once present.
type classToken struct {
	key   string
	keyed bool
	token string
}

// classTokens normalises a class value. Strings split on whitespace, list
// items and positional map entries are unkeyed, other map keys are kept.
func classTokens(v Value) []classToken {
	var out []classToken
	switch v.kind {
	case KindNull:
	case KindBool:
	case KindString:
		for _, t := range strings.Fields(v.s) {
			out = append(out, classToken{token: t})
		}
	case KindList, KindMap:
		for _, e := range v.Entries() {
			if e.Value.IsNull() || e.Value.IsStructured() {
				continue
			}
			t := e.Value.String()
			if t == "" {
				continue
			}
			if _, ok := positional(e.Key); ok || v.kind == KindList {
				out = append(out, classToken{token: t})
			} else {
				out = append(out, classToken{key: e.Key, keyed: true, token: t})
			}
		}
	default:
		out = append(out, classToken{token: v.String()})
	}
	return out
}

// ClassString returns the space separated token string a class value
// renders as. A string value renders unchanged unless it is blank.
func ClassString(v Value) string {
	if v.kind == KindString {
		if strings.TrimSpace(v.s) == "" {
			return ""
		}
		return v.s
	}
	tokens := classTokens(v)
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.token
	}
	return strings.Join(parts, " ")
}

// AddCSSClass adds class tokens to attrs["class"] and returns attrs.
//
// class may be a token, a space separated string, a list of tokens or a
// keyed mapping (Attrs, map or Value). A string class attribute stays a
// string with duplicates dropped; a structured one stays structured, where a
// keyed entry whose key is already present is ignored and any entry whose
// token is already present is skipped. When attrs has no class, the
// representation of class decides the one created.
func AddCSSClass(attrs *Attrs, class any) *Attrs {
	in := V(class)
	tokens := classTokens(in)
	if len(tokens) == 0 {
		return attrs
	}

	current, ok := attrs.Get("class")
	if !ok || current.IsNull() {
		if in.IsStructured() {
			attrs.Set("class", mergeStructured(List(), tokens))
		} else {
			attrs.Set("class", String(mergeString(nil, tokens)))
		}
		return attrs
	}

	if current.IsStructured() {
		attrs.Set("class", mergeStructured(current, tokens))
		return attrs
	}
	attrs.Set("class", String(mergeString(strings.Fields(current.String()), tokens)))
	return attrs
}

func mergeString(existing []string, tokens []classToken) string {
	seen := make(map[string]bool, len(existing)+len(tokens))
	out := make([]string, 0, len(existing)+len(tokens))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range tokens {
		if !seen[t.token] {
			seen[t.token] = true
			out = append(out, t.token)
		}
	}
	return strings.Join(out, " ")
}

// mergeStructured merges tokens into a list or map class value. A list
// stays a list until a keyed token arrives, then it becomes a map with
// positional keys.
func mergeStructured(current Value, tokens []classToken) Value {
	present := make(map[string]bool)
	for _, e := range current.Entries() {
		present[e.Value.String()] = true
	}

	if current.kind == KindList && !hasKeyed(tokens) {
		list := append([]Value(nil), current.list...)
		for _, t := range tokens {
			if !present[t.token] {
				present[t.token] = true
				list = append(list, String(t.token))
			}
		}
		return List(list...)
	}

	m := current.Entries().Clone()
	for _, t := range tokens {
		if t.keyed && m.Has(t.key) {
			continue
		}
		if present[t.token] {
			continue
		}
		present[t.token] = true
		if t.keyed {
			m.Set(t.key, String(t.token))
		} else {
			m.Append(String(t.token))
		}
	}
	return Map(m)
}

func hasKeyed(tokens []classToken) bool {
	for _, t := range tokens {
		if t.keyed {
			return true
		}
	}
	return false
}

// RemoveCSSClass removes class tokens from attrs["class"] and returns
// attrs. Matching is by token, whatever key holds it; remaining entries keep
// their keys. The class key is deleted when no token is left.
func RemoveCSSClass(attrs *Attrs, class any) *Attrs {
	current, ok := attrs.Get("class")
	if !ok {
		return attrs
	}
	remove := make(map[string]bool)
	for _, t := range classTokens(V(class)) {
		remove[t.token] = true
	}

	switch current.kind {
	case KindList:
		var kept []Value
		keys := Attrs{}
		shifted := false
		for i, item := range current.list {
			if remove[item.String()] {
				continue
			}
			if len(kept) != i {
				shifted = true
			}
			kept = append(kept, item)
			keys = append(keys, Attr{Key: strconv.Itoa(i), Value: item})
		}
		switch {
		case len(kept) == 0:
			attrs.Delete("class")
		case shifted:
			// keep the original indices of the survivors
			attrs.Set("class", Map(keys))
		default:
			attrs.Set("class", List(kept...))
		}
	case KindMap:
		m := Attrs{}
		for _, e := range current.m {
			if !remove[e.Value.String()] {
				m = append(m, e)
			}
		}
		if len(m) == 0 {
			attrs.Delete("class")
		} else {
			attrs.Set("class", Map(m))
		}
	default:
		var kept []string
		for _, t := range strings.Fields(current.String()) {
			if !remove[t] {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			attrs.Delete("class")
		} else {
			attrs.Set("class", String(strings.Join(kept, " ")))
		}
	}
	return attrs
}

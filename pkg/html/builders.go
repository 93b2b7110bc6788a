package html

import (
	"strings"
)

// Style renders a <style> element. content is not encoded.
func Style(content string, attrs Attrs) string {
	return Tag("style", content, attrs)
}

// Script renders a <script> element. content is not encoded.
func Script(content string, attrs Attrs) string {
	return Tag("script", content, attrs)
}

// CSSFile renders a stylesheet <link>. rel defaults to "stylesheet". The
// "condition" option wraps the tag in an IE conditional comment and
// "noscript: true" wraps it in <noscript>.
func CSSFile(url string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.SetDefault("rel", String("stylesheet"))
	attrs.Set("href", String(url))

	if condition, ok := attrs.Remove("condition"); ok && !condition.IsNull() {
		return wrapIntoCondition(Tag("link", "", attrs), condition.String())
	}
	if noscript, ok := attrs.Remove("noscript"); ok && noscript.Bool() {
		return "<noscript>" + Tag("link", "", attrs) + "</noscript>"
	}
	return Tag("link", "", attrs)
}

// JSFile renders an external <script>. The "condition" option wraps the tag
// in an IE conditional comment.
func JSFile(url string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.Set("src", String(url))

	if condition, ok := attrs.Remove("condition"); ok && !condition.IsNull() {
		return wrapIntoCondition(Tag("script", "", attrs), condition.String())
	}
	return Tag("script", "", attrs)
}

func wrapIntoCondition(content, condition string) string {
	if strings.Contains(condition, "!IE") {
		return "<!--[if " + condition + "]><!-->\n" + content + "\n<!--<![endif]-->"
	}
	return "<!--[if " + condition + "]>\n" + content + "\n<![endif]-->"
}

// A renders a hyperlink. text is not encoded. An empty url renders no
// href.
func A(text, url string, attrs Attrs) string {
	attrs = attrs.Clone()
	if url != "" {
		attrs.Set("href", String(url))
	}
	return Tag("a", text, attrs)
}

// Mailto renders a mailto link. An empty email links to text.
func Mailto(text, email string, attrs Attrs) string {
	if email == "" {
		email = text
	}
	attrs = attrs.Clone()
	attrs.Set("href", String("mailto:"+email))
	return Tag("a", text, attrs)
}

// Img renders an image. A mapping srcset (descriptor to url) is joined as
// "url descriptor,..."; alt defaults to "".
func Img(src string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.Set("src", String(src))
	if srcset, ok := attrs.Get("srcset"); ok && srcset.IsStructured() {
		var parts []string
		for _, e := range srcset.Entries() {
			parts = append(parts, e.Value.String()+" "+e.Key)
		}
		attrs.Set("srcset", String(strings.Join(parts, ",")))
	}
	if alt, ok := attrs.Get("alt"); !ok || alt.IsNull() {
		attrs.Set("alt", String(""))
	}
	return Tag("img", "", attrs)
}

// Label renders a <label>. content is not encoded; an empty forID renders
// no for attribute.
func Label(content, forID string, attrs Attrs) string {
	attrs = attrs.Clone()
	if forID != "" {
		attrs.Set("for", String(forID))
	} else {
		attrs.Delete("for")
	}
	return Tag("label", content, attrs)
}

// Button renders a <button>; type defaults to "button". content is not
// encoded.
func Button(content string, attrs Attrs) string {
	attrs = attrs.Clone()
	if t, ok := attrs.Get("type"); !ok || t.IsNull() {
		attrs.Set("type", String("button"))
	}
	return Tag("button", content, attrs)
}

// SubmitButton renders a submit <button>.
func SubmitButton(content string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.Set("type", String("submit"))
	return Button(content, attrs)
}

// ResetButton renders a reset <button>.
func ResetButton(content string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.Set("type", String("reset"))
	return Button(content, attrs)
}

// Input renders an <input>. A type already present in attrs wins; an empty
// name and a nil value are omitted.
func Input(typ, name string, value any, attrs Attrs) string {
	attrs = attrs.Clone()
	if t, ok := attrs.Get("type"); !ok || t.IsNull() {
		attrs.Set("type", String(typ))
	}
	setName(&attrs, name)
	attrs.Set("value", inputValue(V(value)))
	return Tag("input", "", attrs)
}

func setName(attrs *Attrs, name string) {
	if name == "" {
		attrs.Set("name", Null())
		return
	}
	attrs.Set("name", String(name))
}

func inputValue(v Value) Value {
	if v.IsNull() {
		return v
	}
	return String(v.String())
}

// ButtonInput renders <input type="button">.
func ButtonInput(label string, attrs Attrs) string {
	return valueInput("button", label, attrs)
}

// SubmitInput renders <input type="submit">.
func SubmitInput(label string, attrs Attrs) string {
	return valueInput("submit", label, attrs)
}

// ResetInput renders <input type="reset">.
func ResetInput(label string, attrs Attrs) string {
	return valueInput("reset", label, attrs)
}

func valueInput(typ, label string, attrs Attrs) string {
	attrs = attrs.Clone()
	attrs.Set("type", String(typ))
	attrs.Set("value", String(label))
	return Tag("input", "", attrs)
}

// TextInput renders <input type="text">.
func TextInput(name string, value any, attrs Attrs) string {
	return Input("text", name, value, attrs)
}

// HiddenInput renders <input type="hidden">.
func HiddenInput(name string, value any, attrs Attrs) string {
	return Input("hidden", name, value, attrs)
}

// PasswordInput renders <input type="password">.
func PasswordInput(name string, value any, attrs Attrs) string {
	return Input("password", name, value, attrs)
}

// FileInput renders <input type="file">.
func FileInput(name string, value any, attrs Attrs) string {
	return Input("file", name, value, attrs)
}

// Textarea renders a <textarea> with value as encoded content. The
// "doubleEncode: false" option keeps existing entities in value intact.
func Textarea(name, value string, attrs Attrs) string {
	attrs = attrs.Clone()
	setName(&attrs, name)
	content := Encode(value)
	if double, ok := attrs.Remove("doubleEncode"); ok && double.Kind() == KindBool && !double.Bool() {
		content = EncodeKeepEntities(value)
	}
	return Tag("textarea", content, attrs)
}

// Radio renders a radio button. See Checkbox for the options.
func Radio(name string, checked bool, attrs Attrs) string {
	return booleanInput("radio", name, checked, attrs)
}

// Checkbox renders a checkbox. Options read from attrs:
//   - value: submitted value, "1" when absent, omitted when null
//   - uncheck: value of a hidden input submitted when unchecked
//   - label: wraps the input in a <label> with this (unencoded) text
//   - labelOptions: attributes of that label
//
// A checked attribute in attrs wins over checked.
func Checkbox(name string, checked bool, attrs Attrs) string {
	return booleanInput("checkbox", name, checked, attrs)
}

func booleanInput(typ, name string, checked bool, attrs Attrs) string {
	attrs = attrs.Clone()
	if c, ok := attrs.Get("checked"); !ok || c.IsNull() {
		attrs.Set("checked", Bool(checked))
	}
	value, ok := attrs.Remove("value")
	if !ok {
		value = String("1")
	}

	hidden := ""
	if uncheck, ok := attrs.Remove("uncheck"); ok && !uncheck.IsNull() {
		hiddenAttrs := Attrs{}
		if form, ok := attrs.Get("form"); ok && !form.IsNull() {
			hiddenAttrs.Set("form", form)
		}
		if disabled := attrs.Value("disabled"); disabled.Truthy() {
			hiddenAttrs.Set("disabled", disabled)
		}
		hidden = HiddenInput(name, uncheck, hiddenAttrs)
	}

	label, hasLabel := attrs.Remove("label")
	labelAttrs, _ := attrs.Remove("labelOptions")
	if hasLabel && !label.IsNull() {
		input := Input(typ, name, value.Interface(), attrs)
		return hidden + Label(input+" "+label.String(), "", labelAttrs.Map())
	}
	return hidden + Input(typ, name, value.Interface(), attrs)
}

// ItemsConfig controls Ul and Ol.
type ItemsConfig struct {
	// Tag replaces the list element name.
	Tag string

	// ItemAttrs are the attributes of each <li>.
	ItemAttrs Attrs

	// NoEncode disables encoding of item text.
	NoEncode bool

	// Separator joins the items. Defaults to "\n".
	Separator string

	// Item replaces the default <li> rendering.
	Item func(item Value, index int) string
}

// Ul renders an unordered list of items.
func Ul(items []Value, attrs Attrs, cfg ItemsConfig) string {
	if cfg.Tag == "" {
		cfg.Tag = "ul"
	}
	return itemList(items, attrs, cfg)
}

// Ol renders an ordered list of items.
func Ol(items []Value, attrs Attrs, cfg ItemsConfig) string {
	if cfg.Tag == "" {
		cfg.Tag = "ol"
	}
	return itemList(items, attrs, cfg)
}

func itemList(items []Value, attrs Attrs, cfg ItemsConfig) string {
	if len(items) == 0 {
		return Tag(cfg.Tag, "", attrs)
	}
	if cfg.Separator == "" {
		cfg.Separator = "\n"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		switch {
		case cfg.Item != nil:
			lines[i] = cfg.Item(item, i)
		case cfg.NoEncode:
			lines[i] = Tag("li", item.String(), cfg.ItemAttrs)
		default:
			lines[i] = Tag("li", Encode(item.String()), cfg.ItemAttrs)
		}
	}
	return Tag(cfg.Tag, cfg.Separator+strings.Join(lines, cfg.Separator)+cfg.Separator, attrs)
}

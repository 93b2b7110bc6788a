package html

import (
	"iter"
	"strings"
)

// Selection is the set of selected option keys. Membership compares the
// string forms, so Int(0) selects key "0".
type Selection struct {
	values map[string]bool
}

// NoSelection selects nothing.
func NoSelection() Selection { return Selection{} }

// SelectValue selects a single value, or every item of a list value. nil
// selects nothing.
func SelectValue(v any) Selection {
	return SelectionOf(V(v))
}

// SelectValues selects every given value.
func SelectValues(values ...any) Selection {
	s := Selection{values: make(map[string]bool, len(values))}
	for _, v := range values {
		s.add(V(v))
	}
	return s
}

// SelectSeq selects every value produced by seq.
func SelectSeq[T any](seq iter.Seq[T]) Selection {
	s := Selection{values: map[string]bool{}}
	for v := range seq {
		s.add(V(v))
	}
	return s
}

// SelectionOf selects the scalar v, or the items of a list or map v.
func SelectionOf(v Value) Selection {
	if v.IsNull() {
		return Selection{}
	}
	s := Selection{values: map[string]bool{}}
	s.add(v)
	return s
}

func (s *Selection) add(v Value) {
	switch v.kind {
	case KindNull:
	case KindList, KindMap:
		for _, e := range v.Entries() {
			s.add(e.Value)
		}
	default:
		s.values[v.String()] = true
	}
}

// Contains reports whether key is selected.
func (s Selection) Contains(key string) bool {
	return s.values[key]
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.values) == 0
}

// Prompt is the leading option rendered before the items.
type Prompt struct {
	Text string
	// Attrs are merged over value="" and may replace it.
	Attrs Attrs
}

// ItemFunc renders one leaf entry. checked reports whether the entry is
// selected; name is the input name of the surrounding control.
type ItemFunc func(index int, label, name string, checked bool, value string) string

// SelectConfig controls RenderSelectOptions.
type SelectConfig struct {
	Prompt *Prompt

	// Options holds extra attributes per option key.
	Options map[string]Attrs

	// Groups holds extra attributes per optgroup key.
	Groups map[string]Attrs

	// EncodeSpaces replaces spaces in labels with &nbsp;.
	EncodeSpaces bool

	// NoEncode disables HTML encoding of labels.
	NoEncode bool

	// Name is handed to Item as the control name.
	Name string

	// Item replaces the default <option> rendering of leaves.
	Item ItemFunc

	// Separator joins the rendered lines. Defaults to "\n".
	Separator string
}

// RenderSelectOptions renders the body of a select element: an optional
// prompt, then one <option> per leaf of items and one <optgroup> per
// mapping entry, recursively. A leaf is selected when its key is in
// selection. Lines are joined with cfg.Separator.
func RenderSelectOptions(selection Selection, items Attrs, cfg SelectConfig) string {
	if cfg.Separator == "" {
		cfg.Separator = "\n"
	}
	var lines []string
	if cfg.Prompt != nil {
		attrs := Attrs{{Key: "value", Value: String("")}}
		attrs.Merge(cfg.Prompt.Attrs)
		lines = append(lines, Tag("option", cfg.label(cfg.Prompt.Text), attrs))
	}
	index := 0
	lines = append(lines, renderOptionTree(selection, items, &cfg, &index)...)
	return strings.Join(lines, cfg.Separator)
}

func renderOptionTree(selection Selection, items Attrs, cfg *SelectConfig, index *int) []string {
	lines := make([]string, 0, len(items))
	for _, e := range items {
		if e.Value.IsStructured() {
			attrs := cfg.Groups[e.Key].Clone()
			attrs.SetDefault("label", String(e.Key))
			content := strings.Join(renderOptionTree(selection, e.Value.Entries(), cfg, index), cfg.Separator)
			lines = append(lines, Tag("optgroup", "\n"+content+"\n", attrs))
			continue
		}

		selected := selection.Contains(e.Key)
		if cfg.Item != nil {
			lines = append(lines, cfg.Item(*index, e.Value.String(), cfg.Name, selected, e.Key))
			*index++
			continue
		}

		attrs := cfg.Options[e.Key].Clone()
		attrs.Set("value", String(e.Key))
		if !attrs.Has("selected") {
			attrs.Set("selected", Bool(selected))
		}
		lines = append(lines, Tag("option", cfg.label(e.Value.String()), attrs))
		*index++
	}
	return lines
}

func (cfg *SelectConfig) label(text string) string {
	if !cfg.NoEncode {
		text = Encode(text)
	}
	if cfg.EncodeSpaces {
		text = strings.ReplaceAll(text, " ", "&nbsp;")
	}
	return text
}

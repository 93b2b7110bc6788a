package html

import "strings"

// DropDownList renders a <select>. With a truthy multiple attribute it
// renders a ListBox instead. Options, groups and the prompt come from cfg.
func DropDownList(name string, selection Selection, items Attrs, attrs Attrs, cfg SelectConfig) string {
	if attrs.Value("multiple").Truthy() {
		return ListBox(name, selection, items, attrs, cfg)
	}
	attrs = attrs.Clone()
	setName(&attrs, name)
	attrs.Delete("unselect")
	cfg.Name = name
	return Tag("select", "\n"+RenderSelectOptions(selection, items, cfg)+"\n", attrs)
}

// ListBox renders a <select> with a visible size, 4 unless attrs sets one.
// A multiple list box gets "[]" appended to its name. The "unselect" option
// adds a hidden input submitted when nothing is selected.
func ListBox(name string, selection Selection, items Attrs, attrs Attrs, cfg SelectConfig) string {
	attrs = attrs.Clone()
	attrs.SetDefault("size", Int(4))
	if attrs.Value("multiple").Truthy() && name != "" && !strings.HasSuffix(name, "[]") {
		name += "[]"
	}
	setName(&attrs, name)

	hidden := ""
	if unselect, ok := attrs.Remove("unselect"); ok && !unselect.IsNull() {
		hidden = HiddenInput(strings.TrimSuffix(name, "[]"), unselect.Interface(), disabledOnly(attrs))
	}
	cfg.Name = name
	return hidden + Tag("select", "\n"+RenderSelectOptions(selection, items, cfg)+"\n", attrs)
}

// disabledOnly copies a truthy disabled attribute for hidden companions, so
// a disabled control submits nothing.
func disabledOnly(attrs Attrs) Attrs {
	if d := attrs.Value("disabled"); d.Truthy() {
		return Attrs{{Key: "disabled", Value: d}}
	}
	return nil
}

// ListConfig controls CheckboxList and RadioList.
type ListConfig struct {
	// Tag is the container element, "div" by default.
	Tag string

	// Unwrapped renders the items without a container.
	Unwrapped bool

	// Separator joins the items. Defaults to "\n".
	Separator string

	// Item replaces the default rendering of each entry.
	Item ItemFunc

	// ItemAttrs are merged into each generated input.
	ItemAttrs Attrs

	// NoEncode disables encoding of labels.
	NoEncode bool
}

// CheckboxList renders one labelled checkbox per entry of items. The input
// name always ends in "[]". The "unselect" option adds a hidden input
// submitted when no box is checked.
func CheckboxList(name string, selection Selection, items Attrs, attrs Attrs, cfg ListConfig) string {
	if !strings.HasSuffix(name, "[]") {
		name += "[]"
	}
	return choiceList("checkbox", name, selection, items, attrs, cfg)
}

// RadioList renders one labelled radio button per entry of items.
func RadioList(name string, selection Selection, items Attrs, attrs Attrs, cfg ListConfig) string {
	return choiceList("radio", name, selection, items, attrs, cfg)
}

func choiceList(typ, name string, selection Selection, items Attrs, attrs Attrs, cfg ListConfig) string {
	if cfg.Separator == "" {
		cfg.Separator = "\n"
	}
	if cfg.Tag == "" {
		cfg.Tag = "div"
	}

	lines := make([]string, 0, len(items))
	for index, e := range items {
		label := e.Value.String()
		checked := selection.Contains(e.Key)
		if cfg.Item != nil {
			lines = append(lines, cfg.Item(index, label, name, checked, e.Key))
			continue
		}
		if !cfg.NoEncode {
			label = Encode(label)
		}
		itemAttrs := Attrs{
			{Key: "value", Value: String(e.Key)},
			{Key: "label", Value: String(label)},
		}
		itemAttrs.Merge(cfg.ItemAttrs)
		lines = append(lines, booleanInput(typ, name, checked, itemAttrs))
	}

	attrs = attrs.Clone()
	hidden := ""
	if unselect, ok := attrs.Remove("unselect"); ok && !unselect.IsNull() {
		hidden = HiddenInput(strings.TrimSuffix(name, "[]"), unselect.Interface(), disabledOnly(attrs))
		attrs.Delete("disabled")
	}

	content := strings.Join(lines, cfg.Separator)
	if cfg.Unwrapped {
		return hidden + content
	}
	return hidden + Tag(cfg.Tag, content, attrs)
}

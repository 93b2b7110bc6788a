package html

import (
	"slices"
	"strings"

	"github.com/vango-dev/markup/pkg/attrpath"
)

// Labeler supplies human readable attribute labels.
type Labeler interface {
	AttributeLabel(name string) string
}

// Hinter supplies attribute hints.
type Hinter interface {
	AttributeHint(name string) string
}

// LengthLimiter reports the maximum length validated for an attribute.
type LengthLimiter interface {
	MaxLength(name string) (int, bool)
}

// ErrorReporter exposes validation errors per attribute.
type ErrorReporter interface {
	// ErrorAttributes lists the attributes with errors in the order the
	// errors were added.
	ErrorAttributes() []string
	Errors(name string) []string
	FirstError(name string) string
}

// ErrorSource produces the error text Error renders for an attribute.
type ErrorSource func(model ErrorReporter, name string) string

func attributeLabel(m any, name string) string {
	if l, ok := m.(Labeler); ok {
		return l.AttributeLabel(name)
	}
	return name
}

// activeAttrs resolves the options every model bound input shares: the
// element id, a "placeholder: true" label placeholder and a
// "maxlength: true" length limit.
func activeAttrs(m attrpath.Record, expr string, attrs Attrs) (Attrs, error) {
	attrs = attrs.Clone()
	if !attrs.Has("id") {
		id, err := attrpath.InputID(m.FormName(), expr)
		if err != nil {
			return nil, err
		}
		attrs.Set("id", String(id))
	}

	name, err := attrpath.AttributeName(expr)
	if err != nil {
		return nil, err
	}
	if attrs.Value("placeholder").Bool() {
		attrs.Set("placeholder", String(attributeLabel(m, name)))
	}
	if attrs.Value("maxlength").Bool() {
		attrs.Delete("maxlength")
		if l, ok := m.(LengthLimiter); ok {
			if n, ok := l.MaxLength(name); ok {
				attrs.Set("maxlength", Int(int64(n)))
			}
		}
	}
	return attrs, nil
}

// activeName returns the "name" option when set, else the input name of
// expr.
func activeName(m attrpath.Record, expr string, attrs *Attrs) (string, error) {
	if n, ok := attrs.Remove("name"); ok && !n.IsNull() {
		return n.String(), nil
	}
	return attrpath.InputName(m.FormName(), expr)
}

// activeValue returns the "value" option when set, else the bound value.
func activeValue(m attrpath.Record, expr string, attrs *Attrs) (Value, error) {
	if v, ok := attrs.Remove("value"); ok && !v.IsNull() {
		return v, nil
	}
	v, err := attrpath.Value(m, expr)
	if err != nil {
		return Value{}, err
	}
	return V(v), nil
}

// ActiveInput renders an input of type typ bound to expr of m.
func ActiveInput(typ string, m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attrs, err := activeAttrs(m, expr, attrs)
	if err != nil {
		return "", err
	}
	name, err := activeName(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	value, err := activeValue(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	return Input(typ, name, value, attrs), nil
}

// ActiveTextInput renders a text input bound to expr of m.
func ActiveTextInput(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	return ActiveInput("text", m, expr, attrs)
}

// ActivePasswordInput renders a password input bound to expr of m.
func ActivePasswordInput(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	return ActiveInput("password", m, expr, attrs)
}

// ActiveHiddenInput renders a hidden input bound to expr of m.
func ActiveHiddenInput(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	return ActiveInput("hidden", m, expr, attrs)
}

// ActiveFileInput renders a file input preceded by a hidden input with an
// empty value, so the attribute is submitted when no file is chosen. The
// hidden input takes the "name" and a truthy "disabled" option, then the
// "hiddenOptions" attributes.
func ActiveFileInput(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attrs = attrs.Clone()
	hiddenOptions, _ := attrs.Remove("hiddenOptions")

	hidden := Attrs{{Key: "id", Value: Null()}, {Key: "value", Value: String("")}}
	if n, ok := attrs.Get("name"); ok && !n.IsNull() {
		hidden.Set("name", n)
	}
	if d := attrs.Value("disabled"); d.Truthy() {
		hidden.Set("disabled", d)
	}
	hidden.Merge(hiddenOptions.Map())

	hiddenInput, err := ActiveHiddenInput(m, expr, hidden)
	if err != nil {
		return "", err
	}

	attrs, err = activeAttrs(m, expr, attrs)
	if err != nil {
		return "", err
	}
	name, err := activeName(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	attrs.Delete("value")
	return hiddenInput + Input("file", name, nil, attrs), nil
}

// ActiveTextarea renders a textarea bound to expr of m.
func ActiveTextarea(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attrs, err := activeAttrs(m, expr, attrs)
	if err != nil {
		return "", err
	}
	name, err := activeName(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	value, err := activeValue(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	return Textarea(name, value.String(), attrs), nil
}

// ActiveRadio renders a radio button bound to expr of m. See ActiveCheckbox.
func ActiveRadio(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	return activeBooleanInput("radio", m, expr, attrs)
}

// ActiveCheckbox renders a checkbox bound to expr of m. It is checked when
// the bound value equals the "value" option ("1" by default). Unless set
// to false, "uncheck" defaults to "0" and "label" to the attribute label.
func ActiveCheckbox(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	return activeBooleanInput("checkbox", m, expr, attrs)
}

func activeBooleanInput(typ string, m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attrs = attrs.Clone()
	name, err := activeName(m, expr, &attrs)
	if err != nil {
		return "", err
	}
	bound, err := attrpath.Value(m, expr)
	if err != nil {
		return "", err
	}
	attribute, err := attrpath.AttributeName(expr)
	if err != nil {
		return "", err
	}

	attrs.SetDefault("value", String("1"))
	knobDefault(&attrs, "uncheck", String("0"))
	knobDefault(&attrs, "label", String(Encode(attributeLabel(m, attribute))))

	if !attrs.Has("id") {
		id, err := attrpath.InputID(m.FormName(), expr)
		if err != nil {
			return "", err
		}
		attrs.Set("id", String(id))
	}

	checked := V(bound).String() == attrs.Value("value").String()
	return booleanInput(typ, name, checked, attrs), nil
}

// knobDefault sets key to def when absent and drops it when set to false.
func knobDefault(attrs *Attrs, key string, def Value) {
	v, ok := attrs.Get(key)
	switch {
	case !ok:
		attrs.Set(key, def)
	case v.Kind() == KindBool && !v.Bool():
		attrs.Delete(key)
	}
}

// ActiveDropDownList renders a select bound to expr of m. With a truthy
// "multiple" option it renders ActiveListBox instead.
func ActiveDropDownList(m attrpath.Record, expr string, items Attrs, attrs Attrs, cfg SelectConfig) (string, error) {
	if attrs.Value("multiple").Truthy() {
		return ActiveListBox(m, expr, items, attrs, cfg)
	}
	name, selection, attrs, err := activeList(m, expr, attrs)
	if err != nil {
		return "", err
	}
	return DropDownList(name, selection, items, attrs, cfg), nil
}

// ActiveListBox renders a list box bound to expr of m. "unselect" defaults
// to "".
func ActiveListBox(m attrpath.Record, expr string, items Attrs, attrs Attrs, cfg SelectConfig) (string, error) {
	name, selection, attrs, err := activeList(m, expr, attrs)
	if err != nil {
		return "", err
	}
	return ListBox(name, selection, items, attrs, cfg), nil
}

// ActiveCheckboxList renders a checkbox list bound to expr of m.
func ActiveCheckboxList(m attrpath.Record, expr string, items Attrs, attrs Attrs, cfg ListConfig) (string, error) {
	name, selection, attrs, err := activeList(m, expr, attrs)
	if err != nil {
		return "", err
	}
	return CheckboxList(name, selection, items, attrs, cfg), nil
}

// ActiveRadioList renders a radio list bound to expr of m.
func ActiveRadioList(m attrpath.Record, expr string, items Attrs, attrs Attrs, cfg ListConfig) (string, error) {
	name, selection, attrs, err := activeList(m, expr, attrs)
	if err != nil {
		return "", err
	}
	return RadioList(name, selection, items, attrs, cfg), nil
}

func activeList(m attrpath.Record, expr string, attrs Attrs) (string, Selection, Attrs, error) {
	attrs = attrs.Clone()
	name, err := activeName(m, expr, &attrs)
	if err != nil {
		return "", Selection{}, nil, err
	}
	value, err := activeValue(m, expr, &attrs)
	if err != nil {
		return "", Selection{}, nil, err
	}
	if u, ok := attrs.Get("unselect"); !ok {
		attrs.Set("unselect", String(""))
	} else if u.Kind() == KindBool && !u.Bool() {
		attrs.Delete("unselect")
	}
	if !attrs.Has("id") {
		id, err := attrpath.InputID(m.FormName(), expr)
		if err != nil {
			return "", Selection{}, nil, err
		}
		attrs.Set("id", String(id))
	}
	return name, SelectionOf(value), attrs, nil
}

// ActiveLabel renders the label of expr of m. The "label" option replaces
// the encoded attribute label and "for" replaces the input id.
func ActiveLabel(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attrs = attrs.Clone()
	forID := ""
	if f, ok := attrs.Remove("for"); ok {
		forID = f.String()
	} else {
		id, err := attrpath.InputID(m.FormName(), expr)
		if err != nil {
			return "", err
		}
		forID = id
	}
	attribute, err := attrpath.AttributeName(expr)
	if err != nil {
		return "", err
	}
	label := Encode(attributeLabel(m, attribute))
	if l, ok := attrs.Remove("label"); ok && !l.IsNull() {
		label = l.String()
	}
	return Label(label, forID, attrs), nil
}

// ActiveHint renders the hint of expr of m in a "tag" element, a div by
// default. The "hint" option replaces the model hint; nothing is rendered
// when the hint is empty.
func ActiveHint(m attrpath.Record, expr string, attrs Attrs) (string, error) {
	attribute, err := attrpath.AttributeName(expr)
	if err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	hint := ""
	if h, ok := attrs.Remove("hint"); ok {
		hint = h.String()
	} else if hm, ok := m.(Hinter); ok {
		hint = hm.AttributeHint(attribute)
	}
	if hint == "" {
		return "", nil
	}
	return Tag(tagOption(&attrs, "div"), hint, attrs), nil
}

func tagOption(attrs *Attrs, def string) string {
	if t, ok := attrs.Remove("tag"); ok && !t.IsNull() {
		return t.String()
	}
	return def
}

func encodeOption(attrs *Attrs) bool {
	if e, ok := attrs.Remove("encode"); ok && e.Kind() == KindBool {
		return e.Bool()
	}
	return true
}

// Error renders the first error of expr in a "tag" element, a div by
// default. A nil source reads model.FirstError. The text is encoded unless
// "encode" is false.
func Error(model ErrorReporter, expr string, attrs Attrs, source ErrorSource) (string, error) {
	attribute, err := attrpath.AttributeName(expr)
	if err != nil {
		return "", err
	}
	attrs = attrs.Clone()
	tag := tagOption(&attrs, "div")
	encode := encodeOption(&attrs)

	var text string
	if source != nil {
		text = source(model, attribute)
	} else {
		text = model.FirstError(attribute)
	}
	if encode {
		text = Encode(text)
	}
	return Tag(tag, text, attrs), nil
}

// DefaultSummaryHeader opens an error summary.
const DefaultSummaryHeader = "<p>Please fix the following errors:</p>"

// ErrorSummary renders the errors of models as a list inside a div. By
// default it shows the first error of each attribute; "showAllErrors: true"
// shows every error. Repeated messages are shown once. "header" and
// "footer" surround the list and "encode: false" keeps messages raw. With
// no errors the summary is still rendered, hidden by "display:none".
func ErrorSummary(attrs Attrs, models ...ErrorReporter) string {
	attrs = attrs.Clone()
	header := DefaultSummaryHeader
	if h, ok := attrs.Remove("header"); ok && !h.IsNull() {
		header = h.String()
	}
	footer := ""
	if f, ok := attrs.Remove("footer"); ok {
		footer = f.String()
	}
	encode := encodeOption(&attrs)
	showAll, _ := attrs.Remove("showAllErrors")

	lines := collectErrors(models, encode, showAll.Truthy())

	var content string
	if len(lines) == 0 {
		content = "<ul></ul>"
		style := "display:none"
		if s, ok := attrs.Get("style"); ok {
			if existing := strings.TrimRight(StyleString(s), ";"); existing != "" {
				style = existing + "; display:none"
			}
		}
		attrs.Set("style", String(style))
	} else {
		content = "<ul><li>" + strings.Join(lines, "</li>\n<li>") + "</li></ul>"
	}
	return Tag("div", header+content+footer, attrs)
}

func collectErrors(models []ErrorReporter, encode, showAll bool) []string {
	var lines []string
	for _, m := range models {
		for _, attribute := range m.ErrorAttributes() {
			if showAll {
				lines = append(lines, m.Errors(attribute)...)
			} else if e := m.FirstError(attribute); e != "" {
				lines = append(lines, e)
			}
		}
	}

	unique := lines[:0]
	for _, line := range lines {
		if !slices.Contains(unique, line) {
			unique = append(unique, line)
		}
	}
	if encode {
		for i, line := range unique {
			unique[i] = Encode(line)
		}
	}
	return unique
}

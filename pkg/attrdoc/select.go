package attrdoc

import (
	"github.com/vango-dev/markup/pkg/html"
)

// SelectDocument is a decoded option tree request:
//
//	selection: [value1, "0"]
//	prompt: Please select          # or {text: ..., options: {...}}
//	items:
//	  value1: Label 1
//	  group1:
//	    value11: Label 11
//	options: {value1: {class: first}}
//	groups: {group1: {class: group}}
//	encodeSpaces: true
//	encode: false
//	name: pick
//	attrs: {id: pick}
type SelectDocument struct {
	Selection html.Selection
	Items     html.Attrs
	Config    html.SelectConfig

	// Attrs are the attributes of the surrounding select element.
	Attrs html.Attrs
}

// DecodeSelectDocument parses a select document. Unknown top level keys are
// ignored.
func DecodeSelectDocument(data []byte) (*SelectDocument, error) {
	root, err := DecodeAttrs(data)
	if err != nil {
		return nil, err
	}
	return SelectDocumentOf(root), nil
}

// SelectDocumentOf reads a select document from decoded attributes.
func SelectDocumentOf(root html.Attrs) *SelectDocument {
	doc := &SelectDocument{
		Selection: html.SelectionOf(root.Value("selection")),
		Items:     root.Value("items").Entries(),
		Attrs:     root.Value("attrs").Map(),
		Config: html.SelectConfig{
			Options:      keyedAttrs(root.Value("options")),
			Groups:       keyedAttrs(root.Value("groups")),
			EncodeSpaces: root.Value("encodeSpaces").Truthy(),
			Name:         root.Value("name").String(),
		},
	}
	if e, ok := root.Get("encode"); ok && e.Kind() == html.KindBool {
		doc.Config.NoEncode = !e.Bool()
	}
	if sep, ok := root.Get("separator"); ok && !sep.IsNull() {
		doc.Config.Separator = sep.String()
	}

	switch p := root.Value("prompt"); p.Kind() {
	case html.KindNull:
	case html.KindMap:
		doc.Config.Prompt = &html.Prompt{
			Text:  p.Map().Value("text").String(),
			Attrs: p.Map().Value("options").Map(),
		}
	default:
		doc.Config.Prompt = &html.Prompt{Text: p.String()}
	}
	return doc
}

// Render renders the option lines of doc.
func (doc *SelectDocument) Render() string {
	return html.RenderSelectOptions(doc.Selection, doc.Items, doc.Config)
}

func keyedAttrs(v html.Value) map[string]html.Attrs {
	m := v.Map()
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]html.Attrs, len(m))
	for _, e := range m {
		out[e.Key] = e.Value.Map()
	}
	return out
}

package attrdoc

import (
	"slices"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/html"
)

// ErrUnknownBuilder reports a tag document naming no registered builder.
var ErrUnknownBuilder = errors.New("M012")

// TagDocument is a decoded tag builder request:
//
//	content: Save            # element content, inserted verbatim
//	encode: true             # encode content first
//	attrs: {class: btn}
//	url: /posts              # a, cssFile, jsFile
//	name: title              # tag, inputs, lists
//	value: Hello             # inputs, textarea
//
// Which keys a builder reads depends on the builder.
type TagDocument struct {
	html.Attrs
	renderer *html.Renderer
}

// TagBuilder renders one kind of element from a tag document.
type TagBuilder func(doc TagDocument) string

var tagBuilders = map[string]TagBuilder{
	"tag": func(d TagDocument) string {
		return d.renderer.Tag(d.str("name"), d.content(), d.attrs())
	},
	"beginTag": func(d TagDocument) string {
		return d.renderer.BeginTag(d.str("name"), d.attrs())
	},
	"endTag": func(d TagDocument) string {
		return html.EndTag(d.str("name"))
	},
	"a": func(d TagDocument) string {
		return html.A(d.content(), d.str("url"), d.attrs())
	},
	"mailto": func(d TagDocument) string {
		return html.Mailto(d.content(), d.str("email"), d.attrs())
	},
	"img": func(d TagDocument) string {
		return html.Img(d.str("src"), d.attrs())
	},
	"label": func(d TagDocument) string {
		return html.Label(d.content(), d.str("for"), d.attrs())
	},
	"button":       contentBuilder(html.Button),
	"submitButton": contentBuilder(html.SubmitButton),
	"resetButton":  contentBuilder(html.ResetButton),
	"style":        contentBuilder(html.Style),
	"script":       contentBuilder(html.Script),
	"cssFile": func(d TagDocument) string {
		return html.CSSFile(d.str("url"), d.attrs())
	},
	"jsFile": func(d TagDocument) string {
		return html.JSFile(d.str("url"), d.attrs())
	},
	"input": func(d TagDocument) string {
		return html.Input(d.str("type"), d.str("name"), d.Value("value").Interface(), d.attrs())
	},
	"textInput":     valueBuilder(html.TextInput),
	"hiddenInput":   valueBuilder(html.HiddenInput),
	"passwordInput": valueBuilder(html.PasswordInput),
	"fileInput":     valueBuilder(html.FileInput),
	"buttonInput":   labelBuilder(html.ButtonInput),
	"submitInput":   labelBuilder(html.SubmitInput),
	"resetInput":    labelBuilder(html.ResetInput),
	"textarea": func(d TagDocument) string {
		return html.Textarea(d.str("name"), d.str("value"), d.attrs())
	},
	"radio":    checkBuilder(html.Radio),
	"checkbox": checkBuilder(html.Checkbox),

	"ul": itemsBuilder(html.Ul),
	"ol": itemsBuilder(html.Ol),

	"dropDownList": selectBuilder(html.DropDownList),
	"listBox":      selectBuilder(html.ListBox),
	"checkboxList": listBuilder(html.CheckboxList),
	"radioList":    listBuilder(html.RadioList),
}

// TagBuilders returns the registered builder names in sorted order.
func TagBuilders() []string {
	names := make([]string, 0, len(tagBuilders))
	for name := range tagBuilders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RenderTag runs the builder called name on a decoded document. Generic
// elements ("tag", "beginTag") render through r; a nil r uses the default
// renderer.
func RenderTag(name string, doc html.Attrs, r *html.Renderer) (string, error) {
	build, ok := tagBuilders[name]
	if !ok {
		return "", ErrUnknownBuilder.WithInput(name).
			WithSuggestion("Use one of: " + strings.Join(TagBuilders(), ", "))
	}
	if r == nil {
		r = html.DefaultRenderer()
	}
	return build(TagDocument{Attrs: doc, renderer: r}), nil
}

func (d TagDocument) str(key string) string {
	return d.Value(key).String()
}

func (d TagDocument) attrs() html.Attrs {
	return d.Value("attrs").Map()
}

func (d TagDocument) content() string {
	content := d.str("content")
	if d.Value("encode").Truthy() {
		return html.Encode(content)
	}
	return content
}

func contentBuilder(fn func(string, html.Attrs) string) TagBuilder {
	return func(d TagDocument) string {
		return fn(d.content(), d.attrs())
	}
}

func valueBuilder(fn func(string, any, html.Attrs) string) TagBuilder {
	return func(d TagDocument) string {
		return fn(d.str("name"), d.Value("value").Interface(), d.attrs())
	}
}

func labelBuilder(fn func(string, html.Attrs) string) TagBuilder {
	return func(d TagDocument) string {
		return fn(d.str("label"), d.attrs())
	}
}

func checkBuilder(fn func(string, bool, html.Attrs) string) TagBuilder {
	return func(d TagDocument) string {
		return fn(d.str("name"), d.Value("checked").Truthy(), d.attrs())
	}
}

func itemsBuilder(fn func([]html.Value, html.Attrs, html.ItemsConfig) string) TagBuilder {
	return func(d TagDocument) string {
		cfg := html.ItemsConfig{
			Tag:       d.str("tag"),
			ItemAttrs: d.Value("itemOptions").Map(),
			NoEncode:  d.noEncode(),
		}
		if sep, ok := d.Get("separator"); ok && !sep.IsNull() {
			cfg.Separator = sep.String()
		}
		return fn(d.Value("items").List(), d.attrs(), cfg)
	}
}

func selectBuilder(fn func(string, html.Selection, html.Attrs, html.Attrs, html.SelectConfig) string) TagBuilder {
	return func(d TagDocument) string {
		sd := SelectDocumentOf(d.Attrs)
		return fn(d.str("name"), sd.Selection, sd.Items, sd.Attrs, sd.Config)
	}
}

func listBuilder(fn func(string, html.Selection, html.Attrs, html.Attrs, html.ListConfig) string) TagBuilder {
	return func(d TagDocument) string {
		sd := SelectDocumentOf(d.Attrs)
		cfg := html.ListConfig{
			Tag:       d.str("tag"),
			Unwrapped: d.Value("unwrapped").Truthy(),
			ItemAttrs: d.Value("itemOptions").Map(),
			NoEncode:  d.noEncode(),
			Separator: sd.Config.Separator,
		}
		return fn(d.str("name"), sd.Selection, sd.Items, sd.Attrs, cfg)
	}
}

// noEncode reports an explicit encode: false.
func (d TagDocument) noEncode() bool {
	e, ok := d.Get("encode")
	return ok && e.Kind() == html.KindBool && !e.Bool()
}

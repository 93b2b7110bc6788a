package attrdoc

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vango-dev/markup/pkg/html"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

func TestRenderTag(t *testing.T) {
	tests := []struct {
		builder string
		doc     string
		want    string
	}{
		{"tag", "name: p\ncontent: hi\nattrs: {class: [a, b]}", `<p class="a b">hi</p>`},
		{"tag", "name: br", `<br>`},
		{"tag", "content: bare", `bare`},
		{"beginTag", "name: div\nattrs: {id: x}", `<div id="x">`},
		{"endTag", "name: div", `</div>`},
		{"a", "content: Posts\nurl: /posts\nattrs: {class: btn}", `<a class="btn" href="/posts">Posts</a>`},
		{"a", "content: <b>x</b>\nencode: true", `<a>&lt;b&gt;x&lt;/b&gt;</a>`},
		{"button", "content: Go", `<button type="button">Go</button>`},
		{"submitButton", "content: Save", `<button type="submit">Save</button>`},
		{"textInput", "name: title\nvalue: Hello", `<input type="text" name="title" value="Hello">`},
		{"hiddenInput", "name: id\nvalue: 7", `<input type="hidden" name="id" value="7">`},
		{"input", "type: email\nname: mail", `<input type="email" name="mail">`},
		{"buttonInput", "label: Button", `<input type="button" value="Button">`},
		{"textarea", "name: test\nvalue: value<>\nattrs: {class: t}", `<textarea class="t" name="test">value&lt;&gt;</textarea>`},
		{"ul", "items: [1, abc, <>]", "<ul>\n<li>1</li>\n<li>abc</li>\n<li>&lt;&gt;</li>\n</ul>"},
		{"ol", "items: []\nattrs: {class: test}", `<ol class="test"></ol>`},
		{"dropDownList", "name: pick\nitems: {a: A}\nselection: a",
			"<select name=\"pick\">\n<option value=\"a\" selected>A</option>\n</select>"},
	}
	for _, tt := range tests {
		t.Run(tt.builder+"/"+tt.want, func(t *testing.T) {
			doc, err := DecodeAttrs([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			got, err := RenderTag(tt.builder, doc, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("RenderTag(%s) =\n%s\nwant\n%s", tt.builder, got, tt.want)
			}
		})
	}
}

func TestRenderTag_Renderer(t *testing.T) {
	doc, err := DecodeAttrs([]byte("name: video\nattrs: {autoplay: true, ng: {if: x}}"))
	if err != nil {
		t.Fatal(err)
	}
	r := html.NewRenderer(html.RendererConfig{BooleanAttributes: []string{"autoplay"}, DataAttributes: []string{"ng"}})
	got, err := RenderTag("tag", doc, r)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<video autoplay ng-if="x"></video>`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRenderTag_Unknown(t *testing.T) {
	_, err := RenderTag("marquee", nil, nil)
	if !errors.Is(err, ErrUnknownBuilder) {
		t.Fatalf("error = %v, want ErrUnknownBuilder", err)
	}
	var me *markuperrors.MarkupError
	if !errors.As(err, &me) || me.Input != "marquee" || !strings.Contains(me.Suggestion, "dropDownList") {
		t.Errorf("error = %+v", me)
	}
}

func TestTagBuilders(t *testing.T) {
	names := TagBuilders()
	if !slices.IsSorted(names) {
		t.Errorf("TagBuilders() not sorted: %v", names)
	}
	for _, want := range []string{"a", "checkboxList", "tag", "textarea", "ul"} {
		if !slices.Contains(names, want) {
			t.Errorf("TagBuilders() missing %q", want)
		}
	}
}

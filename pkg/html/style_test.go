package html

import "testing"

func TestCSSStyleFromMap(t *testing.T) {
	got, ok := CSSStyleFromMap(NewAttrs("width", "100px", "height", "200px"))
	if !ok || got != "width: 100px; height: 200px;" {
		t.Errorf("CSSStyleFromMap = %q, %v", got, ok)
	}
	if _, ok := CSSStyleFromMap(Attrs{}); ok {
		t.Error("empty map should give no style")
	}
	if _, ok := CSSStyleFromMap(NewAttrs("color", nil)); ok {
		t.Error("null values should be skipped")
	}
}

func TestCSSStyleToMap(t *testing.T) {
	got := CSSStyleToMap("width: 100px; height: 200px;")
	if want := NewAttrs("width", "100px", "height", "200px"); !got.Equal(want) {
		t.Errorf("CSSStyleToMap = %v, want %v", got, want)
	}
	if got := CSSStyleToMap("  "); len(got) != 0 {
		t.Errorf("blank style = %v", got)
	}
	if got := CSSStyleToMap("junk; color:red"); !got.Equal(NewAttrs("color", "red")) {
		t.Errorf("CSSStyleToMap = %v", got)
	}
	if got := CSSStyleToMap("background: url(a:b)"); got.Value("background").String() != "url(a:b)" {
		t.Errorf("value with colon = %v", got)
	}
}

func TestAddCSSStyle(t *testing.T) {
	tests := []struct {
		name      string
		attrs     Attrs
		style     any
		overwrite bool
		want      string
	}{
		{"string overwrite", NewAttrs("style", "width: 100px; height: 200px;"), "width: 110px; color: red;", true, "width: 110px; height: 200px; color: red;"},
		{"map overwrite", NewAttrs("style", "width: 100px; height: 200px;"), NewAttrs("width", "110px", "color", "red"), true, "width: 110px; height: 200px; color: red;"},
		{"keep existing", NewAttrs("style", "width: 100px; height: 200px;"), "width: 110px; color: red;", false, "width: 100px; height: 200px; color: red;"},
		{"no style", Attrs{}, "width: 110px; color: red;", true, "width: 110px; color: red;"},
		{"no style keep", Attrs{}, "width: 110px; color: red;", false, "width: 110px; color: red;"},
		{"map style", Attrs{{Key: "style", Value: Map(NewAttrs("width", "100px"))}}, NewAttrs("color", "red"), false, "width: 100px; color: red;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.attrs.Clone()
			AddCSSStyle(&attrs, tt.style, tt.overwrite)
			if got := attrs.Value("style"); !got.Equal(String(tt.want)) {
				t.Errorf("style = %v, want %q", got, tt.want)
			}
		})
	}

	attrs := Attrs{}
	AddCSSStyle(&attrs, "", true)
	if v, ok := attrs.Get("style"); !ok || !v.IsNull() {
		t.Errorf("adding nothing = %v, %v; want explicit null", v, ok)
	}
}

func TestRemoveCSSStyle(t *testing.T) {
	attrs := NewAttrs("style", "width: 110px; height: 200px; color: red;")
	RemoveCSSStyle(&attrs, "width")
	if got := attrs.Value("style"); !got.Equal(String("height: 200px; color: red;")) {
		t.Fatalf("style = %v", got)
	}
	RemoveCSSStyle(&attrs, "height")
	if got := attrs.Value("style"); !got.Equal(String("color: red;")) {
		t.Fatalf("style = %v", got)
	}
	RemoveCSSStyle(&attrs, "color", "background")
	if v, ok := attrs.Get("style"); !ok || !v.IsNull() {
		t.Fatalf("style = %v, %v; want explicit null", v, ok)
	}

	empty := Attrs{}
	RemoveCSSStyle(&empty, "color", "background")
	if empty.Has("style") {
		t.Error("removing from no style must not create one")
	}

	structured := Attrs{{Key: "style", Value: Map(NewAttrs("color", "red", "width", "100px"))}}
	RemoveCSSStyle(&structured, "color")
	if got := structured.Value("style"); !got.Equal(String("width: 100px;")) {
		t.Errorf("style = %v", got)
	}
}

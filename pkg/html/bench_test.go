package html

import (
	"fmt"
	"strconv"
	"testing"
)

func BenchmarkRenderAttributes(b *testing.B) {
	attrs := NewAttrs(
		"id", "main",
		"class", []string{"card", "card-primary"},
		"style", map[string]any{"color": "red", "width": "100px"},
		"data", map[string]any{"id": 7, "tags": []string{"a", "b"}},
		"disabled", true,
		"title", `Say "hi" & <wave>`,
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RenderTagAttributes(attrs)
	}
}

func BenchmarkEncode(b *testing.B) {
	text := `<a href="/x?a=1&b=2">It's here</a> ` + "\xff"
	for i := 0; i < b.N; i++ {
		Encode(text)
	}
}

func BenchmarkAddCSSClass(b *testing.B) {
	for i := 0; i < b.N; i++ {
		attrs := NewAttrs("class", "btn btn-default")
		AddCSSClass(&attrs, "btn-primary active btn")
		RemoveCSSClass(&attrs, "btn-default")
	}
}

func BenchmarkRenderSelectOptionsLarge(b *testing.B) {
	// 20 groups of 50 options each
	var items Attrs
	for g := 0; g < 20; g++ {
		var group Attrs
		for o := 0; o < 50; o++ {
			key := strconv.Itoa(g*50 + o)
			group.Set(key, String(fmt.Sprintf("Option %d", g*50+o)))
		}
		items.Set(fmt.Sprintf("Group %d", g), Map(group))
	}
	selection := SelectValues("10", "510", "999")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RenderSelectOptions(selection, items, SelectConfig{Prompt: &Prompt{Text: "Pick one"}})
	}
}

func BenchmarkCheckboxList(b *testing.B) {
	var items Attrs
	for i := 0; i < 100; i++ {
		items.Set(strconv.Itoa(i), String(fmt.Sprintf("Item %d", i)))
	}
	for i := 0; i < b.N; i++ {
		CheckboxList("tags", SelectValues(1, 50), items, nil, ListConfig{})
	}
}

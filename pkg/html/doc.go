// Package html builds HTML markup from ordered attribute maps.
//
// Attributes are held in Attrs, an ordered list of key/Value pairs. A Value
// is null, a bool, a string, a number, a list or a nested Attrs map, so the
// dynamic attribute shapes found in templates stay typed:
//
//	attrs := html.NewAttrs(
//		"class", []string{"btn", "btn-primary"},
//		"data", html.NewAttrs("id", 7, "tags", []string{"a"}),
//		"disabled", true,
//	)
//	html.Tag("button", "Save", attrs)
//	// <button class="btn btn-primary" data-id="7" data-tags='["a"]' disabled>Save</button>
//
// Rendering rules live in a Renderer. The package level functions use the
// default renderer; NewRenderer builds one with other boolean attributes or
// nested prefixes.
//
// AddCSSClass, RemoveCSSClass, AddCSSStyle and RemoveCSSStyle merge class and
// style values in place. RenderSelectOptions renders option trees for
// DropDownList and ListBox.
//
// The Active* helpers bind inputs to a record (see package attrpath) and
// derive names, ids, values, labels and limits from it. Error and
// ErrorSummary render validation errors of an ErrorReporter.
package html

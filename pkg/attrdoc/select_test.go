package attrdoc

import (
	"strings"
	"testing"
)

func TestDecodeSelectDocument(t *testing.T) {
	doc := `
selection: [value111, value1]
prompt: please select<>
encodeSpaces: true
items:
  value1: label1
  group1:
    value11: label11
    group11:
      value111: label111
    group12: {}
  value2: label2
  group2: {}
options:
  value111: {class: option}
groups:
  group12: {class: group}
`
	sd, err := DecodeSelectDocument([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`<option value="">please&nbsp;select&lt;&gt;</option>`,
		`<option value="value1" selected>label1</option>`,
		`<optgroup label="group1">`,
		`<option value="value11">label11</option>`,
		`<optgroup label="group11">`,
		`<option class="option" value="value111" selected>label111</option>`,
		`</optgroup>`,
		`<optgroup class="group" label="group12">`,
		``,
		`</optgroup>`,
		`</optgroup>`,
		`<option value="value2">label2</option>`,
		`<optgroup label="group2">`,
		``,
		`</optgroup>`,
	}, "\n")
	if got := sd.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeSelectDocument_Options(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "prompt mapping",
			doc:  "prompt: {text: None, options: {value: '-1'}}\nitems: {a: A}\nselection: a",
			want: "<option value=\"-1\">None</option>\n<option value=\"a\" selected>A</option>",
		},
		{
			name: "raw labels",
			doc:  "encode: false\nitems: {a: <b>A</b>}",
			want: `<option value="a"><b>A</b></option>`,
		},
		{
			name: "numeric selection",
			doc:  "selection: 0\nseparator: '|'\nitems: {'0': zero, '1': one}",
			want: `<option value="0" selected>zero</option>|<option value="1">one</option>`,
		},
		{
			name: "items list",
			doc:  "selection: 1\nitems: [a, b]",
			want: "<option value=\"0\">a</option>\n<option value=\"1\" selected>b</option>",
		},
		{
			name: "no items",
			doc:  "selection: [a]",
			want: ``,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd, err := DecodeSelectDocument([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			if got := sd.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeSelectDocument_Attrs(t *testing.T) {
	sd, err := DecodeSelectDocument([]byte("name: pick\nattrs: {id: p, multiple: true}"))
	if err != nil {
		t.Fatal(err)
	}
	if sd.Config.Name != "pick" || sd.Attrs.Value("id").String() != "p" || !sd.Attrs.Value("multiple").Bool() {
		t.Errorf("decoded = %+v", sd)
	}
}

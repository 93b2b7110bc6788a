package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/markup/pkg/attrpath"
)

type signup struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
	Email       string `form:"mail" validate:"email" label:"E-mail"`
	FirstName   string `hint:"As on your passport"`
	Age         string `validate:"int"`
	Tags        []string
	Secret      string `form:"-"`
	internal    string
}

func TestNew(t *testing.T) {
	s, err := New(&signup{})
	if err != nil {
		t.Fatal(err)
	}
	if s.FormName() != "signup" {
		t.Errorf("FormName() = %q", s.FormName())
	}
	want := []string{"name", "description", "mail", "firstName", "age", "tags"}
	if got := s.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}

	if s := MustNew(&signup{}, WithFormName("")); s.FormName() != "" {
		t.Errorf("WithFormName(\"\") gave %q", s.FormName())
	}

	for _, bad := range []any{nil, signup{}, (*signup)(nil), new(int)} {
		if _, err := New(bad); err == nil {
			t.Errorf("New(%T) expected error", bad)
		}
	}

	type broken struct {
		A string `validate:"max=x"`
	}
	if _, err := New(&broken{}); err == nil {
		t.Error("New with a bad rule expected error")
	}
	type unknown struct {
		A string `validate:"shiny"`
	}
	if _, err := New(&unknown{}); err == nil {
		t.Error("New with an unknown rule expected error")
	}
}

func TestStruct_Get(t *testing.T) {
	v := &signup{Name: "ann", Tags: []string{"a"}}
	s := MustNew(v)

	if got, ok := s.Get("name"); !ok || got != "ann" {
		t.Errorf("Get(name) = %v, %v", got, ok)
	}
	v.Name = "bob"
	if got, _ := s.Get("name"); got != "bob" {
		t.Errorf("Get after update = %v", got)
	}
	for _, name := range []string{"Secret", "secret", "internal", "Name"} {
		if _, ok := s.Get(name); ok {
			t.Errorf("Get(%q) should miss", name)
		}
	}

	got, err := attrpath.Value(s, "tags[0]")
	if err != nil || got != "a" {
		t.Errorf("attrpath.Value(tags[0]) = %v, %v", got, err)
	}
}

func TestStruct_Labels(t *testing.T) {
	s := MustNew(&signup{})
	tests := map[string]string{
		"name":      "Name",
		"mail":      "E-mail",
		"firstName": "First Name",
		"unknown":   "Unknown",
	}
	for name, want := range tests {
		if got := s.AttributeLabel(name); got != want {
			t.Errorf("AttributeLabel(%q) = %q, want %q", name, got, want)
		}
	}
	if got := s.AttributeHint("firstName"); got != "As on your passport" {
		t.Errorf("AttributeHint = %q", got)
	}
	if got := s.AttributeHint("name"); got != "" {
		t.Errorf("AttributeHint(name) = %q", got)
	}
}

func TestGenerateLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "Name"},
		{"firstName", "First Name"},
		{"first_name", "First Name"},
		{"post.title", "Post Title"},
		{"line2Total", "Line2 Total"},
		{"URL", "URL"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := GenerateLabel(tt.in); got != tt.want {
				t.Errorf("GenerateLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLowerFirstWord(t *testing.T) {
	tests := map[string]string{
		"Name":    "name",
		"ID":      "id",
		"URLPath": "urlPath",
		"FirstID": "firstID",
		"x":       "x",
	}
	for in, want := range tests {
		if got := lowerFirstWord(in); got != want {
			t.Errorf("lowerFirstWord(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStruct_MaxLength(t *testing.T) {
	s := MustNew(&signup{})
	if n, ok := s.MaxLength("name"); !ok || n != 100 {
		t.Errorf("MaxLength(name) = %d, %v", n, ok)
	}
	if n, ok := s.MaxLength("description"); !ok || n != 500 {
		t.Errorf("MaxLength(description) = %d, %v", n, ok)
	}
	if _, ok := s.MaxLength("mail"); ok {
		t.Error("MaxLength(mail) should be unset")
	}
}

func TestStruct_Validate(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		s := MustNew(&signup{})
		if s.Validate() {
			t.Fatal("Validate() = true")
		}
		if got := s.FirstError("name"); got != "Name cannot be blank." {
			t.Errorf("FirstError(name) = %q", got)
		}
		if got := s.ErrorAttributes(); !reflect.DeepEqual(got, []string{"name"}) {
			t.Errorf("ErrorAttributes() = %v", got)
		}
	})

	t.Run("too long", func(t *testing.T) {
		s := MustNew(&signup{Name: strings.Repeat("long_string", 60)})
		s.Validate()
		if got := s.FirstError("name"); got != "Name should contain at most 100 characters." {
			t.Errorf("FirstError(name) = %q", got)
		}
	})

	t.Run("keeps earlier errors", func(t *testing.T) {
		s := MustNew(&signup{Name: strings.Repeat("x", 101), Email: "nope", Age: "4x"})
		s.AddError("name", "custom")
		s.Validate()
		want := []string{"custom", "Name should contain at most 100 characters."}
		if got := s.Errors("name"); !reflect.DeepEqual(got, want) {
			t.Errorf("Errors(name) = %v, want %v", got, want)
		}
		if got := s.FirstError("mail"); got != "E-mail is not a valid email address." {
			t.Errorf("FirstError(mail) = %q", got)
		}
		if got := s.FirstError("age"); got != "Age must be an integer." {
			t.Errorf("FirstError(age) = %q", got)
		}
		if got := s.ErrorAttributes(); !reflect.DeepEqual(got, []string{"name", "mail", "age"}) {
			t.Errorf("ErrorAttributes() = %v", got)
		}
	})

	t.Run("valid", func(t *testing.T) {
		s := MustNew(&signup{Name: "ann", Email: "ann@example.com", Age: "42"})
		if !s.Validate() {
			t.Errorf("Validate() = false: %v", s.ErrorAttributes())
		}
	})

	t.Run("clear", func(t *testing.T) {
		s := MustNew(&signup{})
		s.AddError("name", "x")
		s.ClearErrors()
		if s.HasErrors() || s.FirstError("name") != "" {
			t.Error("ClearErrors left errors behind")
		}
	})
}

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value any
		ok    bool
	}{
		{"required nil", Required(""), nil, false},
		{"required blank", Required(""), "  ", false},
		{"required empty slice", Required(""), []string{}, false},
		{"required zero int", Required(""), 0, true},
		{"max ok", MaxLength(3, ""), "abc", true},
		{"max runes", MaxLength(3, ""), "äöü", true},
		{"max long", MaxLength(3, ""), "abcd", false},
		{"max empty", MaxLength(3, ""), "", true},
		{"min short", MinLength(3, ""), "ab", false},
		{"pattern", Pattern(`^\d+$`, ""), "12", true},
		{"pattern miss", Pattern(`^\d+$`, ""), "1a", false},
		{"integer int", Integer(""), 3, true},
		{"integer float", Integer(""), 3.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.value)
			if (err == nil) != tt.ok {
				t.Errorf("Validate(%v) = %v, want ok=%v", tt.value, err, tt.ok)
			}
		})
	}

	if got := MaxLength(1, "").Validate("ab").Error(); got != "{attribute} should contain at most 1 character." {
		t.Errorf("singular message = %q", got)
	}
}

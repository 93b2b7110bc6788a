package model

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attrpath"
)

// Struct adapts a pointer to a struct into a form record. Exported fields
// become attributes named by their form tag, or by the field name with a
// lower case first word. Tags:
//
//	form:"title"                 attribute name, "-" to skip the field
//	label:"Post title"           attribute label
//	hint:"Shown on the front"    attribute hint
//	validate:"required,max=100"  validation rules
//
// A Struct is not safe for concurrent use.
type Struct struct {
	formName string
	value    reflect.Value
	fields   []field
	byName   map[string]int

	errors map[string][]string
	order  []string
}

type field struct {
	name   string
	index  int
	label  string
	hint   string
	rules  []Rule
	maxLen int
}

// Option configures a Struct.
type Option func(*Struct)

// WithFormName overrides the form name, which defaults to the struct type
// name. An empty form name yields bare input names.
func WithFormName(name string) Option {
	return func(s *Struct) { s.formName = name }
}

// New wraps ptr, which must be a non-nil pointer to a struct.
func New(ptr any, opts ...Option) (*Struct, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, errors.Newf(errors.CategoryForm, "model must be a non-nil pointer to a struct, got %T", ptr)
	}
	rv = rv.Elem()
	s := &Struct{
		formName: rv.Type().Name(),
		value:    rv,
		byName:   map[string]int{},
		errors:   map[string][]string{},
	}
	for _, opt := range opts {
		opt(s)
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = lowerFirstWord(f.Name)
		}
		rules, maxLen, err := parseRules(f.Tag.Get("validate"))
		if err != nil {
			return nil, errors.Newf(errors.CategoryForm, "field %s: %v", f.Name, err).Wrap(err)
		}
		s.byName[name] = len(s.fields)
		s.fields = append(s.fields, field{
			name:   name,
			index:  i,
			label:  f.Tag.Get("label"),
			hint:   f.Tag.Get("hint"),
			rules:  rules,
			maxLen: maxLen,
		})
	}
	return s, nil
}

// MustNew is New that panics on error.
func MustNew(ptr any, opts ...Option) *Struct {
	s, err := New(ptr, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

var _ attrpath.Record = (*Struct)(nil)

// FormName returns the name input names are nested under.
func (s *Struct) FormName() string {
	return s.formName
}

// Attributes lists the attribute names in field order.
func (s *Struct) Attributes() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Get returns the value of the named attribute.
func (s *Struct) Get(name string) (any, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	fv := s.value.Field(s.fields[i].index)
	if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
		return nil, true
	}
	return fv.Interface(), true
}

// AttributeLabel returns the label tag of name, or a label generated from
// the name: "firstName" becomes "First Name".
func (s *Struct) AttributeLabel(name string) string {
	if i, ok := s.byName[name]; ok && s.fields[i].label != "" {
		return s.fields[i].label
	}
	return GenerateLabel(name)
}

// AttributeHint returns the hint tag of name.
func (s *Struct) AttributeHint(name string) string {
	if i, ok := s.byName[name]; ok {
		return s.fields[i].hint
	}
	return ""
}

// MaxLength reports the max length rule of name.
func (s *Struct) MaxLength(name string) (int, bool) {
	i, ok := s.byName[name]
	if !ok || s.fields[i].maxLen == 0 {
		return 0, false
	}
	return s.fields[i].maxLen, true
}

// Validate runs the rules of every attribute and records failures after
// the errors already present. It reports whether the model has no errors.
func (s *Struct) Validate() bool {
	for _, f := range s.fields {
		value, _ := s.Get(f.name)
		for _, rule := range f.rules {
			if err := rule.Validate(value); err != nil {
				msg := err.Error()
				if verr, ok := err.(*ValidationError); ok {
					msg = verr.Message
				}
				s.AddError(f.name, strings.ReplaceAll(msg, "{attribute}", s.AttributeLabel(f.name)))
			}
		}
	}
	return !s.HasErrors()
}

// AddError records msg against the named attribute.
func (s *Struct) AddError(name, msg string) {
	if _, ok := s.errors[name]; !ok {
		s.order = append(s.order, name)
	}
	s.errors[name] = append(s.errors[name], msg)
}

// ClearErrors drops every recorded error.
func (s *Struct) ClearErrors() {
	s.errors = map[string][]string{}
	s.order = nil
}

// HasErrors reports whether any error is recorded.
func (s *Struct) HasErrors() bool {
	return len(s.order) > 0
}

// ErrorAttributes lists the attributes with errors in the order their
// first error was added.
func (s *Struct) ErrorAttributes() []string {
	return append([]string(nil), s.order...)
}

// Errors returns the errors of the named attribute.
func (s *Struct) Errors(name string) []string {
	return append([]string(nil), s.errors[name]...)
}

// FirstError returns the first error of the named attribute, or "".
func (s *Struct) FirstError(name string) string {
	if errs := s.errors[name]; len(errs) > 0 {
		return errs[0]
	}
	return ""
}

// GenerateLabel turns an attribute name into words: camel case humps,
// underscores, dashes and dots separate words, and each word is title
// cased.
func GenerateLabel(name string) string {
	var b strings.Builder
	var prev rune
	for i, r := range name {
		if r == '_' || r == '-' || r == '.' {
			b.WriteByte(' ')
			prev = ' '
			continue
		}
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	words := strings.Join(strings.Fields(b.String()), " ")
	return cases.Title(language.English, cases.NoLower).String(words)
}

// lowerFirstWord lowers the leading upper case run of a Go identifier:
// "Name" gives "name", "ID" gives "id" and "URLPath" gives "urlPath".
func lowerFirstWord(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

package attrpath

import (
	"regexp"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
)

var (
	// ErrInvalidPath reports an expression that is not [prefix]name[suffix]
	// with a name of letters, marks, digits, underscores and dots.
	ErrInvalidPath = errors.New("M001")

	// ErrInvalidAttribute reports an expression naming an attribute the
	// record does not have.
	ErrInvalidAttribute = errors.New("M002")

	// ErrInvalidFormName reports a tabular expression used with an empty
	// form name.
	ErrInvalidFormName = errors.New("M003")
)

var attributeRegex = regexp.MustCompile(`^(|.*\])([\p{L}\p{M}\p{N}_.]+)(\[.*|)$`)

// Path is a parsed attribute expression such as "[0]author.name[1]".
type Path struct {
	// Prefix is the leading bracketed part, "[0]" above.
	Prefix string

	// Name is the attribute name with dots kept, "author.name" above.
	Name string

	// Suffix is the trailing bracketed part, "[1]" above.
	Suffix string
}

// Parse splits expr into prefix, name and suffix. Only the outermost
// bracket groups are stripped, so "[0]a.[0]" has the name "a.".
func Parse(expr string) (Path, error) {
	m := attributeRegex.FindStringSubmatch(expr)
	if m == nil {
		return Path{}, ErrInvalidPath.WithInput(expr)
	}
	return Path{Prefix: m[1], Name: m[2], Suffix: m[3]}, nil
}

// MustParse is Parse that panics on error.
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String reassembles the expression.
func (p Path) String() string {
	return p.Prefix + p.Name + p.Suffix
}

// Tabular reports whether the path carries a leading index.
func (p Path) Tabular() bool {
	return p.Prefix != ""
}

// Multiple reports whether the path ends in "[]", marking a multi-value
// input.
func (p Path) Multiple() bool {
	return strings.HasSuffix(p.Suffix, "[]")
}

// Indices returns the keys of the suffix, "[a][0]" giving ["a", "0"].
func (p Path) Indices() []string {
	s := strings.TrimRight(strings.TrimLeft(p.Suffix, "["), "]")
	if s == "" {
		return nil
	}
	return strings.Split(s, "][")
}

// AttributeName returns the attribute name of expr.
func AttributeName(expr string) (string, error) {
	p, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// InputName builds the input name of expr inside formName:
//
//	InputName("Post", "title")        // Post[title]
//	InputName("Post", "[0]title")     // Post[0][title]
//	InputName("Post", "tags[]")       // Post[tags][]
//	InputName("", "title[1]")         // title[1]
//
// A tabular expression needs a form name.
func InputName(formName, expr string) (string, error) {
	p, err := Parse(expr)
	if err != nil {
		return "", err
	}
	if formName == "" {
		if p.Prefix == "" {
			return p.Name + p.Suffix, nil
		}
		return "", ErrInvalidFormName.WithInput(expr)
	}
	return formName + p.Prefix + "[" + p.Name + "]" + p.Suffix, nil
}

// idReplacements are applied one after another, so "[]" is gone before
// "][" is considered.
var idReplacements = []struct{ old, new string }{
	{"[]", ""},
	{"][", "-"},
	{"[", "-"},
	{"]", ""},
	{" ", "-"},
	{".", "-"},
}

// InputID derives an element id from the input name of expr:
// "Post[0][title]" becomes "post-0-title".
func InputID(formName, expr string) (string, error) {
	name, err := InputName(formName, expr)
	if err != nil {
		return "", err
	}
	id := strings.ToLower(name)
	for _, r := range idReplacements {
		id = strings.ReplaceAll(id, r.old, r.new)
	}
	return id, nil
}

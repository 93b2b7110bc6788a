package attrdoc

import (
	"github.com/vango-dev/markup/pkg/attrpath"
	"github.com/vango-dev/markup/pkg/html"
)

// Record exposes a decoded mapping as an attribute path record. Nested
// values are handed out as plain Go data, so dotted names and indices walk
// them like maps and slices.
type Record struct {
	Name   string
	Fields html.Attrs
}

var _ attrpath.Record = Record{}

// FormName returns the record name.
func (r Record) FormName() string { return r.Name }

// Get returns the named top level field.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.Fields.Get(name)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

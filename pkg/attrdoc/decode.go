package attrdoc

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/html"
)

var (
	// ErrDecode reports a document that is not valid YAML or JSON.
	ErrDecode = errors.New("M010")

	// ErrUnsupportedNode reports an anchor, alias, merge key or custom tag.
	ErrUnsupportedNode = errors.New("M011")
)

// decoder converts yaml nodes into values. file is only used for error
// locations.
type decoder struct {
	file string
}

// Decode parses a YAML or JSON document into a Value. Mapping order is
// kept. An empty document decodes to null.
func Decode(data []byte) (html.Value, error) {
	return decoder{}.decode(data)
}

// DecodeAttrs parses a document whose root is a mapping.
func DecodeAttrs(data []byte) (html.Attrs, error) {
	return decoder{}.decodeAttrs(data)
}

// DecodeFile reads and decodes the attribute mapping in path. Errors carry
// the file location and surrounding lines.
func DecodeFile(path string) (html.Attrs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrDecode.WithInput(path).Wrap(err)
	}
	return decoder{file: path}.decodeAttrs(data)
}

func (d decoder) decodeAttrs(data []byte) (html.Attrs, error) {
	v, err := d.decode(data)
	if err != nil {
		return nil, err
	}
	switch v.Kind() {
	case html.KindNull:
		return html.Attrs{}, nil
	case html.KindMap:
		return v.Map(), nil
	}
	return nil, ErrDecode.WithInput(v.Kind().String()).
		WithDetail("The document root must be a mapping of attribute names to values.")
}

func (d decoder) decode(data []byte) (html.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		e := ErrDecode.WithInput(d.file).Wrap(err)
		e.Detail = err.Error()
		return html.Value{}, e
	}
	if root.Kind == 0 {
		return html.Null(), nil
	}
	return d.node(&root)
}

func (d decoder) node(n *yaml.Node) (html.Value, error) {
	if n.Anchor != "" {
		return html.Value{}, d.unsupported(n, "anchor &"+n.Anchor)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return html.Null(), nil
		}
		return d.node(n.Content[0])
	case yaml.MappingNode:
		if n.ShortTag() != "!!map" {
			return html.Value{}, d.unsupported(n, n.Tag)
		}
		return d.mapping(n)
	case yaml.SequenceNode:
		if n.ShortTag() != "!!seq" {
			return html.Value{}, d.unsupported(n, n.Tag)
		}
		list := make([]html.Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := d.node(item)
			if err != nil {
				return html.Value{}, err
			}
			list = append(list, v)
		}
		return html.List(list...), nil
	case yaml.ScalarNode:
		return d.scalar(n)
	}
	return html.Value{}, d.unsupported(n, "alias")
}

func (d decoder) mapping(n *yaml.Node) (html.Value, error) {
	m := make(html.Attrs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return html.Value{}, d.unsupported(key, "non-scalar key")
		}
		if key.Tag == "!!merge" {
			return html.Value{}, d.unsupported(key, "merge key")
		}
		v, err := d.node(value)
		if err != nil {
			return html.Value{}, err
		}
		m.Set(key.Value, v)
	}
	return html.Map(m), nil
}

func (d decoder) scalar(n *yaml.Node) (html.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return html.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return html.Value{}, d.unsupported(n, n.Value)
		}
		return html.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return html.String(n.Value), nil
		}
		return html.Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			var fv float64
			if err := n.Decode(&fv); err != nil {
				return html.String(n.Value), nil
			}
			f = fv
		}
		return html.Float(f), nil
	case "!!str", "!!timestamp", "!!binary":
		return html.String(n.Value), nil
	}
	return html.Value{}, d.unsupported(n, n.Tag)
}

func (d decoder) unsupported(n *yaml.Node, what string) error {
	return ErrUnsupportedNode.WithInput(what).WithLocation(d.file, n.Line, n.Column)
}

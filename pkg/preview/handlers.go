package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/markup/pkg/attrdoc"
	"github.com/vango-dev/markup/pkg/attrpath"
	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/middleware"
)

// handleAttributes renders an attribute document as an attribute string.
func (s *Server) handleAttributes(w http.ResponseWriter, r *http.Request) {
	attrs, ok := s.decodeAttrs(w, r)
	if !ok {
		return
	}
	if span := middleware.SpanFromContext(r.Context()); span != nil {
		span.SetAttributes(attribute.Int("markup.attributes", len(attrs)))
	}
	s.render(w, "attributes", s.renderer.Attributes(attrs))
}

// handleTag runs the tag builder named in the path on a tag document.
func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, ok := s.decodeAttrs(w, r)
	if !ok {
		return
	}
	if span := middleware.SpanFromContext(r.Context()); span != nil {
		span.SetAttributes(attribute.String("markup.builder", name))
	}
	out, err := attrdoc.RenderTag(name, doc, s.renderer)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, "tag", out)
}

// handleOptions renders the option lines of a select document.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	root, ok := s.decodeAttrs(w, r)
	if !ok {
		return
	}
	s.render(w, "options", attrdoc.SelectDocumentOf(root).Render())
}

// pathResponse describes a resolved attribute expression.
type pathResponse struct {
	Expr      string `json:"expr"`
	Prefix    string `json:"prefix"`
	Attribute string `json:"attribute"`
	Suffix    string `json:"suffix"`
	Tabular   bool   `json:"tabular"`
	Multiple  bool   `json:"multiple"`
	InputName string `json:"inputName"`
	InputID   string `json:"inputId"`
}

// handlePaths resolves ?expr= against the form name in ?form=.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expr, form := q.Get("expr"), q.Get("form")

	path, err := attrpath.Parse(expr)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name, err := attrpath.InputName(form, expr)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	id, err := attrpath.InputID(form, expr)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{
		Expr:      expr,
		Prefix:    path.Prefix,
		Attribute: path.Name,
		Suffix:    path.Suffix,
		Tabular:   path.Tabular(),
		Multiple:  path.Multiple(),
		InputName: name,
		InputID:   id,
	})
}

// handleEncode encodes the raw request body. ?doubleEncode=false keeps
// existing entities.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := html.Encode(string(body))
	if r.URL.Query().Get("doubleEncode") == "false" {
		out = html.EncodeKeepEntities(string(body))
	}
	s.render(w, "encode", out)
}

// handleDecode decodes the special characters of the raw request body.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, "decode", html.Decode(string(body)))
}

func (s *Server) decodeAttrs(w http.ResponseWriter, r *http.Request) (html.Attrs, bool) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	attrs, err := attrdoc.DecodeAttrs(body)
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return attrs, true
}

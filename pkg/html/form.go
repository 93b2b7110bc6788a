package html

import (
	"net/url"
	"strings"
)

// CSRFProvider supplies the anti-forgery token a form submits.
type CSRFProvider interface {
	CSRFParam() string
	CSRFToken() string
}

// FormContext carries the request data BeginForm needs. It is passed
// explicitly; nothing is read from global state.
type FormContext struct {
	// CurrentURL is used when the form action is empty.
	CurrentURL string

	// CSRF injects a token input into post forms when set.
	CSRF CSRFProvider

	// MethodParam names the hidden input that carries an overridden HTTP
	// method. Defaults to "_method".
	MethodParam string
}

// DefaultMethodParam is the method override input name.
const DefaultMethodParam = "_method"

// StaticCSRF is a CSRFProvider with a fixed parameter and token.
type StaticCSRF struct {
	Param string
	Token string
}

func (s StaticCSRF) CSRFParam() string { return s.Param }
func (s StaticCSRF) CSRFToken() string { return s.Token }

// BeginForm renders an opening <form> tag followed by its hidden inputs.
//
// Methods other than GET and POST are sent as post with a hidden method
// override input. Post forms get a CSRF input when ctx.CSRF is set, unless
// attrs holds "csrf: false". For GET forms the query string of action is
// moved into hidden inputs, since browsers drop it on submit.
func BeginForm(ctx FormContext, action, method string, attrs Attrs) string {
	attrs = attrs.Clone()
	if action == "" {
		action = ctx.CurrentURL
	}
	if method == "" {
		method = "post"
	}
	if ctx.MethodParam == "" {
		ctx.MethodParam = DefaultMethodParam
	}

	var hidden []string
	if !strings.EqualFold(method, "get") && !strings.EqualFold(method, "post") {
		hidden = append(hidden, HiddenInput(ctx.MethodParam, method, nil))
		method = "post"
	}

	csrf, ok := attrs.Remove("csrf")
	if (!ok || csrf.IsNull() || csrf.Truthy()) && ctx.CSRF != nil && strings.EqualFold(method, "post") {
		hidden = append(hidden, HiddenInput(ctx.CSRF.CSRFParam(), ctx.CSRF.CSRFToken(), nil))
	}

	if strings.EqualFold(method, "get") {
		if base, query, found := strings.Cut(action, "?"); found {
			for _, pair := range strings.Split(query, "&") {
				key, value, _ := strings.Cut(pair, "=")
				hidden = append(hidden, HiddenInput(queryUnescape(key), queryUnescape(value), nil))
			}
			action = base
		}
	}

	attrs.Set("action", String(action))
	attrs.Set("method", String(method))
	form := BeginTag("form", attrs)
	if len(hidden) > 0 {
		form += "\n" + strings.Join(hidden, "\n")
	}
	return form
}

func queryUnescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// EndForm renders the closing form tag.
func EndForm() string {
	return "</form>"
}

package preview

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/markup/internal/config"
)

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, WithLogger(logger), WithRegistry(reg)), reg
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: body %q is not JSON: %v", method, target, rec.Body.String(), err)
	}
	return rec, out
}

func TestServer_Render(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   string
	}{
		{"attributes", http.MethodPost, "/v1/attributes", "id: x\nclass: [a, b]\ndata: {id: 1}", ` id="x" class="a b" data-id="1"`},
		{"attributes json", http.MethodPost, "/v1/attributes", `{"checked": true, "title": null}`, ` checked`},
		{"tag", http.MethodPost, "/v1/tags/a", "content: Home\nurl: /", `<a href="/">Home</a>`},
		{"options", http.MethodPost, "/v1/options", "items: {a: A, b: B}\nselection: b",
			"<option value=\"a\">A</option>\n<option value=\"b\" selected>B</option>"},
		{"encode", http.MethodPost, "/v1/encode", `a<b & "c"`, `a&lt;b &amp; &quot;c&quot;`},
		{"encode keep", http.MethodPost, "/v1/encode?doubleEncode=false", `&amp;<`, `&amp;&lt;`},
		{"decode", http.MethodPost, "/v1/decode", `&lt;b&gt;`, `<b>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := do(t, srv, tt.method, tt.target, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if got := out["html"]; got != tt.want {
				t.Errorf("html = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_Paths(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec, out := do(t, srv, http.MethodGet, "/v1/paths?expr=[0]tags[]&form=Post", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := map[string]any{
		"prefix":    "[0]",
		"attribute": "tags",
		"suffix":    "[]",
		"tabular":   true,
		"multiple":  true,
		"inputName": "Post[0][tags][]",
		"inputId":   "post-0-tags",
	}
	for key, value := range want {
		if out[key] != value {
			t.Errorf("%s = %v, want %v", key, out[key], value)
		}
	}
}

func TestServer_Errors(t *testing.T) {
	srv, reg := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		code   string
	}{
		{"invalid expression", http.MethodGet, "/v1/paths?expr=a+b", "", "M001"},
		{"tabular without form", http.MethodGet, "/v1/paths?expr=[0]a", "", "M003"},
		{"bad document", http.MethodPost, "/v1/attributes", "a: [1", "M010"},
		{"alias", http.MethodPost, "/v1/attributes", "a: &x 1\nb: *x", "M011"},
		{"unknown builder", http.MethodPost, "/v1/tags/marquee", "content: hi", "M012"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := do(t, srv, tt.method, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if out["code"] != tt.code {
				t.Errorf("code = %v, want %s", out["code"], tt.code)
			}
		})
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, f := range families {
		if f.GetName() == "markup_render_errors_total" {
			found = len(f.GetMetric()) == len(tests)
		}
	}
	if !found {
		t.Error("expected one render_errors_total series per error code")
	}
}

func TestServer_BodyLimit(t *testing.T) {
	cfg := config.New()
	cfg.Server.MaxBodyBytes = 8
	srv, _ := newTestServer(t, cfg)

	rec, _ := do(t, srv, http.MethodPost, "/v1/attributes", "class: [a, b, c, d]")
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	do(t, srv, http.MethodPost, "/v1/attributes", "id: x")

	rec, out := do(t, srv, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || out["status"] != "ok" {
		t.Errorf("healthz = %d %v", rec.Code, out)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		`markup_requests_total{route="/v1/attributes",status="200"} 1`,
		`markup_rendered_bytes_count{kind="attributes"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg, err := config.Parse([]byte("metrics: {enabled: false}"))
	if err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if _, out := do(t, srv, http.MethodPost, "/v1/tags/tag", "name: br"); out["html"] != "<br>" {
		t.Errorf("html = %v", out["html"])
	}
}

func TestServer_ConfiguredRenderer(t *testing.T) {
	cfg, err := config.Parse([]byte("renderer:\n  booleanAttributes: [autoplay]\n  dataAttributes: [hx]"))
	if err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, cfg)

	_, out := do(t, srv, http.MethodPost, "/v1/attributes", "autoplay: true\nhx: {get: /x}")
	if want := ` autoplay hx-get="/x"`; out["html"] != want {
		t.Errorf("html = %q, want %q", out["html"], want)
	}
}

func TestServer_Serve(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + ln.Addr().String() + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

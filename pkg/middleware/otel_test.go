package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordedSpan struct {
	noop.Span
	name   string
	attrs  map[attribute.Key]attribute.Value
	code   codes.Code
	ended  bool
	kind   trace.SpanKind
}

func (s *recordedSpan) IsRecording() bool { return true }

func (s *recordedSpan) SetName(name string) { s.name = name }

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.code = code }

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) End(...trace.SpanEndOption) { s.ended = true }

type recordingTracer struct {
	noop.Tracer
	mu    sync.Mutex
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordedSpan{name: name, attrs: map[attribute.Key]attribute.Value{}, kind: cfg.SpanKind()}
	span.SetAttributes(cfg.Attributes()...)
	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingProvider struct {
	noop.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer { return p.tracer }

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func tracedRouter(opts ...OTelOption) http.Handler {
	r := chi.NewRouter()
	r.Use(OpenTelemetry(opts...))
	r.Get("/paths", func(w http.ResponseWriter, r *http.Request) {
		if span := SpanFromContext(r.Context()); span != nil {
			span.SetAttributes(attribute.String("markup.expr", r.URL.Query().Get("expr")))
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/tags/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	return r
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		target   string
		wantName string
		status   int64
		code     codes.Code
	}{
		{"/paths?expr=a", "markup GET /paths", 200, codes.Ok},
		{"/tags/br", "markup GET /tags/{name}", 400, codes.Ok},
		{"/boom", "markup GET /boom", 500, codes.Error},
		{"/nowhere", "markup GET /nowhere", 404, codes.Ok},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			provider := newRecordingProvider()
			h := tracedRouter(WithTracerProvider(provider))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			spans := provider.tracer.spans
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1", len(spans))
			}
			span := spans[0]
			if span.name != tt.wantName {
				t.Errorf("name = %q, want %q", span.name, tt.wantName)
			}
			if span.kind != trace.SpanKindServer {
				t.Errorf("kind = %v, want server", span.kind)
			}
			if got := span.attrs["http.status_code"].AsInt64(); got != tt.status {
				t.Errorf("http.status_code = %d, want %d", got, tt.status)
			}
			if got := span.attrs["http.method"].AsString(); got != http.MethodGet {
				t.Errorf("http.method = %q", got)
			}
			if span.code != tt.code {
				t.Errorf("status code = %v, want %v", span.code, tt.code)
			}
			if !span.ended {
				t.Error("span not ended")
			}
		})
	}
}

func TestOpenTelemetry_HandlerAttributes(t *testing.T) {
	provider := newRecordingProvider()
	h := tracedRouter(
		WithTracerProvider(provider),
		WithTracerName("markup-test"),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("markup.form", r.URL.Query().Get("form"))}
		}),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/paths?expr=name&form=Post", nil))

	span := provider.tracer.spans[0]
	if got := span.attrs["markup.expr"].AsString(); got != "name" {
		t.Errorf("markup.expr = %q, want name", got)
	}
	if got := span.attrs["markup.form"].AsString(); got != "Post" {
		t.Errorf("markup.form = %q, want Post", got)
	}
	if got := span.attrs["http.route"].AsString(); got != "/paths" {
		t.Errorf("http.route = %q, want /paths", got)
	}
}

func TestOpenTelemetry_Filter(t *testing.T) {
	provider := newRecordingProvider()
	h := tracedRouter(
		WithTracerProvider(provider),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if n := len(provider.tracer.spans); n != 0 {
		t.Errorf("got %d spans for filtered request, want 0", n)
	}
}

func TestSpanFromContext(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("SpanFromContext(background) = %v, want nil", span)
	}

	_, span := noop.NewTracerProvider().Tracer("t").Start(context.Background(), "x")
	ctx := trace.ContextWithSpan(context.Background(), span)
	if got := SpanFromContext(ctx); got != nil {
		t.Errorf("SpanFromContext(noop) = %v, want nil", got)
	}

	provider := newRecordingProvider()
	ctx, _ = provider.tracer.Start(context.Background(), "y")
	if SpanFromContext(ctx) == nil {
		t.Error("SpanFromContext(recording) = nil")
	}
}

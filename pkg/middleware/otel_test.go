package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"
)

// recorder is a TracerProvider that keeps every span it starts.
type recorder struct {
	embedded.TracerProvider

	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *recorder) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p, name: name}
}

func (p *recorder) ended() []*recordedSpan {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*recordedSpan
	for _, s := range p.spans {
		if s.ended {
			out = append(out, s)
		}
	}
	return out
}

type recordingTracer struct {
	embedded.Tracer

	provider *recorder
	name     string
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordedSpan{
		tracer: t.name,
		name:   name,
		kind:   cfg.SpanKind(),
		attrs:  map[attribute.Key]attribute.Value{},
	}
	for _, kv := range cfg.Attributes() {
		span.attrs[kv.Key] = kv.Value
	}
	t.provider.mu.Lock()
	t.provider.spans = append(t.provider.spans, span)
	t.provider.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordedSpan struct {
	noop.Span

	tracer string
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordedSpan) IsRecording() bool                   { return !s.ended }
func (s *recordedSpan) SetName(name string)                 { s.name = name }
func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordedSpan) End(...trace.SpanEndOption)          { s.ended = true }

func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func installRecorder(t *testing.T) *recorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	rec := &recorder{}
	otel.SetTracerProvider(rec)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	rec := installRecorder(t)

	var inner trace.Span
	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	r.Post("/render/{name}", func(w http.ResponseWriter, r *http.Request) {
		inner = SpanFromContext(r.Context())
		w.Write([]byte("<p></p>"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/render/home", nil))

	spans := rec.ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]
	if span != inner {
		t.Error("handler should see the request span in its context")
	}
	if span.tracer != "test" || span.kind != trace.SpanKindServer {
		t.Errorf("tracer = %q, kind = %v", span.tracer, span.kind)
	}
	if span.name != "POST /render/{name}" {
		t.Errorf("name = %q", span.name)
	}
	if span.attrs["http.target"].AsString() != "/render/home" {
		t.Errorf("http.target = %v", span.attrs["http.target"])
	}
	if span.attrs["http.status_code"].AsInt64() != 200 || span.attrs["http.response_size"].AsInt64() != 7 {
		t.Errorf("attrs = %v", span.attrs)
	}
	if span.attrs["test.attr"].AsString() != "ok" {
		t.Error("extractor attributes missing")
	}
	if span.status == codes.Error {
		t.Error("2xx should not mark the span as failed")
	}
}

func TestOpenTelemetry_ServerErrorsMarkSpan(t *testing.T) {
	rec := installRecorder(t)

	h := OpenTelemetry()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	spans := rec.ended()
	if len(spans) != 1 || spans[0].status != codes.Error {
		t.Fatalf("spans = %+v", spans)
	}
	if spans[0].tracer != DefaultTracerName {
		t.Errorf("tracer = %q", spans[0].tracer)
	}
}

func TestOpenTelemetry_FilterSkipsTracing(t *testing.T) {
	rec := installRecorder(t)

	called := false
	h := OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Fatal("expected next to be called")
	}
	if n := len(rec.ended()); n != 0 {
		t.Fatalf("got %d spans, want none", n)
	}
}

func TestStartEndSpan(t *testing.T) {
	rec := installRecorder(t)

	_, span := StartSpan(context.Background(), "", "render.document", attribute.Int("doc.bytes", 10))
	EndSpan(span, errors.New("E211"))

	_, ok := StartSpan(context.Background(), "custom", "render.document")
	EndSpan(ok, nil)

	spans := rec.ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans", len(spans))
	}
	if spans[0].status != codes.Error || len(spans[0].errs) != 1 || spans[0].attrs["doc.bytes"].AsInt64() != 10 {
		t.Errorf("failed span = %+v", spans[0])
	}
	if spans[1].status != codes.Ok || spans[1].tracer != "custom" {
		t.Errorf("ok span = %+v", spans[1])
	}
}

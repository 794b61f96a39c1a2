package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/stringjsx/internal/errors"
	"github.com/vango-dev/stringjsx/pkg/middleware"
	"github.com/vango-dev/stringjsx/pkg/render"
	"github.com/vango-dev/stringjsx/pkg/tree"
)

// PublishResponse is the body of a successful POST /render/{name}.
type PublishResponse struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Bytes    int    `json:"bytes"`
}

// errorResponse wraps a coded error for JSON bodies and WebSocket frames.
type errorResponse struct {
	Error *errors.Error `json:"error"`
}

// handleRender renders the request body and returns text/html.
//
// Query parameters:
//   - page: wrap the result in a full HTML document
//   - title, lang: document title and language when page is set
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// handlePublish renders the request body and stores it under the key
// taken from the rest of the path.
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, errors.Newf(errors.CategoryPublish, "publishing is not configured"))
		return
	}

	key := chi.URLParam(r, "*")

	html, err := s.renderRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	location, err := s.store.Put(r.Context(), key, html)
	s.metrics.RecordPublish(s.backend, err)
	if err != nil {
		s.logger.Error("publish failed", "key", key, "error", err)
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("published", "key", key, "location", location, "bytes", len(html))
	writeJSON(w, http.StatusCreated, PublishResponse{Key: key, Location: location, Bytes: len(html)})
}

// renderRequest renders the size-limited request body, wrapping it in a
// page when asked to.
func (s *Server) renderRequest(w http.ResponseWriter, r *http.Request) (render.SafeHTML, error) {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	defer body.Close()

	html, err := s.renderDocument(r.Context(), body)
	if err != nil {
		return "", err
	}

	q := r.URL.Query()
	if q.Has("page") {
		html, err = s.renderer.RenderPage(render.PageData{
			Body:  html,
			Title: q.Get("title"),
			Lang:  q.Get("lang"),
		})
		if err != nil {
			return "", err
		}
	}

	s.metrics.RecordRendered(len(html))
	return html, nil
}

// renderDocument parses and evaluates one document inside a span.
func (s *Server) renderDocument(ctx context.Context, body io.Reader) (render.SafeHTML, error) {
	_, span := middleware.StartSpan(ctx, s.config.TracerName, "stringjsx.render")

	var html render.SafeHTML
	node, err := tree.Decode(body, tree.WithMaxDepth(s.renderer.MaxDepth()))
	if err == nil {
		html, err = node.Eval(s.renderer, s.registry)
	}
	if err == nil {
		span.SetAttributes(attribute.Int("render.bytes", len(html)))
	}

	middleware.EndSpan(span, err)
	return html, err
}

// classify maps err to a coded error and its HTTP status.
func classify(err error) (*errors.Error, int) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.New("E213").Wrap(err), http.StatusRequestEntityTooLarge
	}

	e := errors.Classify(err, "")
	switch e.Code {
	case "E210", "E212", "E231":
		return e, http.StatusBadRequest
	case "E201", "E211":
		return e, http.StatusUnprocessableEntity
	case "E230":
		return e, http.StatusBadGateway
	}
	if e.Category == errors.CategoryPublish {
		return e, http.StatusNotImplemented
	}
	return e, http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e, status := classify(err)
	s.metrics.RecordRenderError(middleware.RoutePattern(r), e.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "code", e.Code, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", e.Code, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: e})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

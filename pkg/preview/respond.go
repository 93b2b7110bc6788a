package preview

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// markupResponse is the body of every successful render.
type markupResponse struct {
	HTML string `json:"html"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// readBody reads the request document within the configured size limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)
	return io.ReadAll(r.Body)
}

// render writes out as a markup response and records its size.
func (s *Server) render(w http.ResponseWriter, kind, out string) {
	s.metrics.ObserveRender(kind, len(out))
	writeJSON(w, http.StatusOK, markupResponse{HTML: out})
}

// fail maps err to a response. Coded errors are the caller's fault and
// answer 400 with the error as JSON.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{
			"message": "request body exceeds " + http.StatusText(http.StatusRequestEntityTooLarge),
			"limit":   tooLarge.Limit,
		})
		return
	}

	var me *markuperrors.MarkupError
	if !errors.As(err, &me) {
		s.logger.ErrorContext(r.Context(), "render failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}
	s.metrics.RecordRenderError(me.Code)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = io.WriteString(w, me.FormatJSON())
}

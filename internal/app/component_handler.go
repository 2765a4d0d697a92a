package app

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/felixbrock/qap/internal/components"
)

const htmlContentType = "text/html; charset=utf-8"

type ComponentResponse struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   components.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

// ServeHTTP renders the component into a buffer first, so a failed render
// still produces a clean 500 instead of half a page.
func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)
	if resp == nil {
		return
	}

	if resp.Error != nil {
		slog.Error("request failed",
			slog.String("request_id", RequestID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Int("status", resp.Code),
			slog.String("message", resp.Message),
			slog.Any("err", resp.Error))
	}

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = htmlContentType
	}

	var buf bytes.Buffer
	if resp.Component != nil {
		if err := resp.Component.Render(r.Context(), &buf); err != nil {
			slog.Error("render failed",
				slog.String("request_id", RequestID(r.Context())),
				slog.String("path", r.URL.Path),
				slog.Any("err", err))
			http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write response", slog.String("path", r.URL.Path), slog.Any("err", err))
	}
}

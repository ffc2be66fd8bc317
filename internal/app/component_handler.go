package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type renderer interface {
	Render(ctx context.Context, w io.Writer) error
}

type ComponentResponse struct {
	Error       error
	Code        int
	ContentType string
	Component   renderer
}

// ComponentHandler renders the component returned by the wrapped func.
// A nil response means the func already wrote to w.
type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)
	if resp == nil {
		return
	}

	if resp.Error != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, resp.Error.Error()), "request_id", RequestIDFrom(r.Context()))
	}

	var buf bytes.Buffer
	err := resp.Component.Render(r.Context(), &buf)

	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", RequestIDFrom(r.Context()))
		http.Error(w, "templ: failed to render template", http.StatusInternalServerError)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}

	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)

	if r.Method == http.MethodHead {
		return
	}

	_, err = buf.WriteTo(w)
	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", RequestIDFrom(r.Context()))
	}
}

package app

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/felixbrock/hellopage/internal/asset"
	"github.com/felixbrock/hellopage/internal/component"
	"github.com/felixbrock/hellopage/internal/domain"
)

const htmlContentType = "text/html; charset=utf-8"

func readOnly(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func (a App) errorPage(view component.ErrorView, err error) *ComponentResponse {
	page := domain.Page{Title: view.Title}
	return &ComponentResponse{
		Component:   a.ComponentBuilder.Document(page, a.ComponentBuilder.Error(view)),
		Code:        view.Code,
		ContentType: htmlContentType,
		Error:       err,
	}
}

func (a App) root(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.URL.Path == "/" {
		return a.home(w, r)
	}

	if asset.Exists(r.URL.Path) {
		return a.publicFile(w, r)
	}

	return a.errorPage(get404(), nil)
}

func (a App) home(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !readOnly(r) {
		w.Header().Set("Allow", "GET, HEAD")
		return a.errorPage(get405(), nil)
	}

	page := domain.HomePage()
	return &ComponentResponse{
		Component:   a.ComponentBuilder.Document(page, a.ComponentBuilder.Home(page)),
		Code:        http.StatusOK,
		ContentType: htmlContentType,
		Error:       nil,
	}
}

func (a App) publicFile(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if !readOnly(r) {
		w.Header().Set("Allow", "GET, HEAD")
		return a.errorPage(get405(), nil)
	}

	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	content, err := fs.ReadFile(asset.Public(), name)
	if err != nil {
		return a.errorPage(get500(), fmt.Errorf("read public file %s: %w", name, err))
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(content))

	return nil
}

func healthz(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	_, err := w.Write([]byte("ok"))
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
}

func (a App) tooManyRequests(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	w.Header().Set("Retry-After", "1")
	return a.errorPage(get429(), nil)
}

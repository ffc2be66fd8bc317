package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/felixbrock/hellopage/internal/component"
	"github.com/felixbrock/hellopage/internal/domain"
)

type Config struct {
	Port            string
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

type ComponentBuilder struct {
	Home     func(page domain.Page) templ.Component
	Document func(page domain.Page, body templ.Component) templ.Component
	Error    func(view component.ErrorView) templ.Component
}

// DefaultComponentBuilder wires the builder to the templ components.
func DefaultComponentBuilder() ComponentBuilder {
	return ComponentBuilder{
		Home:     component.Home,
		Document: component.Document,
		Error:    component.Error,
	}
}

type App struct {
	ComponentBuilder ComponentBuilder
	Config           Config
}

func (a App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/", ComponentHandler(a.root))

	var h http.Handler = mux
	if a.Config.RateLimit > 0 {
		h = rateLimit(newLimiter(a.Config.RateLimit, a.Config.RateBurst), a.tooManyRequests, h)
	}

	return requestID(accessLog(h))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.Config.Port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := a.Config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("App shutting down...")
	return srv.Shutdown(shutdownCtx)
}

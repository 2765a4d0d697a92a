package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/felixbrock/qap/internal/components"
	"github.com/felixbrock/qap/internal/config"
	"github.com/felixbrock/qap/internal/router"
	"github.com/felixbrock/qap/internal/static"
	"github.com/felixbrock/qap/internal/telemetry"
)

type ComponentBuilder struct {
	Index    func(props components.IndexProps, body templ.Component) templ.Component
	Layout   func(outlet components.Outlet) templ.Component
	Home     func() templ.Component
	Clusters func(props components.ClustersProps) templ.Component
	Error    func(ec components.ErrorContext) templ.Component
}

type App struct {
	Router           *router.Router
	ComponentBuilder ComponentBuilder
	Config           config.Config
}

// Handler assembles routes, static assets and middleware into one handler.
// Only page routes are rate limited; health checks and assets are not.
func (a *App) Handler() http.Handler {
	a.registerRoutes()
	limiter := newLimiterStore(a.Config.RateLimit, a.Config.RateBurst)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", static.Handler()))
	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/", a.rateLimit(limiter, ComponentHandler(a.shell)))

	// Outermost last. The access log wraps panic recovery so a recovered
	// request is still logged with its 500.
	var h http.Handler = mux
	h = a.recoverPanics(h)
	h = logRequests(h)
	h = telemetry.Middleware(h)
	h = requestID(h)
	return h
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("App running", slog.String("addr", srv.Addr), slog.Any("routes", a.Router.Routes()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	timeout := a.Config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("App shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Package web serves the marketing site: the landing page with its card
// catalog, embedded static assets, and a health probe.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Xavientois/shuttle/internal/catalog"
	"github.com/Xavientois/shuttle/internal/platform/timeouts"
	"github.com/Xavientois/shuttle/internal/telemetry"
	"github.com/Xavientois/shuttle/internal/web/httpx"
	"github.com/Xavientois/shuttle/internal/web/routepath"
	"github.com/Xavientois/shuttle/internal/web/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config holds the web server configuration.
type Config struct {
	// HTTPAddr is the listen address, for example "localhost:8080".
	HTTPAddr string
	// Catalog is the card catalog rendered on the landing page.
	Catalog catalog.Catalog
	// Telemetry records page views. Nil disables telemetry.
	Telemetry *telemetry.Emitter
}

// Server is the site's HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the site's root HTTP handler.
func NewHandler(config Config) http.Handler {
	h := newHandlers(config.Catalog, config.Telemetry)

	mux := http.NewServeMux()
	mux.Handle(routepath.Root, httpx.Chain(
		http.HandlerFunc(h.handleLanding),
		httpx.RequireMethod(http.MethodGet),
	))
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Health, h.handleHealth)

	handler := httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
	)
	return otelhttp.NewHandler(handler, "shuttle.web")
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

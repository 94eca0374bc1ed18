package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// newHTTPServer prepares an http.Server for cfg.HTTPAddress. A positive
// RequestTimeout cancels the request context once it elapses.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errListening, h.server.Addr, err)
	}
	h.listener = l
	return nil
}

// addr is the bound address; useful when listening on port 0.
func (h *httpServer) addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}

// serve blocks until the server is shut down. A shutdown is not an error.
func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.addr()).Msg("Launching HTTP server")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", errServing, err)
	}
	return nil
}

func (h *httpServer) RunServer() {
	if h.listener == nil {
		if err := h.listen(); err != nil {
			h.logger.Err(err).Msg("HTTP server listen")
			return
		}
	}
	if err := h.serve(); err != nil {
		h.logger.Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Run starts the HTTP server, then blocks until a shutdown signal:
//  1. Map HTTP handlers and routes
//  2. Warm the settings cache
//  3. Start HTTP server
//  4. Wait for shutdown signal and drain in-flight requests
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	srv.mapHandlers()
	srv.settingsUC.Initialize(ctx)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.l.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		srv.l.Infof(ctx, "Received %v, stopping alert service...", sig)
	case err := <-errCh:
		srv.l.Errorf(ctx, "HTTP server error: %v", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "HTTP server shutdown error: %v", err)
		return err
	}
	return nil
}

package httpserver

import (
	"context"
	"net/http"
	"time"

	"advisor-alert-srv/pkg/errors"
	"advisor-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "advisor-alert-srv"
	serviceVersion = "1.0.0"
	pingTimeout    = 2 * time.Second
)

var (
	errRedisUnavailable    = errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable)
	errPostgresUnavailable = errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed", http.StatusServiceUnavailable)
)

func (srv *HTTPServer) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.ping.Redis: %v", err)
		return errRedisUnavailable
	}
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.ping.Postgres: %v", err)
		return errPostgresUnavailable
	}
	return nil
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the alert service and its stores are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp "A store is unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := srv.ping(c.Request.Context()); err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  serviceVersion,
		"service":  serviceName,
		"redis":    "connected",
		"postgres": "connected",
		"archive":  srv.archiveStatus(c.Request.Context()),
	})
}

// archiveStatus never fails the check: a digest is sent even when archiving is down.
func (srv *HTTPServer) archiveStatus(ctx context.Context) string {
	if srv.archive == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := srv.archive.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.archiveStatus.Ping: %v", err)
		return "unreachable"
	}
	return "connected"
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the alert service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.ping(c.Request.Context()); err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the alert service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}

package httpserver

import (
	"database/sql"
	"errors"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/log"
	pkgMinio "advisor-alert-srv/pkg/minio"
	pkgRedis "advisor-alert-srv/pkg/redis"
	"advisor-alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting the HTTP server.
type HTTPServer struct {
	// Server configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	allowedOrigins []string

	// Domain
	alertUC    advisoralert.UseCase
	settingsUC settings.UseCase

	// Auth & security
	jwtMgr      scope.Manager
	internalKey string

	// External services
	db      *sql.DB
	redis   pkgRedis.IRedis
	archive pkgMinio.MinIO
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string

	// Domain
	AlertUseCase    advisoralert.UseCase
	SettingsUseCase settings.UseCase

	// Auth & security
	JWTManager  scope.Manager
	InternalKey string

	// External services
	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis
	// Archive is optional.
	Archive pkgMinio.MinIO
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:            gin.New(),
		l:              l,
		host:           cfg.Host,
		port:           cfg.Port,
		allowedOrigins: cfg.AllowedOrigins,

		alertUC:    cfg.AlertUseCase,
		settingsUC: cfg.SettingsUseCase,

		jwtMgr:      cfg.JWTManager,
		internalKey: cfg.InternalKey,

		db:      cfg.PostgresDB,
		redis:   cfg.Redis,
		archive: cfg.Archive,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.alertUC == nil {
		return errors.New("alert use case is required")
	}
	if srv.settingsUC == nil {
		return errors.New("settings use case is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	if srv.db == nil {
		return errors.New("PostgreSQL connection is required")
	}

	return nil
}

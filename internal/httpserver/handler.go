package httpserver

import (
	alertHTTP "advisor-alert-srv/internal/advisoralert/delivery/http"
	"advisor-alert-srv/internal/middleware"
	settingsHTTP "advisor-alert-srv/internal/settings/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "advisor-alert-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtMgr, srv.internalKey)

	alertH := alertHTTP.New(srv.l, srv.alertUC, srv.discord)
	settingsH := settingsHTTP.New(srv.l, srv.settingsUC)

	api := srv.gin.Group(Api)
	alertH.RegisterRoutes(api, mw)

	internal := srv.gin.Group(InternalApi)
	settingsH.RegisterInternalRoutes(internal, mw)
}

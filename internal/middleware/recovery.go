package middleware

import (
	"io"
	"runtime/debug"

	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard 500 envelope. The stack trace is
// logged; Discord, when set, only receives the panic value and route.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v | %s %s\n%s",
			rec, c.Request.Method, c.FullPath(), debug.Stack())
		response.PanicError(c, rec, d)
	})
}

package middleware

import (
	"crypto/subtle"
	"strings"

	"advisor-alert-srv/pkg/response"
	"advisor-alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const internalKeyHeader = "X-Internal-Key"

// Auth verifies the bearer token and stores both the payload and the derived
// scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.l.Warnf(ctx, "internal.middleware.Auth: missing or malformed Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth.Verify: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// InternalKey guards service-to-service endpoints. With no key configured every request is rejected.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.InternalKey: rejected | Path: %s", c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

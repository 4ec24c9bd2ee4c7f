package scope

import (
	"context"
	"fmt"
	"strings"
	"time"

	"advisor-alert-srv/internal/model"

	"github.com/golang-jwt/jwt"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidToken}, args...)...)
}

// Verify accepts only HS256 tokens signed with the configured secret that carry a subject.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, invalid("token is empty")
	}

	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, invalid("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	switch {
	case err != nil:
		return Payload{}, invalid("%v", err)
	case !parsed.Valid:
		return Payload{}, invalid("token is not valid")
	case payload.UserID == "":
		return Payload{}, invalid("missing subject")
	}
	return payload, nil
}

// CreateToken signs payload. Used by tooling and tests; production tokens come from the CRM.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(TokenExpirationDuration).Unix(),
		Id:        fmt.Sprintf("%d", now.UnixNano()),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(m.secretKey))
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
		Role:     strings.TrimSpace(payload.Role),
		JTI:      payload.Id,
	}
}

// SetPayloadToContext attaches Payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext returns Payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext attaches model.Scope to context.
func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, scope)
}

// GetScopeFromContext returns model.Scope from context.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	scope, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return scope, ok
}

package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpirationDuration is the lifetime of tokens minted by CreateToken.
const TokenExpirationDuration = time.Hour * 12

// ErrInvalidToken is returned when a JWT token is invalid, expired, or malformed.
var ErrInvalidToken = errors.New("invalid token")

// Payload represents the JWT token claims issued by the CRM identity service.
type Payload struct {
	jwt.StandardClaims
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type implManager struct {
	secretKey string
}

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)

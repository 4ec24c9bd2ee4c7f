// Package mail sends HTML email through Microsoft Graph on behalf of a signed-in
// user and keeps the user's delegated token between requests.
package mail

import (
	"context"
	"net/http"
	"strings"

	"advisor-alert-srv/pkg/encrypter"
	pkgRedis "advisor-alert-srv/pkg/redis"
)

// Sender delivers one message. It never retries.
type Sender interface {
	Send(ctx context.Context, token Token, msg Message) error
}

// TokenSource hands out send tokens for an account.
type TokenSource interface {
	// Silent returns the stored token or ErrInteractionRequired.
	Silent(ctx context.Context, accountID string) (Token, error)
	// Interactive stores a freshly granted token and returns it.
	Interactive(ctx context.Context, accountID string, grant Grant) (Token, error)
	// Forget drops the stored token.
	Forget(ctx context.Context, accountID string) error
}

// NewGraphSender creates a Sender posting to {BaseURL}/v1.0/me/sendMail.
func NewGraphSender(cfg GraphConfig) Sender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGraphBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSendTimeout
	}
	return &graphSender{
		url:    strings.TrimRight(cfg.BaseURL, "/") + sendMailPath,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// NewTokenSource stores tokens in Redis, encrypted with enc.
func NewTokenSource(rdb pkgRedis.IRedis, enc encrypter.Encrypter) TokenSource {
	return &redisTokenSource{
		rdb: rdb,
		enc: enc,
	}
}

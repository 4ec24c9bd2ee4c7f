package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"advisor-alert-srv/pkg/encrypter"
	pkgRedis "advisor-alert-srv/pkg/redis"
)

const tokenKeyPrefix = "advisor-alerts:mail-token:"

type redisTokenSource struct {
	rdb pkgRedis.IRedis
	enc encrypter.Encrypter
	now func() time.Time
}

func tokenKey(accountID string) string {
	return tokenKeyPrefix + accountID
}

func (s *redisTokenSource) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *redisTokenSource) Silent(ctx context.Context, accountID string) (Token, error) {
	v, err := s.rdb.Get(ctx, tokenKey(accountID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return Token{}, ErrInteractionRequired
		}
		return Token{}, fmt.Errorf("mail: load token: %w", err)
	}

	raw, err := s.enc.Open(v, []byte(accountID))
	if err != nil {
		return Token{}, ErrInteractionRequired
	}
	var t Token
	if err := json.Unmarshal(raw, &t); err != nil {
		return Token{}, ErrInteractionRequired
	}
	if !t.Valid(s.clock()) {
		return Token{}, ErrInteractionRequired
	}
	return t, nil
}

func (s *redisTokenSource) Interactive(ctx context.Context, accountID string, grant Grant) (Token, error) {
	if grant.AccessToken == "" || grant.ExpiresIn <= expirySkew {
		return Token{}, ErrInvalidGrant
	}

	t := Token{
		AccessToken: grant.AccessToken,
		ExpiresAt:   s.clock().Add(grant.ExpiresIn).UTC(),
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return Token{}, fmt.Errorf("mail: marshal token: %w", err)
	}
	v, err := s.enc.Seal(raw, []byte(accountID))
	if err != nil {
		return Token{}, fmt.Errorf("mail: encrypt token: %w", err)
	}
	if err := s.rdb.Set(ctx, tokenKey(accountID), v, grant.ExpiresIn); err != nil {
		return Token{}, fmt.Errorf("mail: store token: %w", err)
	}
	return t, nil
}

func (s *redisTokenSource) Forget(ctx context.Context, accountID string) error {
	if err := s.rdb.Delete(ctx, tokenKey(accountID)); err != nil {
		return fmt.Errorf("mail: forget token: %w", err)
	}
	return nil
}

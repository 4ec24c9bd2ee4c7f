package redis

import (
	"context"
	"errors"
	"time"

	"advisor-alert-srv/internal/advisoralert/repository"
	pkgRedis "advisor-alert-srv/pkg/redis"

	"github.com/google/uuid"
)

func (r *implRepository) LastSent(ctx context.Context, advisorID string) (time.Time, bool, error) {
	v, err := r.rdb.Get(ctx, lastEmailKey(advisorID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return time.Time{}, false, nil
		}
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.LastSent.Get: %v", err)
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// An unreadable watermark counts as no watermark.
		r.l.Warnf(ctx, "internal.advisoralert.repository.redis.LastSent.Parse: advisor %s: %v", advisorID, err)
		return time.Time{}, false, nil
	}
	return at, true, nil
}

func (r *implRepository) SetLastSent(ctx context.Context, advisorID string, at time.Time) error {
	if err := r.rdb.Set(ctx, lastEmailKey(advisorID), at.Format(time.RFC3339), 0); err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.SetLastSent.Set: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) ClaimDay(ctx context.Context, advisorID string, day time.Time) (repository.Claim, bool, error) {
	c := repository.Claim{AdvisorID: advisorID, Day: day, Token: uuid.NewString()}
	ok, err := r.rdb.SetNX(ctx, claimKey(advisorID, day), c.Token, claimTTL)
	if err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.ClaimDay.SetNX: %v", err)
		return repository.Claim{}, false, err
	}
	if !ok {
		return repository.Claim{}, false, nil
	}
	return c, true, nil
}

func (r *implRepository) ReleaseDay(ctx context.Context, c repository.Claim) error {
	released, err := r.rdb.DeleteIfValue(ctx, claimKey(c.AdvisorID, c.Day), c.Token)
	if err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.ReleaseDay.DeleteIfValue: %v", err)
		return err
	}
	if !released {
		r.l.Warnf(ctx, "internal.advisoralert.repository.redis.ReleaseDay: claim for advisor %s no longer held", c.AdvisorID)
	}
	return nil
}

func (r *implRepository) NeedsAuth(ctx context.Context, advisorID string) (bool, error) {
	ok, err := r.rdb.Exists(ctx, needsAuthKey(advisorID))
	if err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.NeedsAuth.Exists: %v", err)
		return false, err
	}
	return ok, nil
}

func (r *implRepository) SetNeedsAuth(ctx context.Context, advisorID string) error {
	if err := r.rdb.Set(ctx, needsAuthKey(advisorID), "1", needsAuthTTL); err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.SetNeedsAuth.Set: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) ClearNeedsAuth(ctx context.Context, advisorID string) error {
	if err := r.rdb.Delete(ctx, needsAuthKey(advisorID)); err != nil {
		r.l.Errorf(ctx, "internal.advisoralert.repository.redis.ClearNeedsAuth.Delete: %v", err)
		return err
	}
	return nil
}

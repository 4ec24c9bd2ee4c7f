package repository

import (
	"context"
	"time"
)

// Claim is one reservation of an advisor's daily send. Token tells the holder
// apart from later claimants once the reservation expired.
type Claim struct {
	AdvisorID string
	Day       time.Time
	Token     string
}

// EscalationRepository holds the per-advisor escalation state that crosses invocations.
//
//go:generate mockery --name EscalationRepository
type EscalationRepository interface {
	// LastSent returns the watermark of the last successful send. ok is false when
	// no send was ever recorded.
	LastSent(ctx context.Context, advisorID string) (at time.Time, ok bool, err error)
	SetLastSent(ctx context.Context, advisorID string, at time.Time) error

	// ClaimDay atomically reserves day's send for advisorID. It reports false when
	// the day was already claimed.
	ClaimDay(ctx context.Context, advisorID string, day time.Time) (Claim, bool, error)
	// ReleaseDay drops c if it is still held by its owner.
	ReleaseDay(ctx context.Context, c Claim) error

	NeedsAuth(ctx context.Context, advisorID string) (bool, error)
	SetNeedsAuth(ctx context.Context, advisorID string) error
	ClearNeedsAuth(ctx context.Context, advisorID string) error
}

// DigestArchive keeps a copy of every digest that was sent.
type DigestArchive interface {
	Put(ctx context.Context, advisorID string, day time.Time, html []byte) error
}

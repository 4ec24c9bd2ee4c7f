package redis

import (
	"time"

	"advisor-alert-srv/pkg/calendar"
)

const (
	keyPrefix = "advisor-alerts"

	// claimTTL outlives the claimed day in every timezone.
	claimTTL = 36 * time.Hour
	// needsAuthTTL bounds how long a stale flag can survive an abandoned account.
	needsAuthTTL = 30 * 24 * time.Hour
)

func lastEmailKey(advisorID string) string {
	return keyPrefix + ":last-email:" + advisorID
}

func claimKey(advisorID string, day time.Time) string {
	return keyPrefix + ":email-claim:" + advisorID + ":" + calendar.DayKey(day)
}

func needsAuthKey(advisorID string) string {
	return keyPrefix + ":needs-auth:" + advisorID
}

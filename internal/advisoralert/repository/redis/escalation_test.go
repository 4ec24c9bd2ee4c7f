package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	pkgLog "advisor-alert-srv/pkg/log"
	pkgRedis "advisor-alert-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.(string)
	return nil
}

func (m *memRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value.(string)
	return true, nil
}

func (m *memRedis) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", pkgRedis.ErrNotFound
	}
	return v, nil
}

func (m *memRedis) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) DeleteIfValue(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[key] != value {
		return false, nil
	}
	delete(m.data, key)
	return true, nil
}

func (m *memRedis) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memRedis) Ping(context.Context) error { return nil }
func (m *memRedis) Close() error               { return nil }

func newTestRepo() (*implRepository, *memRedis) {
	rdb := &memRedis{data: map[string]string{}}
	return &implRepository{l: pkgLog.NewNop(), rdb: rdb}, rdb
}

func TestClaimDay(t *testing.T) {
	ctx := context.Background()
	r, rdb := newTestRepo()
	day := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	first, ok, err := r.ClaimDay(ctx, "adv-1", day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, first.Token)

	_, ok, err = r.ClaimDay(ctx, "adv-1", day.Add(3*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "same day is already claimed")

	_, ok, err = r.ClaimDay(ctx, "adv-1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, ok, "next day is free")

	// A stale holder must not release someone else's claim.
	rdb.data[claimKey("adv-1", day)] = "other-holder"
	require.NoError(t, r.ReleaseDay(ctx, first))
	assert.Equal(t, "other-holder", rdb.data[claimKey("adv-1", day)])

	rdb.data[claimKey("adv-1", day)] = first.Token
	require.NoError(t, r.ReleaseDay(ctx, first))
	assert.NotContains(t, rdb.data, claimKey("adv-1", day))
}

func TestLastSent(t *testing.T) {
	ctx := context.Background()
	r, rdb := newTestRepo()

	_, ok, err := r.LastSent(ctx, "adv-1")
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.SetLastSent(ctx, "adv-1", at))
	got, ok, err := r.LastSent(ctx, "adv-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(got))

	rdb.data[lastEmailKey("adv-1")] = "yesterday"
	_, ok, err = r.LastSent(ctx, "adv-1")
	require.NoError(t, err)
	assert.False(t, ok, "unreadable watermark counts as none")
}

func TestNeedsAuth(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo()

	require.NoError(t, r.SetNeedsAuth(ctx, "adv-1"))
	ok, err := r.NeedsAuth(ctx, "adv-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.ClearNeedsAuth(ctx, "adv-1"))
	ok, err = r.NeedsAuth(ctx, "adv-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

package settings

import "context"

// UseCase is a read-through cache over the stored settings. Safe for concurrent use.
type UseCase interface {
	// Initialize warms the cache. A failed load is logged and defaults are served.
	Initialize(ctx context.Context)
	// Get returns the cached settings, loading them once when the cache is empty.
	Get(ctx context.Context) Settings
	// Invalidate drops the cached value; the next Get reloads.
	Invalidate(ctx context.Context)
}

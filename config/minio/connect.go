package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"advisor-alert-srv/config"
	miniopkg "advisor-alert-srv/pkg/minio"
)

const defaultConnectTimeout = 5 * time.Second

var (
	instance miniopkg.MinIO
	mu       sync.Mutex
)

// Connect initializes the shared object store client. It returns nil, nil when
// no endpoint is configured, which disables digest archiving.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if cfg.Endpoint == "" {
		return nil, nil
	}
	if instance != nil {
		return instance, nil
	}

	impl, err := miniopkg.NewMinIO(miniopkg.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := impl.EnsureBucket(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	instance = impl
	return instance, nil
}

// Disconnect releases the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	instance = nil
	return nil
}

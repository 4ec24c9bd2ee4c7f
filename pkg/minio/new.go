package minio

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns    = 16
	idleConnTimeout = 90 * time.Second
	defaultPort     = "9000"
)

// MinIO is the object storage used for the digest archive.
type MinIO interface {
	// EnsureBucket verifies the endpoint and creates the configured bucket when missing.
	EnsureBucket(ctx context.Context) error
	Ping(ctx context.Context) error
	Put(ctx context.Context, obj Object) (Stored, error)
}

type implMinIO struct {
	client *minio.Client
	cfg    Config
}

// NewMinIO creates a client; it does not touch the network until EnsureBucket.
func NewMinIO(cfg Config) (MinIO, error) {
	cfg, err := normalize(cfg)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: maxIdleConns,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &implMinIO{client: client, cfg: cfg}, nil
}

func normalize(cfg Config) (Config, error) {
	switch {
	case cfg.Endpoint == "":
		return cfg, fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return cfg, fmt.Errorf("%w: access key and secret key are required", ErrInvalidConfig)
	case cfg.Bucket == "":
		return cfg, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += ":" + defaultPort
	}
	return cfg, nil
}

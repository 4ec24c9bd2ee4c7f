package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrInvalidConfig  = errors.New("minio: invalid config")
	ErrInvalidObject  = errors.New("minio: invalid object")
	ErrBucketNotFound = errors.New("minio: bucket not found")
	ErrAccessDenied   = errors.New("minio: access denied")
	ErrUnavailable    = errors.New("minio: unavailable")
)

// classify maps client errors onto the sentinels above, keeping the cause.
func classify(op string, err error) error {
	kind := ErrUnavailable
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket":
			kind = ErrBucketNotFound
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			kind = ErrAccessDenied
		}
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

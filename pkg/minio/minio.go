package minio

import (
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return classify("bucket_exists", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.cfg.Bucket, minio.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return classify("make_bucket", err)
	}
	return nil
}

func (m *implMinIO) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.cfg.Bucket); err != nil {
		return classify("ping", err)
	}
	return nil
}

func (m *implMinIO) Put(ctx context.Context, obj Object) (Stored, error) {
	if obj.Body == nil || obj.Name == "" || strings.HasPrefix(obj.Name, "/") || strings.Contains(obj.Name, "..") {
		return Stored{}, ErrInvalidObject
	}

	info, err := m.client.PutObject(ctx, m.cfg.Bucket, obj.Name, obj.Body, obj.Size, minio.PutObjectOptions{
		ContentType:  obj.ContentType,
		UserMetadata: obj.Metadata,
	})
	if err != nil {
		return Stored{}, classify("put_object", err)
	}
	return Stored{Bucket: m.cfg.Bucket, Name: obj.Name, Size: info.Size, ETag: info.ETag}, nil
}

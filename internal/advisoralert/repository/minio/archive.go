package minio

import (
	"bytes"
	"context"
	"time"

	"advisor-alert-srv/internal/advisoralert/repository"
	"advisor-alert-srv/pkg/calendar"
	pkgLog "advisor-alert-srv/pkg/log"
	pkgMinio "advisor-alert-srv/pkg/minio"
)

type implArchive struct {
	l     pkgLog.Logger
	store pkgMinio.MinIO
}

var _ repository.DigestArchive = &implArchive{}

func New(l pkgLog.Logger, store pkgMinio.MinIO) repository.DigestArchive {
	return &implArchive{
		l:     l,
		store: store,
	}
}

func objectName(advisorID string, day time.Time) string {
	return "digests/" + advisorID + "/" + calendar.DayKey(day) + ".html"
}

func (a *implArchive) Put(ctx context.Context, advisorID string, day time.Time, html []byte) error {
	_, err := a.store.Put(ctx, pkgMinio.Object{
		Name:        objectName(advisorID, day),
		Body:        bytes.NewReader(html),
		Size:        int64(len(html)),
		ContentType: "text/html; charset=utf-8",
		Metadata:    map[string]string{"advisor-id": advisorID},
	})
	if err != nil {
		a.l.Errorf(ctx, "internal.advisoralert.repository.minio.Put: %v", err)
		return err
	}
	return nil
}

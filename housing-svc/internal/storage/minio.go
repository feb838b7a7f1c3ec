package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

type MinioStore struct {
	Client        *minio.Client
	Bucket        string
	PublicBaseURL string
}

func NewMinioStore(client *minio.Client, bucket, publicBaseURL string) *MinioStore {
	return &MinioStore{Client: client, Bucket: bucket, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *MinioStore) PutObject(ctx context.Context, path string, body io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.Client.PutObject(ctx, s.Bucket, path, body, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", err
	}
	return s.PublicBaseURL + "/" + path, nil
}

// RemoveObjects deletes every path and reports the first failure.
func (s *MinioStore) RemoveObjects(ctx context.Context, paths []string) error {
	objects := make(chan minio.ObjectInfo, len(paths))
	for _, p := range paths {
		objects <- minio.ObjectInfo{Key: p}
	}
	close(objects)

	var failed int
	var first error
	for result := range s.Client.RemoveObjects(ctx, s.Bucket, objects, minio.RemoveObjectsOptions{}) {
		if result.Err != nil {
			failed++
			if first == nil {
				first = fmt.Errorf("remove %s: %w", result.ObjectName, result.Err)
			}
		}
	}
	if first != nil {
		return fmt.Errorf("%d of %d objects not removed: %w", failed, len(paths), first)
	}
	return nil
}

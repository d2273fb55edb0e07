package reconcile

import (
	"context"
	"fmt"
	"path"
	"strings"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource lists the objects directly under a prefix in object storage,
// treating the prefix like a directory.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource creates a source for bucket/prefix. Leading "./" and "/" are
// stripped from the prefix and a trailing "/" is ensured.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	prefix = strings.TrimPrefix(path.Clean("/"+prefix), "/")
	if prefix != "" {
		prefix += "/"
	}
	return &BucketSource{client: client, bucket: bucket, prefix: prefix}
}

// Location returns the bucket URL.
func (s *BucketSource) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, strings.TrimSuffix(s.prefix, "/"))
}

// List returns the objects directly under the prefix. Nested "directories" and
// directory markers are skipped.
func (s *BucketSource) List(ctx context.Context) ([]Entry, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, apperror.FileSystem("list", s.Location(), err)
	}
	if !exists {
		return nil, apperror.FileSystem("list", s.Location(), fmt.Errorf("bucket %s does not exist", s.bucket))
	}

	opts := minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: false,
	}

	// Cancelling stops the client's listing goroutine when we return early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var entries []Entry
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, apperror.FileSystem("list", s.Location(), obj.Err)
		}

		name := strings.TrimPrefix(obj.Key, s.prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		entries = append(entries, Entry{Name: name, Path: obj.Key})
	}
	return entries, nil
}

// Remove deletes the object.
func (s *BucketSource) Remove(ctx context.Context, entry Entry) error {
	err := s.client.RemoveObject(ctx, s.bucket, entry.Path, minio.RemoveObjectOptions{})
	return apperror.FileSystem("remove", s.Location()+"/"+entry.Name, err)
}

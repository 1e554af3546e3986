package storage

import (
	"context"
	"io"

	"satoru/internal/domain/service"
	"satoru/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// BlobStorage implements FileStorage on any gocloud.dev bucket.
type BlobStorage struct {
	bucket    *blob.Bucket
	bucketURL string
	baseURL   string
}

// NewBlobStorage opens bucketURL, e.g. "file:///var/lib/satoru", "gs://bucket" or "mem://".
func NewBlobStorage(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return NewBlobStorageFromBucket(bucket, bucketURL, publicBaseURL), nil
}

// NewBlobStorageFromBucket wraps an already opened bucket.
func NewBlobStorageFromBucket(bucket *blob.Bucket, bucketURL, publicBaseURL string) *BlobStorage {
	return &BlobStorage{bucket: bucket, bucketURL: bucketURL, baseURL: publicBaseURL}
}

func (s *BlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	return publicURL(s.baseURL, "", s.bucketURL, key), nil
}

func (s *BlobStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(service.ErrObjectNotFound, key)
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *BlobStorage) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "list %s", prefix)
		}
		if obj.IsDir {
			continue
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "delete %s", obj.Key)
		}
	}
}

func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

package storage

import (
	"context"
	"io"

	"satoru/internal/domain/service"
	"satoru/internal/errors"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
)

const firebaseURLScheme = "gs://"

// FirebaseStorage implements FileStorage on the Firebase project's Cloud Storage bucket.
type FirebaseStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
	baseURL    string
}

// NewFirebaseStorage uses bucketName, or the app's default bucket when empty.
func NewFirebaseStorage(ctx context.Context, app *firebase.App, bucketName, publicBaseURL string) (*FirebaseStorage, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase storage client")
	}

	var bucket *gcs.BucketHandle
	if bucketName == "" {
		bucket, err = client.DefaultBucket()
	} else {
		bucket, err = client.Bucket(bucketName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firebase bucket")
	}

	return &FirebaseStorage{bucket: bucket, bucketName: bucketName, baseURL: publicBaseURL}, nil
}

func (s *FirebaseStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "finalize %s", key)
	}

	return publicURL(s.baseURL, firebaseURLScheme, s.bucketName, key), nil
}

func (s *FirebaseStorage) Download(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, errors.Wrap(service.ErrObjectNotFound, key)
		}

		return nil, errors.Wrapf(err, "open %s", key)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *FirebaseStorage) DeletePrefix(ctx context.Context, prefix string) error {
	it := s.bucket.Objects(ctx, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "list %s", prefix)
		}

		err = s.bucket.Object(attrs.Name).Delete(ctx)
		if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return errors.Wrapf(err, "delete %s", attrs.Name)
		}
	}
}

// Close is a no-op; the Firebase app owns the underlying client.
func (s *FirebaseStorage) Close() error {
	return nil
}

// Package storage implements the FileStorage on a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"backstage/config"
	"backstage/internal/domain/service"
	"backstage/internal/errors"
)

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and closes it on shutdown.
func New(lc fx.Lifecycle, cfg *config.Config) (service.FileStorage, error) {
	if cfg.Media == nil || cfg.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open media bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(cfg.Media.PublicBaseURL, "/"),
	}, nil
}

// Save writes the stream under a date-partitioned random key so uploads
// with the same filename never collide.
func (s *blobStorage) Save(ctx context.Context, filename, contentType string, r io.Reader) (*service.StoredFile, error) {
	key := path.Join(
		time.Now().UTC().Format("2006/01/02"),
		uuid.NewString()+strings.ToLower(path.Ext(filename)),
	)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "open bucket writer")
	}

	size, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "write object")
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close bucket writer")
	}

	return &service.StoredFile{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		Size:        size,
		ContentType: contentType,
	}, nil
}

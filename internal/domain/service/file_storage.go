package service

import (
	"context"
	"io"
)

// StoredFile describes an object persisted to the media bucket.
type StoredFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// FileStorage persists uploaded files to object storage.
type FileStorage interface {
	// Save streams r into the bucket under a key derived from filename
	// and returns the stored object's metadata.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (*StoredFile, error)
}

package port

import (
	"context"
	"io"
)

// UploadInput describes one object written to the GSTR file archive.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput is returned after a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage keeps the raw GSTR-2A/2B files behind each import. Delete
// undoes an upload whose database write failed.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	// GetPresignedURL returns a time-limited download link.
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}

// Package archive stores scanned receipt images in a GCS bucket so the
// original uploads survive beyond the inference call.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Archiver stores a receipt image and returns a reference to the stored
// object.
type Archiver interface {
	ArchiveReceipt(ctx context.Context, userID string, image []byte, mimeType string) (string, error)
}

// GCSArchiver writes receipt images to a GCS bucket. It assumes Application
// Default Credentials are configured.
type GCSArchiver struct {
	bucket string
}

// NewGCSArchiver creates an archiver for the named bucket.
func NewGCSArchiver(bucket string) *GCSArchiver {
	return &GCSArchiver{bucket: bucket}
}

// ArchiveReceipt uploads the image under receipts/<uid>/<date>/<uuid> and
// returns the resulting gs:// URI.
func (a *GCSArchiver) ArchiveReceipt(ctx context.Context, userID string, image []byte, mimeType string) (string, error) {
	objectName := fmt.Sprintf("receipts/%s/%s/%s", userID, time.Now().Format("2006/01/02"), uuid.New().String())

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("ArchiveReceipt: create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = mimeType

	if _, err := io.Copy(w, bytes.NewReader(image)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("ArchiveReceipt: copy image to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ArchiveReceipt: finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", a.bucket, objectName), nil
}

var _ Archiver = (*GCSArchiver)(nil)

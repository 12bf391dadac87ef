package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// Bucket uploads objects to one Cloud Storage bucket. Public buckets hand out
// HTTPS URLs; private ones hand out gs:// references for other Google services.
type Bucket struct {
	client *storage.Client
	name   string
	public bool
}

func NewBucket(client *storage.Client, name string, public bool) *Bucket {
	return &Bucket{client: client, name: name, public: public}
}

func (b *Bucket) Upload(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	w := b.client.Bucket(b.name).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write gs://%s/%s: %w", b.name, name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gs://%s/%s: %w", b.name, name, err)
	}

	return b.Reference(name), nil
}

func (b *Bucket) Reference(name string) string {
	if b.public {
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.name, name)
	}
	return fmt.Sprintf("gs://%s/%s", b.name, name)
}

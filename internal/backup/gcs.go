package backup

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
)

// SnapshotFunc produces the serialized database snapshot to upload.
type SnapshotFunc func(ctx context.Context) ([]byte, error)

// GCSUploader writes snapshots to a Google Cloud Storage bucket. It assumes
// Application Default Credentials are configured.
type GCSUploader struct {
	bucket   string
	prefix   string
	snapshot SnapshotFunc
	now      func() time.Time
}

var _ Uploader = (*GCSUploader)(nil)

func NewGCSUploader(bucket, prefix string, snapshot SnapshotFunc) *GCSUploader {
	return &GCSUploader{
		bucket:   bucket,
		prefix:   prefix,
		snapshot: snapshot,
		now:      time.Now,
	}
}

// Upload serializes a snapshot and writes it as a timestamped object.
func (u *GCSUploader) Upload(ctx context.Context, mode Mode) error {
	data, err := u.snapshot(ctx)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	objectName := fmt.Sprintf("%s/%s-%s.json",
		u.prefix, mode.String(), u.now().UTC().Format("20060102T150405Z"))

	w := client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write snapshot to %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload of %s: %w", objectName, err)
	}

	return nil
}

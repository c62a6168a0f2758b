package minio

import (
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// BackupArtifacts summarizes the objects a backup produced in the bucket.
type BackupArtifacts struct {
	// BackupID identifies the backup the artifacts belong to.
	BackupID string

	// ObjectCount is the number of objects found under the backup prefix.
	ObjectCount int

	// TotalBytes is the summed size of those objects.
	TotalBytes int64
}

// VerifyBackup confirms that a completed backup wrote at least one object
// under its prefix in the bucket. It returns the artifact summary or an error
// when the prefix is empty or listing fails.
func (m *Minio) VerifyBackup(ctx context.Context, backupID string) (*BackupArtifacts, error) {
	prefix := path.Join(m.cfg.BackupPrefix, backupID)

	artifacts := &BackupArtifacts{BackupID: backupID}
	for object := range m.Client.ListObjects(ctx, m.cfg.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list backup objects for %q: %w", backupID, object.Err)
		}
		artifacts.ObjectCount++
		artifacts.TotalBytes += object.Size
	}

	if artifacts.ObjectCount == 0 {
		return nil, fmt.Errorf("backup %q produced no objects under prefix %q in bucket %q", backupID, prefix, m.cfg.BucketName)
	}

	m.logger.Debug("verified backup artifacts", nil, map[string]interface{}{
		"backup_id": backupID,
		"objects":   artifacts.ObjectCount,
		"bytes":     artifacts.TotalBytes,
	})
	return artifacts, nil
}

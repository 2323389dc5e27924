package checks

import (
	"context"
	"fmt"
	"strings"

	"finaid-preflight/core/storage"

	"github.com/minio/minio-go/v7"
)

// RequiredPrefixes lists the bucket prefixes the application writes
// uploaded documents under.
var RequiredPrefixes = []string{
	"documents", "transcripts", "exports",
}

// StorageProbeReport strictly types the result of the advisory document
// bucket probe.
type StorageProbeReport struct {
	BucketExists    bool     `json:"bucket_exists"`
	MissingPrefixes []string `json:"missing_prefixes,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// ProbeStorage checks that the document bucket exists and that each required
// prefix holds at least one object. Like the database probe, findings are
// advisory only.
func ProbeStorage(ctx context.Context, client storage.Client, bucket string) *StorageProbeReport {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return &StorageProbeReport{Error: fmt.Sprintf("failed to check bucket existence: %v", err)}
	}
	if !exists {
		return &StorageProbeReport{Error: fmt.Sprintf("bucket %s does not exist", bucket)}
	}

	report := &StorageProbeReport{BucketExists: true}
	for _, prefix := range RequiredPrefixes {
		prefixPath := prefix
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    prefixPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			report.MissingPrefixes = append(report.MissingPrefixes, prefix)
		}
	}

	return report
}

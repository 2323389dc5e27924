// Package storage provides the object storage client used by the advisory
// document-bucket probe.
//
// It wraps the MinIO Go client behind a small read-only interface so the
// probe can be tested with a mock, and so nothing in this tool can ever
// write to the probed bucket.
package storage

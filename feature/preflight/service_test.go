package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"finaid-preflight/core/storage/mocks"
	"finaid-preflight/feature/preflight/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scaffold creates every required directory and file under a temp dir.
func scaffold(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, entry := range checks.RequiredDirectories {
		require.NoError(t, os.MkdirAll(filepath.Join(base, filepath.FromSlash(entry.Path)), 0o755))
	}
	for _, entry := range checks.RequiredFiles {
		full := filepath.Join(base, filepath.FromSlash(entry.Path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	return base
}

func TestService_Run(t *testing.T) {
	t.Run("Complete Checkout", func(t *testing.T) {
		base := scaffold(t)
		svc := NewService(base, "finaid-dev.db", nil, "", nil, "development", zap.NewNop())

		report := svc.Run(context.Background())
		assert.True(t, report.Passed())
		assert.True(t, report.DirectoriesOK)
		assert.True(t, report.FilesOK)
		assert.False(t, report.Database.Exists)
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, base, report.BaseDir)
		assert.Equal(t, "development", report.Environment)
		assert.Nil(t, report.DatabaseProbe)
		assert.Nil(t, report.StorageProbe)
		assert.Len(t, report.Directories, len(checks.RequiredDirectories))
		assert.Len(t, report.Files, len(checks.RequiredFiles))
	})

	t.Run("Missing Directory Fails", func(t *testing.T) {
		base := scaffold(t)
		require.NoError(t, os.RemoveAll(filepath.Join(base, "Data")))
		svc := NewService(base, "finaid-dev.db", nil, "", nil, "", zap.NewNop())

		report := svc.Run(context.Background())
		assert.False(t, report.Passed())
		assert.False(t, report.DirectoriesOK)
		assert.True(t, report.FilesOK)
	})

	t.Run("Missing Data File Stays Advisory", func(t *testing.T) {
		base := scaffold(t)
		svc := NewService(base, "finaid-dev.db", nil, "", nil, "", zap.NewNop())

		report := svc.Run(context.Background())
		assert.False(t, report.Database.Exists)
		assert.True(t, report.Passed())
	})

	t.Run("Storage Probe Configured", func(t *testing.T) {
		base := scaffold(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "finaid-documents").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "finaid-documents", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		svc := NewService(base, "finaid-dev.db", mockClient, "finaid-documents", nil, "", zap.NewNop())
		report := svc.Run(context.Background())

		require.NotNil(t, report.StorageProbe)
		assert.True(t, report.StorageProbe.BucketExists)
		assert.NotEmpty(t, report.StorageProbe.MissingPrefixes)
		// Empty bucket prefixes never fail the run.
		assert.True(t, report.Passed())
	})
}

func TestReport_Save(t *testing.T) {
	base := scaffold(t)
	svc := NewService(base, "finaid-dev.db", nil, "", nil, "", zap.NewNop())
	report := svc.Run(context.Background())

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), report.RunID)
	assert.Contains(t, string(data), "directories_ok")
}

package preflight

import (
	"context"
	"time"

	"finaid-preflight/core/storage"
	"finaid-preflight/feature/preflight/checks"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the verification checks against one application checkout.
// The storage client and database connection are optional; when nil the
// corresponding probe is skipped.
type Service struct {
	baseDir      string
	databaseFile string
	store        storage.Client
	bucket       string
	db           *gorm.DB
	environment  string
	logger       *zap.Logger
}

// NewService creates a new verification service.
func NewService(baseDir, databaseFile string, store storage.Client, bucket string, db *gorm.DB, environment string, logger *zap.Logger) *Service {
	return &Service{
		baseDir:      baseDir,
		databaseFile: databaseFile,
		store:        store,
		bucket:       bucket,
		db:           db,
		environment:  environment,
		logger:       logger,
	}
}

// BaseDir returns the directory the checks resolve against.
func (s *Service) BaseDir() string {
	return s.baseDir
}

// CheckDirectories tests the required directories in declared order.
func (s *Service) CheckDirectories() []checks.Result {
	return checks.CheckDirectories(s.baseDir)
}

// CheckFiles tests the required files in declared order.
func (s *Service) CheckFiles() []checks.Result {
	return checks.CheckFiles(s.baseDir)
}

// CheckDatabaseFile tests the advisory local data store.
func (s *Service) CheckDatabaseFile() checks.Result {
	return checks.CheckDatabaseFile(s.baseDir, s.databaseFile)
}

// ProbeDatabase runs the advisory connectivity probe, or returns nil when no
// database connection was configured.
func (s *Service) ProbeDatabase() *checks.DatabaseProbeReport {
	if s.db == nil {
		return nil
	}
	return checks.ProbeDatabase(s.db)
}

// ProbeStorage runs the advisory document bucket probe, or returns nil when
// no storage client was configured.
func (s *Service) ProbeStorage(ctx context.Context) *checks.StorageProbeReport {
	if s.store == nil {
		return nil
	}
	return checks.ProbeStorage(ctx, s.store, s.bucket)
}

// Run executes every configured check and assembles the report.
func (s *Service) Run(ctx context.Context) *Report {
	start := time.Now()

	report := &Report{
		RunID:       uuid.NewString(),
		Environment: s.environment,
		BaseDir:     s.baseDir,
		GeneratedAt: start,
		Directories: s.CheckDirectories(),
		Files:       s.CheckFiles(),
		Database:    s.CheckDatabaseFile(),
	}
	report.DirectoriesOK = checks.AllPresent(report.Directories)
	report.FilesOK = checks.AllPresent(report.Files)
	report.DatabaseProbe = s.ProbeDatabase()
	report.StorageProbe = s.ProbeStorage(ctx)
	report.ExecutionTime = time.Since(start).String()

	s.logger.Debug("Verification run completed",
		zap.String("run_id", report.RunID),
		zap.Bool("directories_ok", report.DirectoriesOK),
		zap.Bool("files_ok", report.FilesOK),
	)

	return report
}

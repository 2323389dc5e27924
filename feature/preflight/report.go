package preflight

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"finaid-preflight/feature/preflight/checks"
)

// Report aggregates everything one verification run produced.
type Report struct {
	RunID         string                      `json:"run_id"`
	Environment   string                      `json:"environment,omitempty"`
	BaseDir       string                      `json:"base_dir"`
	GeneratedAt   time.Time                   `json:"generated_at"`
	Directories   []checks.Result             `json:"directories"`
	Files         []checks.Result             `json:"files"`
	Database      checks.Result               `json:"database"`
	DatabaseProbe *checks.DatabaseProbeReport `json:"database_probe,omitempty"`
	StorageProbe  *checks.StorageProbeReport  `json:"storage_probe,omitempty"`
	DirectoriesOK bool                        `json:"directories_ok"`
	FilesOK       bool                        `json:"files_ok"`
	ExecutionTime string                      `json:"execution_time"`
}

// Passed reports whether the run succeeded. Only the directory and file
// checks participate; the data file and probes are advisory.
func (r *Report) Passed() bool {
	return r.DirectoriesOK && r.FilesOK
}

// Save writes the report as indented JSON to path.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// ReportFilename returns the timestamped name report files are saved under.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("preflight_report_%d.json", now.Unix())
}

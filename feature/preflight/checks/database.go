package checks

import (
	"finaid-preflight/core/database"
	"finaid-preflight/core/utils"

	"gorm.io/gorm"
)

// DatabaseFileLabel is the label printed beside the data file check line.
const DatabaseFileLabel = "Database File"

// RequiredTables lists the tables the application migrations create.
var RequiredTables = []string{
	"__EFMigrationsHistory",
	"Users",
	"Documents",
	"FafsaApplications",
}

// CheckDatabaseFile tests the local data store under baseDir. The result is
// advisory: the application creates the file on first run, so absence is
// reported but never fails the verification.
func CheckDatabaseFile(baseDir, filename string) Result {
	fullPath := utils.Resolve(baseDir, filename)
	return Result{
		Entry:    Entry{Path: filename, Label: DatabaseFileLabel},
		FullPath: fullPath,
		Exists:   PathExists(fullPath),
	}
}

// DatabaseProbeReport strictly types the result of the advisory database
// connectivity probe.
type DatabaseProbeReport struct {
	Reachable     bool     `json:"reachable"`
	MissingTables []string `json:"missing_tables,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// ProbeDatabase checks that the application database answers and that the
// expected tables exist. Failures are folded into the report rather than
// returned: the probe is advisory by contract.
func ProbeDatabase(db *gorm.DB) *DatabaseProbeReport {
	if db == nil {
		return &DatabaseProbeReport{Reachable: false, Error: "no database connection"}
	}

	missing, err := database.MissingTables(db, RequiredTables)
	if err != nil {
		return &DatabaseProbeReport{Reachable: false, Error: err.Error()}
	}

	return &DatabaseProbeReport{Reachable: true, MissingTables: missing}
}

package checks

import (
	"os"

	"finaid-preflight/core/utils"
)

// Entry pairs a relative path with the human-readable label printed beside
// its check line. Declaration order is display order.
type Entry struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Result records the outcome of a single existence check.
type Result struct {
	Entry    Entry  `json:"entry"`
	FullPath string `json:"full_path"`
	Exists   bool   `json:"exists"`
}

// RequiredDirectories lists the directories the Financial Aid Assistant
// cannot run without.
var RequiredDirectories = []Entry{
	{Path: "Components", Label: "Blazor Components"},
	{Path: "Components/Pages", Label: "Page Components"},
	{Path: "Components/Forms", Label: "Form Components"},
	{Path: "Components/Documents", Label: "Document Components"},
	{Path: "Components/Dashboard", Label: "Dashboard Components"},
	{Path: "Services", Label: "Service Layer"},
	{Path: "Models", Label: "Data Models"},
	{Path: "Data", Label: "Data Access Layer"},
	{Path: "Configuration", Label: "Configuration Classes"},
}

// RequiredFiles lists the files that must be present for frontend-backend
// integration testing.
var RequiredFiles = []Entry{
	{Path: "Program.cs", Label: "Application Startup"},
	{Path: "appsettings.json", Label: "Application Configuration"},
	{Path: "appsettings.Development.json", Label: "Development Configuration"},
	{Path: "Components/Pages/Documents.razor", Label: "Documents Page"},
	{Path: "Components/Pages/FAFSA.razor", Label: "FAFSA Page"},
	{Path: "Components/Pages/Progress.razor", Label: "Progress Page"},
	{Path: "Components/Forms/FAFSAFormWithAI.razor", Label: "FAFSA AI Form"},
	{Path: "Components/Documents/DocumentUpload.razor", Label: "Document Upload Component"},
	{Path: "Services/Documents/DocumentUIService.cs", Label: "Document UI Service"},
	{Path: "Services/Forms/FormAssistanceService.cs", Label: "Form Assistance Service"},
	{Path: "Services/Dashboard/DashboardDataService.cs", Label: "Dashboard Data Service"},
}

// DirectoryExists reports whether an existing directory sits at path.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// PathExists reports whether any filesystem entry exists at path.
// It deliberately does not require a regular file: a directory at a file
// path still counts as present.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckDirectories tests every required directory under baseDir, returning
// results in declared order.
func CheckDirectories(baseDir string) []Result {
	results := make([]Result, 0, len(RequiredDirectories))
	for _, entry := range RequiredDirectories {
		fullPath := utils.Resolve(baseDir, entry.Path)
		results = append(results, Result{
			Entry:    entry,
			FullPath: fullPath,
			Exists:   DirectoryExists(fullPath),
		})
	}
	return results
}

// CheckFiles tests every required file under baseDir, returning results in
// declared order.
func CheckFiles(baseDir string) []Result {
	results := make([]Result, 0, len(RequiredFiles))
	for _, entry := range RequiredFiles {
		fullPath := utils.Resolve(baseDir, entry.Path)
		results = append(results, Result{
			Entry:    entry,
			FullPath: fullPath,
			Exists:   PathExists(fullPath),
		})
	}
	return results
}

// AllPresent reports whether every result in the slice found its entry.
func AllPresent(results []Result) bool {
	for _, r := range results {
		if !r.Exists {
			return false
		}
	}
	return true
}

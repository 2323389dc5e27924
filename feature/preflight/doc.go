// Package preflight verifies that a Financial Aid Assistant checkout has
// every component required for frontend-backend integration testing.
//
// # Checks Provided
//
//   - Directories: the nine component, service, model, data and configuration
//     directories, each required.
//   - Files: the eleven startup, configuration, page, form and service files,
//     each required.
//   - Database File: the local data store; advisory, since the application
//     creates it on first run.
//   - Database Probe (optional): application database connectivity and
//     expected-table presence; advisory.
//   - Storage Probe (optional): document bucket and prefix presence; advisory.
//
// Only the directory and file checks gate the verification outcome.
//
// # HTTP Endpoints
//
//   - GET /preflight : Runs all configured checks and returns the report.
//   - GET /preflight/structure : Runs directory and file checks.
//   - GET /preflight/database : Runs the data file check and database probe.
//   - GET /preflight/storage : Runs the storage probe.
package preflight

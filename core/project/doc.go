// Package project holds configuration describing the application tree that
// finaid-preflight verifies.
//
// The defaults mirror the development checkout of the Financial Aid
// Assistant; every field can be overridden through the environment
// (PROJECT_BASE_DIR, PROJECT_DATABASE_FILE, ...) or a .env file.
//
// The probe toggles gate the optional advisory checks: connecting to the
// application database and probing the document bucket. Both default to off
// so a plain filesystem verification needs no credentials.
package project

// Package database handles the optional connection to the application
// database and the table-presence inspection used by the database probe.
//
// The probe never gates the verification outcome: connectivity failures and
// missing tables are surfaced as advisory findings only.
package database

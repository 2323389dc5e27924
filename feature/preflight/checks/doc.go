// Package checks implements the individual verification checks: the required
// directory and file manifests with their existence tests, the advisory data
// file check, and the optional database and document storage probes.
//
// Checks are pure with respect to output: they return Result values and
// probe reports; rendering and exit-code policy live with the callers.
package checks

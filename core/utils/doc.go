// Package utils provides common utility functions for finaid-preflight.
// It includes helper functions for path resolution and normalization that
// are shared between the check implementations and the report output.
package utils

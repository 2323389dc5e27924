// Package server holds the HTTP report server configuration and constants.
//
// While the serve command handles the server startup, this package defines
// the configuration structures and valid values for server settings, such as
// the deployment environment the probed application belongs to.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the environment
// (development, staging, production).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the report to stamp which environment was verified.
package server

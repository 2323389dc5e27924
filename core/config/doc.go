// Package config provides configuration management for finaid-preflight.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Project: base directory, data file and probe toggles
//   - Server: HTTP report server settings (port, API key, environment)
//   - Database: application database connection for the advisory probe
//   - Storage: document bucket credentials for the advisory probe
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.BaseDir)
package config

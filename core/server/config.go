package server

// Config holds configuration for the HTTP report server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// When empty, the report endpoints are served unauthenticated.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment names the deployment the probed application belongs to
	// (development, staging, production).
	Environment string `mapstructure:"environment" default:"development"`
}

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is valid.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

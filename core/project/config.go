package project

import "finaid-preflight/core/utils"

// Config holds configuration describing the application under verification.
type Config struct {
	// BaseDir is the root of the Financial Aid Assistant checkout.
	BaseDir string `mapstructure:"base_dir" default:"/home/dpham/Projects/finaid"`
	// DatabaseFile is the local data store, relative to BaseDir.
	// Its absence is advisory only; the application creates it on first run.
	DatabaseFile string `mapstructure:"database_file" default:"finaid-dev.db"`
	// ProbeDatabase enables the advisory database connectivity probe.
	ProbeDatabase bool `mapstructure:"probe_database" default:"false"`
	// ProbeStorage enables the advisory document storage probe.
	ProbeStorage bool `mapstructure:"probe_storage" default:"false"`
}

// ResolvedBaseDir returns BaseDir with a leading "~" expanded and the
// result made absolute, so printed check lines always show full paths.
func (c Config) ResolvedBaseDir() string {
	return utils.Absolute(utils.ExpandHome(c.BaseDir))
}

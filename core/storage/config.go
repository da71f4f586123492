package storage

// Config holds configuration for file access.
type Config struct {
	// Lock enables the advisory lock taken while the database is rewritten.
	Lock bool `mapstructure:"lock" default:"true"`
	// LockSuffix is appended to a file path to build its lock file path.
	LockSuffix string `mapstructure:"lock_suffix" default:".lock"`
}

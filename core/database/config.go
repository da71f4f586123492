package database

import (
	"path/filepath"
)

// Config holds configuration for the launcher database files.
type Config struct {
	// Path is the game database file.
	Path string `mapstructure:"path" default:"GAMES.DAT"`
	// MapFile is the mapping file name, stored next to the database.
	MapFile string `mapstructure:"map_file" default:"LBMAP.DAT"`
	// BackupSuffix is appended to the database path for the pre-import backup.
	BackupSuffix string `mapstructure:"backup_suffix" default:".bak"`
}

// MappingPath returns the mapping file path for the database at dbPath.
func (c Config) MappingPath(dbPath string) string {
	name := c.MapFile
	if name == "" {
		name = "LBMAP.DAT"
	}
	return filepath.Join(filepath.Dir(dbPath), name)
}

// BackupPath returns the backup file path for the database at dbPath.
func (c Config) BackupPath(dbPath string) string {
	suffix := c.BackupSuffix
	if suffix == "" {
		suffix = ".bak"
	}
	return dbPath + suffix
}

// Package config provides configuration management for lbimport.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Database: GAMES.DAT path, mapping file name, backup suffix
//   - Storage: advisory lock settings
//   - Match: fuzzy title threshold
//   - Log: logging level and format
//
// Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. MATCH_THRESHOLD or DATABASE_PATH.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Path)
package config

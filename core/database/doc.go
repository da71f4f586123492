// Package database reads and writes the launcher's game database (GAMES.DAT).
//
// The file is a header-less sequence of 256-byte game records. Each record is
// addressed by its 1-based slot. Deleted slots are tombstones: they keep their
// position and are written back byte for byte.
//
// # Load
//
// Load reads the whole file into memory and decodes every complete record. A
// file whose length is not a multiple of the record size is accepted; the
// trailing bytes are reported as a warning and dropped on write.
//
// # Inspection
//
// Inspect summarizes a loaded file (active and deleted slots, filled metadata,
// genre histogram) for the inspect command.
//
// # Usage
//
//	file, err := database.Load(ctx, client, cfg.Database.Path)
//	for _, w := range file.Warnings {
//	    log.Warn("database", zap.Error(w))
//	}
//	out := database.Encode(file.Slots)
package database

// Package storage provides the file access layer used by the importer.
//
// It wraps the local filesystem behind a small Client interface so the import
// pipeline can be exercised against a mock in unit tests (see core/storage/mocks)
// and against real files in end-to-end tests.
//
// # Client Interface
//
//   - Exists: Reports whether a file is present.
//   - ReadFile: Reads a whole file; a missing file yields ErrMissingFile.
//   - WriteFile: Replaces a file's contents wholesale.
//   - Lock: Takes an advisory lock next to a file so two importers cannot
//     rewrite the same database at once.
//
// # Usage
//
//	client := storage.NewClient(cfg.Storage)
//	data, err := client.ReadFile(ctx, "GAMES.DAT")
//	if errors.Is(err, storage.ErrMissingFile) {
//	    // report and stop
//	}
package storage

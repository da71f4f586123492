package reconcile

import (
	"context"

	"lbimport/core/storage"
)

// Adapter defines how a catalog export is turned into metadata entries.
type Adapter interface {
	// Name returns the catalog format name (e.g., "launchbox").
	Name() string

	// Path returns the export file the adapter reads. It must exist before an
	// import starts.
	Path() string

	// LoadEntries reads the export and returns its entries in document order.
	// Entries without a usable title must be left out.
	LoadEntries(ctx context.Context, client storage.Client) ([]Entry, error)
}

// Package reconcile matches launcher database records against catalog metadata
// and fills in missing fields without overwriting user data.
//
// The work is split into three stages that can each be tested without file I/O:
//
// 1. Engine (FindMatch): resolves the catalog entry for one database slot. A
//    persisted mapping by database id wins, then a persisted mapping by GUID,
//    then the best fuzzy title match at or above the threshold.
//
// 2. Merge policy (MergePolicy.Apply): copies publisher and year only into blank
//    fields and the genre only when the record has none. Running it again on an
//    enriched record changes nothing.
//
// 3. Plan (BuildPlan, ImportWithPlan, ApplyPlan): runs the engine and the merge
//    policy over every active slot, collects the changes and the mapping table to
//    persist, and finally writes the backup, the database and the mapping file.
//
// # Adapters
//
// Catalog formats plug in through the Adapter interface, which turns an export
// file into a slice of Entry values. See feature/launchbox for the LaunchBox XML
// adapter.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:      launchbox.NewAdapter("LaunchBox.xml"),
//	    DatabasePath: "GAMES.DAT",
//	    MappingPath:  "LBMAP.DAT",
//	    BackupPath:   "GAMES.DAT.bak",
//	}
//
//	plan, err := reconcile.ImportWithPlan(ctx, spec, client, opts)
//	written, err := reconcile.ApplyPlan(ctx, spec, client, plan, opts)
package reconcile

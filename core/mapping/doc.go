// Package mapping persists which catalog entry belongs to which database slot.
//
// The mapping file (LBMAP.DAT) is a header-less sequence of 48-byte records,
// each holding a 1-based slot, the catalog's numeric database id and its GUID.
// Records with slot 0 are unused and ignored.
//
// Load builds two lookup tables, by database id and by GUID, so the match engine
// can resolve a slot in constant time. Save always rewrites the whole file from
// the list it is given; it never merges with what was there before.
package mapping

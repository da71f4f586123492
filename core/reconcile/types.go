package reconcile

import (
	"fmt"

	"lbimport/core/codec"
	"lbimport/core/database"
)

// MatchKind describes which tier resolved a match.
type MatchKind string

const (
	// MatchNone means no catalog entry was accepted.
	MatchNone MatchKind = "none"
	// MatchExactID means a persisted database id mapping pointed at the slot.
	MatchExactID MatchKind = "exact_id"
	// MatchExactGUID means a persisted GUID mapping pointed at the slot.
	MatchExactGUID MatchKind = "exact_guid"
	// MatchFuzzy means the best title similarity reached the threshold.
	MatchFuzzy MatchKind = "fuzzy"
)

// Entry is one catalog metadata entry.
type Entry struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	// Year holds the first four characters of the release date.
	Year string `json:"year"`
	// Genre is the first genre label listed for the entry.
	Genre string `json:"genre"`
	// DatabaseID is the catalog's numeric id, 0 when absent.
	DatabaseID int32  `json:"database_id"`
	GUID       string `json:"guid"`
}

// HasIdentity reports whether the entry carries an id or GUID worth persisting.
func (e Entry) HasIdentity() bool {
	return e.DatabaseID > 0 || e.GUID != ""
}

// Match is the outcome of FindMatch for one slot.
type Match struct {
	Entry *Entry    `json:"entry,omitempty"`
	Kind  MatchKind `json:"kind"`
	// Score is the title similarity for fuzzy matches.
	Score float64 `json:"score,omitempty"`
}

// Found reports whether an entry was matched.
func (m Match) Found() bool {
	return m.Entry != nil && m.Kind != MatchNone
}

// Label returns the human-readable match tier.
func (m Match) Label() string {
	switch m.Kind {
	case MatchExactID:
		return "exact (DB ID)"
	case MatchExactGUID:
		return "exact (GUID)"
	case MatchFuzzy:
		return fmt.Sprintf("fuzzy (%.0f%%)", m.Score*100)
	default:
		return "none"
	}
}

// Fields holds the record fields the merge policy may fill.
type Fields struct {
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Genre     uint8  `json:"genre"`
}

func fieldsOf(r codec.GameRecord) Fields {
	return Fields{Publisher: r.Publisher, Year: r.Year, Genre: r.Genre}
}

// Change describes one record whose fields were filled.
type Change struct {
	Slot         int    `json:"slot"`
	Title        string `json:"title"`
	CatalogTitle string `json:"catalog_title"`
	Match        Match  `json:"match"`
	Before       Fields `json:"before"`
	After        Fields `json:"after"`
}

// Plan contains the outcome of matching and merging, ready to be written.
type Plan struct {
	// Slots is the updated database, one entry per complete record.
	Slots []database.Slot `json:"-"`

	// Original is the database content as read, written to the backup.
	Original []byte `json:"-"`

	// Changes lists the records whose fields changed.
	Changes []Change `json:"changes"`

	// Mappings is the complete mapping table to persist.
	Mappings []codec.MappingRecord `json:"mappings"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`

	// Warnings holds non-fatal problems found while loading or planning.
	Warnings []string `json:"warnings,omitempty"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	CatalogEntries int `json:"catalog_entries"`
	PriorMappings  int `json:"prior_mappings"`
	Records        int `json:"records"`
	Deleted        int `json:"deleted"`
	Matched        int `json:"matched"`
	ExactID        int `json:"exact_id"`
	ExactGUID      int `json:"exact_guid"`
	Fuzzy          int `json:"fuzzy"`
	Unmatched      int `json:"unmatched"`
	// Updated counts records with at least one changed field.
	Updated int `json:"updated"`
	// Mappings counts matches persisted to the mapping table. It can exceed
	// Updated because already-filled records still get their mapping recorded.
	Mappings int `json:"mappings"`
}

// Options controls import behavior.
type Options struct {
	// DryRun performs matching and reporting but writes nothing.
	DryRun bool

	// Threshold is the minimum fuzzy similarity. Zero means DefaultThreshold.
	Threshold float64

	// Policy overrides the merge policy. Nil means DefaultMergePolicy.
	Policy *MergePolicy
}

func (o Options) threshold() float64 {
	if o.Threshold <= 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

func (o Options) policy() MergePolicy {
	if o.Policy == nil {
		return DefaultMergePolicy()
	}
	return *o.Policy
}

// Spec defines the files an import operates on.
type Spec struct {
	// Adapter reads the catalog export.
	Adapter Adapter

	// DatabasePath is the launcher database (GAMES.DAT).
	DatabasePath string

	// MappingPath is the mapping file (LBMAP.DAT).
	MappingPath string

	// BackupPath receives the original database before it is rewritten.
	BackupPath string
}

// Config holds matching configuration.
type Config struct {
	// Threshold is the minimum fuzzy title similarity for a match.
	Threshold float64 `mapstructure:"threshold" default:"0.8"`
}

package reconcile

import (
	"lbimport/core/codec"
	"lbimport/core/genre"
	"lbimport/core/utils"
)

// MergePolicy fills empty record fields from a matched catalog entry.
type MergePolicy struct {
	// Resolve maps a catalog genre label to a launcher genre code.
	Resolve func(label string) uint8
}

// DefaultMergePolicy resolves genres with the launcher genre table.
func DefaultMergePolicy() MergePolicy {
	return MergePolicy{Resolve: genre.Resolve}
}

// Apply returns record with publisher and year filled when blank and the genre
// filled when unknown. No other field is touched. changed reports whether any of
// the three fields differs from its previous value.
func (p MergePolicy) Apply(record codec.GameRecord, entry Entry) (codec.GameRecord, bool) {
	before := fieldsOf(record)

	if utils.IsBlank(record.Publisher) {
		record.Publisher = codec.CanonicalString(entry.Publisher, codec.PublisherLen)
	}
	if utils.IsBlank(record.Year) {
		record.Year = codec.CanonicalString(entry.Year, codec.YearLen)
	}
	if record.Genre == genre.None {
		record.Genre = p.resolve(entry.Genre)
	}

	return record, fieldsOf(record) != before
}

func (p MergePolicy) resolve(label string) uint8 {
	if p.Resolve == nil {
		return genre.Resolve(label)
	}
	return p.Resolve(label)
}

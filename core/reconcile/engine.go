package reconcile

import (
	"lbimport/core/codec"
	"lbimport/core/mapping"
	"lbimport/core/similarity"
)

// DefaultThreshold is the minimum similarity for a fuzzy title match.
const DefaultThreshold = 0.8

// FindMatch resolves the catalog entry for the record stored at slot.
//
// Resolution order, first hit wins:
//  1. an entry whose database id the index maps to slot,
//  2. an entry whose GUID the index maps to slot,
//  3. the entry with the highest title similarity, if it reaches threshold.
//     Ties keep the earliest entry.
//
// The returned Entry points into entries. FindMatch does not modify its inputs
// and must not be called for deleted records.
func FindMatch(slot int, record codec.GameRecord, entries []Entry, index mapping.Index, threshold float64) Match {
	for i := range entries {
		if s, ok := index.SlotForID(entries[i].DatabaseID); ok && s == slot {
			return Match{Entry: &entries[i], Kind: MatchExactID}
		}
	}

	for i := range entries {
		if s, ok := index.SlotForGUID(entries[i].GUID); ok && s == slot {
			return Match{Entry: &entries[i], Kind: MatchExactGUID}
		}
	}

	return fuzzyMatch(record.Title, entries, threshold)
}

func fuzzyMatch(title string, entries []Entry, threshold float64) Match {
	best := -1
	bestScore := 0.0
	for i := range entries {
		score := similarity.Ratio(title, entries[i].Title)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 || bestScore < threshold {
		return Match{Kind: MatchNone, Score: bestScore}
	}
	return Match{Entry: &entries[best], Kind: MatchFuzzy, Score: bestScore}
}

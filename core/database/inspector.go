package database

import (
	"strings"
)

// Stats summarizes the contents of a database.
type Stats struct {
	Slots         int           `json:"slots"`
	Active        int           `json:"active"`
	Deleted       int           `json:"deleted"`
	WithPublisher int           `json:"with_publisher"`
	WithYear      int           `json:"with_year"`
	WithGenre     int           `json:"with_genre"`
	ByGenre       map[uint8]int `json:"by_genre"`
}

// Inspect computes Stats for f. Deleted slots only count towards Deleted.
func Inspect(f *File) Stats {
	stats := Stats{ByGenre: make(map[uint8]int)}
	if f == nil {
		return stats
	}

	stats.Slots = len(f.Slots)
	for _, s := range f.Slots {
		r := s.Record
		if r.Deleted {
			stats.Deleted++
			continue
		}
		stats.Active++
		if strings.TrimSpace(r.Publisher) != "" {
			stats.WithPublisher++
		}
		if strings.TrimSpace(r.Year) != "" {
			stats.WithYear++
		}
		if r.Genre != 0 {
			stats.WithGenre++
		}
		stats.ByGenre[r.Genre]++
	}

	return stats
}

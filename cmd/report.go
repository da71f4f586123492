package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lbimport/core/genre"
	"lbimport/core/reconcile"
)

var separator = strings.Repeat("=", 80)

// writeImportReport prints one block per changed record followed by the summary.
func writeImportReport(w io.Writer, plan *reconcile.Plan) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "MATCHED GAMES:")
	fmt.Fprintln(w, separator)

	for _, c := range plan.Changes {
		fmt.Fprintf(w, "\n%s\n", c.Title)
		if c.Title != c.CatalogTitle {
			fmt.Fprintf(w, "  LaunchBox: %s\n", c.CatalogTitle)
		}
		fmt.Fprintf(w, "  Match:     %s\n", c.Match.Label())
		fmt.Fprintf(w, "  Publisher: %s -> %s\n", orNone(c.Before.Publisher), c.After.Publisher)
		fmt.Fprintf(w, "  Year:      %s -> %s\n", orNone(c.Before.Year), c.After.Year)
		fmt.Fprintf(w, "  Genre:     %s -> %s\n", genre.NameOf(c.Before.Genre), genre.NameOf(c.After.Genre))
	}

	s := plan.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Summary: %d records updated, %d mappings created\n", s.Updated, s.Mappings)
	fmt.Fprintln(w, separator)

	fmt.Fprintln(w, renderTable(
		[]string{"Match", "Records"},
		[][]string{
			{"exact (DB ID)", strconv.Itoa(s.ExactID)},
			{"exact (GUID)", strconv.Itoa(s.ExactGUID)},
			{"fuzzy", strconv.Itoa(s.Fuzzy)},
			{"unmatched", strconv.Itoa(s.Unmatched)},
			{"deleted", strconv.Itoa(s.Deleted)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

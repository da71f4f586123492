package cmd

import (
	"fmt"
	"strconv"

	"lbimport/core/genre"

	"github.com/spf13/cobra"
)

// genresCmd prints the genre table or resolves labels against it.
var genresCmd = &cobra.Command{
	Use:   "genres [label...]",
	Short: "Show the launcher genre table or resolve LaunchBox genre labels",
	Long: `Without arguments, genres prints every launcher genre code.
With arguments, each label is resolved the way the importer resolves it.

Example:
  lbimport genres "Action RPG" "Flight Simulator" "Interactive Movie"`,
	RunE: runGenres,
}

func init() {
	RootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	var rows [][]string
	if len(args) == 0 {
		for _, g := range genre.Table() {
			rows = append(rows, []string{strconv.Itoa(int(g.Code)), g.Name})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Genre"}, rows, []columnAlignment{alignRight, alignLeft}))
		return nil
	}

	for _, label := range args {
		code := genre.Resolve(label)
		rows = append(rows, []string{label, strconv.Itoa(int(code)), genre.NameOf(code)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Label", "Code", "Genre"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
	return nil
}

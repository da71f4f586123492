package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"lbimport/core/database"
	"lbimport/core/genre"
	"lbimport/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type inspectOptions struct {
	all  bool
	json bool
}

var inspectFlags inspectOptions

// inspectCmd lists the records of a game database with their LaunchBox mapping.
var inspectCmd = &cobra.Command{
	Use:   "inspect [games.dat]",
	Short: "List database records and their LaunchBox mappings",
	Long: `Inspect prints every active record of GAMES.DAT with its publisher, year,
genre and the LaunchBox id persisted for it in LBMAP.DAT, followed by a summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args, inspectFlags)
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectFlags.all, "all", false, "Include deleted records")
	inspectCmd.Flags().BoolVar(&inspectFlags.json, "json", false, "Print JSON instead of tables")

	RootCmd.AddCommand(inspectCmd)
}

// slotView is one inspected record.
type slotView struct {
	Slot       int    `json:"slot"`
	Title      string `json:"title"`
	Publisher  string `json:"publisher"`
	Year       string `json:"year"`
	Genre      string `json:"genre"`
	Deleted    bool   `json:"deleted,omitempty"`
	DatabaseID int32  `json:"database_id,omitempty"`
	GUID       string `json:"guid,omitempty"`
}

type inspectReport struct {
	Database string         `json:"database"`
	Stats    database.Stats `json:"stats"`
	Mappings int            `json:"mappings"`
	Slots    []slotView     `json:"slots"`
	Warnings []string       `json:"warnings,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string, flags inspectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer func() { _ = env.log.Sync() }()

	dbPath := env.databasePath(args, 0)
	file, err := database.Load(ctx, env.client, dbPath)
	if err != nil {
		return err
	}

	index, err := mapping.Load(ctx, env.client, env.cfg.Database.MappingPath(dbPath))
	if err != nil {
		return err
	}

	report := buildInspectReport(dbPath, file, index, flags.all)
	for _, w := range report.Warnings {
		env.log.Warn(w)
	}
	env.log.Debug("Database inspected",
		zap.String("database", dbPath),
		zap.Int("slots", report.Stats.Slots),
		zap.Int("mappings", report.Mappings),
	)

	out := cmd.OutOrStdout()
	if flags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	writeInspectReport(out, report)
	return nil
}

func buildInspectReport(dbPath string, file *database.File, index mapping.Index, all bool) inspectReport {
	report := inspectReport{
		Database: dbPath,
		Stats:    database.Inspect(file),
		Mappings: index.Len(),
		Slots:    []slotView{},
	}
	for _, w := range file.Warnings {
		report.Warnings = append(report.Warnings, w.Error())
	}
	for _, w := range index.Warnings {
		report.Warnings = append(report.Warnings, w.Error())
	}

	ids := make(map[int]int32, len(index.ByID))
	for id, slot := range index.ByID {
		ids[slot] = id
	}
	guids := make(map[int]string, len(index.ByGUID))
	for guid, slot := range index.ByGUID {
		guids[slot] = guid
	}

	for _, s := range file.Slots {
		r := s.Record
		if r.Deleted && !all {
			continue
		}
		report.Slots = append(report.Slots, slotView{
			Slot:       s.Index,
			Title:      r.Title,
			Publisher:  r.Publisher,
			Year:       r.Year,
			Genre:      genre.NameOf(r.Genre),
			Deleted:    r.Deleted,
			DatabaseID: ids[s.Index],
			GUID:       guids[s.Index],
		})
	}

	return report
}

func writeInspectReport(w io.Writer, report inspectReport) {
	rows := make([][]string, 0, len(report.Slots))
	for _, s := range report.Slots {
		title := s.Title
		if s.Deleted {
			title += " (deleted)"
		}
		id := ""
		if s.DatabaseID > 0 {
			id = strconv.Itoa(int(s.DatabaseID))
		}
		rows = append(rows, []string{strconv.Itoa(s.Slot), title, s.Publisher, s.Year, s.Genre, id})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Slot", "Title", "Publisher", "Year", "Genre", "LaunchBox ID"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))

	st := report.Stats
	fmt.Fprintln(w, renderTable(
		[]string{"Records", "Active", "Deleted", "Publisher", "Year", "Genre", "Mapped"},
		[][]string{{
			strconv.Itoa(st.Slots),
			strconv.Itoa(st.Active),
			strconv.Itoa(st.Deleted),
			strconv.Itoa(st.WithPublisher),
			strconv.Itoa(st.WithYear),
			strconv.Itoa(st.WithGenre),
			strconv.Itoa(report.Mappings),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	))

	codes := make([]int, 0, len(st.ByGenre))
	for code := range st.ByGenre {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)
	histogram := make([][]string, 0, len(codes))
	for _, code := range codes {
		histogram = append(histogram, []string{genre.NameOf(uint8(code)), strconv.Itoa(st.ByGenre[uint8(code)])})
	}
	fmt.Fprintln(w, renderTable([]string{"Genre", "Records"}, histogram, []columnAlignment{alignLeft, alignRight}))
}

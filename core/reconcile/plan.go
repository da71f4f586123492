package reconcile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"lbimport/core/codec"
	"lbimport/core/database"
	"lbimport/core/mapping"
	"lbimport/core/storage"
)

// BuildPlan matches and merges every active slot of file. It performs no I/O
// and leaves file untouched.
//
// A mapping is recorded for every match whose entry has an id or GUID, even when
// no field changed, so later imports resolve the slot exactly.
func BuildPlan(file *database.File, entries []Entry, index mapping.Index, opts Options) *Plan {
	threshold := opts.threshold()
	policy := opts.policy()

	plan := &Plan{
		Slots:    make([]database.Slot, len(file.Slots)),
		Original: file.Raw,
		Changes:  []Change{},
		Mappings: []codec.MappingRecord{},
	}
	for _, w := range file.Warnings {
		plan.Warnings = append(plan.Warnings, w.Error())
	}

	plan.Summary.CatalogEntries = len(entries)
	plan.Summary.PriorMappings = index.Records

	for i, slot := range file.Slots {
		plan.Slots[i] = slot
		plan.Summary.Records++

		if slot.Record.Deleted {
			plan.Summary.Deleted++
			continue
		}

		match := FindMatch(slot.Index, slot.Record, entries, index, threshold)
		if !match.Found() {
			plan.Summary.Unmatched++
			continue
		}
		countMatch(&plan.Summary, match.Kind)

		entry := *match.Entry
		if entry.HasIdentity() {
			if slot.Index > math.MaxUint16 {
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("slot %d exceeds the mapping file range; mapping not recorded", slot.Index))
			} else {
				plan.Mappings = append(plan.Mappings, codec.MappingRecord{
					Slot:       uint16(slot.Index),
					DatabaseID: entry.DatabaseID,
					GUID:       entry.GUID,
				})
			}
		}

		updated, changed := policy.Apply(slot.Record, entry)
		if !changed {
			continue
		}

		plan.Slots[i].Record = updated
		plan.Changes = append(plan.Changes, Change{
			Slot:         slot.Index,
			Title:        slot.Record.Title,
			CatalogTitle: entry.Title,
			Match:        match,
			Before:       fieldsOf(slot.Record),
			After:        fieldsOf(updated),
		})
		plan.Summary.Updated++
	}

	plan.Summary.Mappings = len(plan.Mappings)
	return plan
}

func countMatch(s *PlanSummary, kind MatchKind) {
	s.Matched++
	switch kind {
	case MatchExactID:
		s.ExactID++
	case MatchExactGUID:
		s.ExactGUID++
	case MatchFuzzy:
		s.Fuzzy++
	}
}

// ImportWithPlan loads the catalog, the mapping file and the database named by
// spec and returns the resulting plan. It does NOT write anything; use ApplyPlan
// for that.
//
// Both the catalog export and the database must exist; otherwise an error
// wrapping storage.ErrMissingFile is returned before anything is read.
func ImportWithPlan(ctx context.Context, spec *Spec, client storage.Client, opts Options) (*Plan, error) {
	if spec == nil || spec.Adapter == nil {
		return nil, errors.New("import spec requires a catalog adapter")
	}

	if err := storage.RequireFiles(ctx, client, spec.Adapter.Path(), spec.DatabasePath); err != nil {
		return nil, err
	}

	entries, err := spec.Adapter.LoadEntries(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", spec.Adapter.Name(), err)
	}

	index, err := mapping.Load(ctx, client, spec.MappingPath)
	if err != nil {
		return nil, err
	}

	file, err := database.Load(ctx, client, spec.DatabasePath)
	if err != nil {
		return nil, err
	}

	plan := BuildPlan(file, entries, index, opts)
	for _, w := range index.Warnings {
		plan.Warnings = append(plan.Warnings, w.Error())
	}

	return plan, nil
}

// ApplyPlan writes the plan: first the backup of the original database, then
// the updated database, then the mapping table. The mapping file is left alone
// when the plan has no mappings. Nothing is written in dry-run mode.
//
// Returns the number of files written.
func ApplyPlan(ctx context.Context, spec *Spec, client storage.Client, plan *Plan, opts Options) (written int, err error) {
	if opts.DryRun {
		return 0, nil
	}
	if plan == nil {
		return 0, errors.New("no plan to apply")
	}

	unlock, err := client.Lock(ctx, spec.DatabasePath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if uerr := unlock(); uerr != nil && err == nil {
			err = fmt.Errorf("failed to release database lock: %w", uerr)
		}
	}()

	if err := client.WriteFile(ctx, spec.BackupPath, plan.Original); err != nil {
		return written, fmt.Errorf("failed to write backup: %w", err)
	}
	written++

	if err := client.WriteFile(ctx, spec.DatabasePath, database.Encode(plan.Slots)); err != nil {
		return written, fmt.Errorf("failed to write database: %w", err)
	}
	written++

	if len(plan.Mappings) > 0 {
		if err := mapping.Save(ctx, client, spec.MappingPath, plan.Mappings); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// ImportAndApply is a convenience wrapper that plans and then applies.
func ImportAndApply(ctx context.Context, spec *Spec, client storage.Client, opts Options) (*Plan, int, error) {
	plan, err := ImportWithPlan(ctx, spec, client, opts)
	if err != nil {
		return nil, 0, err
	}

	written, err := ApplyPlan(ctx, spec, client, plan, opts)
	return plan, written, err
}

package mapping

import (
	"context"
	"errors"
	"fmt"

	"lbimport/core/codec"
	"lbimport/core/storage"
)

// ErrMalformedFileSize is reported when the mapping file length is not a
// multiple of the record size. The trailing bytes are ignored.
var ErrMalformedFileSize = errors.New("mapping file size is not a multiple of the record size")

// Index holds the persisted associations of one mapping file.
type Index struct {
	// ByID maps a catalog database id to a 1-based slot.
	ByID map[int32]int
	// ByGUID maps a catalog GUID to a 1-based slot.
	ByGUID map[string]int
	// Records is the number of used records that were loaded.
	Records int
	// Warnings holds non-fatal problems found while loading.
	Warnings []error
}

// NewIndex returns an empty index.
func NewIndex() Index {
	return Index{
		ByID:   make(map[int32]int),
		ByGUID: make(map[string]int),
	}
}

// Add registers slot under id and guid. A non-positive id or empty guid is not
// indexed. Later calls for the same key replace earlier ones.
func (i *Index) Add(slot int, id int32, guid string) {
	if slot <= 0 {
		return
	}
	if id > 0 {
		i.ByID[id] = slot
	}
	if guid != "" {
		i.ByGUID[guid] = slot
	}
	i.Records++
}

// Len returns the number of used records loaded into the index.
func (i Index) Len() int {
	return i.Records
}

// SlotForID returns the slot mapped to a catalog database id.
func (i Index) SlotForID(id int32) (int, bool) {
	if id <= 0 {
		return 0, false
	}
	slot, ok := i.ByID[id]
	return slot, ok
}

// SlotForGUID returns the slot mapped to a catalog GUID.
func (i Index) SlotForGUID(guid string) (int, bool) {
	if guid == "" {
		return 0, false
	}
	slot, ok := i.ByGUID[guid]
	return slot, ok
}

// Load reads the mapping file at path. A missing file yields an empty index.
func Load(ctx context.Context, client storage.Client, path string) (Index, error) {
	index := NewIndex()

	exists, err := client.Exists(ctx, path)
	if err != nil {
		return index, err
	}
	if !exists {
		return index, nil
	}

	data, err := client.ReadFile(ctx, path)
	if err != nil {
		return index, fmt.Errorf("failed to read mapping file: %w", err)
	}

	if rem := len(data) % codec.MappingRecordSize; rem != 0 {
		index.Warnings = append(index.Warnings,
			fmt.Errorf("%w: %d bytes, %d trailing bytes ignored", ErrMalformedFileSize, len(data), rem))
	}

	count := len(data) / codec.MappingRecordSize
	for n := 0; n < count; n++ {
		off := n * codec.MappingRecordSize
		rec, err := codec.DecodeMappingRecord(data[off : off+codec.MappingRecordSize])
		if err != nil {
			return index, fmt.Errorf("mapping record %d: %w", n+1, err)
		}
		if rec.Slot == 0 {
			continue
		}
		index.Add(int(rec.Slot), rec.DatabaseID, rec.GUID)
	}

	return index, nil
}

// Encode serializes records back to back.
func Encode(records []codec.MappingRecord) []byte {
	out := make([]byte, 0, len(records)*codec.MappingRecordSize)
	for _, rec := range records {
		out = append(out, codec.EncodeMappingRecord(rec)...)
	}
	return out
}

// Save replaces the mapping file at path with records.
func Save(ctx context.Context, client storage.Client, path string, records []codec.MappingRecord) error {
	if err := client.WriteFile(ctx, path, Encode(records)); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}
	return nil
}

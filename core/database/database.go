package database

import (
	"context"
	"errors"
	"fmt"

	"lbimport/core/codec"
	"lbimport/core/storage"
)

// ErrMalformedFileSize is reported when the database length is not a multiple
// of the record size.
var ErrMalformedFileSize = errors.New("database file size is not a multiple of the record size")

// Slot is one record position in the database.
type Slot struct {
	// Index is the 1-based slot number.
	Index int
	// Record is the decoded record.
	Record codec.GameRecord
	// Raw is the record exactly as read from disk.
	Raw []byte
}

// File is a fully loaded game database.
type File struct {
	// Raw is the original file contents, including any trailing partial record.
	Raw []byte
	// Slots holds every complete record in file order.
	Slots []Slot
	// Warnings holds non-fatal problems found while loading.
	Warnings []error
}

// Load reads and decodes the database at path.
func Load(ctx context.Context, client storage.Client, path string) (*File, error) {
	data, err := client.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}
	return Parse(data)
}

// Parse decodes database contents already in memory.
func Parse(data []byte) (*File, error) {
	file := &File{Raw: data}

	if rem := len(data) % codec.GameRecordSize; rem != 0 {
		file.Warnings = append(file.Warnings,
			fmt.Errorf("%w: %d bytes, %d trailing bytes ignored", ErrMalformedFileSize, len(data), rem))
	}

	count := len(data) / codec.GameRecordSize
	file.Slots = make([]Slot, 0, count)
	for n := 0; n < count; n++ {
		off := n * codec.GameRecordSize
		raw := data[off : off+codec.GameRecordSize]

		rec, err := codec.DecodeGameRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("slot %d at offset %d: %w", n+1, off, err)
		}
		file.Slots = append(file.Slots, Slot{Index: n + 1, Record: rec, Raw: raw})
	}

	return file, nil
}

// Encode serializes slots back to back. Deleted slots are copied from Raw when
// available so tombstones are reproduced exactly.
func Encode(slots []Slot) []byte {
	out := make([]byte, 0, len(slots)*codec.GameRecordSize)
	for _, s := range slots {
		if s.Record.Deleted && len(s.Raw) == codec.GameRecordSize {
			out = append(out, s.Raw...)
			continue
		}
		out = append(out, codec.EncodeGameRecord(s.Record)...)
	}
	return out
}

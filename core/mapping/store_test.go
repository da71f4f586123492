package mapping

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lbimport/core/codec"
	"lbimport/core/storage"
	"lbimport/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	client := storage.NewClient(storage.Config{})

	index, err := Load(context.Background(), client, filepath.Join(t.TempDir(), "LBMAP.DAT"))
	require.NoError(t, err)
	assert.Empty(t, index.ByID)
	assert.Empty(t, index.ByGUID)
	assert.Zero(t, index.Records)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := storage.NewClient(storage.Config{})
	path := filepath.Join(t.TempDir(), "LBMAP.DAT")

	records := []codec.MappingRecord{
		{Slot: 1, DatabaseID: 42, GUID: "guid-one"},
		{Slot: 2, DatabaseID: 0, GUID: "guid-two"},
		{Slot: 3, DatabaseID: 77},
		{Slot: 0, DatabaseID: 99, GUID: "unused"},
	}
	require.NoError(t, Save(ctx, client, path, records))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(records)*codec.MappingRecordSize), info.Size())

	index, err := Load(ctx, client, path)
	require.NoError(t, err)
	assert.Empty(t, index.Warnings)
	assert.Equal(t, 3, index.Records)

	assert.Equal(t, map[int32]int{42: 1, 77: 3}, index.ByID)
	assert.Equal(t, map[string]int{"guid-one": 1, "guid-two": 2}, index.ByGUID)

	_, ok := index.SlotForID(99)
	assert.False(t, ok, "Slot 0 records must be skipped")
	_, ok = index.SlotForGUID("unused")
	assert.False(t, ok)
}

func TestSave_ReplacesContents(t *testing.T) {
	ctx := context.Background()
	client := storage.NewClient(storage.Config{})
	path := filepath.Join(t.TempDir(), "LBMAP.DAT")

	require.NoError(t, Save(ctx, client, path, []codec.MappingRecord{{Slot: 1, DatabaseID: 1}, {Slot: 2, DatabaseID: 2}}))
	require.NoError(t, Save(ctx, client, path, []codec.MappingRecord{{Slot: 5, DatabaseID: 9}}))

	index, err := Load(ctx, client, path)
	require.NoError(t, err)
	assert.Equal(t, map[int32]int{9: 5}, index.ByID)
}

func TestLoad_TrailingBytes(t *testing.T) {
	ctx := context.Background()
	client := storage.NewClient(storage.Config{})
	path := filepath.Join(t.TempDir(), "LBMAP.DAT")

	data := append(codec.EncodeMappingRecord(codec.MappingRecord{Slot: 4, DatabaseID: 8}), 1, 2, 3)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	index, err := Load(ctx, client, path)
	require.NoError(t, err)
	assert.Equal(t, map[int32]int{8: 4}, index.ByID)
	require.Len(t, index.Warnings, 1)
	assert.ErrorIs(t, index.Warnings[0], ErrMalformedFileSize)
}

func TestLoad_LaterRecordWins(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	data := Encode([]codec.MappingRecord{
		{Slot: 1, DatabaseID: 42, GUID: "g"},
		{Slot: 2, DatabaseID: 42, GUID: "g"},
	})
	client.On("Exists", mock.Anything, "LBMAP.DAT").Return(true, nil)
	client.On("ReadFile", mock.Anything, "LBMAP.DAT").Return(data, nil)

	index, err := Load(ctx, client, "LBMAP.DAT")
	require.NoError(t, err)

	slot, ok := index.SlotForID(42)
	assert.True(t, ok)
	assert.Equal(t, 2, slot)
	slot, _ = index.SlotForGUID("g")
	assert.Equal(t, 2, slot)
	client.AssertExpectations(t)
}

func TestLoad_ReadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("Exists", mock.Anything, "LBMAP.DAT").Return(true, nil)
	client.On("ReadFile", mock.Anything, "LBMAP.DAT").Return(nil, errors.New("disk error"))

	_, err := Load(context.Background(), client, "LBMAP.DAT")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk error")
}

func TestIndex_IgnoresEmptyKeys(t *testing.T) {
	index := NewIndex()
	index.Add(3, 0, "")
	index.Add(0, 5, "x")

	assert.Empty(t, index.ByID)
	assert.Empty(t, index.ByGUID)

	_, ok := index.SlotForID(0)
	assert.False(t, ok)
	_, ok = index.SlotForGUID("")
	assert.False(t, ok)
}

package database

import (
	"context"
	"errors"
	"testing"

	"lbimport/core/codec"
	"lbimport/core/storage"
	"lbimport/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func encodeAll(records ...codec.GameRecord) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, codec.EncodeGameRecord(r)...)
	}
	return out
}

func TestParse(t *testing.T) {
	data := encodeAll(
		codec.GameRecord{Title: "DOOM"},
		codec.GameRecord{Title: "Old Game", Deleted: true},
		codec.GameRecord{Title: "Wing Commander", Genre: 10},
	)

	file, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, file.Warnings)
	require.Len(t, file.Slots, 3)

	assert.Equal(t, 1, file.Slots[0].Index)
	assert.Equal(t, "DOOM", file.Slots[0].Record.Title)
	assert.True(t, file.Slots[1].Record.Deleted)
	assert.Equal(t, 3, file.Slots[2].Index)
	assert.Equal(t, uint8(10), file.Slots[2].Record.Genre)
}

func TestParse_Empty(t *testing.T) {
	file, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, file.Slots)
	assert.Empty(t, file.Warnings)
}

func TestParse_TrailingBytes(t *testing.T) {
	data := append(encodeAll(codec.GameRecord{Title: "DOOM"}), 0xAA, 0xBB)

	file, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, file.Slots, 1)
	require.Len(t, file.Warnings, 1)
	assert.ErrorIs(t, file.Warnings[0], ErrMalformedFileSize)

	assert.Len(t, Encode(file.Slots), codec.GameRecordSize, "Trailing bytes must not be written back")
	assert.Len(t, file.Raw, codec.GameRecordSize+2, "Raw keeps the original bytes for the backup")
}

func TestEncode_DeletedSlotIsByteIdentical(t *testing.T) {
	deleted := codec.EncodeGameRecord(codec.GameRecord{Title: "Gone", Deleted: true})
	deleted[253] = 0x7F // stray byte in the padding area
	data := append(encodeAll(codec.GameRecord{Title: "Kept"}), deleted...)

	file, err := Parse(data)
	require.NoError(t, err)

	out := Encode(file.Slots)
	assert.Equal(t, deleted, out[codec.GameRecordSize:])
}

func TestEncode_ReencodesActiveSlots(t *testing.T) {
	file, err := Parse(encodeAll(codec.GameRecord{Title: "DOOM"}))
	require.NoError(t, err)

	file.Slots[0].Record.Publisher = "id Software"
	out := Encode(file.Slots)

	got, err := codec.DecodeGameRecord(out)
	require.NoError(t, err)
	assert.Equal(t, "id Software", got.Publisher)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ReadFile", mock.Anything, "GAMES.DAT").Return(encodeAll(codec.GameRecord{Title: "DOOM"}), nil)

		file, err := Load(ctx, client, "GAMES.DAT")
		require.NoError(t, err)
		assert.Len(t, file.Slots, 1)
		client.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ReadFile", mock.Anything, "GAMES.DAT").Return(nil, storage.ErrMissingFile)

		_, err := Load(ctx, client, "GAMES.DAT")
		assert.ErrorIs(t, err, storage.ErrMissingFile)
	})

	t.Run("ReadError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ReadFile", mock.Anything, "GAMES.DAT").Return(nil, errors.New("io error"))

		_, err := Load(ctx, client, "GAMES.DAT")
		assert.ErrorContains(t, err, "io error")
	})
}

func TestConfig_Paths(t *testing.T) {
	cfg := Config{MapFile: "LBMAP.DAT", BackupSuffix: ".bak"}

	assert.Equal(t, "/games/LBMAP.DAT", cfg.MappingPath("/games/GAMES.DAT"))
	assert.Equal(t, "LBMAP.DAT", cfg.MappingPath("GAMES.DAT"))
	assert.Equal(t, "/games/GAMES.DAT.bak", cfg.BackupPath("/games/GAMES.DAT"))

	empty := Config{}
	assert.Equal(t, "LBMAP.DAT", empty.MappingPath("GAMES.DAT"))
	assert.Equal(t, "GAMES.DAT.bak", empty.BackupPath("GAMES.DAT"))
}

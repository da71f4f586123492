package codec

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() GameRecord {
	return GameRecord{
		Title:         "Wing Commander",
		Path:          `C:\GAMES\WC`,
		Command:       "WC.EXE",
		Args:          "-nosound",
		SoundFlags:    3,
		SoundFM:       1,
		SoundMIDI:     2,
		GraphicsFlags: 4,
		Publisher:     "Origin Systems",
		Year:          "1990",
		Genre:         10,
		Slowdown:      0xBEEF,
		RequiresCD:    true,
		Deleted:       false,
	}
}

func TestGameRecord_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record GameRecord
	}{
		{"Typical", sampleRecord()},
		{"Empty", GameRecord{}},
		{"Deleted", GameRecord{Title: "Gone", Deleted: true}},
		{"CodePageCharacters", GameRecord{Title: "Café Ñandú", Publisher: "Éditions ½"}},
		{"ExactCapacity", GameRecord{
			Title:     strings.Repeat("T", TitleLen),
			Path:      strings.Repeat("P", PathLen),
			Command:   strings.Repeat("C", CommandLen),
			Args:      strings.Repeat("A", ArgsLen),
			Publisher: strings.Repeat("U", PublisherLen),
			Year:      "1999",
			Genre:     255,
			Slowdown:  65535,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := EncodeGameRecord(tt.record)
			require.Len(t, buf, GameRecordSize)

			got, err := DecodeGameRecord(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.record, got)
		})
	}
}

func TestGameRecord_Layout(t *testing.T) {
	buf := EncodeGameRecord(sampleRecord())

	assert.Equal(t, byte(len("Wing Commander")), buf[0])
	assert.Equal(t, "Wing Commander", string(buf[1:15]))
	assert.Equal(t, byte(len(`C:\GAMES\WC`)), buf[51])
	assert.Equal(t, byte(len("WC.EXE")), buf[132])
	assert.Equal(t, byte(len("-nosound")), buf[146])
	assert.Equal(t, []byte{3, 1, 2, 4}, buf[207:211])
	assert.Equal(t, byte(len("Origin Systems")), buf[211])
	assert.Equal(t, []byte{4, '1', '9', '9', '0'}, buf[242:247])
	assert.Equal(t, byte(10), buf[247])
	assert.Equal(t, uint16(0xBEEF), binary.LittleEndian.Uint16(buf[248:250]))
	assert.Equal(t, byte(1), buf[250])
	assert.Equal(t, byte(0), buf[251])
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[252:256])
}

func TestGameRecord_TitleTruncation(t *testing.T) {
	long := strings.Repeat("ABCDEFGHIJ", 7)
	buf := EncodeGameRecord(GameRecord{Title: long})

	got, err := DecodeGameRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, long[:TitleLen], got.Title)
	assert.Len(t, buf, GameRecordSize, "Oversized text must not grow the record")
}

func TestGameRecord_CanonicalLaw(t *testing.T) {
	in := GameRecord{
		Title:     strings.Repeat("x", 80) + "中",
		Path:      "路径",
		Command:   "THIS-COMMAND-IS-TOO-LONG.EXE",
		Publisher: "Publisher ✓",
		Year:      "1990-05-01",
	}

	got, err := DecodeGameRecord(EncodeGameRecord(in))
	require.NoError(t, err)
	assert.Equal(t, Canonical(in), got)
	assert.Equal(t, "??", got.Path)
	assert.Equal(t, "Publisher ?", got.Publisher)
	assert.Equal(t, "1990", got.Year)
	assert.Equal(t, "THIS-COMMAND-", got.Command)
}

func TestDecodeGameRecord_WrongSize(t *testing.T) {
	for _, size := range []int{0, 1, GameRecordSize - 1, GameRecordSize + 1} {
		_, err := DecodeGameRecord(make([]byte, size))
		assert.ErrorIs(t, err, ErrMalformedRecord)

		var sizeErr *SizeError
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, size, sizeErr.Got)
		assert.Equal(t, GameRecordSize, sizeErr.Want)
	}
}

func TestDecodeString_ClampsLength(t *testing.T) {
	buf := EncodeGameRecord(GameRecord{Year: "1990", Genre: 7})
	buf[242] = 200 // corrupt the year length byte

	got, err := DecodeGameRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, "1990", got.Year, "Length must be clamped to the field capacity")
	assert.Equal(t, uint8(7), got.Genre)
}

func TestMappingRecord_RoundTrip(t *testing.T) {
	tests := []MappingRecord{
		{Slot: 1, DatabaseID: 42, GUID: "6f1a3c2e-9b8d-4e21-a7f0-0c5d2b9e8a11"},
		{Slot: 65535, DatabaseID: -1},
		{Slot: 7, GUID: "abc"},
		{},
	}

	for _, m := range tests {
		buf := EncodeMappingRecord(m)
		require.Len(t, buf, MappingRecordSize)

		got, err := DecodeMappingRecord(buf)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestMappingRecord_Layout(t *testing.T) {
	buf := EncodeMappingRecord(MappingRecord{Slot: 0x0102, DatabaseID: 42, GUID: "g"})

	assert.Equal(t, []byte{0x02, 0x01}, buf[0:2])
	assert.Equal(t, []byte{42, 0, 0, 0}, buf[2:6])
	assert.Equal(t, []byte{1, 'g'}, buf[6:8])
	assert.Equal(t, make([]byte, MappingRecordSize-8), buf[8:])
}

func TestMappingRecord_GUIDTruncation(t *testing.T) {
	guid := strings.Repeat("f", 50)
	got, err := DecodeMappingRecord(EncodeMappingRecord(MappingRecord{Slot: 1, GUID: guid}))
	require.NoError(t, err)
	assert.Equal(t, guid[:GUIDLen], got.GUID)
}

func TestDecodeMappingRecord_WrongSize(t *testing.T) {
	_, err := DecodeMappingRecord(make([]byte, MappingRecordSize-1))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "Caf", Truncate("Café", 3))
	assert.Equal(t, "Café", Truncate("Café", 4))
}

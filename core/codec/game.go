package codec

import (
	"encoding/binary"
)

// GameRecord is one slot of the launcher database.
type GameRecord struct {
	Title         string `json:"title"`
	Path          string `json:"path"`
	Command       string `json:"command"`
	Args          string `json:"args"`
	SoundFlags    uint8  `json:"sound_flags"`
	SoundFM       uint8  `json:"sound_fm"`
	SoundMIDI     uint8  `json:"sound_midi"`
	GraphicsFlags uint8  `json:"graphics_flags"`
	Publisher     string `json:"publisher"`
	Year          string `json:"year"`
	Genre         uint8  `json:"genre"`
	// Slowdown is the launcher's 16-bit auxiliary value (CPU slowdown setting).
	Slowdown   uint16 `json:"slowdown"`
	RequiresCD bool   `json:"requires_cd"`
	Deleted    bool   `json:"deleted"`
}

// EncodeGameRecord packs r into exactly GameRecordSize bytes.
func EncodeGameRecord(r GameRecord) []byte {
	buf := make([]byte, GameRecordSize)

	putString(buf[offTitle:offPath], r.Title, TitleLen)
	putString(buf[offPath:offCommand], r.Path, PathLen)
	putString(buf[offCommand:offArgs], r.Command, CommandLen)
	putString(buf[offArgs:offSoundFlags], r.Args, ArgsLen)
	buf[offSoundFlags] = r.SoundFlags
	buf[offSoundFM] = r.SoundFM
	buf[offSoundMIDI] = r.SoundMIDI
	buf[offGraphicsFlags] = r.GraphicsFlags
	putString(buf[offPublisher:offYear], r.Publisher, PublisherLen)
	putString(buf[offYear:offGenre], r.Year, YearLen)
	buf[offGenre] = r.Genre
	binary.LittleEndian.PutUint16(buf[offSlowdown:], r.Slowdown)
	buf[offRequiresCD] = boolByte(r.RequiresCD)
	buf[offDeleted] = boolByte(r.Deleted)

	return buf
}

// DecodeGameRecord unpacks a GameRecordSize buffer.
func DecodeGameRecord(buf []byte) (GameRecord, error) {
	if len(buf) != GameRecordSize {
		return GameRecord{}, &SizeError{Kind: "game", Got: len(buf), Want: GameRecordSize}
	}

	return GameRecord{
		Title:         DecodeString(buf[offTitle:offPath], TitleLen),
		Path:          DecodeString(buf[offPath:offCommand], PathLen),
		Command:       DecodeString(buf[offCommand:offArgs], CommandLen),
		Args:          DecodeString(buf[offArgs:offSoundFlags], ArgsLen),
		SoundFlags:    buf[offSoundFlags],
		SoundFM:       buf[offSoundFM],
		SoundMIDI:     buf[offSoundMIDI],
		GraphicsFlags: buf[offGraphicsFlags],
		Publisher:     DecodeString(buf[offPublisher:offYear], PublisherLen),
		Year:          DecodeString(buf[offYear:offGenre], YearLen),
		Genre:         buf[offGenre],
		Slowdown:      binary.LittleEndian.Uint16(buf[offSlowdown:]),
		RequiresCD:    buf[offRequiresCD] != 0,
		Deleted:       buf[offDeleted] != 0,
	}, nil
}

// Canonical returns r with every text field truncated and substituted the way
// EncodeGameRecord stores it.
func Canonical(r GameRecord) GameRecord {
	r.Title = CanonicalString(r.Title, TitleLen)
	r.Path = CanonicalString(r.Path, PathLen)
	r.Command = CanonicalString(r.Command, CommandLen)
	r.Args = CanonicalString(r.Args, ArgsLen)
	r.Publisher = CanonicalString(r.Publisher, PublisherLen)
	r.Year = CanonicalString(r.Year, YearLen)
	return r
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

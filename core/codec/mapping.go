package codec

import (
	"encoding/binary"
)

// MappingRecord associates a 1-based database slot with a catalog identity.
// Slot 0 marks an unused record.
type MappingRecord struct {
	Slot       uint16 `json:"slot"`
	DatabaseID int32  `json:"database_id"`
	GUID       string `json:"guid"`
}

// EncodeMappingRecord packs m into exactly MappingRecordSize bytes.
func EncodeMappingRecord(m MappingRecord) []byte {
	buf := make([]byte, MappingRecordSize)
	binary.LittleEndian.PutUint16(buf[offMapSlot:], m.Slot)
	binary.LittleEndian.PutUint32(buf[offMapDatabaseID:], uint32(m.DatabaseID))
	putString(buf[offMapGUID:mappingUsed], m.GUID, GUIDLen)
	return buf
}

// DecodeMappingRecord unpacks a MappingRecordSize buffer.
func DecodeMappingRecord(buf []byte) (MappingRecord, error) {
	if len(buf) != MappingRecordSize {
		return MappingRecord{}, &SizeError{Kind: "mapping", Got: len(buf), Want: MappingRecordSize}
	}
	return MappingRecord{
		Slot:       binary.LittleEndian.Uint16(buf[offMapSlot:]),
		DatabaseID: int32(binary.LittleEndian.Uint32(buf[offMapDatabaseID:])),
		GUID:       DecodeString(buf[offMapGUID:mappingUsed], GUIDLen),
	}, nil
}

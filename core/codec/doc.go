// Package codec encodes and decodes the fixed-layout binary records used by the
// DOS launcher.
//
// Two record kinds are supported:
//   - GameRecord: one 256-byte slot of GAMES.DAT.
//   - MappingRecord: one 48-byte entry of LBMAP.DAT associating a slot with a
//     catalog database id and GUID.
//
// # Text Fields
//
// Text is stored as Pascal strings: one length byte followed by the string bytes
// and zero padding up to the field capacity. Strings use code page 437. Runes
// outside the code page are written as '?', and strings longer than the field
// capacity are truncated before encoding.
//
// Because of truncation and substitution, encoding is not lossless for every
// input. The round-trip law is:
//
//	DecodeGameRecord(EncodeGameRecord(x)) == Canonical(x)
//
// # Usage
//
//	buf := codec.EncodeGameRecord(rec)
//	rec, err := codec.DecodeGameRecord(buf)
//	if errors.Is(err, codec.ErrMalformedRecord) {
//	    // buffer was not exactly GameRecordSize bytes
//	}
package codec

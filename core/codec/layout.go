package codec

// Record sizes in bytes.
const (
	GameRecordSize    = 256
	MappingRecordSize = 48
)

// Maximum text lengths in characters. The field width on disk is one byte more
// for the length prefix.
const (
	TitleLen     = 50
	PathLen      = 80
	CommandLen   = 13
	ArgsLen      = 60
	PublisherLen = 30
	YearLen      = 4
	GUIDLen      = 36
)

// GameRecord field offsets.
const (
	offTitle         = 0
	offPath          = offTitle + TitleLen + 1
	offCommand       = offPath + PathLen + 1
	offArgs          = offCommand + CommandLen + 1
	offSoundFlags    = offArgs + ArgsLen + 1
	offSoundFM       = offSoundFlags + 1
	offSoundMIDI     = offSoundFM + 1
	offGraphicsFlags = offSoundMIDI + 1
	offPublisher     = offGraphicsFlags + 1
	offYear          = offPublisher + PublisherLen + 1
	offGenre         = offYear + YearLen + 1
	offSlowdown      = offGenre + 1
	offRequiresCD    = offSlowdown + 2
	offDeleted       = offRequiresCD + 1
	gameRecordUsed   = offDeleted + 1
)

// MappingRecord field offsets.
const (
	offMapSlot       = 0
	offMapDatabaseID = 2
	offMapGUID       = 6
	mappingUsed      = offMapGUID + GUIDLen + 1
)

// Compile-time checks that the layouts fit their record sizes.
var (
	_ [GameRecordSize - gameRecordUsed]struct{}
	_ [MappingRecordSize - mappingUsed]struct{}
)

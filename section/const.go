package section

// File header fields.
const (
	Magic        = "ASEF" // Magic is the 4-byte signature at offset 0.
	VersionMajor = 1      // VersionMajor is written at offset 4.
	VersionMinor = 0      // VersionMinor is written at offset 6.
)

// Chunk type markers.
const (
	ChunkTypeColor      uint16 = 0x0001 // ChunkTypeColor marks a single color record.
	ChunkTypeGroupStart uint16 = 0xC001 // ChunkTypeGroupStart opens a named swatch group.
	ChunkTypeGroupEnd   uint16 = 0xC002 // ChunkTypeGroupEnd closes a group and carries no body.
)

// Sizes of fixed sections in bytes.
const (
	HeaderSize      = 12 // magic + major + minor + chunk count
	ChunkHeaderSize = 6  // type + body length
	ModeTagSize     = 4  // space-padded color mode tag
	ChannelSize     = 4  // one float32 channel value
	RoleSize        = 2  // int16 color role
	NamePrefixSize  = 2  // uint16 UTF-16 code unit count
)

// GroupEndMarker is the complete group-end chunk: type 0xC002 with a zero-length body.
var GroupEndMarker = [ChunkHeaderSize]byte{0xC0, 0x02, 0x00, 0x00, 0x00, 0x00}

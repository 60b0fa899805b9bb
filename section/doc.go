// Package section defines the physical layout of an Adobe Swatch Exchange (ASE) file.
//
// It holds the magic, version and chunk-type constants together with the fixed
// file and chunk headers. Higher-level packages (swatch) decide what goes into
// chunk bodies; this package only describes the frames around them.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (12 bytes, fixed)                                │
//	│  - Magic "ASEF" (4 bytes, raw ASCII)                    │
//	│  - VersionMajor = 1 (uint16)                            │
//	│  - VersionMinor = 0 (uint16)                            │
//	│  - ChunkCount (uint32)                                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Group chunks, in caller order                           │
//	│  - Group start 0xC001 + name                            │
//	│  - Color chunks 0x0001 of the members                   │
//	│  - Group end   0xC002, zero-length body                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Standalone color chunks 0x0001, in caller order         │
//	└─────────────────────────────────────────────────────────┘
//
// Every multi-byte field is big-endian.
//
// # Chunk Format
//
//	Bytes  | Field  | Type   | Description
//	-------|--------|--------|----------------------------------------------
//	0-1    | Type   | uint16 | 0x0001 color, 0xC001 group start, 0xC002 end
//	2-5    | Length | uint32 | body bytes following this field
//	6-     | Body   | bytes  | type specific
//
// A group start's Length covers only the encoded group name; the member colors
// are separate chunks that follow it and are counted separately in ChunkCount.
//
// Color chunk body:
//
//	Field          | Size      | Description
//	---------------|-----------|-------------------------------------------
//	Name length    | 2         | UTF-16 code units including terminator
//	Name           | 2 × units | UTF-16BE, null-terminated
//	Mode tag       | 4         | "RGB ", "LAB ", "CMYK" or "Gray"
//	Channel values | 4 × N     | float32 per channel
//	Role           | 2         | int16: 0 global, 1 spot, 2 process
package section

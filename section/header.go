package section

import "github.com/arloliu/ase/endian"

// FileHeader is the fixed 12-byte header at the start of an ASE file.
type FileHeader struct {
	// VersionMajor is always 1 for files written by this package.
	VersionMajor uint16 // byte offset 4-5
	// VersionMinor is always 0 for files written by this package.
	VersionMinor uint16 // byte offset 6-7
	// ChunkCount counts every chunk in the file: group starts, group ends and colors.
	ChunkCount uint32 // byte offset 8-11
}

// NewFileHeader creates a version 1.0 header for chunkCount chunks.
func NewFileHeader(chunkCount uint32) FileHeader {
	return FileHeader{
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		ChunkCount:   chunkCount,
	}
}

// AppendTo appends the big-endian header to dst and returns the extended slice.
func (h FileHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()

	dst = append(dst, Magic...)
	dst = engine.AppendUint16(dst, h.VersionMajor)
	dst = engine.AppendUint16(dst, h.VersionMinor)
	dst = engine.AppendUint32(dst, h.ChunkCount)

	return dst
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h FileHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ChunkHeader prefixes every chunk: a type marker and the byte length of the body that follows.
//
// For group-start chunks the length covers only the group name, not the member
// color chunks nested after it.
type ChunkHeader struct {
	Type   uint16 // byte offset 0-1
	Length uint32 // byte offset 2-5
}

// AppendTo appends the big-endian chunk header to dst and returns the extended slice.
func (h ChunkHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()

	dst = engine.AppendUint16(dst, h.Type)
	dst = engine.AppendUint32(dst, h.Length)

	return dst
}

// ColorBodySize returns the body length of a color chunk whose encoded name
// occupies nameSize bytes (prefix included) and which carries channels values.
func ColorBodySize(nameSize, channels int) int {
	return nameSize + ModeTagSize + channels*ChannelSize + RoleSize
}

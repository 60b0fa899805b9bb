package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileHeader_Bytes(t *testing.T) {
	require := require.New(t)

	h := NewFileHeader(5)
	require.Equal(uint16(1), h.VersionMajor)
	require.Equal(uint16(0), h.VersionMinor)

	b := h.Bytes()
	require.Len(b, HeaderSize)
	require.Equal([]byte{
		'A', 'S', 'E', 'F',
		0x00, 0x01,
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x05,
	}, b)
}

func TestFileHeader_AppendTo(t *testing.T) {
	prefix := []byte{0xAA}
	b := NewFileHeader(0xFFFFFFFF).AppendTo(prefix)

	require.Len(t, b, 1+HeaderSize)
	require.Equal(t, byte(0xAA), b[0])
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, b[9:13])
}

func TestChunkHeader_AppendTo(t *testing.T) {
	tests := []struct {
		name   string
		header ChunkHeader
		want   []byte
	}{
		{"color", ChunkHeader{Type: ChunkTypeColor, Length: 28}, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x1C}},
		{"group start", ChunkHeader{Type: ChunkTypeGroupStart, Length: 14}, []byte{0xC0, 0x01, 0x00, 0x00, 0x00, 0x0E}},
		{"group end", ChunkHeader{Type: ChunkTypeGroupEnd}, GroupEndMarker[:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.header.AppendTo(nil)
			require.Len(t, got, ChunkHeaderSize)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorBodySize(t *testing.T) {
	// "Red": 2-byte prefix + 8 bytes UTF-16, RGB: 10 + 4 + 3*4 + 2.
	require.Equal(t, 28, ColorBodySize(10, 3))
	require.Equal(t, 10+4+16+2, ColorBodySize(10, 4))
	require.Equal(t, 4+4+0+2, ColorBodySize(4, 0))
}

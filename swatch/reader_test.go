package swatch

import (
	"math"
	"testing"
	"unicode/utf16"

	"github.com/arloliu/ase/endian"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/section"
	"github.com/stretchr/testify/require"
)

// decodedFile is the result of reading back an encoded file in tests.
type decodedFile struct {
	header     section.FileHeader
	chunkTypes []uint16
	doc        Document
}

// chunkReader walks encoded bytes and fails the test on any framing mismatch.
type chunkReader struct {
	t    *testing.T
	data []byte
	off  int
}

func (r *chunkReader) next(n int) []byte {
	r.t.Helper()
	require.LessOrEqual(r.t, r.off+n, len(r.data), "read past end at offset %d", r.off)
	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

func (r *chunkReader) u16() uint16 {
	return endian.GetBigEndianEngine().Uint16(r.next(2))
}

func (r *chunkReader) u32() uint32 {
	return endian.GetBigEndianEngine().Uint32(r.next(4))
}

func (r *chunkReader) name() string {
	r.t.Helper()
	units := int(r.u16())
	require.Positive(r.t, units, "name must include its terminator")

	raw := r.next(units * 2)
	codes := make([]uint16, units)
	for i := range codes {
		codes[i] = endian.GetBigEndianEngine().Uint16(raw[i*2:])
	}
	require.Zero(r.t, codes[units-1], "name must be null-terminated")

	return string(utf16.Decode(codes[:units-1]))
}

func modeFromTag(t *testing.T, tag []byte) format.ColorMode {
	t.Helper()
	for _, m := range []format.ColorMode{format.ColorModeRGB, format.ColorModeLAB, format.ColorModeCMYK, format.ColorModeGray} {
		mt := m.Tag()
		if string(mt[:]) == string(tag) {
			return m
		}
	}
	require.Failf(t, "unknown mode tag", "%q", tag)

	return 0
}

func readColorBody(t *testing.T, body []byte) ColorObject {
	t.Helper()
	r := &chunkReader{t: t, data: body}

	obj := ColorObject{Name: r.name()}
	obj.Color.Mode = modeFromTag(t, r.next(section.ModeTagSize))

	remaining := len(body) - r.off - section.RoleSize
	require.Zero(t, remaining%section.ChannelSize, "channel bytes must be a multiple of 4")
	for range remaining / section.ChannelSize {
		obj.Color.Values = append(obj.Color.Values, math.Float32frombits(r.u32()))
	}
	obj.Role = format.ColorRole(int16(r.u16())) //nolint:gosec
	require.Equal(t, len(body), r.off)

	return obj
}

// decodeFile reads an ASE file produced by Encode back into a Document.
func decodeFile(t *testing.T, data []byte) decodedFile {
	t.Helper()
	r := &chunkReader{t: t, data: data}

	require.Equal(t, section.Magic, string(r.next(4)))
	out := decodedFile{
		header: section.FileHeader{
			VersionMajor: r.u16(),
			VersionMinor: r.u16(),
			ChunkCount:   r.u32(),
		},
	}

	var group *Group
	for r.off < len(data) {
		typ := r.u16()
		length := int(r.u32())
		out.chunkTypes = append(out.chunkTypes, typ)

		switch typ {
		case section.ChunkTypeGroupStart:
			require.Nil(t, group, "nested group start")
			body := &chunkReader{t: t, data: r.next(length)}
			group = &Group{Name: body.name()}
			require.Equal(t, length, body.off, "group start length must cover only the name")
		case section.ChunkTypeGroupEnd:
			require.NotNil(t, group, "group end without start")
			require.Zero(t, length)
			out.doc.Groups = append(out.doc.Groups, *group)
			group = nil
		case section.ChunkTypeColor:
			obj := readColorBody(t, r.next(length))
			if group != nil {
				group.Colors = append(group.Colors, obj)
			} else {
				out.doc.Colors = append(out.doc.Colors, obj)
			}
		default:
			require.Failf(t, "unknown chunk type", "0x%04x", typ)
		}
	}
	require.Nil(t, group, "unterminated group")
	require.Equal(t, int(out.header.ChunkCount), len(out.chunkTypes))

	return out
}

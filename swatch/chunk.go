package swatch

import (
	"fmt"
	"math"

	"github.com/arloliu/ase/encoding"
	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/section"
)

// AppendColorChunk appends the color chunk of obj to p:
// type 0x0001, the body length, then name, mode tag, channel values and role.
//
// The body length is computed before anything is written, so the chunk is
// produced in a single pass. On error nothing is appended.
func AppendColorChunk(p *encoding.Packer, obj ColorObject) error {
	mode := obj.Color.Mode
	if !mode.IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidColorMode, uint8(mode))
	}

	name, err := encoding.EncodeName(obj.Name)
	if err != nil {
		return err
	}

	bodySize := section.ColorBodySize(name.Size(), len(obj.Color.Values))
	if uint64(bodySize) > math.MaxUint32 {
		return fmt.Errorf("%w: color body of %d bytes", errs.ErrChunkTooLarge, bodySize)
	}

	p.Grow(section.ChunkHeaderSize + bodySize)
	p.PutChunkHeader(section.ChunkHeader{Type: section.ChunkTypeColor, Length: uint32(bodySize)}) //nolint:gosec
	p.PutName(name)

	tag := mode.Tag()
	p.PutFixed(tag[:])
	for _, v := range obj.Color.Values {
		p.PutFloat32(v)
	}
	p.PutInt16(int16(obj.Role))

	return nil
}

// AppendGroupChunk appends g to p: the group start chunk, the color chunk of
// every member in order and the fixed group end marker.
//
// The start chunk's length covers the encoded name only. If a member fails to
// encode, p is truncated back to its length on entry, so nothing of g remains.
func AppendGroupChunk(p *encoding.Packer, g Group) error {
	name, err := encoding.EncodeName(g.Name)
	if err != nil {
		return err
	}

	start := p.Len()
	p.Grow(section.ChunkHeaderSize + name.Size())
	p.PutChunkHeader(section.ChunkHeader{Type: section.ChunkTypeGroupStart, Length: uint32(name.Size())}) //nolint:gosec
	p.PutName(name)

	for i := range g.Colors {
		if err := AppendColorChunk(p, g.Colors[i]); err != nil {
			p.Truncate(start)
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
	}

	p.PutFixed(section.GroupEndMarker[:])

	return nil
}

package encoding

import (
	"math"

	"github.com/arloliu/ase/endian"
	"github.com/arloliu/ase/internal/pool"
	"github.com/arloliu/ase/section"
)

// Packer appends fixed-width primitives to a ByteBuffer in the byte order of its engine.
//
// No Packer method fails: every source type fits its wire width exactly.
type Packer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewPacker creates a big-endian Packer writing to buf.
func NewPacker(buf *pool.ByteBuffer) *Packer {
	return &Packer{buf: buf, engine: endian.GetBigEndianEngine()}
}

// PutUint16 appends v as 2 bytes.
func (p *Packer) PutUint16(v uint16) {
	p.buf.B = p.engine.AppendUint16(p.buf.B, v)
}

// PutUint32 appends v as 4 bytes.
func (p *Packer) PutUint32(v uint32) {
	p.buf.B = p.engine.AppendUint32(p.buf.B, v)
}

// PutInt16 appends v as 2 bytes in two's complement.
func (p *Packer) PutInt16(v int16) {
	p.buf.B = p.engine.AppendUint16(p.buf.B, uint16(v)) //nolint:gosec
}

// PutFloat32 appends the IEEE-754 binary32 bit pattern of v as 4 bytes.
func (p *Packer) PutFloat32(v float32) {
	p.buf.B = p.engine.AppendUint32(p.buf.B, math.Float32bits(v))
}

// PutFixed appends b verbatim, with no length prefix or terminator.
// The caller pads or truncates b to the field width beforehand.
func (p *Packer) PutFixed(b []byte) {
	p.buf.MustWrite(b)
}

// PutName appends a length-prefixed name produced by EncodeName.
func (p *Packer) PutName(n Name) {
	p.PutUint16(uint16(n.Units())) //nolint:gosec
	p.PutFixed(n.body)
}

// PutChunkHeader appends the 6-byte type and body length prefix of a chunk.
func (p *Packer) PutChunkHeader(h section.ChunkHeader) {
	p.buf.B = h.AppendTo(p.buf.B)
}

// Truncate discards everything after the first n bytes.
// It is used to roll back a partially written chunk.
func (p *Packer) Truncate(n int) {
	if n < 0 || n > len(p.buf.B) {
		panic("encoding: Packer.Truncate out of range")
	}
	p.buf.B = p.buf.B[:n]
}

// Grow ensures n more bytes can be appended without reallocating.
func (p *Packer) Grow(n int) {
	p.buf.Grow(n)
}

// Len returns the number of bytes in the underlying buffer.
func (p *Packer) Len() int {
	return p.buf.Len()
}

// Bytes returns the underlying buffer contents. The slice aliases the buffer.
func (p *Packer) Bytes() []byte {
	return p.buf.Bytes()
}

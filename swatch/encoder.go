package swatch

import (
	"fmt"
	"io"

	"github.com/arloliu/ase/encoding"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/internal/options"
	"github.com/arloliu/ase/internal/pool"
	"github.com/arloliu/ase/section"
)

// Encoder turns a Document into ASE bytes.
//
// An Encoder only holds immutable configuration, so a single instance may be
// shared by concurrent goroutines. Every Encode call works on its own pooled buffer.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates an Encoder. Without options it produces uncompressed ASE files.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: cfg}, nil
}

// Encode serializes doc: the file header with the total chunk count, every
// group chunk in order, then every standalone color chunk in order.
//
// Errors are terminal; no partial output is returned. Failures are wrapped
// with the position of the offending entry, e.g. "groups[1].colors[3]".
func (e *Encoder) Encode(doc Document) ([]byte, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if err := e.encodeInto(buf, doc); err != nil {
		return nil, err
	}

	// The buffer goes back to the pool, so the result must not alias it.
	return e.compress(buf.Clone())
}

// EncodeTo encodes doc and writes the result to w.
//
// Uncompressed output is written straight from the pooled buffer. Nothing is
// written to w when encoding fails. Returns the number of bytes written.
func (e *Encoder) EncodeTo(w io.Writer, doc Document) (int64, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if err := e.encodeInto(buf, doc); err != nil {
		return 0, err
	}

	if e.compression == format.CompressionNone {
		return buf.WriteTo(w)
	}

	data, err := e.compress(buf.Bytes())
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)

	return int64(n), err
}

func (e *Encoder) encodeInto(buf *pool.ByteBuffer, doc Document) error {
	count, err := doc.ChunkCount()
	if err != nil {
		return err
	}

	if e.bufferSize > 0 {
		buf.Grow(e.bufferSize)
	}

	buf.B = section.NewFileHeader(count).AppendTo(buf.B)

	p := encoding.NewPacker(buf)
	for i := range doc.Groups {
		if err := AppendGroupChunk(p, doc.Groups[i]); err != nil {
			return fmt.Errorf("groups[%d]: %w", i, err)
		}
	}

	for i := range doc.Colors {
		if err := AppendColorChunk(p, doc.Colors[i]); err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
	}

	return nil
}

func (e *Encoder) compress(data []byte) ([]byte, error) {
	compressed, err := e.codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", e.compression, err)
	}

	return compressed, nil
}

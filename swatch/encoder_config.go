package swatch

import (
	"fmt"

	"github.com/arloliu/ase/compress"
	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/internal/options"
)

// EncoderConfig holds the immutable settings of an Encoder.
type EncoderConfig struct {
	bufferSize  int
	compression format.CompressionType
	codec       compress.Codec
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}
}

// WithInitialBufferSize sets a capacity hint for the output buffer, in bytes.
// Use it when encoding documents much larger than a few hundred colors.
func WithInitialBufferSize(n int) EncoderOption {
	if n <= 0 {
		return options.New(func(*EncoderConfig) error {
			return fmt.Errorf("%w: buffer size must be positive, got %d", errs.ErrInvalidOption, n)
		})
	}

	return options.NoError(func(c *EncoderConfig) {
		c.bufferSize = n
	})
}

// WithCompression compresses the complete encoded file with the given algorithm.
//
// The default, format.CompressionNone, returns the plain ASE file. Compressed
// output is meant for storage or transport and must be decompressed with the
// matching compress.Codec before a design tool can read it.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return err
		}
		c.compression = comp
		c.codec = codec

		return nil
	})
}

// Compression returns the configured output compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.compression
}

// BufferSize returns the output buffer capacity hint, 0 if unset.
func (c *EncoderConfig) BufferSize() int {
	return c.bufferSize
}

// Package ase encodes color swatches into the Adobe Swatch Exchange (ASE) format.
//
// ASE is the binary format design tools use to exchange named colors. A file
// is a 12-byte header followed by chunks: named groups of colors (bounded by
// start and end markers) and standalone colors. All numbers are big-endian and
// names are null-terminated UTF-16.
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/ase"
//	    "github.com/arloliu/ase/format"
//	    "github.com/arloliu/ase/swatch"
//	)
//
//	groups := []swatch.Group{{
//	    Name: "Palette 1",
//	    Colors: []swatch.ColorObject{
//	        {Name: "Red", Role: format.RoleGlobal, Color: swatch.RGB(1, 0, 0)},
//	        {Name: "Green", Role: format.RoleGlobal, Color: swatch.RGB(0, 1, 0)},
//	    },
//	}}
//	colors := []swatch.ColorObject{
//	    {Name: "Blue", Role: format.RoleGlobal, Color: swatch.RGB(0, 0, 1)},
//	}
//
//	data, err := ase.Encode(groups, colors)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("palette.ase", data, 0o644)
//
// Documents can also be loaded from JSON or YAML with the swatchfile package.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the swatch package.
// For options such as output compression, use NewEncoder or the swatch package
// directly.
package ase

import (
	"github.com/arloliu/ase/internal/hash"
	"github.com/arloliu/ase/swatch"
)

// Encode serializes swatch groups followed by standalone colors into ASE bytes.
//
// Both slices are written in the order given. It returns an error instead of
// producing a corrupt file when a name is too long for its 16-bit length
// prefix, the chunk count overflows 32 bits, or a color mode is unknown.
func Encode(groups []swatch.Group, colors []swatch.ColorObject) ([]byte, error) {
	return EncodeDocument(swatch.Document{Groups: groups, Colors: colors})
}

// EncodeDocument serializes doc into ASE bytes with default settings.
func EncodeDocument(doc swatch.Document) ([]byte, error) {
	return defaultEncoder.Encode(doc)
}

// NewEncoder creates a reusable encoder with custom options.
//
// Available options:
//   - swatch.WithInitialBufferSize(n)
//   - swatch.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Example:
//
//	encoder, err := ase.NewEncoder(swatch.WithCompression(format.CompressionZstd))
func NewEncoder(opts ...swatch.EncoderOption) (*swatch.Encoder, error) {
	return swatch.NewEncoder(opts...)
}

// Digest returns the 64-bit xxHash of encoded data, suitable as a cache key
// or for detecting unchanged output.
func Digest(data []byte) uint64 {
	return hash.Digest(data)
}

var defaultEncoder = mustDefaultEncoder()

func mustDefaultEncoder() *swatch.Encoder {
	encoder, err := swatch.NewEncoder()
	if err != nil {
		panic(err)
	}

	return encoder
}

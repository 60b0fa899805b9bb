// Package errs defines the sentinel errors returned by the ase packages.
//
// Errors are wrapped with context via fmt.Errorf("%w: ...") at the call site,
// so callers should match them with errors.Is.
package errs

import "errors"

var (
	// ErrNameTooLong is returned when a name's UTF-16 encoding, including the
	// terminator, does not fit the 16-bit length prefix.
	ErrNameTooLong = errors.New("name too long")

	// ErrChunkCountOverflow is returned when the total chunk count of a document
	// does not fit the 32-bit header field.
	ErrChunkCountOverflow = errors.New("chunk count overflow")

	// ErrChunkTooLarge is returned when a chunk body does not fit the 32-bit length field.
	ErrChunkTooLarge = errors.New("chunk too large")

	// ErrInvalidColorMode is returned for a color mode outside RGB, LAB, CMYK and Gray.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidColorRole is returned when a color role cannot be parsed.
	ErrInvalidColorRole = errors.New("invalid color role")

	// ErrInvalidDocument is returned by the document loader for malformed input.
	ErrInvalidDocument = errors.New("invalid swatch document")

	// ErrInvalidOption is returned when an encoder option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

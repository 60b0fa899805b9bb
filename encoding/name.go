package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/section"
	"golang.org/x/text/encoding/unicode"
)

// MaxNameUnits is the largest UTF-16 code unit count, terminator included,
// that the 16-bit name length prefix can carry.
const MaxNameUnits = math.MaxUint16

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// Name is a name already encoded as null-terminated UTF-16BE.
type Name struct {
	body []byte
}

// EncodeName appends U+0000 to name and encodes the result as UTF-16BE.
// Code points above U+FFFF become surrogate pairs and invalid UTF-8 is
// replaced with U+FFFD.
//
// Returns errs.ErrNameTooLong when the encoding exceeds MaxNameUnits code units,
// rather than letting the 16-bit prefix wrap.
func EncodeName(name string) (Name, error) {
	src := make([]byte, 0, len(name)+1)
	src = append(src, name...)
	src = append(src, 0)

	body, err := utf16BE.NewEncoder().Bytes(src)
	if err != nil {
		return Name{}, fmt.Errorf("encode name as UTF-16: %w", err)
	}

	if units := len(body) / 2; units > MaxNameUnits {
		return Name{}, fmt.Errorf("%w: %d UTF-16 code units, max %d", errs.ErrNameTooLong, units, MaxNameUnits)
	}

	return Name{body: body}, nil
}

// Units returns the number of UTF-16 code units, terminator included.
func (n Name) Units() int {
	return len(n.body) / 2
}

// Size returns the encoded size in bytes: the 2-byte prefix plus the UTF-16 body.
func (n Name) Size() int {
	return section.NamePrefixSize + len(n.body)
}

// Body returns the UTF-16BE bytes without the length prefix.
func (n Name) Body() []byte {
	return n.body
}

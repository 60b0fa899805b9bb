package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ase/errs"
)

type (
	ColorMode       uint8
	ColorRole       int16
	CompressionType uint8
)

const (
	ColorModeRGB  ColorMode = 0x1 // ColorModeRGB represents 3 channels in [0,1].
	ColorModeLAB  ColorMode = 0x2 // ColorModeLAB represents L in [0,1], a and b in [-128,127].
	ColorModeCMYK ColorMode = 0x3 // ColorModeCMYK represents 4 channels in [0,1].
	ColorModeGray ColorMode = 0x4 // ColorModeGray represents a single channel in [0,1].
)

// Color roles as written to the 16-bit signed role field of a color chunk.
const (
	RoleGlobal  ColorRole = 0
	RoleSpot    ColorRole = 1
	RoleProcess ColorRole = 2
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var modeTags = [...][4]byte{
	ColorModeRGB:  {'R', 'G', 'B', ' '},
	ColorModeLAB:  {'L', 'A', 'B', ' '},
	ColorModeCMYK: {'C', 'M', 'Y', 'K'},
	ColorModeGray: {'G', 'r', 'a', 'y'},
}

// IsValid reports whether m is one of the four ASE color modes.
func (m ColorMode) IsValid() bool {
	return m >= ColorModeRGB && m <= ColorModeGray
}

// Tag returns the space-padded 4-byte tag identifying m in a color chunk.
// The zero array is returned for an invalid mode.
func (m ColorMode) Tag() [4]byte {
	if !m.IsValid() {
		return [4]byte{}
	}

	return modeTags[m]
}

// Channels returns the number of channel values a color in mode m is expected to carry.
// The encoder does not enforce it.
func (m ColorMode) Channels() int {
	switch m {
	case ColorModeRGB, ColorModeLAB:
		return 3
	case ColorModeCMYK:
		return 4
	case ColorModeGray:
		return 1
	default:
		return 0
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorModeRGB:
		return "RGB"
	case ColorModeLAB:
		return "LAB"
	case ColorModeCMYK:
		return "CMYK"
	case ColorModeGray:
		return "Gray"
	default:
		return "Unknown"
	}
}

// ParseColorMode parses a case-insensitive mode name ("rgb", "lab", "cmyk", "gray" or "grey").
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return ColorModeRGB, nil
	case "lab":
		return ColorModeLAB, nil
	case "cmyk":
		return ColorModeCMYK, nil
	case "gray", "grey":
		return ColorModeGray, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidColorMode, s)
	}
}

// IsValid reports whether r is Global, Spot or Process.
func (r ColorRole) IsValid() bool {
	return r >= RoleGlobal && r <= RoleProcess
}

func (r ColorRole) String() string {
	switch r {
	case RoleGlobal:
		return "Global"
	case RoleSpot:
		return "Spot"
	case RoleProcess:
		return "Process"
	default:
		return "Unknown"
	}
}

// ParseColorRole parses a case-insensitive role name or its numeric value ("0", "1", "2").
func ParseColorRole(s string) (ColorRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return RoleGlobal, nil
	case "spot":
		return RoleSpot, nil
	case "process":
		return RoleProcess, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil || !ColorRole(n).IsValid() {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidColorRole, s)
	}

	return ColorRole(n), nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, s)
	}
}

package swatch

import (
	"fmt"
	"math"

	"github.com/arloliu/ase/errs"
	"github.com/arloliu/ase/format"
)

// Color is a color mode plus its channel values.
//
// The expected number of values depends on the mode (see format.ColorMode.Channels),
// but it is not enforced: values are written exactly as supplied.
type Color struct {
	Mode   format.ColorMode
	Values []float32
}

// RGB returns an RGB color; channels are expected in [0,1].
func RGB(r, g, b float32) Color {
	return Color{Mode: format.ColorModeRGB, Values: []float32{r, g, b}}
}

// LAB returns a LAB color; l is expected in [0,1], a and b in [-128,127].
func LAB(l, a, b float32) Color {
	return Color{Mode: format.ColorModeLAB, Values: []float32{l, a, b}}
}

// CMYK returns a CMYK color; channels are expected in [0,1].
func CMYK(c, m, y, k float32) Color {
	return Color{Mode: format.ColorModeCMYK, Values: []float32{c, m, y, k}}
}

// Gray returns a single channel gray color in [0,1].
func Gray(v float32) Color {
	return Color{Mode: format.ColorModeGray, Values: []float32{v}}
}

// ColorObject is a named color entry with its role.
type ColorObject struct {
	Name  string
	Role  format.ColorRole
	Color Color
}

// Group is a named, ordered list of colors. An empty group is valid.
type Group struct {
	Name   string
	Colors []ColorObject
}

// Document is a complete encode request: groups first, then standalone colors.
// Order within both lists is preserved in the output.
type Document struct {
	Groups []Group
	Colors []ColorObject
}

// ChunkCount returns the number of chunks the document encodes to:
// 2 + len(colors) per group plus one per standalone color.
//
// Returns errs.ErrChunkCountOverflow if the count does not fit in 32 bits.
func (d Document) ChunkCount() (uint32, error) {
	var c chunkCounter
	for i := range d.Groups {
		if err := c.add(2 + len(d.Groups[i].Colors)); err != nil {
			return 0, err
		}
	}
	if err := c.add(len(d.Colors)); err != nil {
		return 0, err
	}

	return uint32(c.total), nil //nolint:gosec
}

type chunkCounter struct {
	total uint64
}

func (c *chunkCounter) add(n int) error {
	c.total += uint64(n) //nolint:gosec
	if c.total > math.MaxUint32 {
		return fmt.Errorf("%w: %d chunks, max %d", errs.ErrChunkCountOverflow, c.total, uint32(math.MaxUint32))
	}

	return nil
}

// Package swatch models swatch documents and encodes them into Adobe Swatch Exchange (ASE) bytes.
//
// A Document holds named groups of colors and standalone colors. Encoding
// writes the file header with the total chunk count, then every group as a
// start chunk, its member color chunks and an end marker, then every
// standalone color chunk. Order is preserved exactly.
//
// # Basic Usage
//
//	doc := swatch.Document{
//	    Groups: []swatch.Group{{
//	        Name: "Brand",
//	        Colors: []swatch.ColorObject{
//	            {Name: "Red", Role: format.RoleGlobal, Color: swatch.RGB(1, 0, 0)},
//	        },
//	    }},
//	    Colors: []swatch.ColorObject{
//	        {Name: "Ink", Role: format.RoleSpot, Color: swatch.CMYK(0, 0, 0, 1)},
//	    },
//	}
//
//	encoder, _ := swatch.NewEncoder()
//	data, err := encoder.Encode(doc)
//
// # Validation
//
// The encoder transcribes values without judging them: channel counts that do
// not match the mode, out of range floats and empty names are all written
// as given. It only rejects input the format cannot represent:
//   - errs.ErrNameTooLong: a name needs more than 65535 UTF-16 code units
//   - errs.ErrChunkCountOverflow: the document has more than 2^32-1 chunks
//   - errs.ErrInvalidColorMode: a mode outside RGB, LAB, CMYK and Gray
//
// # Thread Safety
//
// Document values are read-only during encoding and an Encoder carries only
// immutable configuration, so Encode may be called concurrently.
package swatch

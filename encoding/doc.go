// Package encoding provides the low-level writers used to build ASE chunks.
//
// Packer appends fixed-width big-endian primitives (uint16, uint32, int16,
// float32 and fixed-length byte strings) to a pooled byte buffer. EncodeName
// converts a name into the length-prefixed, null-terminated UTF-16BE form
// shared by color and group chunks:
//
//	name, err := encoding.EncodeName("Red")
//	if err != nil {
//	    return err // errs.ErrNameTooLong
//	}
//	p := encoding.NewPacker(buf)
//	p.PutName(name) // 00 04 00 52 00 65 00 64 00 00
//
// Neither type is safe for concurrent use; each encode call owns its own Packer.
package encoding

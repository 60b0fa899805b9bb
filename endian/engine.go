// Package endian provides the byte order engine used by the ase packers.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// same value can either patch a fixed slot or append to a growing buffer.
//
// ASE files are big-endian throughout, so encoders obtain their engine from
// GetBigEndianEngine:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, 0xC001)
//
// All functions and returned engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of every ASE field.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

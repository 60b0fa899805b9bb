package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	require := require.New(t)

	engine := GetBigEndianEngine()
	require.Equal(binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 0xC001)
	buf = engine.AppendUint32(buf, 0x0000001C)
	require.Equal([]byte{0xC0, 0x01, 0x00, 0x00, 0x00, 0x1C}, buf)
}

func TestEngineSymmetry(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint32(nil, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf))

	slot := make([]byte, 2)
	engine.PutUint16(slot, 0xABCD)
	require.Equal(t, uint16(0xABCD), engine.Uint16(slot))
}

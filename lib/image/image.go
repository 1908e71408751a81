package image

import (
	"io"

	"github.com/marcinbor85/gohex"
)

const rowLen = 16

// Write emits data as an Intel HEX image positioned at its absolute
// address. Records carry 32-bit addresses; higher bits of base are
// dropped.
func Write(w io.Writer, base uint64, data []byte) error {
	if len(data) < 1 {
		return nil
	}
	m := gohex.NewMemory()
	if err := m.AddBinary(uint32(base), data); err != nil {
		return err
	}
	return m.DumpIntelHex(w, rowLen)
}

package mem

import (
	"runtime"
	"strconv"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestPageMath(t *testing.T) {
	cases := []struct {
		pc   uintptr
		base uintptr
		off  uintptr
	}{
		{0x401010, 0x401000, 0x10},
		{0x401000, 0x401000, 0x0},
		{0x401fff, 0x401000, 0xfff},
		{0x0, 0x0, 0x0},
		{0x7f2a1c004abc, 0x7f2a1c004000, 0xabc},
	}
	for _, c := range cases {
		assert.Equal(t, c.base, PageBase(c.pc))
		assert.Equal(t, c.off, PageOff(c.pc))
		assert.Equal(t, c.pc, PageBase(c.pc)+PageOff(c.pc))
	}
}

func TestWordSize(t *testing.T) {
	assert.Equal(t, strconv.IntSize/8, WordSize())
}

func TestRaw(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x41}
	view := Raw(uintptr(unsafe.Pointer(&buf[0])), len(buf))
	assert.Equal(t, buf, view)
	runtime.KeepAlive(buf)
}

func TestFuncPC(t *testing.T) {
	pc := FuncPC(TestFuncPC)
	assert.NotZero(t, pc)

	fn := runtime.FuncForPC(pc)
	if assert.NotNil(t, fn) {
		assert.Equal(t, pc, fn.Entry())
	}

	assert.Panics(t, func() { FuncPC(42) })
}

package mem

import (
	"reflect"
	"unsafe"
)

const (
	pageShift = 12 // 4096 = 1 << 12
	pageMask  = uintptr(1)<<pageShift - 1
)

// Raw returns a view of n bytes of process memory starting at addr.
// The range is not checked against any mapping; touching an unmapped
// or unreadable byte faults the process.
func Raw(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

// PageBase rounds pc down to its containing page.
func PageBase(pc uintptr) uintptr {
	return pc &^ pageMask
}

// PageOff is the distance from the containing page base to pc.
func PageOff(pc uintptr) uintptr {
	return pc & pageMask
}

// WordSize is the byte width of the native word.
func WordSize() int {
	return int(unsafe.Sizeof(int(0)))
}

// FuncPC returns the entry address of fn, which must be a func value.
func FuncPC(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic("mem: FuncPC on non-func value")
	}
	return v.Pointer()
}

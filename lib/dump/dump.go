package dump

import (
	"fmt"
	"io"
)

// Report is everything one run prints on stdout. It is assembled once
// in cmd and rendered here, so the formatting is covered by tests that
// never touch live code pages.
type Report struct {
	EntryPC  uintptr
	PageBase uintptr
	WordSize int
	Counter  int

	// Bytes holds the page contents from PageBase up to (exclusive)
	// EntryPC, in address order.
	Bytes []byte
}

// WriteTo renders the transcript:
//
//	Sizeof(long)=<word size>, x=<counter>
//	0x<addr> = <byte>          (one line per byte of the prefix)
//	Hi world
//	Hello world
func (r Report) WriteTo(w io.Writer) (n int64, err error) {
	var c int
	c, err = fmt.Fprintf(w, "Sizeof(long)=%d, x=%d\n", r.WordSize, r.Counter)
	n += int64(c)
	if err != nil {
		return
	}
	for i, b := range r.Bytes {
		c, err = fmt.Fprintf(w, "0x%x = %d\n", uint64(r.PageBase)+uint64(i), b)
		n += int64(c)
		if err != nil {
			return
		}
	}
	c, err = io.WriteString(w, "Hi world\nHello world\n")
	n += int64(c)
	return
}

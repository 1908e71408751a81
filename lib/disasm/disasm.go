package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/ii64/pagepeek/lib/util"
)

// https://cs.opensource.google/go/go/+/master:src/cmd/internal/objfile/disasm.go

// SymLookup resolves the symbol containing addr, if any.
type SymLookup func(addr uint64) (name string, base uint64)

// Line is one rendered row. Raw is set instead of Text when the bytes
// at PC did not decode as an instruction.
type Line struct {
	PC   uint64
	Text string
	Raw  []byte
}

// Arch renders a block of code bytes. The dump prefix is usually a mix
// of function bodies and padding, so undecodable runs are expected and
// come back as Raw lines rather than errors.
type Arch interface {
	Name() string
	Render(code []byte, pc uint64, symname SymLookup) []Line
}

var arches = map[string]Arch{
	"386":   Arch386,
	"amd64": ArchAMD64,
	"arm64": ArchARM64,
}

// Lookup finds an Arch by GOARCH name.
func Lookup(name string) (Arch, bool) {
	a, exist := arches[name]
	return a, exist
}

// mergeRaw coalesces adjacent Raw lines so an undecodable run renders
// as one row group instead of one row per resync byte.
func mergeRaw(lines []Line) []Line {
	out := lines[:0]
	for _, ln := range lines {
		if ln.Raw != nil && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Raw != nil && last.PC+uint64(len(last.Raw)) == ln.PC {
				last.Raw = append(last.Raw, ln.Raw...)
				continue
			}
		}
		out = append(out, ln)
	}
	return out
}

// Fprint writes one row per line as "0x<pc>:\t<text>". Raw runs are
// emitted as BYTE groups, eight per row.
func Fprint(w io.Writer, lines []Line) (err error) {
	for _, ln := range lines {
		if ln.Raw == nil {
			if _, err = fmt.Fprintf(w, "0x%x:\t%s\n", ln.PC, ln.Text); err != nil {
				return
			}
			continue
		}
		pc := ln.PC
		for _, group := range util.Chunk(ln.Raw, 8) {
			parts := make([]string, len(group))
			for i, b := range group {
				parts[i] = fmt.Sprintf("BYTE $0x%02x", b)
			}
			if _, err = fmt.Fprintf(w, "0x%x:\t%s\n", pc, strings.Join(parts, "; ")); err != nil {
				return
			}
			pc += uint64(len(group))
		}
	}
	return
}

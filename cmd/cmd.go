package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"

	"github.com/ii64/pagepeek/conf"
	"github.com/ii64/pagepeek/lib/disasm"
	"github.com/ii64/pagepeek/lib/dump"
	"github.com/ii64/pagepeek/lib/image"
	"github.com/ii64/pagepeek/lib/mem"
	"github.com/ii64/pagepeek/lib/proc"
)

// Main peeks at the page containing entryPC. The stdout transcript is
// fixed; everything a flag enables goes to stderr or to a file so the
// transcript stays the same for every invocation.
func Main(cfg *conf.Config, entryPC uintptr) (err error) {
	base := mem.PageBase(entryPC)
	off := mem.PageOff(entryPC)

	r := dump.Report{
		EntryPC:  entryPC,
		PageBase: base,
		WordSize: mem.WordSize(),
		Counter:  8 + cfg.NArg(),
		Bytes:    mem.Raw(base, int(off)),
	}

	if _, err = r.WriteTo(os.Stdout); err != nil {
		return
	}

	if cfg.ShowMaps {
		showMaps(base)
	}

	if cfg.Disasm {
		arch, exist := disasm.Lookup(cfg.Arch)
		if !exist {
			// Validate let it through
			panic("cmd: unknown disasm arch")
		}
		lines := arch.Render(r.Bytes, uint64(base), symname)
		if err = disasm.Fprint(os.Stderr, lines); err != nil {
			return
		}
	}

	if cfg.HexFile != "" {
		if err = writeHex(cfg.HexFile, uint64(base), r.Bytes); err != nil {
			return
		}
	}

	if cfg.Verbose {
		spew.Fdump(os.Stderr, r)
	}
	return
}

func showMaps(base uintptr) {
	regions, err := proc.SelfRegions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "maps: %s\n", err)
		return
	}
	reg, exist := proc.FindRegion(regions, base)
	if !exist {
		fmt.Fprintf(os.Stderr, "maps: no mapping contains %#x\n", base)
		return
	}
	fmt.Fprintf(os.Stderr, "page %#x in %s\n", base, reg)
}

func writeHex(path string, base uint64, data []byte) (err error) {
	var f *os.File
	f, err = os.Create(path)
	if err != nil {
		return
	}
	err = image.Write(f, base, data)
	if errx := f.Close(); err == nil {
		err = errx
	}
	return
}

func symname(addr uint64) (name string, base uint64) {
	fn := runtime.FuncForPC(uintptr(addr))
	if fn == nil {
		return "", 0
	}
	return fn.Name(), uint64(fn.Entry())
}

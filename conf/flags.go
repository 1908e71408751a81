package conf

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

func (c *Config) FlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet(name, errorHandling)
	c.fs = fs

	fs.BoolVar(&c.Disasm, "disasm", false, "Render the dumped bytes as instructions on stderr")
	fs.StringVar(&c.Arch, "arch", runtime.GOARCH, "Disasm architecture (386, amd64, arm64)")
	fs.StringVar(&c.HexFile, "hex", "", "Write the dumped bytes as Intel HEX to `file`")
	fs.BoolVar(&c.ShowMaps, "maps", false, "Print the mapping containing the page on stderr")
	fs.BoolVar(&c.Verbose, "v", false, "Dump the assembled report to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [args...]\n", name)
	}
	return fs
}

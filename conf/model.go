package conf

import (
	"flag"
	"fmt"

	"github.com/ii64/pagepeek/lib/disasm"
)

type Config struct {
	// Disasm renders the dumped prefix as instructions on stderr.
	Disasm bool
	Arch   string

	// HexFile, when set, receives the dumped prefix as an Intel HEX
	// image.
	HexFile string

	// ShowMaps annotates the dump with the /proc/self/maps entry
	// containing the page.
	ShowMaps bool

	Verbose bool

	fs *flag.FlagSet
}

func Default() *Config {
	return &Config{}
}

// NArg reports how many positional arguments were left after parsing.
// The arguments themselves are never read, only counted.
func (cfg *Config) NArg() int {
	if cfg.fs == nil {
		return 0
	}
	return cfg.fs.NArg()
}

func (cfg *Config) Validate() error {
	if cfg.Disasm {
		if _, exist := disasm.Lookup(cfg.Arch); !exist {
			return fmt.Errorf("disasm arch %q not supported", cfg.Arch)
		}
	}
	return nil
}

package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Region is one mapping from /proc/<pid>/maps.
type Region struct {
	Start uintptr
	End   uintptr
	Perms string
	Ident string
}

func (r Region) String() string {
	if r.Ident == "" {
		return fmt.Sprintf("%#x-%#x %s", r.Start, r.End, r.Perms)
	}
	return fmt.Sprintf("%#x-%#x %s %s", r.Start, r.End, r.Perms, r.Ident)
}

func (r Region) Contains(addr uintptr) bool {
	return addr >= r.Start && addr < r.End
}

// SelfRegions lists the mappings of the running process. The maps file
// only exists on Linux; callers treat an error as "no annotation".
func SelfRegions() ([]Region, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMaps(f)
}

// FindRegion returns the mapping containing addr.
func FindRegion(regions []Region, addr uintptr) (Region, bool) {
	for _, reg := range regions {
		if reg.Contains(addr) {
			return reg, true
		}
	}
	return Region{}, false
}

func parseMaps(r io.Reader) (regions []Region, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		bounds := strings.SplitN(fields[0], "-", 2)
		if len(bounds) != 2 {
			continue
		}
		var start, end uint64
		if start, err = strconv.ParseUint(bounds[0], 16, 64); err != nil {
			return nil, fmt.Errorf("maps: bad range %q: %w", fields[0], err)
		}
		if end, err = strconv.ParseUint(bounds[1], 16, 64); err != nil {
			return nil, fmt.Errorf("maps: bad range %q: %w", fields[0], err)
		}
		reg := Region{
			Start: uintptr(start),
			End:   uintptr(end),
			Perms: fields[1],
		}
		if len(fields) >= 6 {
			reg.Ident = fields[5]
		}
		regions = append(regions, reg)
	}
	return regions, sc.Err()
}

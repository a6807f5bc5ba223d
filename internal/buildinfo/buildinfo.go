package buildinfo

import (
	"strconv"
	"strings"
)

// Version is set at build time via -ldflags.
var Version = "1.0.0"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Numeric packs Version as major<<16 | minor<<8 | patch. A leading "v" and
// any pre-release suffix are ignored; an unparsable version yields 0.
func Numeric() uint32 {
	v := strings.TrimPrefix(Version, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return 0
	}
	var n uint32
	for _, p := range parts {
		x, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0
		}
		n = n<<8 | uint32(x)
	}
	return n
}

// Store is a 32-bit register write.
type Store interface {
	Store32(addr, v uint32)
}

// Export writes Numeric to the register at addr, where the application
// reads it before reusing the peripheral.
func Export(s Store, addr uint32) {
	s.Store32(addr, Numeric())
}

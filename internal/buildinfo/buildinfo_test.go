package buildinfo

import "testing"

func TestNumeric(t *testing.T) {
	defer func(v string) { Version = v }(Version)

	tests := []struct {
		version string
		want    uint32
	}{
		{"1.0.0", 0x010000},
		{"v1.2.3", 0x010203},
		{"2.10.255-rc1", 0x020AFF},
		{"dev", 0},
		{"1.2", 0},
		{"1.256.0", 0},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Numeric(); got != tt.want {
			t.Fatalf("Numeric(%q) = %#x, want %#x", tt.version, got, tt.want)
		}
	}
}

type regs map[uint32]uint32

func (r regs) Store32(addr, v uint32) { r[addr] = v }

func TestExport(t *testing.T) {
	defer func(v string) { Version = v }(Version)
	Version = "1.1.0"

	r := regs{}
	Export(r, 0x4000A540)
	if got := r[0x4000A540]; got != 0x010100 {
		t.Fatalf("exported %#x", got)
	}
}

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q", got)
	}
	Version = "1.0.0"
	if got := Short(); got != "1.0.0" {
		t.Fatalf("Short() = %q", got)
	}
}

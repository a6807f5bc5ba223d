package factory

import (
	"bytes"
	"errors"
	"testing"

	"wristboot/boot/fault"
	"wristboot/hal"
)

// memFlash is a bounds-recording in-memory flash.
type memFlash struct {
	data     []byte
	erased   [][2]uint32
	reads    [][2]uint32
	writes   [][2]uint32
	writeErr error
}

func newMemFlash(size int) *memFlash {
	f := &memFlash{data: make([]byte, size)}
	for i := range f.data {
		f.data[i] = byte(i ^ (i >> 8))
	}
	return f
}

func (f *memFlash) SizeBytes() uint32       { return uint32(len(f.data)) }
func (f *memFlash) EraseBlockBytes() uint32 { return 0x1000 }

func (f *memFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.reads = append(f.reads, [2]uint32{off, off + uint32(len(p))})
	return copy(p, f.data[off:]), nil
}

func (f *memFlash) WriteAt(p []byte, off uint32) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, [2]uint32{off, off + uint32(len(p))})
	return copy(f.data[off:], p), nil
}

func (f *memFlash) Erase(off, size uint32) error {
	f.erased = append(f.erased, [2]uint32{off, off + size})
	for i := off; i < off+size; i++ {
		f.data[i] = 0xFF
	}
	return nil
}

func TestFactoryRestoreCopiesRegion(t *testing.T) {
	f := newMemFlash(0x80000)
	src := append([]byte(nil), f.data[:0x40000]...)

	if err := New(f, Factory).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.Equal(f.data[0x40000:0x80000], src) {
		t.Fatal("destination does not match source")
	}
	if len(f.erased) != 0x40000/0x1000 {
		t.Fatalf("erased %d sectors, want %d", len(f.erased), 0x40)
	}
	if len(f.writes) != 0x40000/256 {
		t.Fatalf("%d writes, want %d", len(f.writes), 0x40000/256)
	}
}

func TestFactoryRestoreStaysInBounds(t *testing.T) {
	regions := []Region{
		Factory,
		{SourceOffset: 0x2000, DestinationOffset: 0x10000, Size: 0x3000, SectorSize: 0x1000, BatchSize: 128},
		{SourceOffset: 0x100, DestinationOffset: 0x8000, Size: 0x1000, SectorSize: 0x1000, BatchSize: 256},
	}
	for _, r := range regions {
		f := newMemFlash(0x80000)
		if err := New(f, r).Run(); err != nil {
			t.Fatalf("Run(%+v): %v", r, err)
		}
		for _, rd := range f.reads {
			if rd[0] < r.SourceOffset || rd[1] > r.SourceOffset+r.Size {
				t.Fatalf("read %#x-%#x outside source region %+v", rd[0], rd[1], r)
			}
		}
		for _, spans := range [][][2]uint32{f.writes, f.erased} {
			for _, w := range spans {
				if w[0] < r.DestinationOffset || w[1] > r.DestinationOffset+r.Size {
					t.Fatalf("write %#x-%#x outside destination region %+v", w[0], w[1], r)
				}
			}
		}
	}
}

func TestFactoryRestoreFailsFast(t *testing.T) {
	f := newMemFlash(0x80000)
	f.writeErr = errors.New("program failed")
	err := New(f, Factory).Run()
	if !errors.Is(err, fault.ErrFlash) {
		t.Fatalf("err = %v, want flash fault", err)
	}
	if len(f.reads) != 1 {
		t.Fatalf("reads = %d, want 1 before the failure", len(f.reads))
	}
}

func TestRegionValidation(t *testing.T) {
	bad := []Region{
		{Size: 0x1000, SectorSize: 0x1000, BatchSize: 512},
		{Size: 0x1800, SectorSize: 0x1000, BatchSize: 256},
		{DestinationOffset: 0x100, Size: 0x1000, SectorSize: 0x1000, BatchSize: 256},
		{Size: 0x1000},
	}
	for _, r := range bad {
		if err := New(newMemFlash(0x10000), r).Run(); !errors.Is(err, fault.ErrInvariant) {
			t.Fatalf("Run(%+v) err = %v, want invariant violation", r, err)
		}
	}
	if Factory.Device != hal.FlashExternal {
		t.Fatal("factory image lives on external flash")
	}
}

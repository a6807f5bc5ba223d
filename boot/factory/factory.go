// Package factory restores the factory firmware image by copying a fixed
// flash region over the slot the loader installs from.
package factory

import (
	"fmt"

	"wristboot/boot/fault"
	"wristboot/hal"
)

// MaxBatch is the size of the migration's copy buffer.
const MaxBatch = 256

// Region describes a fixed copy between two offsets of one device.
type Region struct {
	SourceOffset      uint32
	DestinationOffset uint32
	Size              uint32
	SectorSize        uint32
	BatchSize         uint32
	Device            hal.FlashDevice
}

// Factory is the factory image kept at the start of external flash,
// copied over the secondary slot.
var Factory = Region{
	SourceOffset:      0,
	DestinationOffset: 0x40000,
	Size:              0x40000,
	SectorSize:        0x1000,
	BatchSize:         MaxBatch,
	Device:            hal.FlashExternal,
}

func (r Region) validate() error {
	switch {
	case r.SectorSize == 0 || r.BatchSize == 0:
		return fault.Invariant("factory region", "zero sector or batch size")
	case r.BatchSize > MaxBatch:
		return fault.Invariant("factory region", "batch %d exceeds %d", r.BatchSize, MaxBatch)
	case r.Size%r.SectorSize != 0 || r.Size%r.BatchSize != 0:
		return fault.Invariant("factory region", "size %#x not a multiple of sector %#x and batch %#x", r.Size, r.SectorSize, r.BatchSize)
	case r.DestinationOffset%r.SectorSize != 0:
		return fault.Invariant("factory region", "destination %#x not sector aligned", r.DestinationOffset)
	}
	return nil
}

// Migration erases the destination region and copies the source into it
// batch by batch. It owns its copy buffer and is not safe for concurrent use.
type Migration struct {
	flash  hal.Flash
	region Region
	buf    [MaxBatch]byte
}

func New(flash hal.Flash, region Region) *Migration {
	return &Migration{flash: flash, region: region}
}

// Run performs the copy. Any device failure stops it; there are no retries.
func (m *Migration) Run() error {
	r := m.region
	if err := r.validate(); err != nil {
		return err
	}
	for erased := uint32(0); erased < r.Size; erased += r.SectorSize {
		off := r.DestinationOffset + erased
		if err := m.flash.Erase(off, r.SectorSize); err != nil {
			return fault.Flash(fmt.Sprintf("factory erase %#x", off), err)
		}
	}

	buf := m.buf[:r.BatchSize]
	for off := uint32(0); off < r.Size; off += r.BatchSize {
		if _, err := m.flash.ReadAt(buf, r.SourceOffset+off); err != nil {
			return fault.Flash(fmt.Sprintf("factory read %#x", r.SourceOffset+off), err)
		}
		if _, err := m.flash.WriteAt(buf, r.DestinationOffset+off); err != nil {
			return fault.Flash(fmt.Sprintf("factory write %#x", r.DestinationOffset+off), err)
		}
	}
	return nil
}

// Package vector relocates the application's interrupt vector table to a
// page-aligned address in internal flash and points VTOR at it.
package vector

import (
	"encoding/binary"
	"fmt"

	"wristboot/boot/fault"
	"wristboot/hal"
)

const (
	// RelocatedAddress is the last page of the boot stage's flash area.
	RelocatedAddress = 0x7F00
	// NumVectors is 16 core exceptions plus 38 device interrupts.
	NumVectors = 16 + 38
	// PageSize is the erase and copy unit; the destination must be aligned to it.
	PageSize = 0x100
)

// CPU programs the vector table base register.
type CPU interface {
	SetVectorTableBase(addr uint32)
}

// Relocator copies one page of vectors. It owns its page buffer and is not
// safe for concurrent use.
type Relocator struct {
	mem   hal.Registers
	flash hal.Flash
	cpu   CPU

	// SkipWhenIdentical skips the erase and write when the destination
	// already holds the same vectors. Off by default: any source that
	// differs from the destination address is copied.
	SkipWhenIdentical bool

	page [PageSize]byte
}

// New returns a relocator reading vectors through mem and writing them to
// flash, which must be the device mapped at address zero.
func New(mem hal.Registers, flash hal.Flash, cpu CPU) *Relocator {
	return &Relocator{mem: mem, flash: flash, cpu: cpu}
}

// Relocate moves the table at src to dst. Equal addresses are a no-op and
// leave VTOR untouched.
func (r *Relocator) Relocate(src, dst uint32) error {
	if src == dst {
		return nil
	}
	if dst%PageSize != 0 {
		return fault.Invariant("relocate vectors", "destination %#x not aligned to %#x", dst, PageSize)
	}

	if !(r.SkipWhenIdentical && r.identical(src, dst)) {
		for i := uint32(0); i < PageSize; i += 4 {
			binary.LittleEndian.PutUint32(r.page[i:], r.mem.Load32(src+i))
		}
		if err := r.flash.Erase(dst, PageSize); err != nil {
			return fault.Flash(fmt.Sprintf("erase vector page %#x", dst), err)
		}
		if _, err := r.flash.WriteAt(r.page[:], dst); err != nil {
			return fault.Flash(fmt.Sprintf("write vector page %#x", dst), err)
		}
	}
	r.cpu.SetVectorTableBase(dst)
	return nil
}

func (r *Relocator) identical(src, dst uint32) bool {
	for i := uint32(0); i < NumVectors; i++ {
		if r.mem.Load32(src+4*i) != r.mem.Load32(dst+4*i) {
			return false
		}
	}
	return true
}

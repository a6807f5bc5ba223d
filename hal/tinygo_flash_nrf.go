//go:build tinygo && baremetal

package hal

import (
	"errors"
	"fmt"
)

// NVMC registers.
const (
	nvmcBase      = 0x4001E000
	nvmcReady     = nvmcBase + 0x400
	nvmcConfig    = nvmcBase + 0x504
	nvmcErasePage = nvmcBase + 0x508

	nvmcConfigRen = 0
	nvmcConfigWen = 1
	nvmcConfigEen = 2

	nvmcPageSize = 0x1000
)

var errFlashUnaligned = errors.New("flash: unaligned word write")

// nvmcFlash is the on-chip flash, memory-mapped at address zero.
type nvmcFlash struct {
	regs mmio
}

func (f *nvmcFlash) SizeBytes() uint32       { return InternalFlashSize }
func (f *nvmcFlash) EraseBlockBytes() uint32 { return InternalFlashEraseBlock }

func (f *nvmcFlash) ReadAt(p []byte, off uint32) (int, error) {
	if uint64(off)+uint64(len(p)) > InternalFlashSize {
		return 0, fmt.Errorf("flash read at %d: out of range", off)
	}
	for i := range p {
		addr := off + uint32(i)
		w := f.regs.Load32(addr &^ 3)
		p[i] = byte(w >> (8 * (addr & 3)))
	}
	return len(p), nil
}

// WriteAt programs whole words; off and len(p) must be multiples of four.
func (f *nvmcFlash) WriteAt(p []byte, off uint32) (int, error) {
	if off%4 != 0 || len(p)%4 != 0 {
		return 0, fmt.Errorf("flash write at %d: %w", off, errFlashUnaligned)
	}
	if uint64(off)+uint64(len(p)) > InternalFlashSize {
		return 0, fmt.Errorf("flash write at %d: out of range", off)
	}
	f.config(nvmcConfigWen)
	for i := 0; i < len(p); i += 4 {
		w := uint32(p[i]) | uint32(p[i+1])<<8 | uint32(p[i+2])<<16 | uint32(p[i+3])<<24
		f.regs.Store32(off+uint32(i), w)
		f.wait()
	}
	f.config(nvmcConfigRen)
	return len(p), nil
}

// Erase clears every hardware page that overlaps [off, off+size).
func (f *nvmcFlash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	if off%InternalFlashEraseBlock != 0 || size%InternalFlashEraseBlock != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: unaligned", off, size)
	}
	f.config(nvmcConfigEen)
	for page := off &^ (nvmcPageSize - 1); page < off+size; page += nvmcPageSize {
		f.regs.Store32(nvmcErasePage, page)
		f.wait()
	}
	f.config(nvmcConfigRen)
	return nil
}

func (f *nvmcFlash) config(v uint32) {
	f.regs.Store32(nvmcConfig, v)
	f.wait()
}

func (f *nvmcFlash) wait() {
	for f.regs.Load32(nvmcReady) == 0 {
	}
}

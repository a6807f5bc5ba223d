// Package spiflash drives a SPI NOR flash chip (25-series command set). A
// Device satisfies hal.Flash.
package spiflash

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
)

const (
	cmdPageProgram  = 0x02
	cmdRead         = 0x03
	cmdWriteDisable = 0x04
	cmdReadStatus   = 0x05
	cmdWriteEnable  = 0x06
	cmdSectorErase  = 0x20
	cmdJEDECID      = 0x9F

	statusBusy = 0x01
	statusWEL  = 0x02
)

const (
	PageSize   = 256
	SectorSize = 4096
)

var (
	ErrBusy      = errors.New("spiflash: device busy")
	ErrAlignment = errors.New("spiflash: unaligned erase")
	ErrRange     = errors.New("spiflash: out of range")
)

// Pin is the chip-select output. It must already be configured as an output.
type Pin interface {
	Write(level bool) error
}

// Device is a NOR chip on a shared SPI bus, selected by its own chip-select pin.
type Device struct {
	bus  drivers.SPI
	cs   Pin
	size uint32

	// MaxPolls bounds the status polling after program and erase.
	MaxPolls int

	hdr  [4]byte
	zero [PageSize]byte
}

func New(bus drivers.SPI, cs Pin, size uint32) *Device {
	return &Device{bus: bus, cs: cs, size: size, MaxPolls: 1 << 20}
}

// Configure deselects the chip.
func (d *Device) Configure() error {
	return d.cs.Write(true)
}

func (d *Device) SizeBytes() uint32       { return d.size }
func (d *Device) EraseBlockBytes() uint32 { return SectorSize }

// ID returns the JEDEC manufacturer and device id as 0x00MMTTCC.
func (d *Device) ID() (uint32, error) {
	var id [3]byte
	err := d.transaction(func() error {
		d.hdr[0] = cmdJEDECID
		if err := d.bus.Tx(d.hdr[:1], nil); err != nil {
			return err
		}
		return d.bus.Tx(d.zero[:3], id[:])
	})
	if err != nil {
		return 0, err
	}
	return uint32(id[0])<<16 | uint32(id[1])<<8 | uint32(id[2]), nil
}

func (d *Device) ReadAt(p []byte, off uint32) (int, error) {
	if uint64(off)+uint64(len(p)) > uint64(d.size) {
		return 0, fmt.Errorf("spiflash read at %d+%d: %w", off, len(p), ErrRange)
	}
	n := 0
	err := d.transaction(func() error {
		d.setHeader(cmdRead, off)
		if err := d.bus.Tx(d.hdr[:], nil); err != nil {
			return err
		}
		for n < len(p) {
			chunk := len(p) - n
			if chunk > len(d.zero) {
				chunk = len(d.zero)
			}
			if err := d.bus.Tx(d.zero[:chunk], p[n:n+chunk]); err != nil {
				return err
			}
			n += chunk
		}
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("spiflash read at %d: %w", off, err)
	}
	return n, nil
}

// WriteAt programs p page by page. The target range must be erased.
func (d *Device) WriteAt(p []byte, off uint32) (int, error) {
	if uint64(off)+uint64(len(p)) > uint64(d.size) {
		return 0, fmt.Errorf("spiflash write at %d+%d: %w", off, len(p), ErrRange)
	}
	n := 0
	for n < len(p) {
		addr := off + uint32(n)
		chunk := PageSize - int(addr%PageSize)
		if chunk > len(p)-n {
			chunk = len(p) - n
		}
		if err := d.writeEnable(); err != nil {
			return n, fmt.Errorf("spiflash write at %d: %w", addr, err)
		}
		err := d.transaction(func() error {
			d.setHeader(cmdPageProgram, addr)
			if err := d.bus.Tx(d.hdr[:], nil); err != nil {
				return err
			}
			return d.bus.Tx(p[n:n+chunk], nil)
		})
		if err == nil {
			err = d.waitReady()
		}
		if err != nil {
			return n, fmt.Errorf("spiflash write at %d: %w", addr, err)
		}
		n += chunk
	}
	return n, nil
}

func (d *Device) Erase(off, size uint32) error {
	if off%SectorSize != 0 || size%SectorSize != 0 {
		return fmt.Errorf("spiflash erase off=%d size=%d: %w", off, size, ErrAlignment)
	}
	if uint64(off)+uint64(size) > uint64(d.size) {
		return fmt.Errorf("spiflash erase off=%d size=%d: %w", off, size, ErrRange)
	}
	for end := off + size; off < end; off += SectorSize {
		if err := d.EraseSector(off); err != nil {
			return err
		}
	}
	return nil
}

// EraseSector erases the 4 KiB sector starting at off.
func (d *Device) EraseSector(off uint32) error {
	if err := d.writeEnable(); err != nil {
		return fmt.Errorf("spiflash erase sector %d: %w", off, err)
	}
	err := d.transaction(func() error {
		d.setHeader(cmdSectorErase, off)
		return d.bus.Tx(d.hdr[:], nil)
	})
	if err == nil {
		err = d.waitReady()
	}
	if err != nil {
		return fmt.Errorf("spiflash erase sector %d: %w", off, err)
	}
	return nil
}

func (d *Device) writeEnable() error {
	return d.transaction(func() error {
		d.hdr[0] = cmdWriteEnable
		return d.bus.Tx(d.hdr[:1], nil)
	})
}

func (d *Device) status() (byte, error) {
	var st [1]byte
	err := d.transaction(func() error {
		d.hdr[0] = cmdReadStatus
		if err := d.bus.Tx(d.hdr[:1], nil); err != nil {
			return err
		}
		return d.bus.Tx(d.zero[:1], st[:])
	})
	return st[0], err
}

func (d *Device) waitReady() error {
	for i := 0; i < d.MaxPolls; i++ {
		st, err := d.status()
		if err != nil {
			return err
		}
		if st&statusBusy == 0 {
			return nil
		}
	}
	return ErrBusy
}

func (d *Device) setHeader(cmd byte, addr uint32) {
	d.hdr[0] = cmd
	d.hdr[1] = byte(addr >> 16)
	d.hdr[2] = byte(addr >> 8)
	d.hdr[3] = byte(addr)
}

// transaction runs fn with the chip selected and always deselects it.
func (d *Device) transaction(fn func() error) error {
	if err := d.cs.Write(false); err != nil {
		return err
	}
	err := fn()
	if derr := d.cs.Write(true); err == nil {
		err = derr
	}
	return err
}

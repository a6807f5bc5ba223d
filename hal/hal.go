package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output abstraction (the display backlight on the watch).
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrReset is returned by host code paths after CPU.Reset; on hardware
	// the reset never returns.
	ErrReset = errors.New("system reset")
)

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// FlashDevice identifies one of the board's flash devices.
type FlashDevice uint8

const (
	FlashInternal FlashDevice = iota
	FlashExternal
)

func (d FlashDevice) String() string {
	switch d {
	case FlashInternal:
		return "internal"
	case FlashExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Registers is 32-bit access to the memory map: peripheral registers and
// memory-mapped flash alike.
type Registers interface {
	Load32(addr uint32) uint32
	Store32(addr, v uint32)
}

// CycleCounter is a free-running CPU cycle counter that wraps at 2^32.
type CycleCounter interface {
	Cycles() uint32
}

// CPU is core control.
type CPU interface {
	SetVectorTableBase(addr uint32)
	// Reset requests an unconditional system reset. It does not return on
	// hardware.
	Reset()
}

// BootResponse describes the image chosen by the next-stage loader.
type BootResponse struct {
	FlashBase   uint32
	ImageOffset uint32
	HeaderSize  uint32
}

// VectorTable returns the address of the application's vector table.
func (r BootResponse) VectorTable() uint32 {
	return r.FlashBase + r.ImageOffset + r.HeaderSize
}

// BootLoader is the next-stage image loader.
type BootLoader interface {
	// MarkPending requests a swap to the image in slot on the next boot.
	MarkPending(slot int) error
	Response() BootResponse
	// Start jumps to the application. It does not return on hardware.
	Start(vectorTable uint32)
}

// HAL provides the only contact point between the boot stage and the outside world.
type HAL interface {
	Logger() Logger
	Backlight() LED
	GPIO() GPIO
	SPI() drivers.SPI
	Flash(dev FlashDevice) Flash
	Registers() Registers
	Cycles() CycleCounter
	CPU() CPU
	Loader() BootLoader
}

// Package st7789 drives the watch's 240x240 ST7789 panel over a write-only
// SPI link with separate chip-select, data/command and reset lines.
package st7789

import (
	"wristboot/boot/fault"
	"wristboot/hal"

	"tinygo.org/x/drivers"
)

const (
	Width         = 240
	Height        = 240
	BytesPerPixel = 2
)

// Command set.
const (
	SWRESET = 0x01
	SLPOUT  = 0x11
	INVOFF  = 0x20
	INVON   = 0x21
	DISPON  = 0x29
	CASET   = 0x2A
	RASET   = 0x2B
	RAMWR   = 0x2C
	MADCTL  = 0x36
	COLMOD  = 0x3A
	FRMCTR1 = 0xB1
	FRMCTR2 = 0xB2
	FRMCTR3 = 0xB3
	INVCTR  = 0xB4
	PWCTR1  = 0xC0
	PWCTR2  = 0xC1
	PWCTR3  = 0xC2
	PWCTR4  = 0xC3
	PWCTR5  = 0xC4
	VMCTR1  = 0xC5
)

// MADCTL orientation values.
const (
	Portrait         = 0x00
	Landscape        = 0x60
	PortraitSwapped  = 0xC0
	LandscapeSwapped = 0xA0

	madctlBGR = 0x08
)

// SettleMs is the wait after reset, sleep exit and display on.
const SettleMs = 200

// Config fixes the panel's wiring options.
type Config struct {
	// BGR selects blue-green-red subpixel order.
	BGR bool
	// NoInvert disables colour inversion; the watch panel needs it on.
	NoInvert bool
}

// Delay is a blocking millisecond wait.
type Delay interface {
	Milliseconds(ms uint32)
}

// Device is one panel. It is not safe for concurrent use.
type Device struct {
	bus  drivers.SPI
	cs   hal.GPIOPin
	dc   hal.GPIOPin
	rst  hal.GPIOPin
	wait Delay
	cfg  Config

	cmd  [1]byte
	win  [4]byte
	line [Width * BytesPerPixel]byte
}

func New(bus drivers.SPI, cs, dc, rst hal.GPIOPin, wait Delay, cfg Config) *Device {
	return &Device{bus: bus, cs: cs, dc: dc, rst: rst, wait: wait, cfg: cfg}
}

// Configure sets the control lines to outputs: reset and chip-select
// idle high, data/command low.
func (d *Device) Configure() error {
	for _, p := range []struct {
		pin   hal.GPIOPin
		level bool
	}{{d.rst, true}, {d.cs, true}, {d.dc, false}} {
		if err := p.pin.Configure(hal.GPIOModeOutput, hal.GPIOPullNone); err != nil {
			return fault.Transfer("st7789 configure "+p.pin.Name(), err)
		}
		if err := p.pin.Write(p.level); err != nil {
			return fault.Transfer("st7789 configure "+p.pin.Name(), err)
		}
	}
	return nil
}

type step struct {
	cmd    byte
	params []byte
	settle bool
}

func (d *Device) initSequence() []step {
	inv := byte(INVON)
	if d.cfg.NoInvert {
		inv = INVOFF
	}
	madctl := byte(0x00)
	if d.cfg.BGR {
		madctl = madctlBGR
	}
	return []step{
		{cmd: SWRESET, settle: true},
		{cmd: SLPOUT, settle: true},
		{cmd: FRMCTR1, params: []byte{0x01, 0x2C, 0x2D}},
		{cmd: FRMCTR2, params: []byte{0x01, 0x2C, 0x2D}},
		{cmd: FRMCTR3, params: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{cmd: INVCTR, params: []byte{0x07}},
		{cmd: PWCTR1, params: []byte{0xA2, 0x02, 0x84}},
		{cmd: PWCTR2, params: []byte{0xC5}},
		{cmd: PWCTR3, params: []byte{0x0A, 0x00}},
		{cmd: PWCTR4, params: []byte{0x8A, 0x2A}},
		{cmd: PWCTR5, params: []byte{0x8A, 0xEE}},
		{cmd: VMCTR1, params: []byte{0x0E}},
		{cmd: inv},
		{cmd: MADCTL, params: []byte{madctl}},
		{cmd: COLMOD, params: []byte{0x05}},
		{cmd: DISPON, settle: true},
	}
}

// Init hard-resets the panel and runs the bring-up sequence.
func (d *Device) Init() error {
	if err := d.hardReset(); err != nil {
		return err
	}
	for _, s := range d.initSequence() {
		if err := d.WriteCommand(s.cmd, s.params...); err != nil {
			return err
		}
		if s.settle {
			d.wait.Milliseconds(SettleMs)
		}
	}
	return nil
}

func (d *Device) hardReset() error {
	for _, level := range []bool{true, false, true} {
		if err := d.rst.Write(level); err != nil {
			return fault.Transfer("st7789 reset", err)
		}
	}
	return nil
}

// SetOrientation selects one of the four fixed MADCTL orientations.
func (d *Device) SetOrientation(r drivers.Rotation) error {
	var v byte
	switch r {
	case drivers.Rotation0:
		v = Portrait
	case drivers.Rotation90:
		v = Landscape
	case drivers.Rotation180:
		v = PortraitSwapped
	case drivers.Rotation270:
		v = LandscapeSwapped
	default:
		return fault.Invariant("st7789 orientation", "unknown rotation %d", r)
	}
	if d.cfg.BGR {
		v |= madctlBGR
	}
	return d.WriteCommand(MADCTL, v)
}

// SetWindow targets the next pixel write at the inclusive rectangle
// (left, top)-(right, bottom).
func (d *Device) SetWindow(left, top, right, bottom int) error {
	switch {
	case left < 0 || top < 0 || right >= Width || bottom >= Height:
		return fault.Invariant("st7789 window", "(%d,%d)-(%d,%d) outside panel", left, top, right, bottom)
	case left > right:
		return fault.Invariant("st7789 window", "left %d > right %d", left, right)
	case top > bottom:
		return fault.Invariant("st7789 window", "top %d > bottom %d", top, bottom)
	}

	d.win = [4]byte{0x00, byte(left), 0x00, byte(right)}
	if err := d.WriteCommand(CASET, d.win[:]...); err != nil {
		return err
	}
	d.win = [4]byte{0x00, byte(top), 0x00, byte(bottom)}
	return d.WriteCommand(RASET, d.win[:]...)
}

// WritePixels sends RAMWR followed by big-endian RGB565 pixel data.
func (d *Device) WritePixels(data []byte) error {
	if err := d.WriteCommand(RAMWR); err != nil {
		return err
	}
	return d.WriteData(data)
}

// Clear fills the whole panel with c one row at a time.
func (d *Device) Clear(c uint16) error {
	for i := 0; i < len(d.line); i += BytesPerPixel {
		d.line[i] = byte(c >> 8)
		d.line[i+1] = byte(c)
	}
	for y := 0; y < Height; y++ {
		if err := d.SetWindow(0, y, Width-1, y); err != nil {
			return err
		}
		if err := d.WritePixels(d.line[:]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCommand sends cmd with the data/command line low, then params as a
// data burst if there are any.
func (d *Device) WriteCommand(cmd byte, params ...byte) error {
	if err := d.dc.Write(false); err != nil {
		return fault.Transfer("st7789 command", err)
	}
	d.cmd[0] = cmd
	if err := d.transmit(d.cmd[:]); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	return d.WriteData(params)
}

// WriteData sends a data burst with the data/command line high.
func (d *Device) WriteData(data []byte) error {
	if err := d.dc.Write(true); err != nil {
		return fault.Transfer("st7789 data", err)
	}
	return d.transmit(data)
}

// transmit brackets one write-only transfer with chip select.
func (d *Device) transmit(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := d.cs.Write(false); err != nil {
		return fault.Transfer("st7789 select", err)
	}
	err := d.bus.Tx(p, nil)
	if derr := d.cs.Write(true); err == nil && derr != nil {
		return fault.Transfer("st7789 deselect", derr)
	}
	if err != nil {
		return fault.Transfer("st7789 tx", err)
	}
	return nil
}

//go:build tinygo && baremetal

package hal

import (
	"device/arm"
	"errors"
	"machine"
	"runtime/volatile"
	"unsafe"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin       machine.Pin
	activeLow bool
}

func (l *pinLED) High() { l.pin.Set(!l.activeLow) }
func (l *pinLED) Low()  { l.pin.Set(l.activeLow) }

var errPinMode = errors.New("gpio: invalid configuration")

// machinePin adapts a machine.Pin to GPIOPin.
type machinePin struct {
	pin  machine.Pin
	name string
}

func (p *machinePin) Name() string   { return p.name }
func (p *machinePin) Caps() GPIOCaps { return gpioCapAll }

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, gpioCapAll, mode, pull); err != nil {
		return err
	}
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case pull == GPIOPullUp:
		m = machine.PinInputPullup
	case pull == GPIOPullDown:
		m = machine.PinInputPulldown
	case pull == GPIOPullNone:
		m = machine.PinInput
	default:
		return errPinMode
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

// mmio is direct volatile access to the memory map.
type mmio struct{}

func (mmio) Load32(addr uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

func (mmio) Store32(addr, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), v)
}

// dwtCycles reads the DWT cycle counter, enabled on construction.
type dwtCycles struct{}

func newDWTCycles() dwtCycles {
	const (
		demcrTRCENA   = 1 << 24
		dwtCtrlCYCENA = 1 << 0
	)
	var m mmio
	m.Store32(RegDEMCR, m.Load32(RegDEMCR)|demcrTRCENA)
	m.Store32(RegDWTCycles, 0)
	m.Store32(RegDWTCtrl, m.Load32(RegDWTCtrl)|dwtCtrlCYCENA)
	return dwtCycles{}
}

func (dwtCycles) Cycles() uint32 { return mmio{}.Load32(RegDWTCycles) }

type cortexM struct{}

func (cortexM) SetVectorTableBase(addr uint32) {
	mmio{}.Store32(RegVTOR, addr)
	arm.Asm("dsb")
	arm.Asm("isb")
}

func (cortexM) Reset() {
	arm.SystemReset()
}

// jumpToApplication loads the application's initial stack pointer and
// branches to its reset handler. It does not return.
func jumpToApplication(vectorTable uint32) {
	var m mmio
	sp := m.Load32(vectorTable)
	pc := m.Load32(vectorTable + 4)
	arm.DisableInterrupts()
	arm.AsmFull(`
		msr msp, {sp}
		bx {pc}
	`, map[string]interface{}{
		"sp": sp,
		"pc": pc,
	})
	for {
	}
}

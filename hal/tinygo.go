//go:build tinygo && baremetal

package hal

import (
	"machine"

	"wristboot/hal/spiflash"

	"tinygo.org/x/drivers"
)

type tinyGoHAL struct {
	logger    *uartLogger
	backlight *pinLED
	gpio      GPIO
	bus       drivers.SPI
	internal  *nvmcFlash
	external  *spiflash.Device
	regs      mmio
	cycles    dwtCycles
	cpu       cortexM
	loader    *slotLoader
}

// New returns the nRF52832 watch HAL.
//
// UART: 115200 8N1 on the default pins. SPI0: SCK P0.02, SDO P0.03,
// SDI P0.04 at 8 MHz, mode 3.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	bus := machine.SPI0
	bus.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       machine.Pin(PinSPISCK),
		SDO:       machine.Pin(PinSPISDO),
		SDI:       machine.Pin(PinSPISDI),
		Mode:      3,
	})

	bl := machine.Pin(PinBacklight)
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	backlight := &pinLED{pin: bl, activeLow: true}

	pins := make([]GPIOPin, PinCount)
	for i := range pins {
		pins[i] = &machinePin{pin: machine.Pin(i), name: pinName(i)}
	}
	pins[PinBacklight] = newLEDPin("BACKLIGHT", backlight)

	cs := pins[PinFlashCS]
	_ = cs.Configure(GPIOModeOutput, GPIOPullNone)
	external := spiflash.New(bus, cs, ExternalFlashSize)
	_ = external.Configure()

	h := &tinyGoHAL{
		logger:    &uartLogger{uart: uart},
		backlight: backlight,
		gpio:      newVirtualGPIO(pins),
		bus:       bus,
		internal:  &nvmcFlash{},
		external:  external,
		cycles:    newDWTCycles(),
	}
	h.loader = newSlotLoader(external, jumpToApplication)
	return h
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Backlight() LED       { return h.backlight }
func (h *tinyGoHAL) GPIO() GPIO           { return h.gpio }
func (h *tinyGoHAL) SPI() drivers.SPI     { return h.bus }
func (h *tinyGoHAL) Registers() Registers { return h.regs }
func (h *tinyGoHAL) Cycles() CycleCounter { return h.cycles }
func (h *tinyGoHAL) CPU() CPU             { return h.cpu }
func (h *tinyGoHAL) Loader() BootLoader   { return h.loader }

func (h *tinyGoHAL) Flash(dev FlashDevice) Flash {
	switch dev {
	case FlashInternal:
		return h.internal
	case FlashExternal:
		return h.external
	default:
		return nil
	}
}

func pinName(i int) string {
	const digits = "0123456789"
	return "P0." + string(digits[i/10]) + string(digits[i%10])
}

// Package app wires the boot stage to a board: it exports the version,
// runs the decision engine and starts the application.
package app

import (
	"wristboot/assets"
	"wristboot/boot"
	"wristboot/boot/factory"
	"wristboot/boot/fault"
	"wristboot/boot/vector"
	"wristboot/boot/watchdog"
	"wristboot/display/rle"
	"wristboot/display/st7789"
	"wristboot/hal"
	"wristboot/hal/delay"
	"wristboot/internal/buildinfo"
)

type system struct {
	h        hal.HAL
	log      hal.Logger
	wait     *delay.Busy
	sup      *fault.Supervisor
	watchdog *watchdog.Watchdog
}

func newSystem(h hal.HAL) *system {
	wait := delay.New(h.Cycles(), hal.CPUFrequencyMHz)
	return &system{
		h:    h,
		log:  h.Logger(),
		wait: wait,
		sup: &fault.Supervisor{
			Log:       h.Logger(),
			Backlight: h.Backlight(),
			Delay:     wait,
			CPU:       h.CPU(),
		},
		watchdog: watchdog.New(h.Registers()),
	}
}

// Run is the whole boot stage. On hardware it never returns: every path
// ends in a reset or in the application. On the host it returns nil once
// the application was started, hal.ErrReset after a rollback, or the error
// that made the supervisor reset the board.
func Run(h hal.HAL) (err error) {
	s := newSystem(h)
	s.log.WriteLineString("Starting Bootloader...")
	buildinfo.Export(h.Registers(), hal.RegVersionExport)

	installFaultHandler(s.sup)
	defer recoverTrap(&err)

	if _, err := s.decide(); err != nil {
		return err
	}
	return s.startApplication()
}

func (s *system) decide() (boot.Outcome, error) {
	h := s.h
	gpio := h.GPIO()
	screen := st7789.New(
		h.SPI(),
		gpio.Pin(hal.PinDisplayCS),
		gpio.Pin(hal.PinDisplayDC),
		gpio.Pin(hal.PinDisplayReset),
		s.wait,
		st7789.Config{},
	)
	region := factory.Factory

	e := boot.New(boot.Config{
		Log:        s.log,
		ButtonIn:   gpio.Pin(hal.PinButtonIn),
		ButtonOut:  gpio.Pin(hal.PinButtonOut),
		Backlight:  h.Backlight(),
		Screen:     screen,
		Painter:    rle.NewRenderer(screen),
		Logo:       &assets.Logo,
		Version:    &assets.Version,
		Watchdog:   s.watchdog,
		Factory:    factory.New(h.Flash(region.Device), region),
		Loader:     h.Loader(),
		CPU:        h.CPU(),
		Delay:      s.wait,
		Supervisor: s.sup,
	})
	return e.Run()
}

// startApplication hands over to the image the loader selected: it moves
// the vector table to an aligned page, arms the watchdog and jumps.
func (s *system) startApplication() error {
	s.log.WriteLineString("Bootloader done")

	h := s.h
	loader := h.Loader()
	vt := loader.Response().VectorTable()

	r := vector.New(h.Registers(), h.Flash(hal.FlashInternal), h.CPU())
	if err := r.Relocate(vt, vector.RelocatedAddress); err != nil {
		s.sup.Recover(err)
		return err
	}
	s.watchdog.Start(watchdog.TimeoutSeconds)
	loader.Start(vt)
	return nil
}

package boot

import (
	"fmt"

	"wristboot/boot/fault"
	"wristboot/display/rle"
	"wristboot/hal"

	"tinygo.org/x/drivers"
)

// Screen is the panel the boot screens are drawn on.
type Screen interface {
	Configure() error
	Init() error
	SetOrientation(r drivers.Rotation) error
	Clear(c uint16) error
}

// Painter draws run-length images.
type Painter interface {
	Render(img *rle.Image, x, y int, colorA, colorB uint16, splitRow int) error
}

type Tickler interface {
	Tickle()
}

// Restorer copies the factory image into place.
type Restorer interface {
	Run() error
}

// Marker requests a swap to a loader slot on the next boot.
type Marker interface {
	MarkPending(slot int) error
}

// Config wires the engine to the board.
type Config struct {
	Log       hal.Logger
	ButtonIn  hal.GPIOPin
	ButtonOut hal.GPIOPin
	Backlight hal.LED
	Screen    Screen
	Painter   Painter
	Logo      *rle.Image
	Version   *rle.Image
	Watchdog  Tickler
	Factory   Restorer
	Loader    Marker
	CPU       fault.Resetter
	Delay     fault.Delay

	// Supervisor receives every unrecoverable error.
	Supervisor *fault.Supervisor
}

// Engine runs the decision stage once.
type Engine struct {
	cfg     Config
	samples uint32
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Samples returns the number of pressed reads seen so far.
func (e *Engine) Samples() uint32 { return e.samples }

// Run shows the boot screens, samples the button and carries out the
// outcome. It returns nil when the boot should continue to the loader.
//
// Rollback ends in a reset and returns hal.ErrReset. Any other failure is
// handed to the supervisor, which resets, and is returned.
func (e *Engine) Run() (Outcome, error) {
	if err := e.enableButton(); err != nil {
		return 0, e.fail(err)
	}
	if err := e.showScreens(); err != nil {
		return 0, e.fail(err)
	}
	if err := e.sample(); err != nil {
		return 0, e.fail(err)
	}

	o := Classify(e.samples)
	return o, e.execute(o)
}

// enableButton pulls the input down and drives the enable line high; the
// button circuit is off until then.
func (e *Engine) enableButton() error {
	in, out := e.cfg.ButtonIn, e.cfg.ButtonOut
	if err := in.Configure(hal.GPIOModeInput, hal.GPIOPullDown); err != nil {
		return fault.Transfer("button in", err)
	}
	if err := out.Configure(hal.GPIOModeOutput, hal.GPIOPullNone); err != nil {
		return fault.Transfer("button out", err)
	}
	if err := out.Write(true); err != nil {
		return fault.Transfer("button enable", err)
	}
	return nil
}

func (e *Engine) showScreens() error {
	e.log("Displaying boot logo...")
	e.cfg.Backlight.High()

	s := e.cfg.Screen
	if err := s.Configure(); err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	if err := s.SetOrientation(drivers.Rotation90); err != nil {
		return err
	}
	if err := s.Clear(rle.Background); err != nil {
		return err
	}
	if err := e.cfg.Painter.Render(e.cfg.Logo, 0, 0, rle.White, rle.White, 0); err != nil {
		return err
	}

	e.log("Displaying version image...")
	v := e.cfg.Version
	x := rle.MaxSide/2 - int(v.Width)/2
	y := rle.MaxSide - int(v.Height)
	return e.cfg.Painter.Render(v, x, y, rle.White, rle.White, 0)
}

func (e *Engine) sample() error {
	e.log("Waiting 5 seconds for button...")
	in := e.cfg.ButtonIn
	for i := 0; i < OuterIterations; i++ {
		for j := 0; j < InnerIterations; j++ {
			pressed, err := in.Read()
			if err != nil {
				return fault.Transfer("button read", err)
			}
			if pressed {
				e.samples++
			}
		}

		if i%TickleEvery == 0 {
			e.log(fmt.Sprintf("step %d - %d", i/TickleEvery+1, e.samples))
			e.cfg.Watchdog.Tickle()
		}
		if i%RefreshEvery == 0 {
			err := e.cfg.Painter.Render(e.cfg.Logo, 0, 0, rle.White, ProgressColor(e.samples), SplitRow(i))
			if err != nil {
				return err
			}
		}
	}
	e.log(fmt.Sprintf("Waited 5 seconds (%d)", e.samples))
	return nil
}

// execute runs the selected actions in order: the held message, the
// factory restore, then the rollback.
func (e *Engine) execute(o Outcome) error {
	if o.Has(HeldIgnored) {
		e.log("Button held for 5 seconds - ignoring")
	}
	if o.Has(FactoryRestore) {
		e.log("Restoring factory firmware")
		if err := e.cfg.Factory.Run(); err != nil {
			return e.fail(err)
		}
	}
	if o.Has(Rollback) {
		e.log("Flashing secondary firmware into primary")
		if err := e.cfg.Loader.MarkPending(RollbackSlot); err != nil {
			return e.fail(fault.Flash("mark rollback", err))
		}
		fault.Blink(e.cfg.Backlight, e.cfg.Delay, fault.PatternSlow, 4)
		e.cfg.CPU.Reset()
		return hal.ErrReset
	}
	e.log("MCUBoot processing...")
	return nil
}

func (e *Engine) fail(err error) error {
	if e.cfg.Supervisor != nil {
		e.cfg.Supervisor.Recover(err)
	}
	return err
}

func (e *Engine) log(s string) {
	if e.cfg.Log != nil {
		e.cfg.Log.WriteLineString(s)
	}
}

package fault

import "fmt"

// Logger is the console sink.
type Logger interface {
	WriteLineString(s string)
}

// Resetter forces a system reset.
type Resetter interface {
	Reset()
}

// Supervisor applies the one recovery policy for unrecoverable errors and
// trapped faults: log the cause, blink fast four times, reset.
type Supervisor struct {
	Log       Logger
	Backlight Backlight
	Delay     Delay
	CPU       Resetter
}

// Recover runs the recovery for err. On hardware the reset does not
// return; on the host it returns once the reset has been requested.
func (s *Supervisor) Recover(err error) {
	if s.Log != nil {
		s.Log.WriteLineString(fmt.Sprintf("fault: %v", err))
	}
	s.blinkAndReset()
}

// Handle is the fatal fault handler; install it with SetHandler.
func (s *Supervisor) Handle(info Info) {
	if s.Log != nil {
		s.Log.WriteLineString(fmt.Sprintf("fault: %s: %v", info.Kind, info.Value))
	}
	s.blinkAndReset()
}

func (s *Supervisor) blinkAndReset() {
	if s.Backlight != nil && s.Delay != nil {
		Blink(s.Backlight, s.Delay, PatternFast, 4)
	}
	if s.CPU != nil {
		s.CPU.Reset()
	}
}

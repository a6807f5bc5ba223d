// Package watchdog programs the nRF52 WDT peripheral.
package watchdog

import "wristboot/hal"

// WDT registers.
const (
	Base = 0x40010000

	RegTasksStart = Base + 0x000
	RegCRV        = Base + 0x504
	RegRREN       = Base + 0x508
	RegConfig     = Base + 0x50C
	RegRR0        = Base + 0x600

	// ReloadValue is the magic RR write that reloads the counter.
	ReloadValue = 0x6E524635

	configSleepRun = 1 << 0
	configHaltRun  = 1 << 3
	rrenRR0        = 1 << 0
)

// TimeoutSeconds is how long the application has before its first reload.
const TimeoutSeconds = 7

// Reload returns the CRV value for a timeout in whole seconds; the counter
// runs at 32.768 kHz and fires after CRV+1 ticks.
func Reload(timeoutSeconds uint32) uint32 {
	return ((timeoutSeconds * 1000) << 15 / 1000) - 1
}

type Watchdog struct {
	regs hal.Registers
}

func New(regs hal.Registers) *Watchdog {
	return &Watchdog{regs: regs}
}

// Start keeps the counter running while the CPU sleeps, pauses it while a
// debugger halts the CPU, enables reload channel 0 and starts counting.
// The configuration is locked until the next reset.
func (w *Watchdog) Start(timeoutSeconds uint32) {
	cfg := w.regs.Load32(RegConfig)
	cfg |= configSleepRun
	cfg &^= configHaltRun
	w.regs.Store32(RegConfig, cfg)
	w.regs.Store32(RegCRV, Reload(timeoutSeconds))
	w.regs.Store32(RegRREN, rrenRR0)
	w.regs.Store32(RegTasksStart, 1)
}

// Tickle reloads the counter through channel 0.
func (w *Watchdog) Tickle() {
	w.regs.Store32(RegRR0, ReloadValue)
}

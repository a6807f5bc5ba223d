// Package delay provides busy-wait delays calibrated against a free-running
// cycle counter. They work before the scheduler or any timer is set up.
package delay

// Counter is a 32-bit cycle counter that wraps.
type Counter interface {
	Cycles() uint32
}

// Busy spins on a cycle counter.
type Busy struct {
	c   Counter
	mhz uint32
}

// New returns a delay for a core running at mhz MHz.
func New(c Counter, mhz uint32) *Busy {
	if mhz == 0 {
		mhz = 1
	}
	return &Busy{c: c, mhz: mhz}
}

// Microseconds spins for at least us microseconds. Waits shorter than one
// counter period (about 67 s at 64 MHz) are exact across wraparound.
func (d *Busy) Microseconds(us uint32) {
	if us == 0 {
		return
	}
	target := us * d.mhz
	start := d.c.Cycles()
	for d.c.Cycles()-start < target {
	}
}

// Milliseconds spins in 1 ms steps so long waits never overflow the counter.
func (d *Busy) Milliseconds(ms uint32) {
	for ; ms > 0; ms-- {
		d.Microseconds(1000)
	}
}

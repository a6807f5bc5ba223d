package fault

// Blink patterns. The pattern number sets the blink rate: the backlight is
// on, then off, for 1000/pattern ms each.
const (
	PatternSlow = 2
	PatternFast = 4
)

// Backlight is the light the patterns are shown on.
type Backlight interface {
	High()
	Low()
}

// Delay is a blocking millisecond wait.
type Delay interface {
	Milliseconds(ms uint32)
}

// Blink flashes bl reps times with the given pattern and leaves it on.
func Blink(bl Backlight, d Delay, pattern, reps int) {
	if pattern <= 0 {
		pattern = 1
	}
	half := uint32(1000 / pattern)
	for i := 0; i < reps; i++ {
		bl.High()
		d.Milliseconds(half)
		bl.Low()
		d.Milliseconds(half)
	}
	bl.High()
}

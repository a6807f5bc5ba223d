// Package boot is the decision stage: it shows the boot screens, samples the
// side button for five seconds with live feedback, and then continues,
// restores the factory image, or rolls back to the previous firmware.
package boot

import (
	"strings"

	"wristboot/display/rle"
)

// Sampling window. The button is read Inner times per outer iteration.
const (
	OuterIterations = 320
	InnerIterations = 3000
	MaxSamples      = OuterIterations * InnerIterations

	// TickleEvery outer iterations the watchdog is reloaded and progress logged.
	TickleEvery = 64
	// RefreshEvery outer iterations the progress bar is redrawn.
	RefreshEvery = 8
	// ProgressStep is how many rows the bar grows per refresh.
	ProgressStep = 6
)

// Thresholds in samples.
const (
	RollbackThreshold = TickleEvery * InnerIterations * 2
	RestoreThreshold  = TickleEvery * InnerIterations * 4
)

// RollbackSlot is the loader slot that holds the previous firmware.
const RollbackSlot = 0

// Outcome is the set of actions a sample count selects. More than one
// action can be selected by a single hold.
type Outcome uint8

const (
	Continue Outcome = 1 << iota
	FactoryRestore
	Rollback
	// HeldIgnored marks a hold for the whole window. It is only logged and
	// does not stop the restore and rollback from running.
	HeldIgnored
)

func (o Outcome) Has(f Outcome) bool { return o&f != 0 }

func (o Outcome) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		o    Outcome
		name string
	}{
		{Continue, "continue"},
		{FactoryRestore, "factory-restore"},
		{Rollback, "rollback"},
		{HeldIgnored, "held-ignored"},
	} {
		if o.Has(f.o) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

// Classify maps a sample count to its actions. The checks are independent:
// a count above RestoreThreshold selects both FactoryRestore and Rollback.
func Classify(samples uint32) Outcome {
	var o Outcome
	if samples == MaxSamples {
		o |= HeldIgnored
	}
	if samples > RestoreThreshold {
		o |= FactoryRestore
	}
	if samples > RollbackThreshold {
		o |= Rollback
	}
	if !o.Has(FactoryRestore) && !o.Has(Rollback) {
		o |= Continue
	}
	return o
}

// ProgressColor is the colour of the progress bar for the samples so far:
// green below the rollback threshold, blue below the restore threshold,
// red above.
func ProgressColor(samples uint32) uint16 {
	switch {
	case samples < RollbackThreshold:
		return rle.Green
	case samples < RestoreThreshold:
		return rle.Blue
	default:
		return rle.Red
	}
}

// SplitRow is the first logo row drawn in the progress colour at outer
// iteration i. The bar grows up from the bottom of the screen.
func SplitRow(i int) int {
	return rle.MaxSide - (i/RefreshEvery)*ProgressStep + 1
}

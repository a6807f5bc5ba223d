package app

import (
	"fmt"

	"wristboot/boot/fault"
)

// installFaultHandler routes trapped faults to the supervisor.
func installFaultHandler(sup *fault.Supervisor) {
	fault.SetHandler(sup.Handle)
}

// recoverTrap turns a panic in the boot stage into a fault trap. The
// handler blinks and resets; on the host the trap is returned through err.
func recoverTrap(err *error) {
	r := recover()
	if r == nil {
		return
	}
	fault.Trigger(fault.Info{Kind: fault.KindTrap, Value: r})
	*err = &fault.Error{Kind: fault.KindTrap, Op: "boot", Err: fmt.Errorf("panic: %v", r)}
}

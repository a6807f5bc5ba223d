//go:build tinygo && baremetal

package app

import "wristboot/boot/fault"

// NMI_Handler replaces the runtime's default handler; an NMI is treated as
// a fatal fault.
//
//export NMI_Handler
func nmiHandler() {
	fault.Trigger(fault.Info{Kind: fault.KindTrap, Value: "NMI"})
	for {
	}
}

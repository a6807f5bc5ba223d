//go:build tinygo

package main

import (
	"wristboot/app"
	"wristboot/hal"
)

func main() {
	_ = app.Run(hal.New())
	// Only reached if the application could not be started.
	select {}
}

//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wristboot/app"
	"wristboot/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var headless bool
	var hold uint
	var scale int
	flag.BoolVar(&headless, "headless", false, "Run one boot without a window.")
	flag.UintVar(&hold, "hold", 0, "Headless: report the button pressed for the first N samples.")
	flag.StringVar(&cfg.Snapshot, "png", "", "Headless: write the final screen to this PNG file.")
	flag.BoolVar(&cfg.Host.VirtualClock, "virtual-clock", false, "Headless: delays cost no wall time.")
	flag.StringVar(&cfg.Host.FlashDir, "flash", os.Getenv("WRISTBOOT_FLASH_DIR"), "Directory holding internal.flash and external.flash (empty keeps flash in RAM).")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if hold > 0 {
			cfg.Host.Button = hal.HoldFor(uint32(hold))
		}
		err := hal.RunHeadless(ctx, app.Run, cfg)
		if err == nil || errors.Is(err, hal.ErrReset) || errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := hal.RunWindow(app.Run, cfg.Host, scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	// Snapshot, if set, receives the final panel frame as a PNG.
	Snapshot string
}

// RunHeadless boots the simulated watch once without opening a window and
// returns what the boot stage returned.
func RunHeadless(ctx context.Context, boot func(HAL) error, cfg HeadlessConfig) error {
	h, err := NewHost(cfg.Host)
	if err != nil {
		return err
	}
	defer h.Close()

	done := make(chan error, 1)
	go func() { done <- boot(h) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err = <-done:
	}

	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h.Panel(), cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func writeSnapshot(p *Panel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, p.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return f.Close()
}

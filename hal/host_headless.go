package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// RunHeadless runs the app without opening a window. Time advances by one
// frame per tick regardless of how late the ticker fires, so runs with the
// same Ticks are reproducible.
func RunHeadless(ctx context.Context, newApp App, cfg Config) error {
	return runHeadless(ctx, newApp, cfg, os.Stdout)
}

func runHeadless(ctx context.Context, newApp App, cfg Config, logw io.Writer) error {
	cfg = cfg.withDefaults()

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	frameMs := uint64(d / time.Millisecond)
	if frameMs == 0 {
		frameMs = 1
	}

	h := newHost(cfg, logw, nullAudio{})
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.stepN(frameMs)
			stop, err := runStep(step)
			if err != nil || stop {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

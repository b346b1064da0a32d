// FILE: lixenwraith/bitflags/internal/gen/watch.go
package gen

import (
	"context"
	"fmt"
	"os"
	"time"
)

// WatchOptions configures declaration file watching
type WatchOptions struct {
	// PollInterval for file stat checks (minimum MinPollInterval)
	PollInterval time.Duration

	// Debounce duration to coalesce editor save bursts
	Debounce time.Duration
}

// DefaultWatchOptions returns the polling defaults used by bitflagsgen
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// fileState is the part of a stat result that marks a change
type fileState struct {
	modTime time.Time
	size    int64
}

func (s fileState) differs(o fileState) bool {
	return !s.modTime.Equal(o.modTime) || s.size != o.size
}

func statFile(path string) (fileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}, err
	}
	return fileState{modTime: info.ModTime(), size: info.Size()}, nil
}

// Watch polls path and calls onChange once the file has changed and then
// stayed unchanged for the debounce period. A missing file is skipped until
// it reappears, which covers editors that save by rename. Watch blocks until
// ctx is done and then returns nil.
func Watch(ctx context.Context, path string, opts WatchOptions, onChange func()) error {
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}

	last, err := statFile(path)
	if err != nil {
		return fmt.Errorf("failed to watch '%s': %w", path, err)
	}

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	var (
		timer   *time.Timer
		settled <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			current, err := statFile(path)
			if err != nil || !current.differs(last) {
				continue
			}
			last = current

			// Debounce rapid changes
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(opts.Debounce)
			settled = timer.C

		case <-settled:
			settled = nil
			onChange()
		}
	}
}

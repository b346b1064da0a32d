// FILE: lixenwraith/bitflags/internal/gen/timing.go
package gen

import "time"

// Timing of declaration file watching
const (
	MinPollInterval     = 100 * time.Millisecond // Hard floor for file stat polling
	DefaultDebounce     = 300 * time.Millisecond // File change coalescence period
	DefaultPollInterval = time.Second            // Standard file monitoring frequency
)

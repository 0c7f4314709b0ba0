package timeouts

import "time"

// Short is for single-document reads and writes.
func Short() time.Duration { return 5 * time.Second }

// Medium is for multi-document queries.
func Medium() time.Duration { return 15 * time.Second }

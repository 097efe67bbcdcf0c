package ecs

import (
	"strconv"
	"sync/atomic"
)

var idCounter atomic.Uint64

// ID mints a process-unique identifier of the form "category:N". N is a
// monotonically increasing counter shared across categories, so two
// calls never collide even under concurrent use.
func ID(category string) string {
	n := idCounter.Add(1)
	return category + ":" + strconv.FormatUint(n, 10)
}

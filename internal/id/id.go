// Package id generates process-unique, timestamp-derived identifiers.
package id

import (
	"sync/atomic"
	"time"
)

var last atomic.Int64

// Next returns a millisecond-timestamp identifier. Two calls within the same
// millisecond still yield distinct, strictly increasing values.
func Next() int64 {
	for {
		now := time.Now().UnixMilli()

		prev := last.Load()
		if now <= prev {
			now = prev + 1
		}

		if last.CompareAndSwap(prev, now) {
			return now
		}
	}
}

package opaquebox

import (
	"math"
	"sync/atomic"
)

// Stats is a snapshot of process-wide Box accounting.
type Stats struct {
	Allocations    uint64
	Releases       uint64
	AllocatedBytes uint64
	ReleasedBytes  uint64
}

// Live returns the number of Boxes constructed and not yet closed.
func (s Stats) Live() int64 {
	return toInt64(s.Allocations) - toInt64(s.Releases)
}

// LiveBytes returns the payload bytes still owned by live Boxes. Only the
// top-level size of each T is counted, not what it references.
func (s Stats) LiveBytes() int64 {
	return toInt64(s.AllocatedBytes) - toInt64(s.ReleasedBytes)
}

var accounting struct {
	allocations    atomic.Uint64
	releases       atomic.Uint64
	allocatedBytes atomic.Uint64
	releasedBytes  atomic.Uint64
}

// ReadStats returns the current accounting snapshot. Counters only grow, so
// tests compare deltas against an earlier snapshot.
func ReadStats() Stats {
	return Stats{
		Allocations:    accounting.allocations.Load(),
		Releases:       accounting.releases.Load(),
		AllocatedBytes: accounting.allocatedBytes.Load(),
		ReleasedBytes:  accounting.releasedBytes.Load(),
	}
}

func recordAllocation(size uint64) {
	accounting.allocations.Add(1)
	accounting.allocatedBytes.Add(size)
}

func recordRelease(size uint64) {
	accounting.releases.Add(1)
	accounting.releasedBytes.Add(size)
}

func toInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(v)
}

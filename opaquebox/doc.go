// Package opaquebox provides Box, a pointer-sized owning handle to a
// heap-allocated value.
//
// A Box stores nothing but the address of its value, so passing or embedding
// one costs a single machine word no matter how large the wrapped value is.
// Ownership is exclusive: exactly one Box releases a given allocation, and it
// does so exactly once.
//
// Typical usage:
//
//	b := opaquebox.New(loadSnapshot())
//	defer b.Close()
//
//	snapshot := b.Get() // *Snapshot, no copy
//	fmt.Printf("%+v\n", b)
//
// Reading a Box after Close is a programming error: Get and Value panic with
// an *AccessError, while Lookup and Clone report ErrReleased.
//
// Package-level accounting (ReadStats, Instrument) tracks allocations and
// releases across every Box in the process. Read tracing is opt-in through
// SetReadTracing or the OPAQUEBOX_TRACE_READS environment variable.
package opaquebox

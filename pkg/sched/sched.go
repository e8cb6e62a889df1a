// Package sched provides the read/write phase scheduler the placement
// engine batches scene access through.
//
// Reading layout state (measuring) after mutating it forces the host to
// recompute layout; interleaving the two per render call multiplies that
// cost under rapid pointer movement. The scheduler therefore keeps two
// queues per cycle and guarantees that every read scheduled for a cycle
// runs before any write scheduled for that cycle.
//
// # Usage
//
//	fs := sched.NewFrame()
//	fs.Read(func() { size = sc.Measure(node) })
//	fs.Write(func() { sc.SetStyle(node, "transform", ...) })
//	fs.Flush() // all reads, then all writes
//
// The [Immediate] scheduler runs callbacks at call time and exists for
// callers that drive a single render synchronously; a lone place() cycle
// still orders its reads before its writes because the controller issues
// them in that order.
package sched

// Scheduler batches scene reads and writes into separate phases.
type Scheduler interface {
	// Read schedules a measurement callback.
	Read(fn func())

	// Write schedules a mutation callback.
	Write(fn func())
}

// Frame is a two-phase scheduler. Callbacks accumulate until Flush,
// which runs every queued read before any queued write, FIFO within
// each phase.
//
// Writes scheduled from inside a read callback join the current flush.
// Reads scheduled from inside a write callback are deferred to the next
// flush, so a late measurement can never observe the document mid-cycle.
//
// Frame is not goroutine-safe; it is meant to be driven from the single
// UI thread of control.
type Frame struct {
	reads    []func()
	writes   []func()
	flushing bool
	deferred []func() // reads scheduled during the write pass
}

// NewFrame creates an empty frame scheduler.
func NewFrame() *Frame {
	return &Frame{}
}

// Read schedules fn for the read phase of the current cycle, or the next
// cycle if the current one is already in its write pass.
func (f *Frame) Read(fn func()) {
	if f.flushing && len(f.reads) == 0 {
		f.deferred = append(f.deferred, fn)
		return
	}
	f.reads = append(f.reads, fn)
}

// Write schedules fn for the write phase of the current cycle.
func (f *Frame) Write(fn func()) {
	f.writes = append(f.writes, fn)
}

// Flush runs the current cycle: all reads first, then all writes.
// It returns the number of callbacks executed.
func (f *Frame) Flush() int {
	f.flushing = true
	ran := 0

	for len(f.reads) > 0 {
		fn := f.reads[0]
		f.reads = f.reads[1:]
		fn()
		ran++
	}
	for len(f.writes) > 0 {
		fn := f.writes[0]
		f.writes = f.writes[1:]
		fn()
		ran++
	}

	f.flushing = false
	f.reads = append(f.reads, f.deferred...)
	f.deferred = nil
	return ran
}

// Pending reports whether any callbacks are queued.
func (f *Frame) Pending() bool {
	return len(f.reads) > 0 || len(f.writes) > 0 || len(f.deferred) > 0
}

// Immediate runs every callback at call time.
type Immediate struct{}

// NewImmediate creates an immediate scheduler.
func NewImmediate() Immediate { return Immediate{} }

// Read runs fn now.
func (Immediate) Read(fn func()) { fn() }

// Write runs fn now.
func (Immediate) Write(fn func()) { fn() }

var (
	_ Scheduler = (*Frame)(nil)
	_ Scheduler = Immediate{}
)

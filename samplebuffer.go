package hmi

import (
	"iter"
	"math"
	"sort"
)

// Sample is a single timestamped measurement.
// Time is in seconds; any monotonic epoch works as long as the
// application is consistent about it.
type Sample struct {
	Time  float64
	Value float64
}

// SampleBuffer is a bounded ring buffer of samples ordered by strictly
// increasing time. When full, pushing a new sample evicts the oldest.
//
// The buffer is not safe for concurrent use. An acquisition thread must
// hand samples to the rendering thread through its own queue.
type SampleBuffer struct {
	data []Sample // Fixed-size backing store, len == cap
	head int      // Index of the oldest sample
	n    int      // Number of valid samples
}

// NewSampleBuffer creates a buffer holding at most capacity samples.
// Capacity must be at least 1.
func NewSampleBuffer(capacity int) *SampleBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleBuffer{
		data: make([]Sample, capacity),
	}
}

// Push appends a sample.
//
// Returns ErrInvalidSample for NaN or infinite values and
// ErrOutOfOrderSample when the timestamp does not strictly increase.
// A rejected sample leaves the buffer unchanged. When the buffer is
// full the oldest sample is evicted.
func (b *SampleBuffer) Push(s Sample) error {
	if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) ||
		math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
		return ErrInvalidSample
	}
	if b.n > 0 {
		last := b.at(b.n - 1)
		if s.Time <= last.Time {
			return ErrOutOfOrderSample
		}
	}

	if b.n == len(b.data) {
		// Full: overwrite the oldest slot and advance head
		b.data[b.head] = s
		b.head = (b.head + 1) % len(b.data)
		return nil
	}

	b.data[(b.head+b.n)%len(b.data)] = s
	b.n++
	return nil
}

// at returns the i-th sample (0 = oldest) without bounds checking.
func (b *SampleBuffer) at(i int) Sample {
	return b.data[(b.head+i)%len(b.data)]
}

// At returns the i-th sample, 0 being the oldest.
// Returns false if i is out of range.
func (b *SampleBuffer) At(i int) (Sample, bool) {
	if i < 0 || i >= b.n {
		return Sample{}, false
	}
	return b.at(i), true
}

// Len returns the number of samples currently held.
func (b *SampleBuffer) Len() int { return b.n }

// Cap returns the buffer capacity.
func (b *SampleBuffer) Cap() int { return len(b.data) }

// Clear removes all samples. Capacity is retained.
func (b *SampleBuffer) Clear() {
	b.head = 0
	b.n = 0
}

// Latest returns the most recent sample, or false when empty.
func (b *SampleBuffer) Latest() (Sample, bool) {
	if b.n == 0 {
		return Sample{}, false
	}
	return b.at(b.n - 1), true
}

// Oldest returns the least recent sample, or false when empty.
func (b *SampleBuffer) Oldest() (Sample, bool) {
	if b.n == 0 {
		return Sample{}, false
	}
	return b.at(0), true
}

// Range returns an iterator over samples with t0 <= Time <= t1 in time
// order. The iterator is restartable and allocation-free; it finds the
// start boundary by binary search over the ring.
func (b *SampleBuffer) Range(t0, t1 float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if b.n == 0 || t1 < t0 {
			return
		}
		// First sample with Time >= t0
		start := sort.Search(b.n, func(i int) bool {
			return b.at(i).Time >= t0
		})
		for i := start; i < b.n; i++ {
			s := b.at(i)
			if s.Time > t1 {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// IndexRange returns the half-open index interval [lo, hi) of samples
// with t0 <= Time <= t1. Useful when callers need counts before
// iterating.
func (b *SampleBuffer) IndexRange(t0, t1 float64) (lo, hi int) {
	if b.n == 0 || t1 < t0 {
		return 0, 0
	}
	lo = sort.Search(b.n, func(i int) bool {
		return b.at(i).Time >= t0
	})
	hi = sort.Search(b.n, func(i int) bool {
		return b.at(i).Time > t1
	})
	return lo, hi
}

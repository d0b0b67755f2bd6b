package hmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBufferPushAndRange(t *testing.T) {
	buf := NewSampleBuffer(100)

	for i := 0; i < 50; i++ {
		err := buf.Push(Sample{Time: float64(i), Value: float64(i) * 10})
		require.NoError(t, err)
	}
	assert.Equal(t, 50, buf.Len())

	// Every pushed sample comes back, in order
	count := 0
	prev := math.Inf(-1)
	for s := range buf.Range(math.Inf(-1), math.Inf(1)) {
		assert.Greater(t, s.Time, prev)
		prev = s.Time
		count++
	}
	assert.Equal(t, 50, count)
}

func TestSampleBufferEviction(t *testing.T) {
	buf := NewSampleBuffer(5)

	for i := 1; i <= 10; i++ {
		err := buf.Push(Sample{Time: float64(i), Value: float64(i) * 10})
		require.NoError(t, err)
	}

	// Only the newest 5 survive
	assert.Equal(t, 5, buf.Len())
	oldest, ok := buf.Oldest()
	require.True(t, ok)
	assert.Equal(t, 6.0, oldest.Time)
	latest, ok := buf.Latest()
	require.True(t, ok)
	assert.Equal(t, 10.0, latest.Time)

	for i := 0; i < 5; i++ {
		s, ok := buf.At(i)
		require.True(t, ok)
		assert.Equal(t, float64(i+6), s.Time)
		assert.Equal(t, float64(i+6)*10, s.Value)
	}
}

func TestSampleBufferRejectsOutOfOrder(t *testing.T) {
	buf := NewSampleBuffer(10)

	require.NoError(t, buf.Push(Sample{Time: 5, Value: 1}))

	// Stale and duplicate timestamps are both rejected
	assert.ErrorIs(t, buf.Push(Sample{Time: 4, Value: 2}), ErrOutOfOrderSample)
	assert.ErrorIs(t, buf.Push(Sample{Time: 5, Value: 2}), ErrOutOfOrderSample)

	assert.Equal(t, 1, buf.Len())
	latest, _ := buf.Latest()
	assert.Equal(t, 1.0, latest.Value)
}

func TestSampleBufferRejectsNonFinite(t *testing.T) {
	buf := NewSampleBuffer(10)

	assert.ErrorIs(t, buf.Push(Sample{Time: 1, Value: math.NaN()}), ErrInvalidSample)
	assert.ErrorIs(t, buf.Push(Sample{Time: 1, Value: math.Inf(1)}), ErrInvalidSample)
	assert.ErrorIs(t, buf.Push(Sample{Time: math.NaN(), Value: 1}), ErrInvalidSample)
	assert.Equal(t, 0, buf.Len())
}

func TestSampleBufferRangeBounds(t *testing.T) {
	buf := NewSampleBuffer(100)
	for i := 0; i < 20; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i)}))
	}

	// Closed interval: both endpoints included, nothing outside
	var got []float64
	for s := range buf.Range(5, 10) {
		got = append(got, s.Time)
	}
	assert.Equal(t, []float64{5, 6, 7, 8, 9, 10}, got)

	// Empty interval
	count := 0
	for range buf.Range(100, 200) {
		count++
	}
	assert.Zero(t, count)

	// Inverted interval yields nothing
	for range buf.Range(10, 5) {
		count++
	}
	assert.Zero(t, count)
}

func TestSampleBufferRangeAfterEviction(t *testing.T) {
	// The binary search must work across the ring wrap point
	buf := NewSampleBuffer(8)
	for i := 0; i < 20; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i)}))
	}

	var got []float64
	for s := range buf.Range(14, 17) {
		got = append(got, s.Time)
	}
	assert.Equal(t, []float64{14, 15, 16, 17}, got)
}

func TestSampleBufferRangeRestartable(t *testing.T) {
	buf := NewSampleBuffer(10)
	for i := 0; i < 10; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i)}))
	}

	seq := buf.Range(2, 7)
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestSampleBufferIndexRange(t *testing.T) {
	buf := NewSampleBuffer(10)
	for i := 0; i < 10; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i)}))
	}

	lo, hi := buf.IndexRange(3, 6)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 7, hi)

	lo, hi = buf.IndexRange(20, 30)
	assert.Equal(t, lo, hi)
}

func TestSampleBufferClear(t *testing.T) {
	buf := NewSampleBuffer(10)
	require.NoError(t, buf.Push(Sample{Time: 1, Value: 1}))
	buf.Clear()

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 10, buf.Cap())
	_, ok := buf.Latest()
	assert.False(t, ok)

	// Timestamps may restart after a clear
	assert.NoError(t, buf.Push(Sample{Time: 0.5, Value: 1}))
}

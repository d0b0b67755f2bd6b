package hmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimateLossless(t *testing.T) {
	buf := NewSampleBuffer(100)
	for i := 0; i < 10; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i) * 2}))
	}

	// More columns than samples: every sample becomes its own point
	pts := Decimate(buf, TimeWindow{Start: 0, End: 9}, 100, nil)
	require.Len(t, pts, 10)
	for _, p := range pts {
		assert.Equal(t, 1, p.Count)
		assert.Equal(t, p.Min, p.Max)
		assert.Equal(t, p.Min, p.Last)
	}
}

func TestDecimateAggregates(t *testing.T) {
	buf := NewSampleBuffer(2000)
	for i := 0; i < 1000; i++ {
		v := math.Sin(float64(i) * 0.1)
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: v}))
	}
	win := TimeWindow{Start: 0, End: 999}

	pts := Decimate(buf, win, 10, nil)
	require.NotEmpty(t, pts)
	assert.LessOrEqual(t, len(pts), 10)

	total := 0
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Max, p.Min)
		assert.GreaterOrEqual(t, p.Last, p.Min)
		assert.LessOrEqual(t, p.Last, p.Max)
		total += p.Count
	}
	assert.Equal(t, 1000, total)

	// No column envelope may clip a raw sample in its span
	for s := range buf.Range(win.Start, win.End) {
		col := int((s.Time - win.Start) / win.Span() * 10)
		if col >= 10 {
			col = 9
		}
		for _, p := range pts {
			if p.Column == col {
				assert.GreaterOrEqual(t, p.Max, s.Value)
				assert.LessOrEqual(t, p.Min, s.Value)
			}
		}
	}
}

func TestDecimateSpikeSurvives(t *testing.T) {
	buf := NewSampleBuffer(2000)
	for i := 0; i < 1000; i++ {
		v := 1.0
		if i == 500 {
			v = 100.0
		}
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: v}))
	}

	pts := Decimate(buf, TimeWindow{Start: 0, End: 999}, 10, nil)
	found := false
	for _, p := range pts {
		if p.Max == 100.0 {
			found = true
		}
	}
	assert.True(t, found, "spike must survive decimation as a column max")
}

func TestDecimateGapsProduceNoPoints(t *testing.T) {
	buf := NewSampleBuffer(100)
	// Two bursts with a long silence between them
	for i := 0; i < 10; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: 1}))
	}
	for i := 90; i < 100; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: 1}))
	}

	pts := Decimate(buf, TimeWindow{Start: 0, End: 99}, 10, nil)
	cols := map[int]bool{}
	for _, p := range pts {
		cols[p.Column] = true
	}
	assert.True(t, cols[0])
	assert.True(t, cols[9])
	// Middle columns hold no samples and therefore no points
	for c := 2; c <= 8; c++ {
		assert.False(t, cols[c], "column %d should be empty", c)
	}
}

func TestDecimateWindowSubset(t *testing.T) {
	buf := NewSampleBuffer(100)
	for i := 0; i < 100; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: float64(i)}))
	}

	pts := Decimate(buf, TimeWindow{Start: 40, End: 59}, 100, nil)
	total := 0
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Min, 40.0)
		assert.LessOrEqual(t, p.Max, 59.0)
		total += p.Count
	}
	assert.Equal(t, 20, total)
}

func TestDecimateReusesDst(t *testing.T) {
	buf := NewSampleBuffer(100)
	for i := 0; i < 50; i++ {
		require.NoError(t, buf.Push(Sample{Time: float64(i), Value: 1}))
	}
	win := TimeWindow{Start: 0, End: 49}

	first := Decimate(buf, win, 100, nil)
	second := Decimate(buf, win, 100, first)
	assert.Equal(t, len(first), len(second))
	// Same backing array when capacity suffices
	assert.Equal(t, &first[0], &second[0])
}

func TestDecimateDegenerateInputs(t *testing.T) {
	buf := NewSampleBuffer(10)
	require.NoError(t, buf.Push(Sample{Time: 1, Value: 1}))

	assert.Empty(t, Decimate(nil, TimeWindow{Start: 0, End: 1}, 10, nil))
	assert.Empty(t, Decimate(buf, TimeWindow{Start: 0, End: 1}, 0, nil))
	assert.Empty(t, Decimate(buf, TimeWindow{Start: 1, End: 1}, 10, nil))
	assert.Empty(t, Decimate(buf, TimeWindow{Start: 5, End: 9}, 10, nil))
}

package hmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesSetAddRemove(t *testing.T) {
	ss := NewSeriesSet()

	require.NoError(t, ss.Add("temp", DisplayMeta{Label: "Temp", Visible: true}, 100))
	assert.ErrorIs(t, ss.Add("temp", DisplayMeta{}, 100), ErrDuplicateSeries)
	assert.Equal(t, 1, ss.Len())

	require.NoError(t, ss.Remove("temp"))
	assert.ErrorIs(t, ss.Remove("temp"), ErrUnknownSeries)
	assert.Equal(t, 0, ss.Len())
}

func TestSeriesSetPush(t *testing.T) {
	ss := NewSeriesSet()
	require.NoError(t, ss.Add("flow", DisplayMeta{Visible: true}, 10))

	require.NoError(t, ss.Push("flow", Sample{Time: 1, Value: 42}))
	assert.ErrorIs(t, ss.Push("nope", Sample{Time: 1, Value: 0}), ErrUnknownSeries)

	sr := ss.Get("flow")
	require.NotNil(t, sr)
	assert.Equal(t, 1, sr.Buf.Len())
}

func TestSeriesSetIterationOrder(t *testing.T) {
	ss := NewSeriesSet()
	require.NoError(t, ss.Add("a", DisplayMeta{Visible: true}, 1))
	require.NoError(t, ss.Add("b", DisplayMeta{Visible: false}, 1))
	require.NoError(t, ss.Add("c", DisplayMeta{Visible: true}, 1))

	var all []string
	ss.All(func(sr *Series) bool {
		all = append(all, sr.ID)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, all)

	var visible []string
	ss.Visible(func(sr *Series) bool {
		visible = append(visible, sr.ID)
		return true
	})
	assert.Equal(t, []string{"a", "c"}, visible)

	// Removing from the middle keeps the rest stable
	require.NoError(t, ss.Remove("b"))
	all = all[:0]
	ss.All(func(sr *Series) bool {
		all = append(all, sr.ID)
		return true
	})
	assert.Equal(t, []string{"a", "c"}, all)
}

func TestSeriesSetVisibility(t *testing.T) {
	ss := NewSeriesSet()
	require.NoError(t, ss.Add("a", DisplayMeta{Visible: true}, 1))

	require.NoError(t, ss.SetVisible("a", false))
	count := 0
	ss.Visible(func(sr *Series) bool {
		count++
		return true
	})
	assert.Zero(t, count)

	assert.ErrorIs(t, ss.SetVisible("nope", true), ErrUnknownSeries)
}

func TestSeriesSetSetMeta(t *testing.T) {
	ss := NewSeriesSet()
	require.NoError(t, ss.Add("a", DisplayMeta{Label: "old"}, 1))

	require.NoError(t, ss.SetMeta("a", DisplayMeta{Label: "new", Unit: "bar", Visible: true}))
	assert.Equal(t, "new", ss.Get("a").Meta.Label)
	assert.Equal(t, "bar", ss.Get("a").Meta.Unit)

	assert.ErrorIs(t, ss.SetMeta("nope", DisplayMeta{}), ErrUnknownSeries)
}

func TestSeriesSetLatestTime(t *testing.T) {
	ss := NewSeriesSet()
	require.NoError(t, ss.Add("a", DisplayMeta{Visible: true}, 10))
	require.NoError(t, ss.Add("b", DisplayMeta{Visible: true}, 10))

	_, ok := ss.LatestTime()
	assert.False(t, ok)

	require.NoError(t, ss.Push("a", Sample{Time: 5, Value: 0}))
	require.NoError(t, ss.Push("b", Sample{Time: 9, Value: 0}))

	latest, ok := ss.LatestTime()
	require.True(t, ok)
	assert.Equal(t, 9.0, latest)
}

package history_test

import (
	"testing"

	"github.com/katalvlaran/eternity/history"
	"github.com/stretchr/testify/require"
)

func TestHistory_PushAndPopRoundTrip(t *testing.T) {
	h := history.New(0)
	h.Push(0, 0, 1, 2)
	h.Push(0, 1, 3, 0)
	require.Equal(t, 2, h.Depth())

	rec, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, history.Record{Row: 0, Col: 1, TileID: 3, Rotation: 0}, rec)
	require.Equal(t, 1, h.Depth())
}

func TestHistory_PopRefusesPastFixedPrefix(t *testing.T) {
	h := history.New(2)
	h.Push(0, 0, 1, 0)
	h.Push(0, 1, 2, 0)
	h.Push(0, 2, 3, 0)

	_, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 2, h.Depth())

	_, ok = h.Pop()
	require.False(t, ok, "popping the fixed prefix must be refused")
	require.Equal(t, 2, h.Depth())
}

func TestHistory_LoadRecordsReplacesLogWholesale(t *testing.T) {
	h := history.New(1)
	h.Push(0, 0, 9, 0)

	h.LoadRecords([]history.Record{
		{Row: 0, Col: 0, TileID: 9, Rotation: 0},
		{Row: 0, Col: 1, TileID: 4, Rotation: 1},
		{Row: 0, Col: 2, TileID: 2, Rotation: 3},
	})
	require.Equal(t, 3, h.Depth())

	rec, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 2, rec.TileID)
	require.Equal(t, 2, h.Depth())
}

func TestHistory_RecordsReturnsIndependentCopy(t *testing.T) {
	h := history.New(0)
	h.Push(0, 0, 1, 0)

	snap := h.Records()
	snap[0].TileID = 999
	require.Equal(t, 1, h.Records()[0].TileID)
}

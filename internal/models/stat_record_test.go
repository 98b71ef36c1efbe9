package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatRecord_DayTruncates(t *testing.T) {
	r := StatRecord{Timestamp: time.Date(2024, 1, 3, 17, 45, 12, 0, time.UTC)}
	assert.Equal(t, day(2024, 1, 3), r.Day())
}

func TestMergeStatSeries_FillsGapsThroughToday(t *testing.T) {
	persisted := []StatRecord{
		{Timestamp: day(2024, 1, 3), Count: 10, Uniques: 4},
	}
	fetched := []StatRecord{
		{Timestamp: day(2024, 1, 5), Count: 7, Uniques: 2},
	}

	merged := MergeStatSeries(persisted, fetched, day(2024, 1, 6))

	require.Len(t, merged, 4)
	assert.Equal(t, day(2024, 1, 3), merged[0].Day())
	assert.Equal(t, 10, merged[0].Count)
	// 2024-01-04 wasn't in either input and must be zero-filled
	assert.Equal(t, day(2024, 1, 4), merged[1].Day())
	assert.Zero(t, merged[1].Count)
	assert.Zero(t, merged[1].Uniques)
	assert.Equal(t, day(2024, 1, 5), merged[2].Day())
	assert.Equal(t, 7, merged[2].Count)
	// series always extends to today
	assert.Equal(t, day(2024, 1, 6), merged[3].Day())
	assert.Zero(t, merged[3].Count)
}

func TestMergeStatSeries_PersistedWinsOverFetched(t *testing.T) {
	persisted := []StatRecord{{Timestamp: day(2024, 1, 3), Count: 10, Uniques: 4}}
	fetched := []StatRecord{{Timestamp: day(2024, 1, 3), Count: 99, Uniques: 50}}

	merged := MergeStatSeries(persisted, fetched, day(2024, 1, 3))

	require.Len(t, merged, 1)
	assert.Equal(t, 10, merged[0].Count)
	assert.Equal(t, 4, merged[0].Uniques)
}

func TestMergeStatSeries_Idempotent(t *testing.T) {
	fetched := []StatRecord{
		{Timestamp: day(2024, 1, 1), Count: 3, Uniques: 1},
		{Timestamp: day(2024, 1, 2), Count: 5, Uniques: 2},
	}
	today := day(2024, 1, 4)

	once := MergeStatSeries(nil, fetched, today)
	twice := MergeStatSeries(once, nil, today)

	assert.Equal(t, once, twice)
}

func TestMergeStatSeries_EmptyInputs(t *testing.T) {
	assert.Nil(t, MergeStatSeries(nil, nil, day(2024, 1, 1)))
}

func TestMergeStatSeries_SortedAscending(t *testing.T) {
	fetched := []StatRecord{
		{Timestamp: day(2024, 1, 5), Count: 1},
		{Timestamp: day(2024, 1, 2), Count: 2},
		{Timestamp: day(2024, 1, 4), Count: 3},
	}

	merged := MergeStatSeries(nil, fetched, day(2024, 1, 5))

	require.Len(t, merged, 4)
	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i-1].Day().Before(merged[i].Day()))
	}
}

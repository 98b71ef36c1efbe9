package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/testutil"
)

func statStore(t *testing.T, mirror Mirror) (*SeriesStore[models.StatRecord], string) {
	t.Helper()
	dir := t.TempDir()
	store := NewSeriesStore(dir, "views.csv", StatCodec{}, mirror, &testutil.MockLogger{}, &testutil.MockMetrics{})
	return store, dir
}

func storeDay(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSeriesStore_SaveLoadRoundtrip(t *testing.T) {
	store, _ := statStore(t, testutil.NewMockMirror())
	records := []models.StatRecord{
		{Timestamp: storeDay(1), Count: 3, Uniques: 1},
		{Timestamp: storeDay(2), Count: 0, Uniques: 0},
	}

	require.NoError(t, store.Save(context.Background(), records))
	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSeriesStore_MissingEverywhereIsEmpty(t *testing.T) {
	store, _ := statStore(t, testutil.NewMockMirror())

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSeriesStore_PrefersMirror(t *testing.T) {
	mirror := testutil.NewMockMirror()
	mirror.Objects["views.csv"] = []byte("timestamp,count,uniques\n2024-01-05T00:00:00Z,9,4\n")
	store, dir := statStore(t, mirror)
	local := "timestamp,count,uniques\n2024-01-05T00:00:00Z,1,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "views.csv"), []byte(local), 0644))

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 9, loaded[0].Count)
}

func TestSeriesStore_FallsBackToLocalOnMirrorError(t *testing.T) {
	mirror := testutil.NewMockMirror()
	mirror.FetchErr = errors.New("connection refused")
	store, dir := statStore(t, mirror)
	local := "timestamp,count,uniques\n2024-01-05T00:00:00Z,1,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "views.csv"), []byte(local), 0644))

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].Count)
}

func TestSeriesStore_CorruptFileIsAnError(t *testing.T) {
	mirror := testutil.NewMockMirror()
	mirror.Objects["views.csv"] = []byte("timestamp,count,uniques\n2024-01-05T00:00:00Z,many,4\n")
	store, _ := statStore(t, mirror)

	_, err := store.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt series file")
}

func TestSeriesStore_UploadFailureDoesNotFailSave(t *testing.T) {
	mirror := testutil.NewMockMirror()
	mirror.PutErr = errors.New("bucket gone")
	store, dir := statStore(t, mirror)

	err := store.Save(context.Background(), []models.StatRecord{{Timestamp: storeDay(1), Count: 3}})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "views.csv"))
	assert.NoError(t, statErr)
}

func TestSeriesStore_SaveLeavesNoTempFile(t *testing.T) {
	store, dir := statStore(t, testutil.NewMockMirror())

	require.NoError(t, store.Save(context.Background(), []models.StatRecord{{Timestamp: storeDay(1)}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "views.csv", entries[0].Name())
}

func TestSeriesStore_SaveCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewSeriesStore(dir, "views.csv", StatCodec{}, testutil.NewMockMirror(), &testutil.MockLogger{}, &testutil.MockMetrics{})

	err := store.Save(context.Background(), []models.StatRecord{{Timestamp: storeDay(1), Count: 3}})

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "views.csv"))
	assert.NoError(t, statErr)
}

func TestSeriesStore_EmptySeriesWritesHeaderOnly(t *testing.T) {
	store, dir := statStore(t, testutil.NewMockMirror())

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "views.csv"))
	require.NoError(t, err)
	assert.Equal(t, "timestamp,count,uniques\n", string(data))
}

package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchdash/internal/perf"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func latencyPayload(durations ...float64) perf.Payload {
	series := perf.Series{Benchmark: "decode_json"}
	for i, d := range durations {
		series.Data = append(series.Data, perf.Measurement{
			Iteration: int64(i),
			Perf:      perf.Metric{Duration: d},
		})
	}
	return perf.Payload{Kind: "latency", PerfData: []perf.Series{series}}
}

func TestSQLiteStoreRoundtrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveReport("decode-json", latencyPayload(100, 110)))

	payload, err := store.LatestPayload("decode-json", "latency")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "latency", payload.Kind)
	require.Len(t, payload.PerfData, 1)
	assert.Len(t, payload.PerfData[0].Data, 2)
}

func TestSQLiteStoreLatestWins(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveReport("decode-json", latencyPayload(100)))
	require.NoError(t, store.SaveReport("decode-json", latencyPayload(90, 95, 92)))

	payload, err := store.LatestPayload("decode-json", "latency")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Len(t, payload.PerfData[0].Data, 3)
}

func TestSQLiteStoreEmpty(t *testing.T) {
	store := newTestStore(t)

	payload, err := store.LatestPayload("missing", "latency")
	require.NoError(t, err)
	assert.Nil(t, payload)

	reports, err := store.ListReports("missing", 10)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestSQLiteStoreKindsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveReport("decode-json", latencyPayload(100)))
	require.NoError(t, store.SaveReport("decode-json", perf.Payload{
		Kind:     "throughput",
		PerfData: []perf.Series{{Data: []perf.Measurement{{Perf: perf.Metric{Event: 10, UnitTime: 2}}}}},
	}))

	payload, err := store.LatestPayload("decode-json", "latency")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "latency", payload.Kind)
}

func TestSQLiteStoreListReports(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveReport("decode-json", latencyPayload(100)))
	require.NoError(t, store.SaveReport("decode-json", latencyPayload(90)))
	require.NoError(t, store.SaveReport("other", latencyPayload(50)))

	reports, err := store.ListReports("decode-json", 10)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, "decode-json", r.Project)
		assert.Equal(t, "latency", r.Kind)
	}
}

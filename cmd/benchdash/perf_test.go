package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchdash/internal/db"
	"benchdash/internal/perf"
	"benchdash/internal/web"
)

func startTestAPI(t *testing.T) (*httptest.Server, db.Store) {
	t.Helper()
	store, err := db.NewSQLiteStore(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	ts := httptest.NewServer(web.NewServer(store, nil, 0).Handler())
	t.Cleanup(func() {
		ts.Close()
		store.Close()
	})
	return ts, store
}

func TestActiveMask(t *testing.T) {
	mask, err := activeMask(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, mask)

	mask, err = activeMask(3, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, mask)

	// Out-of-range indexes are ignored, garbage is not.
	mask, err = activeMask(2, []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, mask)

	_, err = activeMask(2, []string{"one"})
	assert.Error(t, err)
}

func TestRunPerfRequiresProject(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := runPerf(testCommand(), nil)
	assert.ErrorContains(t, err, "no project configured")
}

func TestRunPerfTabulatesSeries(t *testing.T) {
	ts, store := startTestAPI(t)

	require.NoError(t, store.SaveReport("decode-json", perf.Payload{
		Kind: "throughput",
		PerfData: []perf.Series{
			{Benchmark: "decode_json", Data: []perf.Measurement{
				{Iteration: 1, Perf: perf.Metric{Event: 10, UnitTime: 2}},
			}},
		},
	}))

	viper.Reset()
	defer viper.Reset()
	viper.Set("api.url", ts.URL)
	viper.Set("project", "decode-json")
	viper.Set("session.file", filepath.Join(t.TempDir(), "session.json"))

	perfKind = "throughput"
	defer func() { perfKind = "latency" }()

	out := new(bytes.Buffer)
	cmd := testCommand()
	cmd.SetOut(out)

	require.NoError(t, runPerf(cmd, nil))
	assert.Contains(t, out.String(), "decode_json")
	assert.Contains(t, out.String(), "↑ Events per Unit Time")
	assert.Contains(t, out.String(), "5")
}

func TestRunPerfEmptyReport(t *testing.T) {
	ts, _ := startTestAPI(t)

	viper.Reset()
	defer viper.Reset()
	viper.Set("api.url", ts.URL)
	viper.Set("project", "empty")
	viper.Set("session.file", filepath.Join(t.TempDir(), "session.json"))

	out := new(bytes.Buffer)
	cmd := testCommand()
	cmd.SetOut(out)

	require.NoError(t, runPerf(cmd, nil))
	assert.Contains(t, out.String(), "No series to show")
}

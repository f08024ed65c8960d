package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "kind": "latency",
  "perf_data": [
    {"benchmark": "decode_json", "data": [
      {"start_time": "2026-08-25T10:00:00Z", "iteration": 0, "perf": {"duration": 120}}
    ]}
  ]
}`

func TestRunReportSubmits(t *testing.T) {
	ts, store := startTestAPI(t)

	viper.Reset()
	defer viper.Reset()
	viper.Set("api.url", ts.URL)
	viper.Set("project", "decode-json")
	viper.Set("session.file", filepath.Join(t.TempDir(), "session.json"))

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o644))

	out := new(bytes.Buffer)
	cmd := testCommand()
	cmd.SetOut(out)

	require.NoError(t, runReport(cmd, []string{path}))
	assert.Contains(t, out.String(), "Submitted latency report with 1 series")

	stored, err := store.LatestPayload("decode-json", "latency")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "decode_json", stored.PerfData[0].Benchmark)
}

func TestRunReportFromStdin(t *testing.T) {
	ts, _ := startTestAPI(t)

	viper.Reset()
	defer viper.Reset()
	viper.Set("api.url", ts.URL)
	viper.Set("project", "decode-json")
	viper.Set("session.file", filepath.Join(t.TempDir(), "session.json"))

	cmd := testCommand()
	cmd.SetIn(bytes.NewBufferString(sampleReport))

	require.NoError(t, runReport(cmd, []string{"-"}))
}

func TestRunReportRejectsUnknownKind(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("project", "decode-json")

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"kind":"vibes","perf_data":[]}`), 0o644))

	err := runReport(testCommand(), []string{path})
	assert.ErrorContains(t, err, "unknown measurement kind")
}

func TestRunReportRequiresProject(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := runReport(testCommand(), []string{"whatever.json"})
	assert.ErrorContains(t, err, "no project configured")
}

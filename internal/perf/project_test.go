package perf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectThroughput(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	payload := &Payload{
		Kind: "throughput",
		PerfData: []Series{
			{
				Benchmark: "decode_json",
				Data: []Measurement{
					{StartTime: start, Iteration: 3, Perf: Metric{Event: 10, UnitTime: 2}},
				},
			},
		},
	}

	marks, label := Project(payload, []bool{true})
	require.Len(t, marks, 1)
	require.Len(t, marks[0].Points, 1)
	assert.Equal(t, 5.0, marks[0].Points[0].Y)
	assert.Equal(t, start.Add(3*time.Second), marks[0].Points[0].X)
	assert.Equal(t, "↑ Events per Unit Time", label)
	assert.Equal(t, "decode_json", marks[0].Label)
}

func TestProjectLatencyUsesDuration(t *testing.T) {
	payload := &Payload{
		Kind: "latency",
		PerfData: []Series{
			{Data: []Measurement{{Perf: Metric{Duration: 42, Avg: 7}}}},
		},
	}

	marks, label := Project(payload, []bool{true})
	require.Len(t, marks, 1)
	assert.Equal(t, 42.0, marks[0].Points[0].Y)
	assert.Equal(t, "↑ Nanoseconds", label)
}

func TestProjectAverageKinds(t *testing.T) {
	for _, kind := range []string{"compute", "memory", "storage"} {
		payload := &Payload{
			Kind:     kind,
			PerfData: []Series{{Data: []Measurement{{Perf: Metric{Avg: 3.5}}}}},
		}
		marks, label := Project(payload, []bool{true})
		require.Len(t, marks, 1, kind)
		assert.Equal(t, 3.5, marks[0].Points[0].Y, kind)
		assert.Equal(t, "↑ Average", label, kind)
	}
}

func TestProjectInactiveSeries(t *testing.T) {
	payload := &Payload{
		Kind:     "latency",
		PerfData: []Series{{Data: []Measurement{{Perf: Metric{Duration: 1}}}}},
	}

	marks, label := Project(payload, []bool{false})
	assert.Empty(t, marks)
	assert.Equal(t, "↑ Nanoseconds", label)
}

func TestProjectMaskShorterThanSeries(t *testing.T) {
	payload := &Payload{
		Kind: "latency",
		PerfData: []Series{
			{Data: []Measurement{{Perf: Metric{Duration: 1}}}},
			{Data: []Measurement{{Perf: Metric{Duration: 2}}}},
		},
	}

	// Series past the end of the mask are treated as inactive.
	marks, _ := Project(payload, []bool{true})
	require.Len(t, marks, 1)
	assert.Equal(t, 1.0, marks[0].Points[0].Y)
}

func TestProjectUnknownKind(t *testing.T) {
	payload := &Payload{
		Kind:     "cardinality",
		PerfData: []Series{{Data: []Measurement{{Perf: Metric{Duration: 9, Avg: 9}}}}},
	}

	marks, label := Project(payload, []bool{true})
	require.Len(t, marks, 1)
	assert.Equal(t, 0.0, marks[0].Points[0].Y)
	assert.Equal(t, "↑ UNITS", label)
}

func TestProjectThroughputZeroUnitTime(t *testing.T) {
	payload := &Payload{
		Kind:     "throughput",
		PerfData: []Series{{Data: []Measurement{{Perf: Metric{Event: 10}}}}},
	}

	marks, _ := Project(payload, []bool{true})
	require.Len(t, marks, 1)
	assert.Equal(t, 0.0, marks[0].Points[0].Y)
}

func TestPaletteCycles(t *testing.T) {
	payload := &Payload{Kind: "latency"}
	active := make([]bool, 12)
	for i := range active {
		payload.PerfData = append(payload.PerfData, Series{})
		active[i] = true
	}

	marks, _ := Project(payload, active)
	require.Len(t, marks, 12)
	assert.Equal(t, marks[1].Color, marks[11].Color)
	assert.Equal(t, marks[0].Color, marks[10].Color)
	assert.NotEqual(t, marks[0].Color, marks[1].Color)
}

func TestProjectRawMalformed(t *testing.T) {
	cases := map[string]string{
		"null payload":        `null`,
		"not an object":       `[1,2,3]`,
		"perf_data not array": `{"kind":"latency","perf_data":{"a":1}}`,
		"missing perf_data":   `{"kind":"latency"}`,
		"garbage":             `{{{`,
	}

	for name, raw := range cases {
		marks, label := ProjectRaw([]byte(raw), []bool{true})
		assert.Empty(t, marks, name)
		assert.Empty(t, label, name)
	}
}

func TestProjectRawValid(t *testing.T) {
	raw := []byte(`{"kind":"throughput","perf_data":[{"data":[{"start_time":"2026-08-01T00:00:00Z","iteration":1,"perf":{"event":8,"unit_time":4}}]}]}`)

	marks, label := ProjectRaw(raw, []bool{true})
	require.Len(t, marks, 1)
	assert.Equal(t, 2.0, marks[0].Points[0].Y)
	assert.Equal(t, "↑ Events per Unit Time", label)
}

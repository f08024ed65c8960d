package perf

import "time"

// Metric carries the raw measured values for one sample. Which fields
// are meaningful depends on the report kind.
type Metric struct {
	Duration float64 `json:"duration,omitempty"`
	Event    float64 `json:"event,omitempty"`
	UnitTime float64 `json:"unit_time,omitempty"`
	Avg      float64 `json:"avg,omitempty"`
}

// Measurement is one sampled data point within a series.
type Measurement struct {
	StartTime time.Time `json:"start_time"`
	Iteration int64     `json:"iteration"`
	Perf      Metric    `json:"perf"`
}

// Series is one benchmark's ordered measurements.
type Series struct {
	Branch    string        `json:"branch,omitempty"`
	Testbed   string        `json:"testbed,omitempty"`
	Benchmark string        `json:"benchmark,omitempty"`
	Data      []Measurement `json:"data"`
}

// Payload is the perf report shape served by the console API. All
// series in one payload share the same kind.
type Payload struct {
	Kind     string   `json:"kind"`
	PerfData []Series `json:"perf_data"`
}

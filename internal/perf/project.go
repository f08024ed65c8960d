package perf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Palette is the fixed series color cycle. Series index i takes
// Palette[i%len(Palette)], so index 10 reuses the color of index 0.
var Palette = [10]string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
}

// Point is a single plotted (x, y) sample.
type Point struct {
	X time.Time
	Y float64
}

// LineMark is one renderable line for a charting surface.
type LineMark struct {
	Label  string
	Color  string
	Points []Point
}

// Project maps a payload and a per-series active mask into line marks
// plus the shared y-axis label. Inactive and out-of-mask series
// produce no mark. A nil payload or a payload without series data
// yields no marks and an empty label, so the caller renders nothing.
func Project(p *Payload, active []bool) ([]LineMark, string) {
	if p == nil || p.PerfData == nil {
		return nil, ""
	}

	kind := ParseKind(p.Kind)
	var marks []LineMark
	for i, series := range p.PerfData {
		if i >= len(active) || !active[i] {
			continue
		}

		points := make([]Point, 0, len(series.Data))
		for _, m := range series.Data {
			points = append(points, Point{
				X: m.StartTime.Add(time.Duration(m.Iteration) * time.Second),
				Y: value(kind, m.Perf),
			})
		}

		marks = append(marks, LineMark{
			Label:  seriesLabel(series, i),
			Color:  Palette[i%len(Palette)],
			Points: points,
		})
	}
	return marks, kind.AxisLabel()
}

// ProjectRaw projects a raw JSON payload. Malformed input (not an
// object, null, or a non-array perf_data field) renders nothing: no
// marks, no axis label.
func ProjectRaw(raw []byte, active []bool) ([]LineMark, string) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ""
	}
	return Project(&p, active)
}

// value computes the plotted y-value for one sample. Unknown kinds
// plot zero rather than failing.
func value(kind Kind, m Metric) float64 {
	switch kind {
	case KindLatency:
		return m.Duration
	case KindThroughput:
		if m.UnitTime == 0 {
			return 0
		}
		return m.Event / m.UnitTime
	case KindCompute, KindMemory, KindStorage:
		return m.Avg
	default:
		return 0
	}
}

func seriesLabel(s Series, index int) string {
	if s.Benchmark != "" {
		return s.Benchmark
	}
	return fmt.Sprintf("series %d", index)
}

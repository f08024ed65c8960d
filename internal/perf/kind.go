package perf

import "strings"

// Kind selects which measurement dimension a report tracks.
type Kind string

const (
	KindLatency    Kind = "latency"
	KindThroughput Kind = "throughput"
	KindCompute    Kind = "compute"
	KindMemory     Kind = "memory"
	KindStorage    Kind = "storage"
)

// Kinds lists the known measurement kinds in display order.
var Kinds = []Kind{KindLatency, KindThroughput, KindCompute, KindMemory, KindStorage}

// ParseKind normalizes a payload kind string. Unknown strings pass
// through unchanged so the projector can apply its fallbacks.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether the kind is one of the supported dimensions.
func (k Kind) Known() bool {
	switch k {
	case KindLatency, KindThroughput, KindCompute, KindMemory, KindStorage:
		return true
	}
	return false
}

// AxisLabel returns the shared y-axis label for the kind.
func (k Kind) AxisLabel() string {
	switch k {
	case KindLatency:
		return "↑ Nanoseconds"
	case KindThroughput:
		return "↑ Events per Unit Time"
	case KindCompute, KindMemory, KindStorage:
		return "↑ Average"
	default:
		return "↑ UNITS"
	}
}

func (k Kind) String() string { return string(k) }

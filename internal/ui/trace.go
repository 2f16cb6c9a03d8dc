package ui

// TraceMode decides what happens to the traced curve after each traversal.
type TraceMode int

const (
	// TracePersist keeps the trace until it is restarted or the buffer is full.
	TracePersist TraceMode = iota
	// TraceLoop clears the trace at the start of every traversal.
	TraceLoop
)

// ParseTraceMode maps a configured name to a mode. Unknown names persist.
func ParseTraceMode(s string) TraceMode {
	if s == "loop" {
		return TraceLoop
	}
	return TracePersist
}

// Next cycles to the next trace mode.
func (t TraceMode) Next() TraceMode {
	switch t {
	case TracePersist:
		return TraceLoop
	default:
		return TracePersist
	}
}

// String returns the name of the trace mode.
func (t TraceMode) String() string {
	switch t {
	case TraceLoop:
		return "loop"
	default:
		return "persist"
	}
}

package visualizer

import "github.com/olivier-w/epicycles/internal/fourier"

// TraceBuffer keeps the most recent pen positions up to a fixed capacity.
// It is only touched from the UI update loop and does no locking.
type TraceBuffer struct {
	buf  []fourier.Point
	size int
	w    int // write position
	len  int // current fill level
}

// NewTraceBuffer creates a trace buffer holding at most size points.
func NewTraceBuffer(size int) *TraceBuffer {
	size = max(size, 1)
	return &TraceBuffer{
		buf:  make([]fourier.Point, size),
		size: size,
	}
}

// Push appends p, overwriting the oldest point if full.
func (tb *TraceBuffer) Push(p fourier.Point) {
	tb.buf[tb.w] = p
	tb.w = (tb.w + 1) % tb.size
	if tb.len < tb.size {
		tb.len++
	}
}

// Points returns the stored points, oldest first.
func (tb *TraceBuffer) Points() []fourier.Point {
	out := make([]fourier.Point, tb.len)
	start := (tb.w - tb.len + tb.size) % tb.size
	for i := range tb.len {
		out[i] = tb.buf[(start+i)%tb.size]
	}
	return out
}

// Len returns the number of stored points.
func (tb *TraceBuffer) Len() int { return tb.len }

// Clear resets the buffer.
func (tb *TraceBuffer) Clear() {
	tb.w = 0
	tb.len = 0
}

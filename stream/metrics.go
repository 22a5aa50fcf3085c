package stream

import (
	"sync"
	"time"
)

// Metrics is a snapshot of the most recent operations of one engine.
//
// Semantics are last-call-wins: each Compress overwrites CompressionTime
// and the size fields, each Decompress overwrites DecompressionTime and the
// size fields. Metrics never accumulate across calls; the zero value is
// valid before any operation. Historical tracking is deliberately not
// offered here.
type Metrics struct {
	CompressionTime   time.Duration
	DecompressionTime time.Duration
	OriginalSize      int64
	CompressedSize    int64
}

// CompressionRatio returns originalSize / max(compressedSize, 1).
//
// Values greater than 1.0 indicate the stream shrank; the guard keeps the
// ratio defined for empty output.
func (m Metrics) CompressionRatio() float64 {
	compressed := m.CompressedSize
	if compressed < 1 {
		compressed = 1
	}

	return float64(m.OriginalSize) / float64(compressed)
}

// recorder is the engine's passive metrics accumulator. Writes are
// mutex-guarded so an engine shared across goroutines still snapshots
// consistently.
type recorder struct {
	mu sync.Mutex
	m  Metrics
}

func (r *recorder) recordCompression(elapsed time.Duration, originalSize, compressedSize int64) {
	r.mu.Lock()
	r.m.CompressionTime = elapsed
	r.m.OriginalSize = originalSize
	r.m.CompressedSize = compressedSize
	r.mu.Unlock()
}

func (r *recorder) recordDecompression(elapsed time.Duration, originalSize, compressedSize int64) {
	r.mu.Lock()
	r.m.DecompressionTime = elapsed
	r.m.OriginalSize = originalSize
	r.m.CompressedSize = compressedSize
	r.mu.Unlock()
}

func (r *recorder) snapshot() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.m
}

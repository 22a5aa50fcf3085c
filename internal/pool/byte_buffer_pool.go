package pool

import "sync"

const (
	// StreamBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for typical compressed streams of a few chunks.
	StreamBufferDefaultSize = 1024 * 16 // 16KiB

	// StreamBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; anything larger is dropped to keep the pool footprint bounded.
	StreamBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a reusable append-only byte buffer used by the stream
// engines to assemble framed output before handing an exact-size copy to
// the caller.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// CopyBytes returns a newly allocated copy of the buffer contents.
// The copy is safe to hold after the buffer is returned to the pool.
func (bb *ByteBuffer) CopyBytes() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

var streamBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, StreamBufferDefaultSize)}
	},
}

// GetStreamBuffer returns an empty ByteBuffer from the pool.
func GetStreamBuffer() *ByteBuffer {
	bb, _ := streamBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutStreamBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped so one huge stream does not pin memory forever.
func PutStreamBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > StreamBufferMaxThreshold {
		return
	}

	bb.Reset()
	streamBufferPool.Put(bb)
}

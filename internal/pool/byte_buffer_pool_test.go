package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamBufferReuse(t *testing.T) {
	bb := GetStreamBuffer()
	require.Zero(t, bb.Len())

	bb.MustWrite([]byte("frame data"))
	require.Equal(t, 10, bb.Len())

	PutStreamBuffer(bb)

	again := GetStreamBuffer()
	require.Zero(t, again.Len(), "pooled buffers come back empty")
	PutStreamBuffer(again)
}

func TestCopyBytesIsIndependent(t *testing.T) {
	bb := GetStreamBuffer()
	bb.MustWrite([]byte("hello"))

	out := bb.CopyBytes()
	PutStreamBuffer(bb)

	reused := GetStreamBuffer()
	reused.MustWrite([]byte("XXXXX"))

	require.Equal(t, []byte("hello"), out)
	PutStreamBuffer(reused)
}

func TestPutDropsOversizedBuffers(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, StreamBufferMaxThreshold+1)}

	// Must not panic; the buffer is simply dropped.
	PutStreamBuffer(bb)
	PutStreamBuffer(nil)
}

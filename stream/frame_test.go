package stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/pool"
)

func TestFrameRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("first frame"),
		{},
		[]byte("third frame, somewhat longer than the first"),
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	for _, p := range payloads {
		appendFrame(buf, p)
	}

	data := buf.Bytes()
	offset := 0

	for i, want := range payloads {
		payload, next, err := nextFrame(data, offset)
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, want, append([]byte{}, payload...))
		offset = next
	}

	require.Equal(t, len(data), offset)
}

func TestNextFrameShortPrefix(t *testing.T) {
	_, _, err := nextFrame([]byte{0x01, 0x02}, 0)

	var framingErr *errs.FramingError
	require.ErrorAs(t, err, &framingErr)
	require.Equal(t, 0, framingErr.Offset)
	require.ErrorIs(t, err, errs.ErrShortPrefix)
}

func TestNextFrameTruncatedPayload(t *testing.T) {
	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	appendFrame(buf, []byte("complete frame"))
	appendFrame(buf, []byte("this one will be cut"))

	data := buf.Bytes()
	truncated := data[:len(data)-1]

	_, next, err := nextFrame(truncated, 0)
	require.NoError(t, err)

	_, _, err = nextFrame(truncated, next)

	var framingErr *errs.FramingError
	require.ErrorAs(t, err, &framingErr)
	require.Equal(t, next, framingErr.Offset)
	require.ErrorIs(t, err, errs.ErrTruncatedFrame)
}

func TestNextFrameOversizedLength(t *testing.T) {
	// Prefix declares far more bytes than remain.
	data := []byte{0xff, 0xff, 0xff, 0x7f, 0x00}

	_, _, err := nextFrame(data, 0)
	require.True(t, errors.Is(err, errs.ErrTruncatedFrame))
}

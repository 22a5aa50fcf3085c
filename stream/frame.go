package stream

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/pool"
)

// frameHeaderSize is the fixed width of the little-endian length prefix
// carried by every frame in the streaming container.
const frameHeaderSize = 4

// maxFramePayload is the largest compressed chunk a frame can describe.
const maxFramePayload = math.MaxUint32

// appendFrame appends one length-prefixed frame to the assembly buffer.
func appendFrame(buf *pool.ByteBuffer, payload []byte) {
	buf.B = binary.LittleEndian.AppendUint32(buf.B, uint32(len(payload)))
	buf.MustWrite(payload)
}

// nextFrame parses the frame starting at offset and returns its payload and
// the offset of the following frame. The payload aliases data.
//
// Returns a FramingError carrying the offset of the offending prefix when
// the prefix itself is truncated or declares a length that runs past the
// end of the buffer.
func nextFrame(data []byte, offset int) (payload []byte, next int, err error) {
	if len(data)-offset < frameHeaderSize {
		return nil, 0, &errs.FramingError{Offset: offset, Err: errs.ErrShortPrefix}
	}

	length := int(binary.LittleEndian.Uint32(data[offset : offset+frameHeaderSize]))
	start := offset + frameHeaderSize

	if length > len(data)-start {
		return nil, 0, &errs.FramingError{Offset: offset, Err: errs.ErrTruncatedFrame}
	}

	return data[start : start+length], start + length, nil
}

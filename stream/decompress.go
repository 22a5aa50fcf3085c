package stream

import (
	"context"
	"time"

	"github.com/arloliu/blockstream/compress"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/pool"
)

// Decompress restores the original bytes from a buffer produced by
// Compress with the same mode and dictionary state.
//
// In streaming mode it repeatedly reads a length prefix, decompresses the
// framed chunk and appends the result, until the input is exhausted. A
// prefix pointing past the end of the buffer yields a FramingError with the
// prefix offset; a frame that fails to decompress (corruption, dictionary
// mismatch) yields a CodecError with the frame index. In non-streaming mode
// the whole buffer goes through a single codec call.
//
// Decompressing streaming output in non-streaming mode, or vice versa, is a
// usage error and fails or produces garbage depending on the codec.
func (e *Engine) Decompress(ctx context.Context, data []byte) ([]byte, error) {
	codec, err := e.prepare()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var out []byte

	if e.opts.useStream {
		out, err = e.decompressStream(ctx, codec, data)
	} else {
		out, err = codec.Decompress(data)
		if err != nil {
			err = errs.NewCodecError(errs.NoChunk, err)
		}
	}

	if err != nil {
		return nil, err
	}

	e.metrics.recordDecompression(time.Since(start), int64(len(out)), int64(len(data)))

	return out, nil
}

func (e *Engine) decompressStream(ctx context.Context, codec compress.Codec, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	offset := 0

	for index := 0; offset < len(data); index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		payload, next, err := nextFrame(data, offset)
		if err != nil {
			return nil, err
		}

		chunk, err := codec.Decompress(payload)
		if err != nil {
			return nil, errs.NewCodecError(index, err)
		}

		buf.MustWrite(chunk)
		offset = next
	}

	return buf.CopyBytes(), nil
}

package stream

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/blockstream/compress"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/pool"
)

// compressParallel compresses independent chunks on a bounded worker pool.
//
// Chunks are independent by construction and the dictionary is immutable,
// so workers share the codec read-only. Results are index-tagged and
// reassembled in original chunk order, making the output byte-identical to
// the sequential path. The first failure cancels the group context, which
// stops dispatching new chunks; already-dispatched chunks finish and their
// results are discarded.
//
// Progress callbacks fire during the ordered assembly pass, preserving the
// monotone fraction contract regardless of worker completion order.
func (e *Engine) compressParallel(ctx context.Context, codec compress.Codec, data []byte) ([]byte, error) {
	chunks := splitChunks(data, e.opts.chunkSize)
	frames := make([][]byte, len(chunks))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.opts.concurrency)

	for _, chunk := range chunks {
		chunk := chunk
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			frame, err := codec.Compress(chunk.Data)
			if err != nil {
				return errs.NewCodecError(chunk.Index, err)
			}

			if len(frame) > maxFramePayload {
				return errs.NewCodecError(chunk.Index,
					fmt.Errorf("compressed chunk of %d bytes exceeds frame limit", len(frame)))
			}

			frames[chunk.Index] = frame

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	processed := 0

	for _, chunk := range chunks {
		appendFrame(buf, frames[chunk.Index])

		processed += len(chunk.Data)
		e.emitProgress(processed, len(data), len(frames[chunk.Index]))
	}

	return buf.CopyBytes(), nil
}

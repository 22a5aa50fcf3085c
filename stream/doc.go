// Package stream implements the streaming block-compression engines.
//
// An Engine splits an input buffer into fixed-size chunks, compresses each
// chunk independently through a codec from the compress package, and
// concatenates the results into a self-describing container. Decompression
// inverts the container and restores the original bytes exactly,
// independent of the chunk size used at compression time.
//
// # Container Format
//
// In streaming mode every compressed chunk becomes one frame on the wire:
//
//	[uint32 little-endian compressed length][compressed bytes]
//
// Frames appear in chunk order with no separators, no header and no
// trailing metadata. The explicit length prefix makes the container
// codec-agnostic: decompression never depends on the codec's own frames
// being self-delimiting.
//
// In non-streaming mode the output is the raw codec output with no framing.
// The two modes are not interchangeable: a buffer produced in streaming
// mode must be decompressed in streaming mode and vice versa. Mixing them
// is a usage error, not a supported migration path.
//
// # Usage
//
//	if err := compress.Init(ctx); err != nil {
//	    return err
//	}
//
//	engine, err := stream.NewEngine(
//	    stream.WithCompression(format.CompressionZstd),
//	    stream.WithLevel(5),
//	    stream.WithChunkSize(64*1024),
//	    stream.WithProgress(func(fraction float64, chunkBytes int) {
//	        fmt.Printf("%.0f%%\n", fraction*100)
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//
//	compressed, err := engine.Compress(ctx, data)
//	...
//	restored, err := engine.Decompress(ctx, compressed)
//
// # Dictionaries
//
// A dictionary created on the engine seeds every codec call of a stream.
// The decompressing side must hold a byte-identical dictionary; this is an
// external contract the container does not carry. See the dict package.
//
// # Concurrency
//
// Engines are single-owner by default; compression proceeds chunk by chunk
// with a context check between chunks as the cooperative yield point.
// WithConcurrency(n) for n > 1 compresses independent chunks on a bounded
// worker pool and reassembles frames in original chunk order, producing
// byte-identical output to the sequential path. Metrics writes are
// synchronized either way.
package stream

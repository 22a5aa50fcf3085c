// Package blockstream provides a streaming block-compression engine: it
// splits arbitrary-length byte streams into bounded-size chunks, compresses
// each chunk independently (optionally seeded by a shared dictionary), and
// reassembles the compressed chunks into a single self-describing stream
// that decompresses back to the original bytes exactly.
//
// # Core Features
//
//   - Length-prefixed chunk framing, round-trip correct for any chunk size
//   - Pluggable codecs: Zstd (with dictionaries), S2, LZ4, pass-through
//   - Deterministic prefix-truncation dictionary derivation
//   - Per-chunk synchronous progress callbacks
//   - Optional bounded worker pool for parallel chunk compression
//   - Per-engine metrics (last-call-wins) with derived compression ratio
//
// # Basic Usage
//
//	import "github.com/arloliu/blockstream"
//
//	// One-time process-wide codec initialization.
//	if err := blockstream.Init(ctx); err != nil {
//	    return err
//	}
//
//	engine, err := blockstream.New(
//	    stream.WithCompression(format.CompressionZstd),
//	    stream.WithChunkSize(64*1024),
//	)
//	if err != nil {
//	    return err
//	}
//
//	compressed, err := engine.Compress(ctx, data)
//	restored, err := engine.Decompress(ctx, compressed)
//
// With a shared dictionary:
//
//	engine, _ := blockstream.New(stream.WithDictionary(true))
//	engine.CreateDictionary(sample, 1024)
//	compressed, _ := engine.Compress(ctx, data)
//
// The decompressing side must install a byte-identical dictionary; the
// compressed stream does not carry it.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream
// package, simplifying the most common use cases. For fine-grained control,
// use the stream, compress and dict packages directly.
package blockstream

import (
	"context"

	"github.com/arloliu/blockstream/compress"
	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/stream"
)

// Init initializes the process-wide codec runtime. It must complete before
// any compress or decompress call; engines used earlier fail with
// errs.ErrNotInitialized. Init is idempotent and safe to await from
// multiple goroutines.
func Init(ctx context.Context) error {
	return compress.Init(ctx)
}

// New creates a stream engine with the given options.
//
// Available options:
//   - stream.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - stream.WithLevel(level)
//   - stream.WithStreaming(true|false)
//   - stream.WithChunkSize(bytes)
//   - stream.WithDictionary(true|false)
//   - stream.WithConcurrency(workers)
//   - stream.WithProgress(fn)
func New(opts ...stream.Option) (*stream.Engine, error) {
	return stream.NewEngine(opts...)
}

// NewDictionary derives a dictionary from the first
// min(len(sample), maxSize) bytes of sample without installing it anywhere.
func NewDictionary(sample []byte, maxSize int) dict.Dictionary {
	return dict.New(sample, maxSize)
}

// Compress is a one-shot helper: it builds an engine from opts and
// compresses data with it. For repeated use or dictionary support, create
// an engine with New and reuse it.
func Compress(ctx context.Context, data []byte, opts ...stream.Option) ([]byte, error) {
	engine, err := stream.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	return engine.Compress(ctx, data)
}

// Decompress is the one-shot inverse of Compress. The options must select
// the same mode and codec used at compression time.
func Decompress(ctx context.Context, data []byte, opts ...stream.Option) ([]byte, error) {
	engine, err := stream.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	return engine.Decompress(ctx, data)
}

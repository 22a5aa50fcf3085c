package stream

import (
	"fmt"

	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
	"github.com/arloliu/blockstream/internal/options"
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 64 * 1024

// ProgressFunc receives one synchronous callback per compressed chunk in
// streaming mode: the cumulative fraction of input bytes processed (in
// [0, 1], monotonically non-decreasing, exactly 1.0 on the last chunk) and
// the compressed size of the chunk just emitted, excluding its frame
// prefix.
//
// The engine imposes no timeout on the callback; keep it non-blocking.
type ProgressFunc func(fraction float64, chunkCompressedBytes int)

// Options is the engine configuration. Only recognized options exist;
// unknown concerns simply have no constructor, which keeps the surface
// forward-compatible.
type Options struct {
	compression format.CompressionType
	level       int
	levelSet    bool
	useStream   bool
	useDict     bool
	chunkSize   int
	concurrency int
	onProgress  ProgressFunc
}

// Option configures an Engine.
type Option = options.Option[*Options]

func applyOptions(o *Options, opts ...Option) error {
	return options.Apply(o, opts...)
}

func defaultOptions() Options {
	return Options{
		compression: format.CompressionZstd,
		level:       format.CompressionZstd.DefaultLevel(),
		useStream:   true,
		chunkSize:   DefaultChunkSize,
	}
}

// WithCompression selects the codec. Unless WithLevel was given, the level
// resets to the codec's default.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(o *Options) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compressionType))
		}

		o.compression = compressionType
		if !o.levelSet {
			o.level = compressionType.DefaultLevel()
		}

		return nil
	})
}

// WithLevel sets the compression level. The level is passed through to the
// codec without clamping; the engine rejects levels outside the codec's
// format.LevelRange when the codec is built.
func WithLevel(level int) Option {
	return options.New(func(o *Options) error {
		o.level = level
		o.levelSet = true

		return nil
	})
}

// WithStreaming toggles streaming mode. Streaming and non-streaming output
// are mutually incompatible; decompress with the same mode used to
// compress.
func WithStreaming(enabled bool) Option {
	return options.New(func(o *Options) error {
		o.useStream = enabled

		return nil
	})
}

// WithDictionary toggles dictionary usage. When enabled, a non-empty
// dictionary must be installed on the engine before compressing or
// decompressing; the flag is never treated as decorative.
func WithDictionary(enabled bool) Option {
	return options.New(func(o *Options) error {
		o.useDict = enabled

		return nil
	})
}

// WithChunkSize sets the streaming chunk size in bytes.
func WithChunkSize(size int) Option {
	return options.New(func(o *Options) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidChunkSize, size)
		}

		o.chunkSize = size

		return nil
	})
}

// WithConcurrency sets the number of chunk-compression workers. Values of
// 0 or 1 select the sequential path; higher values enable the worker pool.
func WithConcurrency(workers int) Option {
	return options.New(func(o *Options) error {
		if workers < 0 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidConcurrency, workers)
		}

		o.concurrency = workers

		return nil
	})
}

// WithProgress installs the per-chunk progress callback.
func WithProgress(fn ProgressFunc) Option {
	return options.New(func(o *Options) error {
		o.onProgress = fn

		return nil
	})
}

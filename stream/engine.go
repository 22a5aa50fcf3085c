package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/blockstream/compress"
	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/internal/pool"
)

// Engine drives chunked compression and decompression over one codec
// configuration and one optional dictionary.
//
// An engine is cheap to construct and intended to be reused. Compress and
// Decompress are safe for concurrent use: dictionary state and the lazily
// built codec are mutex-guarded, and metrics writes are synchronized.
// Operations already in flight when SetDictionary is called finish with the
// codec they started with.
type Engine struct {
	opts Options

	// mu guards the dictionary state and the codec cache below.
	mu         sync.Mutex
	dictionary dict.Dictionary
	hasDict    bool

	// codec cache, invalidated when the effective dictionary changes
	codec       compress.Codec
	codecDict   bool
	codecDigest uint64

	metrics recorder
}

// NewEngine creates an engine from the given options. Option validation
// happens here; dictionary presence is validated per operation because the
// dictionary may be installed after construction.
func NewEngine(opts ...Option) (*Engine, error) {
	o := defaultOptions()

	if err := applyOptions(&o, opts...); err != nil {
		return nil, err
	}

	return &Engine{opts: o}, nil
}

// CreateDictionary derives a dictionary from the first
// min(len(sample), maxSize) bytes of sample, installs it as the engine's
// active dictionary and returns it. A non-positive maxSize falls back to
// dict.DefaultMaxSize.
//
// The decompressing side must install a byte-identical dictionary; the
// compressed stream does not carry it.
func (e *Engine) CreateDictionary(sample []byte, maxSize int) dict.Dictionary {
	d := dict.New(sample, maxSize)
	e.SetDictionary(d)

	return d
}

// SetDictionary installs d as the engine's active dictionary, replacing any
// previous one. Subsequent operations with dictionary usage enabled use d.
func (e *Engine) SetDictionary(d dict.Dictionary) {
	e.mu.Lock()
	e.dictionary = d
	e.hasDict = true
	e.codec = nil
	e.mu.Unlock()
}

// Dictionary returns the active dictionary and whether one is installed.
func (e *Engine) Dictionary() (dict.Dictionary, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dictionary, e.hasDict
}

// Metrics returns a snapshot of the most recent operations. Fields are
// last-call-wins; see Metrics.
func (e *Engine) Metrics() Metrics {
	return e.metrics.snapshot()
}

// Compress compresses data according to the engine's options.
//
// In streaming mode the input is split into chunks, each chunk is
// compressed independently and emitted as one length-prefixed frame, and
// the progress callback fires once per chunk. The first codec failure
// aborts the operation with a CodecError carrying the chunk index; no
// partial output is returned.
//
// In non-streaming mode the whole buffer goes through a single codec call
// with no framing.
//
// Empty input yields empty output in both modes.
func (e *Engine) Compress(ctx context.Context, data []byte) ([]byte, error) {
	codec, err := e.prepare()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var out []byte

	switch {
	case !e.opts.useStream:
		out, err = codec.Compress(data)
		if err != nil {
			err = errs.NewCodecError(errs.NoChunk, err)
		}
	case e.opts.concurrency > 1:
		out, err = e.compressParallel(ctx, codec, data)
	default:
		out, err = e.compressStream(ctx, codec, data)
	}

	if err != nil {
		return nil, err
	}

	e.metrics.recordCompression(time.Since(start), int64(len(data)), int64(len(out)))

	return out, nil
}

// compressStream is the sequential chunk-by-chunk path. The context check
// between chunks is the cooperative yield point: a codec call is a
// blocking, non-cancelable unit of work, but the stream as a whole cancels
// at chunk granularity.
func (e *Engine) compressStream(ctx context.Context, codec compress.Codec, data []byte) ([]byte, error) {
	chunks := splitChunks(data, e.opts.chunkSize)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	processed := 0

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, err := codec.Compress(chunk.Data)
		if err != nil {
			return nil, errs.NewCodecError(chunk.Index, err)
		}

		if len(frame) > maxFramePayload {
			return nil, errs.NewCodecError(chunk.Index,
				fmt.Errorf("compressed chunk of %d bytes exceeds frame limit", len(frame)))
		}

		appendFrame(buf, frame)

		processed += len(chunk.Data)
		e.emitProgress(processed, len(data), len(frame))
	}

	return buf.CopyBytes(), nil
}

// prepare runs the pre-work validation shared by Compress and Decompress
// and returns the codec to use.
func (e *Engine) prepare() (compress.Codec, error) {
	if !compress.Ready() {
		return nil, errs.ErrNotInitialized
	}

	if e.opts.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidChunkSize, e.opts.chunkSize)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.useDict {
		if !e.hasDict {
			return nil, errs.ErrDictionaryRequired
		}

		if e.dictionary.Empty() {
			return nil, errs.ErrEmptyDictionary
		}

		if !e.opts.compression.SupportsDictionary() {
			return nil, fmt.Errorf("%w: %s", errs.ErrDictionaryUnsupported, e.opts.compression)
		}
	}

	return e.getCodecLocked()
}

// getCodecLocked returns the cached codec, rebuilding it when the effective
// dictionary changed. Callers hold e.mu.
func (e *Engine) getCodecLocked() (compress.Codec, error) {
	var d dict.Dictionary
	if e.opts.useDict {
		d = e.dictionary
	}

	if e.codec != nil && e.codecDict == e.opts.useDict && (!e.opts.useDict || e.codecDigest == d.Digest()) {
		return e.codec, nil
	}

	codec, err := compress.CreateCodec(e.opts.compression, compress.Params{
		Level: e.opts.level,
		Dict:  d,
	})
	if err != nil {
		return nil, err
	}

	e.codec = codec
	e.codecDict = e.opts.useDict
	e.codecDigest = d.Digest()

	return codec, nil
}

func (e *Engine) emitProgress(processed, total, frameLen int) {
	if e.opts.onProgress == nil || total == 0 {
		return
	}

	e.opts.onProgress(float64(processed)/float64(total), frameLen)
}

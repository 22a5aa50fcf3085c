// Package errs defines the closed error taxonomy for blockstream.
//
// Callers branch on error kind with errors.Is for sentinel conditions and
// errors.As for the typed CodecError and FramingError values. No error is
// reported as free text only.
package errs

import (
	"errors"
	"fmt"
)

// Initialization errors.
var (
	// ErrNotInitialized is returned when a compress or decompress call is
	// issued before compress.Init has completed successfully.
	ErrNotInitialized = errors.New("codec runtime not initialized")

	// ErrInitFailed wraps the cause of a failed codec runtime
	// initialization. The failure is sticky; no automatic retry happens.
	ErrInitFailed = errors.New("codec runtime initialization failed")
)

// Configuration errors, rejected before any work starts.
var (
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidChunkSize is returned for a non-positive chunk size.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfig)

	// ErrInvalidLevel is returned when the level is outside the codec's
	// supported range. Levels are passed through, never clamped.
	ErrInvalidLevel = fmt.Errorf("%w: compression level out of range", ErrInvalidConfig)

	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = fmt.Errorf("%w: unknown compression type", ErrInvalidConfig)

	// ErrDictionaryRequired is returned when dictionary usage is enabled
	// but no dictionary has been created on the engine.
	ErrDictionaryRequired = fmt.Errorf("%w: dictionary enabled but not set", ErrInvalidConfig)

	// ErrEmptyDictionary is returned when dictionary usage is enabled with
	// an empty dictionary. Compressing against an empty dictionary is
	// indistinguishable from disabling it at the codec level, so it is
	// rejected rather than silently ignored.
	ErrEmptyDictionary = fmt.Errorf("%w: dictionary enabled but empty", ErrInvalidConfig)

	// ErrDictionaryUnsupported is returned when dictionary usage is
	// enabled for a codec that has no dictionary support (S2, LZ4, None).
	ErrDictionaryUnsupported = fmt.Errorf("%w: codec does not support dictionaries", ErrInvalidConfig)

	// ErrInvalidConcurrency is returned for a negative worker count.
	ErrInvalidConcurrency = fmt.Errorf("%w: concurrency must not be negative", ErrInvalidConfig)
)

// NoChunk marks a CodecError raised outside streaming mode, where no chunk
// index applies.
const NoChunk = -1

// CodecError reports a failed compress or decompress call of the underlying
// codec. In streaming mode Chunk carries the zero-based index of the chunk
// (compression) or frame (decompression) that failed; in non-streaming mode
// it is NoChunk.
type CodecError struct {
	Chunk int
	Err   error
}

func (e *CodecError) Error() string {
	if e.Chunk == NoChunk {
		return fmt.Sprintf("codec: %v", e.Err)
	}

	return fmt.Sprintf("codec: chunk %d: %v", e.Chunk, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// NewCodecError wraps err as a CodecError for the given chunk index.
func NewCodecError(chunk int, err error) *CodecError {
	return &CodecError{Chunk: chunk, Err: err}
}

// FramingError reports a malformed streaming container: a length prefix
// that is truncated or points past the end of the remaining buffer.
// Offset is the byte offset of the offending prefix within the compressed
// stream.
type FramingError struct {
	Offset int
	Err    error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("framing: offset %d: %v", e.Offset, e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// Framing error causes.
var (
	ErrTruncatedFrame = errors.New("frame extends past end of stream")
	ErrShortPrefix    = errors.New("incomplete frame length prefix")
)

package compress

import (
	"fmt"

	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
)

// Compressor provides one-shot compression of a byte buffer.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor provides one-shot decompression of a byte buffer.
//
// The input must have been produced by the matching Compressor with the
// same dictionary. Implementations validate the data format and return an
// error if the data is corrupted or was compressed against a different
// dictionary, where the underlying format makes that detectable.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression over shared construction
// parameters (level, dictionary).
type Codec interface {
	Compressor
	Decompressor
}

// Params carries codec construction parameters.
//
// Level is passed through to the codec without clamping; values outside the
// codec's format.LevelRange are rejected. An empty Dict means no dictionary.
type Params struct {
	Level int
	Dict  dict.Dictionary
}

// CreateCodec creates a Codec for the given compression type.
//
// Returns a wrapped errs.ErrInvalidCompression, errs.ErrInvalidLevel or
// errs.ErrDictionaryUnsupported for invalid parameters, or a CodecError if
// the underlying codec fails to construct.
func CreateCodec(compressionType format.CompressionType, params Params) (Codec, error) {
	if !compressionType.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compressionType))
	}

	if minLevel, maxLevel := compressionType.LevelRange(); params.Level < minLevel || params.Level > maxLevel {
		return nil, fmt.Errorf("%w: %s accepts %d..%d, got %d",
			errs.ErrInvalidLevel, compressionType, minLevel, maxLevel, params.Level)
	}

	if !params.Dict.Empty() && !compressionType.SupportsDictionary() {
		return nil, fmt.Errorf("%w: %s", errs.ErrDictionaryUnsupported, compressionType)
	}

	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(params.Level, params.Dict)
	case format.CompressionS2:
		return NewS2Codec(params.Level), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(params.Level)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

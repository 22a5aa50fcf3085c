// Package compress provides the codec adapter layer for blockstream.
//
// It wraps the underlying compression primitives behind a uniform interface
// so the stream engines never touch codec-specific initialization or error
// quirks. A codec is a one-shot transform: no buffering, no chunking, no
// shared mutable state beyond the process-wide runtime initialization.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are constructed through the CreateCodec factory with a compression
// level and an optional shared dictionary:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, compress.Params{
//	    Level: 5,
//	    Dict:  dictionary,
//	})
//
// # Supported Algorithms
//
//   - None: pass-through, zero overhead, baseline measurement
//   - Zstd: best ratio, raw-content dictionary support, levels 1..22
//   - S2: balanced speed and ratio, levels 0..2
//   - LZ4: fastest decompression, block format with HC levels 0..9
//
// Only Zstd supports dictionaries. The dictionary is registered under an ID
// derived from its content digest, so decompressing with a dictionary of
// different content fails at the codec layer instead of producing garbage.
// S2 and LZ4 reject dictionary parameters at construction.
//
// # Runtime Initialization
//
// The package carries process-wide state: Init must complete before any
// compress or decompress call. Initialization is idempotent, safe to await
// from multiple goroutines, and sticky on failure. See Init and Ready.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Zstd codecs use
// the encoder's stateless EncodeAll/DecodeAll paths; LZ4 pools its
// compressor state per call.
package compress

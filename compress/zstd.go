package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/errs"
)

// ZstdCodec provides Zstandard compression with optional raw-content
// dictionary support.
//
// Each codec instance owns its encoder and decoder so a dictionary can be
// registered at construction. The dictionary is registered under an ID
// derived from its content digest; frames produced with it reference that
// ID, and a decoder holding a dictionary of different content rejects them.
//
// Compress and Decompress use the stateless EncodeAll/DecodeAll paths and
// are safe for concurrent use.
type ZstdCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec at the given zstd level (1..22).
// An empty dictionary disables dictionary usage.
func NewZstdCodec(level int, d dict.Dictionary) (*ZstdCodec, error) {
	encOpts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderCRC(true),
	}
	decOpts := []zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	}

	if !d.Empty() {
		encOpts = append(encOpts, zstd.WithEncoderDictRaw(d.ID(), d.Bytes()))
		decOpts = append(decOpts, zstd.WithDecoderDictRaw(d.ID(), d.Bytes()))
	}

	encoder, err := zstd.NewWriter(nil, encOpts...)
	if err != nil {
		return nil, errs.NewCodecError(errs.NoChunk, fmt.Errorf("create zstd encoder: %w", err))
	}

	decoder, err := zstd.NewReader(nil, decOpts...)
	if err != nil {
		encoder.Close()
		return nil, errs.NewCodecError(errs.NoChunk, fmt.Errorf("create zstd decoder: %w", err))
	}

	return &ZstdCodec{encoder: encoder, decoder: decoder}, nil
}

// Compress compresses data using Zstandard.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	return c.encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data. It fails if the data is
// corrupted, was not compressed with Zstd, or references a dictionary
// other than the one this codec holds.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec provides S2 compression.
//
// Levels: 0 = default encoding, 1 = better (slower, smaller),
// 2 = best (slowest, smallest).
type S2Codec struct {
	level int
}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates an S2 codec at the given level (0..2).
func NewS2Codec(level int) S2Codec {
	return S2Codec{level: level}
}

// Compress compresses the input data using S2 compression.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch c.level {
	case 2:
		return s2.EncodeBest(nil, data), nil
	case 1:
		return s2.EncodeBetter(nil, data), nil
	default:
		return s2.Encode(nil, data), nil
	}
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return decompressed, nil
}

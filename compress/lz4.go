package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
)

// lz4 block header: one uint32 LE word carrying the uncompressed length in
// the low 31 bits. The high bit marks a stored (uncompressed) block, used
// when the block API reports the input as incompressible.
const (
	lz4HeaderSize = 4
	lz4StoredFlag = 1 << 31
	lz4MaxBlock   = lz4StoredFlag - 1
)

// lz4CompressorPool pools lz4.Compressor instances for the fast path.
// The compressor maintains internal hash-table state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

var lz4HCLevels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4Codec provides LZ4 block compression.
//
// Level 0 uses the fast compressor; levels 1..9 use the high-compression
// (HC) algorithm. Each block is prefixed with its uncompressed length so
// decompression allocates exactly once, with no grow-and-retry loop.
type LZ4Codec struct {
	level int
}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates an LZ4 codec at the given level (0..9).
// Returns a wrapped errs.ErrInvalidLevel for levels outside that range.
func NewLZ4Codec(level int) (LZ4Codec, error) {
	if minLevel, maxLevel := format.CompressionLZ4.LevelRange(); level < minLevel || level > maxLevel {
		return LZ4Codec{}, fmt.Errorf("%w: %s accepts %d..%d, got %d",
			errs.ErrInvalidLevel, format.CompressionLZ4, minLevel, maxLevel, level)
	}

	return LZ4Codec{level: level}, nil
}

// Compress compresses data into an LZ4 block with a length header.
// Incompressible input is stored raw under the stored-block flag.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) > lz4MaxBlock {
		return nil, fmt.Errorf("lz4: block of %d bytes exceeds %d byte limit", len(data), lz4MaxBlock)
	}

	bound := lz4.CompressBlockBound(len(data))
	out := make([]byte, lz4HeaderSize, lz4HeaderSize+bound)

	var (
		n   int
		err error
	)

	if c.level == 0 {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		n, err = lc.CompressBlock(data, out[lz4HeaderSize:lz4HeaderSize+bound])
		lz4CompressorPool.Put(lc)
	} else {
		hc := lz4.CompressorHC{Level: lz4HCLevels[c.level-1]}
		n, err = hc.CompressBlock(data, out[lz4HeaderSize:lz4HeaderSize+bound])
	}

	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	// n == 0 means incompressible input; storing it raw keeps the block
	// self-describing either way.
	if n == 0 || n >= len(data) {
		binary.LittleEndian.PutUint32(out[:lz4HeaderSize], uint32(len(data))|lz4StoredFlag)

		return append(out[:lz4HeaderSize], data...), nil
	}

	binary.LittleEndian.PutUint32(out[:lz4HeaderSize], uint32(len(data)))

	return out[:lz4HeaderSize+n], nil
}

// Decompress decompresses an LZ4 block produced by Compress.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) < lz4HeaderSize {
		return nil, fmt.Errorf("lz4: truncated block header (%d bytes)", len(data))
	}

	word := binary.LittleEndian.Uint32(data[:lz4HeaderSize])
	size := int(word &^ uint32(lz4StoredFlag))
	payload := data[lz4HeaderSize:]

	if word&lz4StoredFlag != 0 {
		if len(payload) != size {
			return nil, fmt.Errorf("lz4: stored block has %d bytes, header declares %d", len(payload), size)
		}

		out := make([]byte, size)
		copy(out, payload)

		return out, nil
	}

	out := make([]byte, size)

	n, err := lz4.UncompressBlock(payload, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	if n != size {
		return nil, fmt.Errorf("lz4: decompressed %d bytes, header declares %d", n, size)
	}

	return out, nil
}

//go:build nobuild

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/errs"
)

// cgo variant of the Zstd codec backed by libzstd. Uses real CDict/DDict
// dictionaries instead of the pure-Go raw registration.
type ZstdCgoCodec struct {
	level int
	cdict *gozstd.CDict
	ddict *gozstd.DDict
}

var _ Codec = (*ZstdCgoCodec)(nil)

func NewZstdCgoCodec(level int, d dict.Dictionary) (*ZstdCgoCodec, error) {
	codec := &ZstdCgoCodec{level: level}

	if !d.Empty() {
		cdict, err := gozstd.NewCDictLevel(d.Bytes(), level)
		if err != nil {
			return nil, errs.NewCodecError(errs.NoChunk, fmt.Errorf("create zstd cdict: %w", err))
		}

		ddict, err := gozstd.NewDDict(d.Bytes())
		if err != nil {
			cdict.Release()
			return nil, errs.NewCodecError(errs.NoChunk, fmt.Errorf("create zstd ddict: %w", err))
		}

		codec.cdict = cdict
		codec.ddict = ddict
	}

	return codec, nil
}

func (c *ZstdCgoCodec) Compress(data []byte) ([]byte, error) {
	if c.cdict != nil {
		return gozstd.CompressDict(nil, data, c.cdict), nil
	}

	return gozstd.CompressLevel(nil, data, c.level), nil
}

func (c *ZstdCgoCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if c.ddict != nil {
		return gozstd.DecompressDict(nil, data, c.ddict)
	}

	return gozstd.Decompress(nil, data)
}

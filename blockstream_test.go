package blockstream_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockstream"
	"github.com/arloliu/blockstream/format"
	"github.com/arloliu/blockstream/stream"
)

func sampleData(size int) []byte {
	var buf bytes.Buffer
	for i := 0; buf.Len() < size; i++ {
		fmt.Fprintf(&buf, "metric=requests.total host=node-%d value=%d\n", i%8, i)
	}

	return buf.Bytes()[:size]
}

func TestOneShotRoundTrip(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, blockstream.Init(ctx))

	payload := sampleData(80 * 1024)

	opts := []stream.Option{
		stream.WithCompression(format.CompressionZstd),
		stream.WithChunkSize(8 * 1024),
	}

	compressed, err := blockstream.Compress(ctx, payload, opts...)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(payload))

	restored, err := blockstream.Decompress(ctx, compressed, opts...)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestEngineWithDictionary(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, blockstream.Init(ctx))

	payload := sampleData(32 * 1024)

	engine, err := blockstream.New(
		stream.WithDictionary(true),
		stream.WithChunkSize(4*1024),
	)
	require.NoError(t, err)

	d := engine.CreateDictionary(payload, 1024)
	require.Equal(t, 1024, d.Len())

	compressed, err := engine.Compress(ctx, payload)
	require.NoError(t, err)

	restored, err := engine.Decompress(ctx, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestNewDictionaryDeterministic(t *testing.T) {
	sample := sampleData(4096)

	a := blockstream.NewDictionary(sample, 512)
	b := blockstream.NewDictionary(sample, 512)

	require.Equal(t, 512, a.Len())
	require.True(t, a.Equal(b))
}

package stream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
)

func TestNewEngineDefaults(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	require.Equal(t, format.CompressionZstd, engine.opts.compression)
	require.Equal(t, format.CompressionZstd.DefaultLevel(), engine.opts.level)
	require.True(t, engine.opts.useStream)
	require.False(t, engine.opts.useDict)
	require.Equal(t, DefaultChunkSize, engine.opts.chunkSize)
	require.Zero(t, engine.opts.concurrency)
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"zero chunk size", []Option{WithChunkSize(0)}, errs.ErrInvalidChunkSize},
		{"negative chunk size", []Option{WithChunkSize(-8)}, errs.ErrInvalidChunkSize},
		{"negative concurrency", []Option{WithConcurrency(-1)}, errs.ErrInvalidConcurrency},
		{"unknown compression", []Option{WithCompression(format.CompressionType(0x42))}, errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}

func TestLevelFollowsCompressionUnlessSet(t *testing.T) {
	// Without an explicit level, switching codecs adopts the codec default.
	engine, err := NewEngine(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4.DefaultLevel(), engine.opts.level)

	// An explicit level survives a later codec switch.
	engine, err = NewEngine(WithLevel(9), WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	require.Equal(t, 9, engine.opts.level)
}

func TestOutOfRangeLevelSurfacesAtCodecBuild(t *testing.T) {
	mustInit(t)

	engine, err := NewEngine(WithLevel(99))
	require.NoError(t, err)

	_, err = engine.Compress(context.Background(), []byte("data"))
	require.ErrorIs(t, err, errs.ErrInvalidLevel)
}

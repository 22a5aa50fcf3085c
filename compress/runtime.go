package compress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/blockstream/dict"
	"github.com/arloliu/blockstream/errs"
	"github.com/arloliu/blockstream/format"
)

// The codec runtime is process-wide state with the lifecycle
// Uninitialized -> Initializing -> Ready | Failed. A failed initialization
// is sticky: Init keeps returning the original cause and never retries.

type runtimeState uint8

const (
	stateUninitialized runtimeState = iota
	stateInitializing
	stateReady
	stateFailed
)

type runtimeLifecycle struct {
	mu    sync.Mutex
	state runtimeState
	err   error
	done  chan struct{}
}

var codecRuntime = &runtimeLifecycle{}

// Init initializes the process-wide codec runtime.
//
// The first caller starts the warmup (building and exercising a Zstd codec
// so later compress calls never pay first-use cost) and every caller,
// first or not, waits until the runtime is Ready or Failed, or until ctx is
// done. Init is idempotent and safe to call from multiple goroutines; all
// concurrent callers share the single in-flight initialization.
//
// Returns nil once Ready, a wrapped errs.ErrInitFailed if initialization
// failed, or the context error if ctx expires while waiting (the warmup
// itself keeps running and later Init calls observe its outcome).
func Init(ctx context.Context) error {
	lc := codecRuntime

	lc.mu.Lock()
	switch lc.state {
	case stateReady:
		lc.mu.Unlock()
		return nil
	case stateFailed:
		err := lc.err
		lc.mu.Unlock()

		return err
	case stateUninitialized:
		lc.state = stateInitializing
		lc.done = make(chan struct{})

		go lc.run()
	case stateInitializing:
		// Another caller already started the warmup; fall through and wait.
	}
	done := lc.done
	lc.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.state == stateFailed {
		return lc.err
	}

	return nil
}

// Ready reports whether the codec runtime has completed initialization.
func Ready() bool {
	codecRuntime.mu.Lock()
	defer codecRuntime.mu.Unlock()

	return codecRuntime.state == stateReady
}

func (lc *runtimeLifecycle) run() {
	err := warmup()

	lc.mu.Lock()
	if err != nil {
		lc.state = stateFailed
		lc.err = fmt.Errorf("%w: %w", errs.ErrInitFailed, err)
	} else {
		lc.state = stateReady
	}
	close(lc.done)
	lc.mu.Unlock()
}

// warmup builds a default Zstd codec and verifies a round-trip, so a broken
// codec dependency surfaces as ErrInitFailed instead of a mid-stream error.
func warmup() error {
	codec, err := NewZstdCodec(format.CompressionZstd.DefaultLevel(), dict.Dictionary{})
	if err != nil {
		return err
	}

	probe := []byte("blockstream runtime warmup probe")

	compressed, err := codec.Compress(probe)
	if err != nil {
		return err
	}

	restored, err := codec.Decompress(compressed)
	if err != nil {
		return err
	}

	if !bytes.Equal(restored, probe) {
		return errors.New("warmup round-trip mismatch")
	}

	return nil
}

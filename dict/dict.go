// Package dict implements dictionary derivation for blockstream codecs.
//
// A dictionary is shared context that seeds every compress and decompress
// call of a stream. The selection policy is a deterministic prefix
// truncation of a representative sample; no frequency-based training is
// performed.
//
// The dictionary used for decompression must be byte-identical to the one
// used for the corresponding compression. This is an external contract:
// the dictionary travels out of band, the stream container carries only the
// codec-level dictionary ID, and decompressing with a different dictionary
// fails at the codec layer.
package dict

import (
	"bytes"

	"github.com/arloliu/blockstream/internal/hash"
)

// DefaultMaxSize is the default dictionary size cap in bytes.
const DefaultMaxSize = 1024

// Dictionary holds immutable shared compression context. The zero value is
// the empty dictionary, which callers must treat as "no dictionary".
type Dictionary struct {
	data []byte
}

// New derives a dictionary from the first min(len(sample), maxSize) bytes
// of sample. It is pure and deterministic: the same sample and cap always
// yield a byte-identical dictionary.
//
// A non-positive maxSize falls back to DefaultMaxSize. An empty sample
// yields an empty dictionary; New never fails.
func New(sample []byte, maxSize int) Dictionary {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	n := len(sample)
	if n > maxSize {
		n = maxSize
	}

	data := make([]byte, n)
	copy(data, sample[:n])

	return Dictionary{data: data}
}

// Bytes returns the dictionary content. The returned slice must not be
// modified; the dictionary is shared read-only across codec calls and
// worker goroutines.
func (d Dictionary) Bytes() []byte {
	return d.data
}

// Len returns the dictionary size in bytes.
func (d Dictionary) Len() int {
	return len(d.data)
}

// Empty reports whether the dictionary holds no content.
func (d Dictionary) Empty() bool {
	return len(d.data) == 0
}

// ID returns the non-zero 32-bit codec dictionary ID derived from the
// content digest. Streams compressed with this dictionary reference the ID,
// so decoding with a dictionary of different content is rejected by the
// codec instead of producing garbage.
func (d Dictionary) ID() uint32 {
	return hash.DictID(d.data)
}

// Digest returns the full xxHash64 digest of the dictionary content.
func (d Dictionary) Digest() uint64 {
	return hash.Sum64(d.data)
}

// Equal reports whether two dictionaries are byte-identical.
func (d Dictionary) Equal(other Dictionary) bool {
	return bytes.Equal(d.data, other.data)
}

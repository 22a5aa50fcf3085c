package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DictID derives a non-zero 32-bit dictionary ID from dictionary content.
//
// Zstd reserves ID 0 for "no dictionary", so a digest that truncates to 0
// is mapped to 1. Two different dictionaries therefore register under
// different IDs with overwhelming probability, which is what makes a
// dictionary mismatch detectable at decode time.
func DictID(dict []byte) uint32 {
	id := uint32(xxhash.Sum64(dict))
	if id == 0 {
		id = 1
	}

	return id
}

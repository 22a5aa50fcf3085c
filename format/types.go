// Package format defines the shared enum types and capability queries for
// the blockstream container format.
package format

// CompressionType identifies the codec used for every chunk of a stream.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents the pass-through codec.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

// LevelRange returns the inclusive compression level range the codec accepts.
//
// Levels outside the range are rejected at codec construction; the engine
// passes levels through without clamping.
//
// Ranges:
//   - None: 0..0 (level has no effect)
//   - Zstd: 1..22 (zstd levels, mapped onto the encoder's speed tiers)
//   - S2: 0..2 (0 = default, 1 = better, 2 = best)
//   - LZ4: 0..9 (0 = fast path, 1..9 = HC levels)
func (c CompressionType) LevelRange() (minLevel, maxLevel int) {
	switch c {
	case CompressionZstd:
		return 1, 22
	case CompressionS2:
		return 0, 2
	case CompressionLZ4:
		return 0, 9
	default:
		return 0, 0
	}
}

// DefaultLevel returns a balanced default level for the codec.
func (c CompressionType) DefaultLevel() int {
	if c == CompressionZstd {
		return 3
	}

	return 0
}

// SupportsDictionary reports whether the codec can consume a shared
// dictionary. Only Zstd does; requesting a dictionary with any other codec
// is a configuration error, not a silent no-op.
func (c CompressionType) SupportsDictionary() bool {
	return c == CompressionZstd
}

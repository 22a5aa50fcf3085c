package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64Deterministic(t *testing.T) {
	data := []byte("dictionary content")

	require.Equal(t, Sum64(data), Sum64(data))
	require.NotEqual(t, Sum64(data), Sum64([]byte("other content")))
}

func TestDictIDNeverZero(t *testing.T) {
	require.NotZero(t, DictID(nil))
	require.NotZero(t, DictID([]byte{}))
	require.NotZero(t, DictID([]byte("sample")))
}

func TestDictIDDeterministic(t *testing.T) {
	data := []byte("shared dictionary bytes")

	require.Equal(t, DictID(data), DictID(data))
}

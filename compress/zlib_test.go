package compress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/savecore/compress"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, many times over")

	for _, level := range []compress.Level{compress.NoCompression, compress.Fastest, compress.Optimal, compress.SmallestSize} {
		compressed, err := compress.Compress(original, level)
		require.NoError(t, err)
		assert.True(t, compress.ValidateHeader(compressed[:2]))

		decompressed, err := compress.Decompress(compressed, len(original), 0)
		require.NoError(t, err)
		assert.Equal(t, original, decompressed)
	}
}

func TestDecompressWithoutExpectedSizeIsBounded(t *testing.T) {
	original := make([]byte, 1024)
	compressed, err := compress.Compress(original, compress.Optimal)
	require.NoError(t, err)

	_, err = compress.Decompress(compressed, -1, 10)
	assert.ErrorIs(t, err, compress.ErrLimitExceeded)

	out, err := compress.Decompress(compressed, -1, 0)
	require.NoError(t, err)
	assert.Len(t, out, 1024)
}

func TestDecompressSizeMismatch(t *testing.T) {
	original := []byte("twelve bytes")
	compressed, err := compress.Compress(original, compress.Optimal)
	require.NoError(t, err)

	_, err = compress.Decompress(compressed, len(original)+5, 0)
	assert.ErrorIs(t, err, compress.ErrSizeMismatch)
}

func TestValidateHeaderRejectsGarbage(t *testing.T) {
	assert.False(t, compress.ValidateHeader([]byte{0x00, 0x00}))
	assert.False(t, compress.ValidateHeader([]byte{0x78}))
	assert.True(t, compress.ValidateHeader([]byte{0x78, 0x9C}))
}

func TestGzipRoundTrip(t *testing.T) {
	original := []byte("backup snapshot contents")
	compressed, err := compress.GzipCompress(original)
	require.NoError(t, err)

	out, err := compress.GzipDecompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

package filter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bendichter/numcodec/format"
)

func TestShuffle_NewFilter(t *testing.T) {
	for _, elemSize := range []int{1, 2, 4, 8, 16} {
		f, err := NewShuffle(elemSize)
		require.NoError(t, err)
		require.NotNil(t, f)
		require.Equal(t, format.FilterShuffle, f.Type())
		require.Equal(t, elemSize, f.ElemSize())
	}
}

func TestShuffle_NewFilter_InvalidElementSize(t *testing.T) {
	for _, elemSize := range []int{0, -1, -8} {
		_, err := NewShuffle(elemSize)
		require.ErrorIs(t, err, ErrInvalidElementSize)
	}
}

func TestShuffle_Encode_KnownVector(t *testing.T) {
	f, err := NewShuffle(4)
	require.NoError(t, err)

	// Two 4-byte elements: byte planes interleave element bytes.
	original := []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1, 0xB2, 0xB3}

	encoded, err := f.Encode(original)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA0, 0xB0, 0xA1, 0xB1, 0xA2, 0xB2, 0xA3, 0xB3}, encoded)

	decoded, err := f.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestShuffle_RoundTrip_VariousSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, elemSize := range []int{1, 2, 3, 4, 8, 16} {
		for _, length := range []int{0, 1, elemSize, elemSize * 7, elemSize*5 + 1, elemSize*3 + elemSize - 1, 1000} {
			original := make([]byte, length)
			rng.Read(original)

			f, err := NewShuffle(elemSize)
			require.NoError(t, err)

			encoded, err := f.Encode(original)
			require.NoError(t, err)
			require.Len(t, encoded, length)

			decoded, err := f.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, original, decoded, "elemSize=%d length=%d", elemSize, length)
		}
	}
}

func TestShuffle_RaggedTail(t *testing.T) {
	f, err := NewShuffle(4)
	require.NoError(t, err)

	// Two full elements plus a 3-byte tail.
	original := []byte{
		0xA0, 0xA1, 0xA2, 0xA3,
		0xB0, 0xB1, 0xB2, 0xB3,
		0xC0, 0xC1, 0xC2,
	}

	encoded, err := f.Encode(original)
	require.NoError(t, err)

	// Shuffled block first, then the tail verbatim.
	require.Equal(t, []byte{0xA0, 0xB0, 0xA1, 0xB1, 0xA2, 0xB2, 0xA3, 0xB3}, encoded[:8])
	require.Equal(t, []byte{0xC0, 0xC1, 0xC2}, encoded[8:])

	decoded, err := f.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestShuffle_ShorterThanOneElement(t *testing.T) {
	f, err := NewShuffle(8)
	require.NoError(t, err)

	original := []byte{0x01, 0x02, 0x03}

	encoded, err := f.Encode(original)
	require.NoError(t, err)
	require.Equal(t, original, encoded)

	decoded, err := f.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestShuffle_EmptyInput(t *testing.T) {
	f, err := NewShuffle(4)
	require.NoError(t, err)

	encoded, err := f.Encode(nil)
	require.NoError(t, err)
	require.Empty(t, encoded)

	decoded, err := f.Decode([]byte{})
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestShuffle_ElemSizeOne_FreshCopy(t *testing.T) {
	f, err := NewShuffle(1)
	require.NoError(t, err)

	original := []byte{1, 2, 3, 4}

	encoded, err := f.Encode(original)
	require.NoError(t, err)
	require.Equal(t, original, encoded)

	// Output must be a fresh allocation, not an alias of the input.
	encoded[0] = 0xFF
	require.Equal(t, byte(1), original[0])
}

func TestShuffle_Determinism(t *testing.T) {
	f, err := NewShuffle(2)
	require.NoError(t, err)

	original := []byte{9, 8, 7, 6, 5, 4, 3}

	first, err := f.Encode(original)
	require.NoError(t, err)

	second, err := f.Encode(original)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestShuffle_InputNotMutated(t *testing.T) {
	f, err := NewShuffle(4)
	require.NoError(t, err)

	original := []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1, 0xB2, 0xB3}
	snapshot := append([]byte(nil), original...)

	encoded, err := f.Encode(original)
	require.NoError(t, err)
	require.Equal(t, snapshot, original)

	_, err = f.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, snapshot, original)
}

package filter

import (
	"fmt"

	"github.com/bendichter/numcodec/format"
)

// Shuffle transposes the bytes of fixed-size elements into byte planes.
//
// For N elements of E bytes each, the encoded buffer holds all bytes at
// position 0 across the elements, then all bytes at position 1, and so on:
//
//	input:  [a0 a1 a2 a3] [b0 b1 b2 b3] [c0 c1 c2 c3]
//	output: [a0 b0 c0] [a1 b1 c1] [a2 b2 c2] [a3 b3 c3]
//
// Same-significance bytes across correlated elements tend to be equal or
// near-equal, so the shuffled buffer contains longer runs that downstream
// general-purpose compressors exploit.
//
// The filter is type-agnostic: it only needs the element size, never the
// element interpretation, so it works for integers and floats alike.
//
// A trailing partial element (buffer length not a multiple of E) is appended
// to the output unchanged after the shuffled block. No data is ever dropped,
// and Decode restores the tail at the same relative position.
type Shuffle struct {
	elemSize int
}

var _ ByteFilter = (*Shuffle)(nil)

// NewShuffle creates a byte-shuffle filter for elements of elemSize bytes.
//
// Parameters:
//   - elemSize: Element size in bytes, must be at least 1
//
// Returns:
//   - *Shuffle: A new filter instance, stateless and safe for concurrent use
//   - error: ErrInvalidElementSize if elemSize is smaller than 1
func NewShuffle(elemSize int) (*Shuffle, error) {
	if elemSize < 1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidElementSize, elemSize)
	}

	return &Shuffle{elemSize: elemSize}, nil
}

// Type returns format.FilterShuffle.
func (f *Shuffle) Type() format.FilterType {
	return format.FilterShuffle
}

// ElemSize returns the configured element size in bytes.
func (f *Shuffle) ElemSize() int {
	return f.elemSize
}

// Encode rearranges data so that same-significance bytes become contiguous.
//
// For byte position p in [0, E) and element index i in [0, N):
// out[p*N + i] = data[i*E + p]. Bytes past the last full element are copied
// through unchanged. An empty input yields an empty output.
//
// Returns:
//   - []byte: Newly allocated buffer of the same length as data
//   - error: Always nil; the constructor already validated the element size
func (f *Shuffle) Encode(data []byte) ([]byte, error) {
	elemSize := f.elemSize
	out := make([]byte, len(data))

	if elemSize == 1 {
		copy(out, data)
		return out, nil
	}

	count := len(data) / elemSize
	for i := 0; i < count; i++ {
		for p := 0; p < elemSize; p++ {
			out[p*count+i] = data[i*elemSize+p]
		}
	}

	// Ragged tail passes through verbatim.
	copy(out[count*elemSize:], data[count*elemSize:])

	return out, nil
}

// Decode applies the inverse transpose, restoring the original byte order.
//
// For byte position p in [0, E) and element index i in [0, N):
// out[i*E + p] = data[p*N + i]. Tail bytes are copied back unchanged.
//
// Returns:
//   - []byte: Newly allocated buffer of the same length as data
//   - error: Always nil; the constructor already validated the element size
func (f *Shuffle) Decode(data []byte) ([]byte, error) {
	elemSize := f.elemSize
	out := make([]byte, len(data))

	if elemSize == 1 {
		copy(out, data)
		return out, nil
	}

	count := len(data) / elemSize
	for i := 0; i < count; i++ {
		for p := 0; p < elemSize; p++ {
			out[i*elemSize+p] = data[p*count+i]
		}
	}

	copy(out[count*elemSize:], data[count*elemSize:])

	return out, nil
}

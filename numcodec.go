// Package numcodec provides byte-level compression filters for arrays of
// fixed-width numeric elements, compatible with the filters used by chunked
// array stores such as zarr.
//
// Two filters are implemented from their documented byte-level behavior:
//
//   - Delta: stores a sequence of fixed-width integers as the first element
//     followed by successive differences, with wraparound arithmetic at the
//     element width. Monotonic data turns into small, repetitive values.
//   - Shuffle: transposes the bytes of fixed-size elements into byte planes
//     so that same-significance bytes become contiguous. Correlated elements
//     produce long runs that general-purpose compressors exploit.
//
// Both filters are stateless pure transforms over in-memory byte buffers:
// the input is borrowed read-only, the output is freshly allocated with the
// same length, and no metadata (header, length prefix, magic number) is
// added. The caller records the element count, width and byte order needed
// for later decoding.
//
// # Basic Usage
//
// Delta-encoding an int32 array:
//
//	import "github.com/bendichter/numcodec"
//
//	f, err := numcodec.NewDeltaFilter("i4")
//	if err != nil {
//	    return err
//	}
//	encoded, err := f.Encode(raw)       // first value + differences
//	decoded, err := f.Decode(encoded)   // decoded == raw
//
// Byte-shuffling float64 elements:
//
//	f, err := numcodec.NewShuffleFilter(8)
//	encoded, err := f.Encode(raw)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the filter
// package. For explicit descriptor control, custom byte orders, or the
// ByteFilter interface, use the filter and dtype packages directly. The
// compress package provides the second-stage general-purpose compression
// (Zstd, S2, LZ4) typically applied to filter output.
package numcodec

import (
	"github.com/bendichter/numcodec/dtype"
	"github.com/bendichter/numcodec/filter"
	"github.com/bendichter/numcodec/internal/hash"
)

// NewDeltaFilter creates a delta filter from a NumPy-style dtype tag.
//
// The tag selects element width, signedness and byte order, e.g. "i4"
// (little-endian signed 32-bit), "<u2", ">i8". Supported widths are 1, 2, 4
// and 8 bytes.
//
// Returns:
//   - *filter.Delta: The created filter, safe for concurrent use.
//   - error: An error if the tag is malformed or the width is unsupported.
//
// Example:
//
//	f, err := numcodec.NewDeltaFilter("i4")
//	encoded, err := f.Encode(rawInt32Bytes)
func NewDeltaFilter(dtypeTag string) (*filter.Delta, error) {
	desc, err := dtype.Parse(dtypeTag)
	if err != nil {
		return nil, err
	}

	return filter.NewDelta(desc)
}

// NewShuffleFilter creates a byte-shuffle filter for elements of elemSize
// bytes.
//
// The shuffle filter is type-agnostic: only the element size matters, so it
// serves integer and floating-point arrays alike. elemSize must be at least
// 1 byte.
//
// Returns:
//   - *filter.Shuffle: The created filter, safe for concurrent use.
//   - error: filter.ErrInvalidElementSize if elemSize is smaller than 1.
//
// Example:
//
//	f, err := numcodec.NewShuffleFilter(4)  // float32 or int32 elements
//	encoded, err := f.Encode(rawBytes)
func NewShuffleFilter(elemSize int) (*filter.Shuffle, error) {
	return filter.NewShuffle(elemSize)
}

// ChunkDigest computes the xxHash64 content digest of a chunk payload.
//
// Digests identify chunk contents in fixture manifests and verification
// tooling. The hash is deterministic: the same bytes always produce the
// same digest.
func ChunkDigest(data []byte) uint64 {
	return hash.Sum(data)
}

// DatasetID converts a dataset key string to its 64-bit hash identifier.
//
// Keys are hierarchical store paths such as "int32/1d"; hashing them gives
// fixed-size identifiers for manifest entries and lookups. The hash is
// deterministic, so the same key always maps to the same ID.
func DatasetID(key string) uint64 {
	return hash.ID(key)
}

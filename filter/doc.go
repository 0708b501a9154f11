// Package filter implements byte-level pre-compression filters for arrays of
// fixed-width numeric elements.
//
// Filters transform a raw byte buffer into an equal-length buffer whose byte
// patterns compress better under a general-purpose compressor, and transform
// it back losslessly. Two filters are provided:
//
//   - Delta: stores the first integer element followed by the differences
//     between consecutive elements. Sequences that grow slowly (timestamps,
//     monotonically increasing counters, sample indexes) turn into streams
//     of small, repetitive values.
//   - Shuffle: transposes the bytes of fixed-size elements into byte planes,
//     so that all least-significant bytes are contiguous, then the next
//     significance, and so on. Correlated elements (floats with similar
//     exponents, small integers stored in wide types) produce long runs of
//     identical bytes.
//
// Both filters are stateless pure transforms: they never mutate the input
// buffer, always return a freshly allocated output of the same length, and
// are safe to invoke concurrently on independent buffers.
//
// Filter output carries no header or self-describing metadata. The caller is
// responsible for recording the element count, width and byte order needed
// to decode it later; see the compress package for the second-stage
// general-purpose compression typically applied on top.
//
// # Basic Usage
//
//	desc, _ := dtype.Parse("i4")
//	f, _ := filter.NewDelta(desc)
//
//	encoded, err := f.Encode(raw)
//	if err != nil {
//	    return err
//	}
//	decoded, err := f.Decode(encoded) // decoded == raw
package filter

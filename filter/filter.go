package filter

import (
	"fmt"

	"github.com/bendichter/numcodec/dtype"
	"github.com/bendichter/numcodec/format"
)

// ByteFilter is the interface implemented by all pre-compression filters.
//
// Encode and Decode are exact inverses: Decode(Encode(b)) == b for every
// valid input b. Both borrow the input buffer read-only for the duration of
// the call and return a newly allocated buffer of identical length.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is never modified
//
// Thread safety: implementations hold no mutable state, so a single filter
// value may be shared across goroutines without coordination.
type ByteFilter interface {
	// Type returns the filter identifier.
	Type() format.FilterType

	// Encode transforms raw data into its filtered form.
	Encode(data []byte) ([]byte, error)

	// Decode transforms filtered data back to its original form.
	Decode(data []byte) ([]byte, error)
}

// CreateFilter is a factory function that creates a ByteFilter based on the
// specified filter type.
//
// For FilterDelta the desc argument selects element width, signedness and
// byte order; for FilterShuffle only desc.Width (the element size in bytes)
// is used.
//
// Returns:
//   - ByteFilter: Filter instance for the specified type
//   - error: Invalid filter type or invalid configuration error
func CreateFilter(filterType format.FilterType, desc dtype.Descriptor) (ByteFilter, error) {
	switch filterType {
	case format.FilterDelta:
		return NewDelta(desc)
	case format.FilterShuffle:
		return NewShuffle(desc.Width)
	default:
		return nil, fmt.Errorf("invalid filter type: %s", filterType)
	}
}

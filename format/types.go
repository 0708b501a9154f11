package format

type (
	FilterType      uint8
	CompressionType uint8
)

const (
	FilterDelta   FilterType = 0x1 // FilterDelta represents the delta (prefix-difference) filter.
	FilterShuffle FilterType = 0x2 // FilterShuffle represents the byte-shuffle filter.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f FilterType) String() string {
	switch f {
	case FilterDelta:
		return "Delta"
	case FilterShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

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

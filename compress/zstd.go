package compress

// ZstdCompressor provides Zstandard compression for chunk payloads.
//
// Zstd offers the best compression ratio of the supported algorithms and is
// the default choice for fixture data and cold storage. Two implementations
// are selected at build time:
//
//   - zstd_cgo build tag with cgo: github.com/valyala/gozstd (libzstd)
//   - otherwise: github.com/klauspost/compress/zstd (pure Go)
//
// Both produce standard zstd frames and can decompress each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

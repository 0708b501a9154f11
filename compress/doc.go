// Package compress provides general-purpose compression codecs for filtered
// chunk payloads.
//
// Chunked array data goes through a two-stage transform before it is stored:
//
//  1. Filtering: a byte-level transform (delta, shuffle) rearranges the raw
//     element bytes into a more compressible layout (see the filter package).
//  2. Compression: a general-purpose algorithm shrinks the filtered bytes.
//
// This package implements the second stage. Each codec compresses exactly
// one in-memory buffer; there is no pipeline composition, streaming, or
// framing — the caller picks one algorithm per chunk and records the choice
// alongside the chunk.
//
// # Supported Algorithms
//
//   - None: pass-through, for data the filter already made incompressible
//   - Zstd: best compression ratio, moderate speed (cgo gozstd when the
//     zstd_cgo build tag is set, pure-Go klauspost/compress otherwise)
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// Shuffled numeric chunks typically compress 1.5-4x better than unfiltered
// bytes under any of these algorithms; delta-filtered monotonic integers
// often collapse to a few percent of their raw size under Zstd.
//
// # Thread Safety
//
// All codec implementations are stateless values backed by internal pools
// and are safe for concurrent use across goroutines.
package compress

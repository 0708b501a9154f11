// Command genfixtures writes codec test fixtures for external harnesses.
//
// It produces two fixture sets:
//
//   - delta/test_data.bin: the reference int32 vector [100 150 175 200 225]
//     run through the delta filter, stored as raw little-endian bytes.
//   - shuffle/<dtype>/<shape>/<n>.bin: deterministic 1-D, 2-D and 3-D
//     arrays of int32, uint16, float32 and float64 elements, flattened to
//     row-major order and split into fixed-size chunks, each chunk
//     shuffle-filtered and optionally compressed, one file per chunk.
//
// Filter output carries no self-describing metadata, so a manifest.json is
// written next to the shuffle fixtures recording the dtype tag, element
// size, chunk length, compression algorithm and an xxHash64 digest per
// stored chunk.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/bendichter/numcodec"
	"github.com/bendichter/numcodec/compress"
	"github.com/bendichter/numcodec/format"
)

const randSeed = 20240817

// datasetShapes mirrors the reference fixture layouts: a 10-element vector
// chunked by 5, a 4x4 matrix chunked by 2x2, and a 2x3x4 volume chunked by
// 1x3x2. Chunk-shape orchestration belongs to the surrounding store, so the
// arrays are flattened row-major and chunked linearly by the same element
// count the nested chunks would hold.
var datasetShapes = []struct {
	name       string
	shape      []int
	chunkElems int
}{
	{"1d", []int{10}, 5},
	{"2d", []int{4, 4}, 4},
	{"3d", []int{2, 3, 4}, 6},
}

type chunkEntry struct {
	File    string `json:"file"`
	RawLen  int    `json:"raw_len"`
	Digest  string `json:"digest"`
	Stored  int    `json:"stored_len"`
	ChunkNo int    `json:"chunk"`
}

type datasetEntry struct {
	Name        string       `json:"name"`
	ID          string       `json:"id"`
	Dtype       string       `json:"dtype"`
	ElemSize    int          `json:"elem_size"`
	Shape       []int        `json:"shape"`
	ChunkElems  int          `json:"chunk_elems"`
	Filter      string       `json:"filter"`
	Compression string       `json:"compression"`
	Chunks      []chunkEntry `json:"chunks"`
}

type manifest struct {
	Datasets []datasetEntry `json:"datasets"`
}

func main() {
	outDir := flag.String("out", "testdata", "output directory for fixture files")
	compression := flag.String("compression", "none", "compression applied to shuffled chunks: none, zstd, s2 or lz4")
	flag.Parse()

	compType, err := parseCompression(*compression)
	if err != nil {
		log.Fatalf("genfixtures: %v", err)
	}

	codec, err := compress.GetCodec(compType)
	if err != nil {
		log.Fatalf("genfixtures: %v", err)
	}

	if err := writeDeltaFixture(*outDir); err != nil {
		log.Fatalf("genfixtures: delta fixture: %v", err)
	}

	if err := writeShuffleFixtures(*outDir, compType, codec); err != nil {
		log.Fatalf("genfixtures: shuffle fixtures: %v", err)
	}

	fmt.Printf("fixtures written to %s\n", *outDir)
}

func parseCompression(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// writeDeltaFixture encodes the reference vector with the delta filter and
// dumps the raw encoded bytes, mirroring the numcodecs Delta(dtype='i4')
// fixture consumed by the external harness.
func writeDeltaFixture(outDir string) error {
	dir := filepath.Join(outDir, "delta")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := numcodec.NewDeltaFilter("i4")
	if err != nil {
		return err
	}

	original := int32Bytes(100, 150, 175, 200, 225)
	encoded, err := f.Encode(original)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "test_data.bin")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d bytes)\n", path, len(encoded))

	return nil
}

func writeShuffleFixtures(outDir string, compType format.CompressionType, codec compress.Codec) error {
	dir := filepath.Join(outDir, "shuffle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(randSeed))

	datasets := []struct {
		name     string
		dtype    string
		elemSize int
		gen      func(*rand.Rand, int) []byte
	}{
		{"int32", "<i4", 4, genInt32},
		{"uint16", "<u2", 2, genUint16},
		{"float32", "<f4", 4, genFloat32},
		{"float64", "<f8", 8, genFloat64},
	}

	var m manifest
	for _, ds := range datasets {
		shuffle, err := numcodec.NewShuffleFilter(ds.elemSize)
		if err != nil {
			return err
		}

		for _, sh := range datasetShapes {
			key := ds.name + "/" + sh.name
			dsDir := filepath.Join(dir, ds.name, sh.name)
			if err := os.MkdirAll(dsDir, 0o755); err != nil {
				return err
			}

			totalElems := 1
			for _, dim := range sh.shape {
				totalElems *= dim
			}

			raw := ds.gen(rng, totalElems)
			entry := datasetEntry{
				Name:        key,
				ID:          fmt.Sprintf("%016x", numcodec.DatasetID(key)),
				Dtype:       ds.dtype,
				ElemSize:    ds.elemSize,
				Shape:       sh.shape,
				ChunkElems:  sh.chunkElems,
				Filter:      format.FilterShuffle.String(),
				Compression: compType.String(),
			}

			chunkBytes := sh.chunkElems * ds.elemSize
			for i, off := 0, 0; off < len(raw); i, off = i+1, off+chunkBytes {
				end := min(off+chunkBytes, len(raw))
				chunk := raw[off:end]

				filtered, err := shuffle.Encode(chunk)
				if err != nil {
					return err
				}

				stored, err := codec.Compress(filtered)
				if err != nil {
					return err
				}

				name := fmt.Sprintf("%d.bin", i)
				path := filepath.Join(dsDir, name)
				if err := os.WriteFile(path, stored, 0o644); err != nil {
					return err
				}

				entry.Chunks = append(entry.Chunks, chunkEntry{
					File:    filepath.Join(ds.name, sh.name, name),
					RawLen:  len(chunk),
					Stored:  len(stored),
					Digest:  fmt.Sprintf("%016x", numcodec.ChunkDigest(stored)),
					ChunkNo: i,
				})
			}

			m.Datasets = append(m.Datasets, entry)
			fmt.Printf("wrote %d %s chunks under %s\n", len(entry.Chunks), key, dsDir)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644)
}

func int32Bytes(values ...int32) []byte {
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	return buf
}

func genInt32(rng *rand.Rand, n int) []byte {
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		buf = append(buf, int32Bytes(rng.Int31n(100))...)
	}

	return buf
}

func genUint16(rng *rand.Rand, n int) []byte {
	buf := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		v := uint16(rng.Intn(100))
		buf = append(buf, byte(v), byte(v>>8))
	}

	return buf
}

func genFloat32(rng *rand.Rand, n int) []byte {
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		bits := math.Float32bits(float32(rng.NormFloat64()))
		buf = append(buf, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}

	return buf
}

func genFloat64(rng *rand.Rand, n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		bits := math.Float64bits(rng.NormFloat64())
		for s := 0; s < 64; s += 8 {
			buf = append(buf, byte(bits>>s))
		}
	}

	return buf
}

package filter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bendichter/numcodec/dtype"
)

// generateMonotonicInt32 creates a slowly increasing int32 buffer, the shape
// of data the delta filter is designed for.
func generateMonotonicInt32(count int) []byte {
	desc, _ := dtype.Parse("i4")
	engine := desc.ByteOrder()

	buf := make([]byte, 0, count*4)
	val := int32(1_000_000)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < count; i++ {
		val += rng.Int31n(50)
		buf = engine.AppendUint32(buf, uint32(val))
	}

	return buf
}

func BenchmarkDelta_Encode(b *testing.B) {
	desc, _ := dtype.Parse("i4")
	f, _ := NewDelta(desc)

	for _, count := range []int{256, 4096, 65536} {
		data := generateMonotonicInt32(count)

		b.Run(fmt.Sprintf("%d_elems", count), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := f.Encode(data)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDelta_Decode(b *testing.B) {
	desc, _ := dtype.Parse("i4")
	f, _ := NewDelta(desc)

	for _, count := range []int{256, 4096, 65536} {
		encoded, _ := f.Encode(generateMonotonicInt32(count))

		b.Run(fmt.Sprintf("%d_elems", count), func(b *testing.B) {
			b.SetBytes(int64(len(encoded)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := f.Decode(encoded)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShuffle_Encode(b *testing.B) {
	for _, elemSize := range []int{2, 4, 8} {
		f, _ := NewShuffle(elemSize)
		data := make([]byte, 64*1024)
		rand.New(rand.NewSource(2)).Read(data)

		b.Run(fmt.Sprintf("elem%d", elemSize), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := f.Encode(data)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShuffle_Decode(b *testing.B) {
	for _, elemSize := range []int{2, 4, 8} {
		f, _ := NewShuffle(elemSize)
		data := make([]byte, 64*1024)
		rand.New(rand.NewSource(3)).Read(data)
		encoded, _ := f.Encode(data)

		b.Run(fmt.Sprintf("elem%d", elemSize), func(b *testing.B) {
			b.SetBytes(int64(len(encoded)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := f.Decode(encoded)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

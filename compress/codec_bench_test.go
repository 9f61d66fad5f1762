package compress

import (
	"fmt"
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		data := textTable(size)
		for _, ct := range allTypes() {
			codec, _ := GetCodec(ct)
			b.Run(fmt.Sprintf("%s/%d", ct, size), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		data := textTable(size)
		for _, ct := range allTypes() {
			codec, _ := GetCodec(ct)
			compressed, _ := codec.Compress(data)
			b.Run(fmt.Sprintf("%s/%d", ct, size), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := textTable(1000)
	for _, ct := range allTypes() {
		codec, _ := GetCodec(ct)
		compressed, _ := codec.Compress(data)
		b.Run(ct.String(), func(b *testing.B) {
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_, _ = codec.Decompress(compressed)
				}
			})
		})
	}
}

package ustr

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/arloliu/unistr/endian"
	"github.com/arloliu/unistr/format"
)

func benchInputs() []struct {
	name string
	text string
} {
	rng := rand.New(rand.NewSource(1))
	mixed := string(randomScalars(rng, 1024))

	return []struct {
		name string
		text string
	}{
		{"ascii_1k", strings.Repeat("abcdefgh", 128)},
		{"latin_1k", strings.Repeat("àéîõü", 205)},
		{"mixed_1k", mixed},
	}
}

// BenchmarkNew measures strict validation and codepoint counting.
func BenchmarkNew(b *testing.B) {
	for _, in := range benchInputs() {
		raw := []byte(in.text)
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(raw)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = New(raw)
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	for _, in := range benchInputs() {
		s := MustFromString(in.text)
		mid := s.Len() / 2
		b.Run(in.name, func(b *testing.B) {
			for b.Loop() {
				_, _ = s.At(mid)
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	engine := endian.GetLittleEndianEngine()
	encodings := []format.TextEncoding{format.EncodingUTF8, format.EncodingUTF16, format.EncodingUTF32}
	for _, in := range benchInputs() {
		s := MustFromString(in.text)
		for _, enc := range encodings {
			b.Run(fmt.Sprintf("%s/%s", in.name, enc), func(b *testing.B) {
				buf := make([]byte, 0, s.EncodedLen(enc))
				b.ReportAllocs()
				for b.Loop() {
					buf, _ = s.AppendEncoded(buf[:0], enc, engine)
				}
			})
		}
	}
}

func BenchmarkBuilder(b *testing.B) {
	piece := MustFromString("héllo ")
	b.ReportAllocs()
	for b.Loop() {
		var sb Builder
		for range 64 {
			sb.WriteString(piece)
		}
		_ = sb.String()
		sb.Release()
	}
}

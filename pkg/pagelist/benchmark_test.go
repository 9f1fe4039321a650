package pagelist

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// benchImages resembles a scanned book: mostly jpg with a png insert every
// few pages, a run of webp plates and a handful of stray gifs.
func benchImages(amount int) Images {
	var png, webp, gif []int
	for p := 5; p <= amount; p += 16 {
		png = append(png, p)
	}
	for p := amount / 3; p < amount/3+40 && p <= amount; p++ {
		if p%16 != 5 {
			webp = append(webp, p)
		}
	}
	for _, p := range []int{2, 3, amount / 2, amount - 1} {
		if p%16 != 5 && (p < amount/3 || p >= amount/3+40) {
			gif = append(gif, p)
		}
	}
	return Images{
		{"jpg", without(amount, png, webp, gif)},
		{"png", png},
		{"webp", webp},
		{"gif", gif},
	}
}

// protowireSize is the size of the same mapping as protobuf map entries
// with packed varint page lists, the closest general-purpose encoding.
func protowireSize(images Images) int {
	var buf []byte
	for _, g := range images {
		var packed []byte
		for _, p := range g.Pages {
			packed = protowire.AppendVarint(packed, uint64(p))
		}
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, g.Ext)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendBytes(entry, packed)

		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, entry)
	}
	return len(buf)
}

func TestEncodedSmallerThanProtowire(t *testing.T) {
	for _, amount := range []int{120, 1000, 20000} {
		images := benchImages(amount)
		data, err := Encode(images)
		if err != nil {
			t.Fatalf("amount %d: Encode error: %v", amount, err)
		}
		baseline := protowireSize(images)
		if len(data) >= baseline {
			t.Errorf("amount %d: encoded %d bytes, protowire %d", amount, len(data), baseline)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, amount := range []int{120, 1000, 20000} {
		images := benchImages(amount)
		b.Run(sizeName(amount), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Encode(images); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeTrusted(b *testing.B) {
	images := benchImages(20000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeWithOptions(images, TrustedEncodeOptions); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, amount := range []int{120, 1000, 20000} {
		data, err := Encode(benchImages(amount))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(sizeName(amount), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkProtowireBaseline(b *testing.B) {
	images := benchImages(20000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = protowireSize(images)
	}
}

func sizeName(amount int) string {
	switch {
	case amount < 255:
		return "Narrow"
	case amount < 5000:
		return "Wide"
	default:
		return "WideLarge"
	}
}

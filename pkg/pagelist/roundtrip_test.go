package pagelist

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

// randomImages partitions [1, amount] across exts. Pages are dealt in
// stretches so the result mixes consecutive runs, stepped runs and
// scattered pages.
func randomImages(rng *rand.Rand, amount int, exts []string) Images {
	owner := make([]int, amount+1)
	for p := 1; p <= amount; {
		ext := rng.IntN(len(exts))
		switch rng.IntN(3) {
		case 0:
			n := 1 + rng.IntN(12)
			for ; n > 0 && p <= amount; n-- {
				owner[p] = ext
				p++
			}
		case 1:
			// interleave two extensions for a stepped run
			other := rng.IntN(len(exts))
			n := 1 + rng.IntN(10)
			for ; n > 0 && p <= amount; n-- {
				owner[p] = ext
				if p+1 <= amount {
					owner[p+1] = other
				}
				p += 2
			}
		default:
			owner[p] = ext
			p++
		}
	}

	pages := make([][]int, len(exts))
	for p := 1; p <= amount; p++ {
		pages[owner[p]] = append(pages[owner[p]], p)
	}
	var images Images
	for i, ext := range exts {
		if len(pages[i]) > 0 {
			images = append(images, Group{Ext: ext, Pages: pages[i]})
		}
	}
	return images
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	exts := []string{"jpg", "png", "webp", "gif", "avif", ""}
	amounts := []int{1, 2, 5, 17, 100, 254, 255, 256, 600, 4096, MaxPageAmount}

	for _, amount := range amounts {
		for iter := 0; iter < 20; iter++ {
			n := 1 + rng.IntN(len(exts))
			images := randomImages(rng, amount, exts[:n])

			t.Run(fmt.Sprintf("amount_%d_%d", amount, iter), func(t *testing.T) {
				data, err := Encode(images)
				if err != nil {
					t.Fatalf("Encode error: %v", err)
				}
				trusted, err := EncodeWithOptions(images, TrustedEncodeOptions)
				if err != nil {
					t.Fatalf("trusted Encode error: %v", err)
				}
				if !bytes.Equal(data, trusted) {
					t.Fatal("trusted and validating output differ")
				}

				decoded, err := Decode(data)
				if err != nil {
					t.Fatalf("Decode error: %v", err)
				}
				if !decoded.Equal(images) {
					t.Fatalf("round trip mismatch for %d groups", len(images))
				}

				again, err := Encode(decoded)
				if err != nil {
					t.Fatalf("re-Encode error: %v", err)
				}
				if len(again) != len(data) {
					t.Errorf("re-encoded size %d, original %d", len(again), len(data))
				}
			})
		}
	}
}

func TestRoundTripLargeSteps(t *testing.T) {
	// Steps at and around the narrow limit inside a wide stream.
	for _, step := range []int{253, 254, 255, 256, 1000} {
		var explicit []int
		for p := step; p <= 6000; p += step {
			explicit = append(explicit, p)
		}
		images := Images{{"jpg", without(6000, explicit)}, {"png", explicit}}

		data, err := Encode(images)
		if err != nil {
			t.Fatalf("step %d: Encode error: %v", step, err)
		}
		decoded, err := Decode(data)
		if err != nil {
			t.Fatalf("step %d: Decode error: %v", step, err)
		}
		if !decoded.Equal(images) {
			t.Errorf("step %d: round trip mismatch", step)
		}
	}
}

func TestRoundTripMaxPageAmount(t *testing.T) {
	images := Images{
		{"jpg", without(MaxPageAmount, []int{1}, []int{MaxPageAmount - 1, MaxPageAmount})},
		{"png", []int{1}},
		{"gif", []int{MaxPageAmount - 1, MaxPageAmount}},
	}
	data, err := Encode(images)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !decoded.Equal(images) {
		t.Error("round trip mismatch")
	}
}

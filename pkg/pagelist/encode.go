package pagelist

import (
	"github.com/blockberries/pagepack/internal/wire"
)

// Encode encodes images with DefaultEncodeOptions.
func Encode(images Images) ([]byte, error) {
	return EncodeWithOptions(images, DefaultEncodeOptions)
}

// EncodeMap encodes a map with extensions taken in sorted order.
func EncodeMap(m map[string][]int) ([]byte, error) {
	return Encode(FromMap(m))
}

// EncodeWithOptions encodes images into the page-list wire format.
//
// Layout:
//
//	default_ext 0x00 flag page_amount
//	[ SEP ext SEP start_page [ flag run... ] ]*
//
// The default extension is the longest group and its pages are implied by
// the page amount. The header name is always followed by a single NUL so
// the decoder can find the flag before it knows the width.
func EncodeWithOptions(images Images, opts EncodeOptions) ([]byte, error) {
	w := GetWriter()
	defer PutWriter(w)

	if err := encodeTo(w, images, opts); err != nil {
		return nil, err
	}
	return w.BytesCopy(), nil
}

// EncodedSize returns the number of bytes EncodeWithOptions would produce.
func EncodedSize(images Images, opts EncodeOptions) (int, error) {
	w := GetWriter()
	defer PutWriter(w)

	if err := encodeTo(w, images, opts); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// AppendEncode appends the encoding of images to buf.
func AppendEncode(buf []byte, images Images, opts EncodeOptions) ([]byte, error) {
	w := GetWriter()
	defer PutWriter(w)

	if err := encodeTo(w, images, opts); err != nil {
		return buf, err
	}
	return append(buf, w.buf...), nil
}

func encodeTo(w *Writer, images Images, opts EncodeOptions) error {
	pageAmount, err := resolvePageAmount(images, opts.PageAmount)
	if err != nil {
		return err
	}
	if opts.Mode == Validating {
		if err := validatePartition(images, pageAmount); err != nil {
			return err
		}
	}

	def := images.Default()
	header := wire.WidthFor(pageAmount)

	w.WriteName(images[def].Ext)
	w.WriteSeparator(wire.Narrow)
	w.WriteFlag(header)
	w.WriteUint(header, pageAmount)

	if len(images) > 1 {
		for i, g := range images {
			if i == def {
				continue
			}
			w.WriteSeparator(header)
			w.WriteName(g.Ext)
			w.WriteSeparator(header)
			encodeNumbers(w, header, g.Pages)
			if err := w.Err(); err != nil {
				return withExt(err, g.Ext)
			}
		}
	}
	return w.Err()
}

// encodeNumbers writes one extension's ascending pages. The start page uses
// the header width; deltas and steps use a local width picked from the
// largest step in the list; run lengths use the header width.
func encodeNumbers(w *Writer, header wire.Width, pages []int) {
	w.WriteUint(header, pages[0])
	if len(pages) == 1 {
		return
	}

	local := wire.WidthFor(maxStep(pages))
	w.WriteFlag(local)

	prev := pages[0]
	for i := 1; i < len(pages); {
		step, n := runAt(pages, i)
		if n >= MinRunLength {
			if step == 1 {
				w.WriteFunction(local, wire.FuncRange)
			} else {
				w.WriteFunction(local, wire.FuncStepRange)
				w.WriteUint(local, step)
			}
			w.WriteUint(local, pages[i]-prev)
			w.WriteUint(header, n)
			prev = pages[i+n-1]
			i += n
			continue
		}
		w.WriteUint(local, pages[i]-prev)
		prev = pages[i]
		i++
	}
}

// maxStep returns the largest difference between consecutive pages.
func maxStep(pages []int) int {
	m := 0
	for i := 1; i < len(pages); i++ {
		if d := pages[i] - pages[i-1]; d > m {
			m = d
		}
	}
	return m
}

// runAt returns the step and length of the maximal constant-step run
// starting at pages[i].
func runAt(pages []int, i int) (step, n int) {
	if i+1 >= len(pages) {
		return 0, 1
	}
	step = pages[i+1] - pages[i]
	j := i + 1
	for j+1 < len(pages) && pages[j+1]-pages[j] == step {
		j++
	}
	return step, j - i + 1
}

// withExt attaches the extension name to an EncodeError that lacks one.
func withExt(err error, ext string) error {
	if ee, ok := err.(*EncodeError); ok && ee.Ext == "" {
		return &EncodeError{Ext: ext, Message: ee.Message, Cause: ee.Cause}
	}
	return err
}

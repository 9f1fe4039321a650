package pagelist

import (
	"errors"
	"fmt"

	"github.com/blockberries/pagepack/internal/wire"
)

// Decode decodes a page-list stream with DefaultDecodeOptions.
func Decode(data []byte) (Images, error) {
	return DecodeWithOptions(data, DefaultDecodeOptions)
}

// DecodeWithOptions decodes a page-list stream.
//
// The default extension comes first in the result and its pages are every
// page in [1, page amount] not claimed by another extension, in ascending
// order. The remaining extensions follow in stream order.
func DecodeWithOptions(data []byte, opts DecodeOptions) (Images, error) {
	if opts.Limits.MaxInputSize > 0 && len(data) > opts.Limits.MaxInputSize {
		return nil, NewDecodeErrorAt(0, fmt.Sprintf("input is %d bytes", len(data)), ErrMaxSizeExceeded)
	}

	d := decoder{
		r:      NewReaderWithLimits(data, opts.Limits),
		limits: opts.Limits,
	}
	images := d.decode()
	if err := d.r.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// Header is the fixed prefix of every stream.
type Header struct {
	DefaultExt string
	Width      wire.Width
	PageAmount int

	// Size is the number of bytes the header occupies.
	Size int
}

// DecodeHeader decodes only the stream header.
func DecodeHeader(data []byte) (Header, error) {
	r := NewReader(data)
	h := readHeader(r)
	if err := r.Err(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func readHeader(r *Reader) Header {
	var h Header
	h.DefaultExt = r.ReadName(wire.Narrow)
	h.Width = r.ReadWidth()
	start := r.Pos()
	h.PageAmount = r.ReadUint(h.Width)
	if r.Err() == nil && h.PageAmount == 0 {
		r.failAt(start, ErrPageOutOfRange, "page amount is zero")
	}
	h.Size = r.Pos()
	return h
}

type decoder struct {
	r      *Reader
	limits Limits

	header  wire.Width
	amount  int
	claimed []bool
	seen    map[string]struct{}
}

func (d *decoder) decode() Images {
	r := d.r
	h := readHeader(r)
	if r.Err() != nil {
		return nil
	}
	d.header = h.Width
	d.amount = h.PageAmount
	d.claimed = make([]bool, h.PageAmount+1)
	d.seen = map[string]struct{}{h.DefaultExt: {}}

	images := Images{{Ext: h.DefaultExt}}
	if !r.EOF() {
		r.ReadSeparator(d.header)
		for r.Err() == nil {
			if d.limits.MaxExtensions > 0 && len(images) >= d.limits.MaxExtensions {
				r.setErrorAt(ErrMaxExtensions, fmt.Sprintf("more than %d extensions", d.limits.MaxExtensions))
				break
			}
			images = append(images, d.decodeGroup())
			if r.Err() != nil || r.EOF() {
				break
			}
			r.ReadSeparator(d.header)
		}
		if r.Err() != nil {
			return nil
		}
	}

	images[0].Pages = d.complement()
	return images
}

// decodeGroup reads one extension: name, start page, then either nothing
// (single page) or a local flag followed by deltas and functions up to the
// next separator or the end of input.
func (d *decoder) decodeGroup() Group {
	r := d.r
	namePos := r.Pos()
	g := Group{Ext: r.ReadName(d.header)}
	defer d.tagError(g.Ext)
	if r.Err() != nil {
		return g
	}
	if _, dup := d.seen[g.Ext]; dup {
		r.failAt(namePos, ErrDuplicateExt, fmt.Sprintf("extension %q listed more than once", g.Ext))
		return g
	}
	d.seen[g.Ext] = struct{}{}

	startPos := r.Pos()
	prev := r.ReadUint(d.header)
	if !d.claim(startPos, prev) {
		return g
	}
	g.Pages = []int{prev}
	if r.EOF() || r.AtSeparator(d.header) {
		return g
	}

	local := r.ReadWidth()
	for r.Err() == nil && !r.EOF() && !r.AtSeparator(d.header) {
		itemPos := r.Pos()
		if r.AtFunction(local) {
			r.Skip(local.Size())
			step := 1
			if r.ReadFunction() == wire.FuncStepRange {
				step = r.ReadUint(local)
			}
			delta := r.ReadUint(local)
			n := r.ReadUint(d.header)
			if r.Err() != nil {
				break
			}
			if step == 0 || delta == 0 || n == 0 {
				r.failAt(itemPos, ErrInvalidRun, fmt.Sprintf("step=%d delta=%d length=%d", step, delta, n))
				break
			}
			first := prev + delta
			last := first + step*(n-1)
			if last > d.amount {
				r.failAt(itemPos, ErrPageOutOfRange, fmt.Sprintf("run ends at page %d beyond page amount %d", last, d.amount))
				break
			}
			for p := first; p <= last; p += step {
				if !d.claim(itemPos, p) {
					break
				}
				g.Pages = append(g.Pages, p)
			}
			prev = last
			continue
		}

		delta := r.ReadUint(local)
		if r.Err() != nil {
			break
		}
		if delta == 0 {
			r.failAt(itemPos, ErrInvalidRun, "zero delta")
			break
		}
		prev += delta
		if !d.claim(itemPos, prev) {
			break
		}
		g.Pages = append(g.Pages, prev)
	}
	return g
}

// claim marks page p as explicitly stored, failing on out-of-range or
// already-claimed pages.
func (d *decoder) claim(offset, p int) bool {
	if d.r.Err() != nil {
		return false
	}
	if p < 1 || p > d.amount {
		d.r.failAt(offset, ErrPageOutOfRange, fmt.Sprintf("page %d not in [1, %d]", p, d.amount))
		return false
	}
	if d.claimed[p] {
		d.r.failAt(offset, ErrDuplicatePage, fmt.Sprintf("page %d already claimed", p))
		return false
	}
	d.claimed[p] = true
	return true
}

// complement returns every unclaimed page in ascending order.
func (d *decoder) complement() []int {
	pages := make([]int, 0, d.amount)
	for p := 1; p <= d.amount; p++ {
		if !d.claimed[p] {
			pages = append(pages, p)
		}
	}
	return pages
}

// tagError attaches ext to a pending DecodeError that has no extension.
func (d *decoder) tagError(ext string) {
	var de *DecodeError
	if errors.As(d.r.err, &de) && de.Ext == "" {
		de.Ext = ext
	}
}

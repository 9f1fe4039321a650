package pagelist

import (
	"slices"
	"sort"
)

// Group is one extension and the ascending pages stored with it.
type Group struct {
	Ext   string
	Pages []int
}

// Images is an ordered list of extension groups.
//
// Order is significant: the default extension is the longest group, with
// ties going to the group that appears first, and non-default groups are
// written in this order.
type Images []Group

// FromMap builds Images from a map with extensions sorted lexicographically,
// so the same map always encodes to the same bytes.
func FromMap(m map[string][]int) Images {
	exts := make([]string, 0, len(m))
	for ext := range m {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	images := make(Images, 0, len(exts))
	for _, ext := range exts {
		images = append(images, Group{Ext: ext, Pages: m[ext]})
	}
	return images
}

// Map returns the images as a map from extension to pages.
// Page slices are shared with the receiver.
func (im Images) Map() map[string][]int {
	m := make(map[string][]int, len(im))
	for _, g := range im {
		m[g.Ext] = g.Pages
	}
	return m
}

// Default returns the index of the default extension: the longest group,
// first seen on ties. Returns -1 for empty Images.
func (im Images) Default() int {
	best := -1
	for i, g := range im {
		if best < 0 || len(g.Pages) > len(im[best].Pages) {
			best = i
		}
	}
	return best
}

// PageAmount returns the largest page across all groups.
func (im Images) PageAmount() int {
	amount := 0
	for _, g := range im {
		for _, p := range g.Pages {
			if p > amount {
				amount = p
			}
		}
	}
	return amount
}

// Lookup returns the pages stored for ext.
func (im Images) Lookup(ext string) ([]int, bool) {
	for _, g := range im {
		if g.Ext == ext {
			return g.Pages, true
		}
	}
	return nil, false
}

// TotalPages returns the number of pages across all groups.
func (im Images) TotalPages() int {
	n := 0
	for _, g := range im {
		n += len(g.Pages)
	}
	return n
}

// Clone returns a deep copy.
func (im Images) Clone() Images {
	if im == nil {
		return nil
	}
	out := make(Images, len(im))
	for i, g := range im {
		out[i] = Group{Ext: g.Ext, Pages: slices.Clone(g.Pages)}
	}
	return out
}

// Equal reports whether both hold the same extensions with identical page
// lists. Group order is ignored.
func (im Images) Equal(other Images) bool {
	if len(im) != len(other) {
		return false
	}
	for _, g := range im {
		pages, ok := other.Lookup(g.Ext)
		if !ok || !slices.Equal(g.Pages, pages) {
			return false
		}
	}
	return true
}

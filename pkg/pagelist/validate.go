package pagelist

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks that images partition [1, pageAmount] into strictly
// ascending lists under unique, NUL-free UTF-8 names. A pageAmount of 0
// means the largest page in images.
func Validate(images Images, pageAmount int) error {
	amount, err := resolvePageAmount(images, pageAmount)
	if err != nil {
		return err
	}
	return validatePartition(images, amount)
}

// resolvePageAmount runs the checks every encode performs regardless of mode
// and returns the page amount to write.
func resolvePageAmount(images Images, pageAmount int) (int, error) {
	if len(images) == 0 {
		return 0, NewEncodeError("nothing to encode", ErrNoGroups)
	}
	for _, g := range images {
		if len(g.Pages) == 0 {
			return 0, NewExtEncodeError(g.Ext, "no pages", ErrEmptyGroup)
		}
	}
	if pageAmount == 0 {
		pageAmount = images.PageAmount()
	}
	if pageAmount < 1 || pageAmount > MaxPageAmount {
		return 0, NewEncodeError(fmt.Sprintf("page amount %d not in [1, %d]", pageAmount, MaxPageAmount), ErrPageAmount)
	}
	return pageAmount, nil
}

func validatePartition(images Images, pageAmount int) error {
	seen := make(map[string]struct{}, len(images))
	owner := make([]int, pageAmount+1)

	for gi, g := range images {
		if err := validateName(g.Ext); err != nil {
			return err
		}
		if _, dup := seen[g.Ext]; dup {
			return NewExtEncodeError(g.Ext, "listed more than once", ErrDuplicateExt)
		}
		seen[g.Ext] = struct{}{}

		prev := 0
		for _, p := range g.Pages {
			if p < 1 {
				return NewExtEncodeError(g.Ext, fmt.Sprintf("page %d below 1", p), ErrPageOutOfRange)
			}
			if p <= prev {
				return NewExtEncodeError(g.Ext, fmt.Sprintf("page %d after %d", p, prev), ErrNotAscending)
			}
			if p > pageAmount {
				return NewExtEncodeError(g.Ext, fmt.Sprintf("page %d exceeds page amount %d", p, pageAmount), ErrPageOutOfRange)
			}
			if owner[p] != 0 {
				other := images[owner[p]-1].Ext
				return NewExtEncodeError(g.Ext, fmt.Sprintf("page %d also claimed by %q", p, other), ErrDuplicatePage)
			}
			owner[p] = gi + 1
			prev = p
		}
	}

	for p := 1; p <= pageAmount; p++ {
		if owner[p] == 0 {
			return NewEncodeError(fmt.Sprintf("page %d not claimed by any extension", p), ErrCoverage)
		}
	}
	return nil
}

func validateName(name string) error {
	if len(name) > MaxNameLength {
		return NewExtEncodeError(name, fmt.Sprintf("name is %d bytes, limit %d", len(name), MaxNameLength), ErrInvalidName)
	}
	if strings.IndexByte(name, 0x00) >= 0 {
		return NewExtEncodeError(name, "name contains NUL byte", ErrInvalidName)
	}
	if !utf8.ValidString(name) {
		return NewExtEncodeError(name, "name is not valid UTF-8", ErrInvalidName)
	}
	return nil
}

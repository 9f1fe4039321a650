// Package wire provides low-level encoding primitives for the page-list wire format.
//
// Every integer in the format is an unsigned big-endian value of either one
// byte (Narrow) or two bytes (Wide). The active width also decides the width
// of the NUL separator and of the all-0xFF function sentinel.
package wire

import (
	"encoding/binary"
	"errors"
	"io"
)

// Width is the byte width of integers, separators and sentinels.
type Width uint8

const (
	// Narrow encodes integers as a single byte.
	Narrow Width = 1

	// Wide encodes integers as two big-endian bytes.
	Wide Width = 2
)

// Encoding flag bytes as they appear on the wire.
const (
	FlagNarrow byte = 0x01
	FlagWide   byte = 0x02
)

// NarrowLimit is the exclusive upper bound for values stored narrow.
// 0xFF is reserved for the function sentinel.
const NarrowLimit = 0xFF

// WideLimit is the exclusive upper bound for values stored wide.
const WideLimit = 0xFFFF

var (
	// ErrInvalidFlag indicates an encoding flag other than 0x01 or 0x02.
	ErrInvalidFlag = errors.New("wire: invalid encoding flag")

	// ErrValueRange indicates a value does not fit the requested width.
	ErrValueRange = errors.New("wire: value out of range for width")
)

// WidthFor returns Narrow if max fits below the narrow sentinel, Wide otherwise.
func WidthFor(max int) Width {
	if max < NarrowLimit {
		return Narrow
	}
	return Wide
}

// WidthFromFlag maps an encoding flag byte to its width.
func WidthFromFlag(b byte) (Width, error) {
	switch b {
	case FlagNarrow:
		return Narrow, nil
	case FlagWide:
		return Wide, nil
	default:
		return 0, ErrInvalidFlag
	}
}

// Size returns the number of bytes used by the width.
func (w Width) Size() int {
	return int(w)
}

// Flag returns the encoding flag byte for the width.
func (w Width) Flag() byte {
	if w == Wide {
		return FlagWide
	}
	return FlagNarrow
}

// Max returns the largest value representable in the width.
func (w Width) Max() int {
	if w == Wide {
		return 0xFFFF
	}
	return 0xFF
}

// IsValid returns true if the width is Narrow or Wide.
func (w Width) IsValid() bool {
	return w == Narrow || w == Wide
}

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// AppendUint appends v as a big-endian unsigned integer of the given width.
// The caller must ensure 0 <= v <= w.Max().
func AppendUint(buf []byte, w Width, v uint16) []byte {
	if w == Wide {
		return binary.BigEndian.AppendUint16(buf, v)
	}
	return append(buf, byte(v))
}

// DecodeUint decodes a big-endian unsigned integer of the given width.
// Returns io.ErrUnexpectedEOF if data is shorter than the width.
func DecodeUint(data []byte, w Width) (uint16, error) {
	if len(data) < w.Size() {
		return 0, io.ErrUnexpectedEOF
	}
	if w == Wide {
		return binary.BigEndian.Uint16(data), nil
	}
	return uint16(data[0]), nil
}

// AppendSeparator appends a NUL separator of the given width.
func AppendSeparator(buf []byte, w Width) []byte {
	if w == Wide {
		return append(buf, 0x00, 0x00)
	}
	return append(buf, 0x00)
}

// IsSeparator reports whether data begins with a separator of the given width.
func IsSeparator(data []byte, w Width) bool {
	return hasPrefixByte(data, w, 0x00)
}

// AppendSentinel appends the all-0xFF function sentinel of the given width.
func AppendSentinel(buf []byte, w Width) []byte {
	if w == Wide {
		return append(buf, 0xFF, 0xFF)
	}
	return append(buf, 0xFF)
}

// IsSentinel reports whether data begins with the function sentinel of the given width.
func IsSentinel(data []byte, w Width) bool {
	return hasPrefixByte(data, w, 0xFF)
}

func hasPrefixByte(data []byte, w Width, b byte) bool {
	n := w.Size()
	if n == 0 || len(data) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if data[i] != b {
			return false
		}
	}
	return true
}

// Function identifies an opcode that expands into a run of pages.
type Function byte

const (
	// FuncRange expands to consecutive pages (step 1).
	// Payload: delta (local width), length (header width).
	FuncRange Function = 0x01

	// FuncStepRange expands to pages with a constant step.
	// Payload: step (local width), delta (local width), length (header width).
	FuncStepRange Function = 0x02
)

// IsValid returns true if the function id is known.
func (f Function) IsValid() bool {
	return f == FuncRange || f == FuncStepRange
}

// String returns a human-readable name for the function.
func (f Function) String() string {
	switch f {
	case FuncRange:
		return "Range"
	case FuncStepRange:
		return "StepRange"
	default:
		return "Unknown"
	}
}

// AppendFunction appends the sentinel of the given width followed by the function id.
func AppendFunction(buf []byte, w Width, f Function) []byte {
	buf = AppendSentinel(buf, w)
	return append(buf, byte(f))
}

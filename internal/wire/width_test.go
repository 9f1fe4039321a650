package wire

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWidthFor(t *testing.T) {
	tests := []struct {
		max      int
		expected Width
	}{
		{0, Narrow},
		{1, Narrow},
		{254, Narrow},
		{255, Wide},
		{256, Wide},
		{65534, Wide},
	}

	for _, tc := range tests {
		if got := WidthFor(tc.max); got != tc.expected {
			t.Errorf("WidthFor(%d) = %v, want %v", tc.max, got, tc.expected)
		}
	}
}

func TestWidthFromFlag(t *testing.T) {
	tests := []struct {
		flag     byte
		expected Width
		err      error
	}{
		{0x01, Narrow, nil},
		{0x02, Wide, nil},
		{0x00, 0, ErrInvalidFlag},
		{0x03, 0, ErrInvalidFlag},
		{0xFF, 0, ErrInvalidFlag},
	}

	for _, tc := range tests {
		got, err := WidthFromFlag(tc.flag)
		if !errors.Is(err, tc.err) {
			t.Errorf("WidthFromFlag(%#x) error = %v, want %v", tc.flag, err, tc.err)
		}
		if got != tc.expected {
			t.Errorf("WidthFromFlag(%#x) = %v, want %v", tc.flag, got, tc.expected)
		}
	}
}

func TestWidthProperties(t *testing.T) {
	if Narrow.Size() != 1 || Wide.Size() != 2 {
		t.Errorf("Size() = %d/%d, want 1/2", Narrow.Size(), Wide.Size())
	}
	if Narrow.Flag() != FlagNarrow || Wide.Flag() != FlagWide {
		t.Error("Flag() mismatch")
	}
	if Narrow.Max() != 0xFF || Wide.Max() != 0xFFFF {
		t.Error("Max() mismatch")
	}
	if !Narrow.IsValid() || !Wide.IsValid() || Width(0).IsValid() || Width(3).IsValid() {
		t.Error("IsValid() mismatch")
	}
	if Narrow.String() != "narrow" || Wide.String() != "wide" || Width(9).String() != "unknown" {
		t.Error("String() mismatch")
	}
}

func TestAppendUint(t *testing.T) {
	tests := []struct {
		name     string
		width    Width
		value    uint16
		expected []byte
	}{
		{"narrow_one", Narrow, 1, []byte{0x01}},
		{"narrow_254", Narrow, 254, []byte{0xFE}},
		{"wide_one", Wide, 1, []byte{0x00, 0x01}},
		{"wide_255", Wide, 255, []byte{0x00, 0xFF}},
		{"wide_256", Wide, 256, []byte{0x01, 0x00}},
		{"wide_0x1234", Wide, 0x1234, []byte{0x12, 0x34}},
		{"wide_max", Wide, 0xFFFE, []byte{0xFF, 0xFE}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := AppendUint(nil, tc.width, tc.value)
			if !bytes.Equal(result, tc.expected) {
				t.Errorf("AppendUint(%v, %d) = %v, want %v", tc.width, tc.value, result, tc.expected)
			}
		})
	}
}

func TestDecodeUint(t *testing.T) {
	tests := []struct {
		name     string
		width    Width
		data     []byte
		expected uint16
	}{
		{"narrow", Narrow, []byte{0x07}, 7},
		{"narrow_extra", Narrow, []byte{0x07, 0x08}, 7},
		{"wide", Wide, []byte{0x01, 0x00}, 256},
		{"wide_extra", Wide, []byte{0x12, 0x34, 0x56}, 0x1234},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DecodeUint(tc.data, tc.width)
			if err != nil {
				t.Fatalf("DecodeUint(%v) error: %v", tc.data, err)
			}
			if result != tc.expected {
				t.Errorf("DecodeUint(%v) = %d, want %d", tc.data, result, tc.expected)
			}
		})
	}
}

func TestDecodeUintTruncated(t *testing.T) {
	tests := []struct {
		width Width
		data  []byte
	}{
		{Narrow, nil},
		{Narrow, []byte{}},
		{Wide, []byte{0x01}},
	}

	for _, tc := range tests {
		_, err := DecodeUint(tc.data, tc.width)
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("DecodeUint(%v, %v) error = %v, want io.ErrUnexpectedEOF", tc.data, tc.width, err)
		}
	}
}

func TestUintRoundTrip(t *testing.T) {
	for _, w := range []Width{Narrow, Wide} {
		limit := NarrowLimit
		if w == Wide {
			limit = WideLimit
		}
		for v := 0; v < limit; v += 97 {
			buf := AppendUint(nil, w, uint16(v))
			if len(buf) != w.Size() {
				t.Fatalf("AppendUint(%v, %d) len = %d", w, v, len(buf))
			}
			got, err := DecodeUint(buf, w)
			if err != nil {
				t.Fatalf("DecodeUint error: %v", err)
			}
			if int(got) != v {
				t.Errorf("round trip %v: got %d, want %d", w, got, v)
			}
		}
	}
}

func TestSeparator(t *testing.T) {
	if got := AppendSeparator(nil, Narrow); !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("narrow separator = %v", got)
	}
	if got := AppendSeparator(nil, Wide); !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Errorf("wide separator = %v", got)
	}

	tests := []struct {
		data     []byte
		width    Width
		expected bool
	}{
		{[]byte{0x00}, Narrow, true},
		{[]byte{0x00, 0x05}, Narrow, true},
		{[]byte{0x00}, Wide, false},
		{[]byte{0x00, 0x05}, Wide, false},
		{[]byte{0x00, 0x00}, Wide, true},
		{[]byte{0x01}, Narrow, false},
		{nil, Narrow, false},
		{[]byte{0x00}, Width(0), false},
	}
	for _, tc := range tests {
		if got := IsSeparator(tc.data, tc.width); got != tc.expected {
			t.Errorf("IsSeparator(%v, %v) = %v, want %v", tc.data, tc.width, got, tc.expected)
		}
	}
}

func TestSentinel(t *testing.T) {
	if got := AppendSentinel(nil, Narrow); !bytes.Equal(got, []byte{0xFF}) {
		t.Errorf("narrow sentinel = %v", got)
	}
	if got := AppendSentinel(nil, Wide); !bytes.Equal(got, []byte{0xFF, 0xFF}) {
		t.Errorf("wide sentinel = %v", got)
	}
	if !IsSentinel([]byte{0xFF, 0x01}, Narrow) {
		t.Error("IsSentinel narrow should match")
	}
	if IsSentinel([]byte{0xFF, 0x01}, Wide) {
		t.Error("IsSentinel wide should not match a single 0xFF")
	}
	if !IsSentinel([]byte{0xFF, 0xFF, 0x02}, Wide) {
		t.Error("IsSentinel wide should match")
	}
	if IsSentinel([]byte{0xFE}, Narrow) {
		t.Error("IsSentinel should not match 0xFE")
	}
}

func TestFunction(t *testing.T) {
	if got := AppendFunction(nil, Narrow, FuncRange); !bytes.Equal(got, []byte{0xFF, 0x01}) {
		t.Errorf("AppendFunction narrow = %v", got)
	}
	if got := AppendFunction(nil, Wide, FuncStepRange); !bytes.Equal(got, []byte{0xFF, 0xFF, 0x02}) {
		t.Errorf("AppendFunction wide = %v", got)
	}
	if !FuncRange.IsValid() || !FuncStepRange.IsValid() || Function(3).IsValid() {
		t.Error("IsValid mismatch")
	}
	if FuncRange.String() != "Range" || FuncStepRange.String() != "StepRange" || Function(0).String() != "Unknown" {
		t.Error("String mismatch")
	}
}

func TestErrorPrefix(t *testing.T) {
	for _, err := range []error{ErrInvalidFlag, ErrValueRange} {
		if !strings.HasPrefix(err.Error(), "wire: ") {
			t.Errorf("error %q lacks the wire prefix", err)
		}
	}
}

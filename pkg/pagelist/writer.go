package pagelist

import (
	"github.com/blockberries/pagepack/internal/wire"
)

// Writer appends page-list wire elements to a growing buffer.
// The first error is sticky: later writes become no-ops and Err reports it.
//
// The zero value is ready to use, but for better performance,
// use NewWriter or GetWriter.
type Writer struct {
	buf    []byte
	err    error
	frozen bool // prevents further writes after Bytes() is called
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{
		buf: make([]byte, 0, 64),
	}
}

// NewWriterWithBuffer creates a Writer using the provided buffer.
// The buffer will be reused if it has sufficient capacity.
func NewWriterWithBuffer(buf []byte) *Writer {
	return &Writer{
		buf: buf[:0],
	}
}

// Reset clears the writer for reuse.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.err = nil
	w.frozen = false
}

// Len returns the current length of the encoded data.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded data.
// The returned slice is only valid until the next call to Reset.
// Further writes fail with ErrFrozen. To get a copy, use BytesCopy.
func (w *Writer) Bytes() []byte {
	w.frozen = true
	return w.buf
}

// BytesCopy returns a copy of the encoded data.
// This is safe to use after Reset or further writes.
func (w *Writer) BytesCopy() []byte {
	result := make([]byte, len(w.buf))
	copy(result, w.buf)
	return result
}

// Err returns the first error that occurred during writing, if any.
func (w *Writer) Err() error {
	return w.err
}

// setError records the first error that occurs.
func (w *Writer) setError(err error) {
	if w.err == nil {
		w.err = err
	}
}

// checkWrite ensures we can write to the buffer.
func (w *Writer) checkWrite() bool {
	if w.frozen {
		w.setError(NewEncodeError("writer is frozen after Bytes() call", ErrFrozen))
		return false
	}
	return w.err == nil
}

// WriteUint writes v as an unsigned big-endian integer of the given width.
func (w *Writer) WriteUint(width wire.Width, v int) {
	if !w.checkWrite() {
		return
	}
	if !width.IsValid() {
		w.setError(NewEncodeError("invalid integer width", wire.ErrValueRange))
		return
	}
	if v < 0 || v > width.Max() {
		w.setError(NewEncodeError("value does not fit "+width.String()+" integer", wire.ErrValueRange))
		return
	}
	w.buf = wire.AppendUint(w.buf, width, uint16(v))
}

// WriteFlag writes the encoding flag byte for width.
func (w *Writer) WriteFlag(width wire.Width) {
	if !w.checkWrite() {
		return
	}
	w.buf = append(w.buf, width.Flag())
}

// WriteSeparator writes a NUL separator of the given width.
func (w *Writer) WriteSeparator(width wire.Width) {
	if !w.checkWrite() {
		return
	}
	w.buf = wire.AppendSeparator(w.buf, width)
}

// WriteFunction writes the function sentinel of the given width and the function id.
func (w *Writer) WriteFunction(width wire.Width, fn wire.Function) {
	if !w.checkWrite() {
		return
	}
	w.buf = wire.AppendFunction(w.buf, width, fn)
}

// WriteName writes the raw bytes of an extension name, without a terminator.
func (w *Writer) WriteName(name string) {
	if !w.checkWrite() {
		return
	}
	w.buf = append(w.buf, name...)
}

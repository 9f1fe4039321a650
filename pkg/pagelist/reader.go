package pagelist

import (
	"bytes"

	"github.com/blockberries/pagepack/internal/wire"
)

// Reader provides bounds-checked decoding of page-list wire elements with
// position tracking. Like Writer, the first error is sticky.
//
// The zero value is not ready for use; create with NewReader.
type Reader struct {
	data   []byte
	pos    int
	limits Limits
	err    error
}

// NewReader creates a new Reader for the given data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		limits: DefaultLimits,
	}
}

// NewReaderWithLimits creates a new Reader with the specified limits.
func NewReaderWithLimits(data []byte, limits Limits) *Reader {
	return &Reader{
		data:   data,
		limits: limits,
	}
}

// Reset resets the reader to read from new data.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.pos = 0
	r.err = nil
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the unread portion of the data.
func (r *Reader) Remaining() []byte {
	if r.pos >= len(r.data) {
		return nil
	}
	return r.data[r.pos:]
}

// EOF returns true if all data has been read.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Err returns the first error that occurred during reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// setErrorAt records an error with the current position.
func (r *Reader) setErrorAt(err error, message string) {
	r.failAt(r.pos, err, message)
}

// failAt records an error at an explicit offset.
func (r *Reader) failAt(offset int, err error, message string) {
	if r.err == nil {
		r.err = NewDecodeErrorAt(offset, message, err)
	}
}

// ensure checks that n bytes are available.
func (r *Reader) ensure(n int, what string) bool {
	if r.err != nil {
		return false
	}
	if r.pos+n > len(r.data) {
		r.setErrorAt(ErrUnexpectedEOF, "truncated "+what)
		return false
	}
	return true
}

// Skip skips n bytes.
func (r *Reader) Skip(n int) {
	if !r.ensure(n, "data") {
		return
	}
	r.pos += n
}

// ReadUint reads an unsigned big-endian integer of the given width.
func (r *Reader) ReadUint(width wire.Width) int {
	if r.err != nil {
		return 0
	}
	v, err := wire.DecodeUint(r.data[r.pos:], width)
	if err != nil {
		r.setErrorAt(ErrUnexpectedEOF, "truncated "+width.String()+" integer")
		return 0
	}
	r.pos += width.Size()
	return int(v)
}

// ReadWidth reads an encoding flag byte and returns its width.
func (r *Reader) ReadWidth() wire.Width {
	if !r.ensure(1, "encoding flag") {
		return 0
	}
	w, err := wire.WidthFromFlag(r.data[r.pos])
	if err != nil {
		r.setErrorAt(ErrInvalidEncoding, err.Error())
		return 0
	}
	r.pos++
	return w
}

// ReadFunction reads a function id byte following a sentinel.
func (r *Reader) ReadFunction() wire.Function {
	if !r.ensure(1, "function id") {
		return 0
	}
	fn := wire.Function(r.data[r.pos])
	if !fn.IsValid() {
		r.setErrorAt(ErrUnknownFunction, "unknown function id")
		return 0
	}
	r.pos++
	return fn
}

// ReadName reads an extension name terminated by a separator of the given
// width and consumes the separator.
func (r *Reader) ReadName(sep wire.Width) string {
	if r.err != nil {
		return ""
	}
	rest := r.Remaining()
	idx := bytes.IndexByte(rest, 0x00)
	if idx < 0 {
		r.setErrorAt(ErrUnterminatedString, "no separator after name")
		return ""
	}
	if r.limits.MaxNameLength > 0 && idx > r.limits.MaxNameLength {
		r.setErrorAt(ErrMaxNameLength, "name too long")
		return ""
	}
	if !wire.IsSeparator(rest[idx:], sep) {
		r.failAt(r.pos+idx, ErrUnterminatedString, "malformed "+sep.String()+" separator")
		return ""
	}
	name := string(rest[:idx])
	r.pos += idx + sep.Size()
	return name
}

// ReadSeparator consumes a separator of the given width.
func (r *Reader) ReadSeparator(sep wire.Width) {
	if !r.ensure(sep.Size(), "separator") {
		return
	}
	if !wire.IsSeparator(r.data[r.pos:], sep) {
		r.setErrorAt(ErrUnterminatedString, "expected "+sep.String()+" separator")
		return
	}
	r.pos += sep.Size()
}

// AtSeparator reports whether the unread data begins with a separator.
func (r *Reader) AtSeparator(sep wire.Width) bool {
	return r.err == nil && wire.IsSeparator(r.Remaining(), sep)
}

// AtFunction reports whether the unread data begins with a function sentinel.
func (r *Reader) AtFunction(width wire.Width) bool {
	return r.err == nil && wire.IsSentinel(r.Remaining(), width)
}
